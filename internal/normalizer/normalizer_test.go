package normalizer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConverter struct {
	replace  map[string]string
	err      error
	gotInput string
}

func (c *stubConverter) Convert(text string) (string, error) {
	c.gotInput = text
	if c.err != nil {
		return "", c.err
	}
	out := text
	for from, to := range c.replace {
		out = strings.ReplaceAll(out, from, to)
	}
	return out, nil
}

func TestChineseNormalizeBlanksNonIdeographs(t *testing.T) {
	n := NewChinese(&stubConverter{})

	got, err := n.Normalize("你好, world! 世界")
	require.NoError(t, err)
	assert.Equal(t, []string{"你好", "世界"}, strings.Fields(got))
	assert.Equal(t, utf8.RuneCountInString("你好, world! 世界"), utf8.RuneCountInString(got))
}

func TestChineseNormalizeAppliesConversion(t *testing.T) {
	n := NewChinese(&stubConverter{replace: map[string]string{"個": "个"}})

	got, err := n.Normalize("一個")
	require.NoError(t, err)
	assert.Equal(t, "一个", got)
}

func TestChineseNormalizeConvertsBeforeRangeFilter(t *testing.T) {
	conv := &stubConverter{}
	n := NewChinese(conv)

	_, err := n.Normalize("你好abc")
	require.NoError(t, err)
	assert.Contains(t, conv.gotInput, "abc")
}

func TestChineseNormalizeFoldsCompatibilityForms(t *testing.T) {
	n := NewChinese(&stubConverter{})

	got, err := n.Normalize("㈠")
	require.NoError(t, err)
	assert.Equal(t, " 一 ", got)
}

func TestChineseNormalizePropagatesConverterError(t *testing.T) {
	n := NewChinese(&stubConverter{err: errors.New("tables unavailable")})

	_, err := n.Normalize("你好")
	assert.Error(t, err)
}

func TestChineseNormalizeEmptyInput(t *testing.T) {
	n := NewChinese(&stubConverter{})

	got, err := n.Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEnglishNormalizeLowercases(t *testing.T) {
	n := NewEnglish()

	got, err := n.Normalize("The Cat SAT")
	require.NoError(t, err)
	assert.Equal(t, "the cat sat", got)
}

func TestEnglishNormalizeEmptyInput(t *testing.T) {
	n := NewEnglish()

	got, err := n.Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
