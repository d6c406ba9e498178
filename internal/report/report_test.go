package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab/internal/domain"
)

type stubConverter struct {
	replace map[string]string
}

func (c *stubConverter) Convert(text string) (string, error) {
	out := text
	for from, to := range c.replace {
		out = strings.ReplaceAll(out, from, to)
	}
	return out, nil
}

func TestEnglishWriterFullEntry(t *testing.T) {
	entries := []domain.ReportEntry{
		{
			RankedEntry:   domain.RankedEntry{Token: "cat", Count: 3},
			Pronunciation: "/kat/",
			Record: &domain.DefinitionRecord{
				Phonetic: "/kat/",
				Senses: []domain.Sense{
					{PartOfSpeech: "noun", Definition: "A small domesticated feline.", Example: "The cat slept."},
					{PartOfSpeech: "verb", Definition: "To hoist an anchor."},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEnglish().Write(&buf, entries))

	want := "\nWord: cat (Frequency: 3)\n" +
		"Phonetic: /kat/\n" +
		"Part of Speech: noun\n" +
		"Definition: A small domesticated feline.\n" +
		"Example: The cat slept.\n" +
		"\n" +
		"Part of Speech: verb\n" +
		"Definition: To hoist an anchor.\n" +
		"\n" +
		strings.Repeat("-", 50) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEnglishWriterMissingDefinition(t *testing.T) {
	entries := []domain.ReportEntry{
		{RankedEntry: domain.RankedEntry{Token: "dog", Count: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewEnglish().Write(&buf, entries))

	want := "\nWord: dog (Frequency: 1)\n" +
		"No definition found\n" +
		strings.Repeat("-", 50) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEnglishWriterEmptyEntries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEnglish().Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestChineseWriterFullEntry(t *testing.T) {
	conv := &stubConverter{replace: map[string]string{"們": "们", "學": "学", "習": "习"}}
	entries := []domain.ReportEntry{
		{
			RankedEntry:   domain.RankedEntry{Token: "学习", Count: 5},
			Pronunciation: "xue2 xi2",
			Record: &domain.DefinitionRecord{
				Senses: []domain.Sense{
					{Definition: "to learn; to study", Example: "我們學習"},
					{Definition: "learning"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewChinese(conv).Write(&buf, entries))

	want := "\n汉字: 学习 (出现次数: 5)\n" +
		"拼音: xue2 xi2\n" +
		"1. to learn; to study\n" +
		"   例句: 我们学习\n" +
		"2. learning\n" +
		strings.Repeat("-", 60) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestChineseWriterCapsSensesAtThree(t *testing.T) {
	entries := []domain.ReportEntry{
		{
			RankedEntry:   domain.RankedEntry{Token: "好", Count: 9},
			Pronunciation: "hao3",
			Record: &domain.DefinitionRecord{
				Senses: []domain.Sense{
					{Definition: "good"},
					{Definition: "well"},
					{Definition: "proper"},
					{Definition: "very"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewChinese(&stubConverter{}).Write(&buf, entries))

	out := buf.String()
	assert.Contains(t, out, "3. proper\n")
	assert.NotContains(t, out, "4.")
	assert.NotContains(t, out, "very")
}

func TestChineseWriterMissingDefinition(t *testing.T) {
	entries := []domain.ReportEntry{
		{RankedEntry: domain.RankedEntry{Token: "猫", Count: 2}, Pronunciation: "mao1"},
	}

	var buf bytes.Buffer
	require.NoError(t, NewChinese(&stubConverter{}).Write(&buf, entries))

	want := "\n汉字: 猫 (出现次数: 2)\n" +
		"拼音: mao1\n" +
		"未找到词典定义\n" +
		strings.Repeat("-", 60) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPinyinPronouncer(t *testing.T) {
	p := NewPinyinPronouncer()

	assert.Equal(t, "ni3 hao3", p.Pronounce("你好", nil))
	assert.Equal(t, "zhong1 wen2", p.Pronounce("中文", nil))
	assert.Empty(t, p.Pronounce("abc", nil))
}

func TestPhoneticPronouncer(t *testing.T) {
	p := PhoneticPronouncer{}

	assert.Empty(t, p.Pronounce("cat", nil))
	assert.Equal(t, "/kat/", p.Pronounce("cat", &domain.DefinitionRecord{Phonetic: "/kat/"}))
}
