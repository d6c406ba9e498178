package stopword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChineseFilterDropsSingleCharactersAndCustomWords(t *testing.T) {
	f := NewChineseFilter(Set{}, NewSet("这个"), Set{})

	got := f.Filter([]string{"的", "你好", "你好", "这个"})
	assert.Equal(t, []string{"你好", "你好"}, got)
}

func TestChineseFilterKeepListExemptsSingleCharacters(t *testing.T) {
	f := NewChineseFilter(Set{}, Set{}, NewSet("茶"))

	got := f.Filter([]string{"茶", "水", "喝茶"})
	assert.Equal(t, []string{"茶", "喝茶"}, got)
}

func TestChineseFilterDropsStopwords(t *testing.T) {
	f := NewChineseFilter(NewSet("我们"), Set{}, Set{})

	got := f.Filter([]string{"我们", "学习", "中文"})
	assert.Equal(t, []string{"学习", "中文"}, got)
}

func TestEnglishFilterDropsStopwordsKeepsRest(t *testing.T) {
	f := NewEnglishFilter(NewSet("the", "on"), Set{})

	got := f.Filter([]string{"the", "cat", "sat", "on", "the", "mat"})
	assert.Equal(t, []string{"cat", "sat", "mat"}, got)
}

func TestEnglishFilterKeepsSingleLetters(t *testing.T) {
	f := NewEnglishFilter(Set{}, Set{})

	got := f.Filter([]string{"i", "x", "ray"})
	assert.Equal(t, []string{"i", "x", "ray"}, got)
}

func TestFilterPreservesOrderAndDuplicates(t *testing.T) {
	f := NewEnglishFilter(NewSet("a"), Set{})

	got := f.Filter([]string{"dog", "a", "cat", "dog"})
	assert.Equal(t, []string{"dog", "cat", "dog"}, got)
}

func TestFilterSkipsEmptyTokens(t *testing.T) {
	f := NewEnglishFilter(Set{}, Set{})

	got := f.Filter([]string{"", "word", ""})
	assert.Equal(t, []string{"word"}, got)
}

func TestFilterEmptyInput(t *testing.T) {
	f := NewChineseFilter(Set{}, Set{}, Set{})
	assert.Empty(t, f.Filter(nil))
}
