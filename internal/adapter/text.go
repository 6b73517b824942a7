package adapter

import (
	"strings"
	"unicode/utf8"
)

const (
	excerptRunes   = 180
	wordsPerMinute = 200
)

// excerpt takes the first paragraph of body, cut on a word boundary.
func excerpt(body string) string {
	para := strings.TrimSpace(body)
	if i := strings.Index(para, "\n\n"); i >= 0 {
		para = para[:i]
	}
	para = strings.TrimLeft(para, "#> ")
	if utf8.RuneCountInString(para) <= excerptRunes {
		return para
	}
	runes := []rune(para)[:excerptRunes]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",.;: ") + "…"
}

func readingMinutes(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

func clampRating(r int) int {
	switch {
	case r < 1:
		return 1
	case r > 5:
		return 5
	}
	return r
}
