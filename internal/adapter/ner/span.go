package ner

import "unicode/utf8"

// sliceRunes returns text[start:end] in code-point offsets, or "" when the
// offsets are out of range.
func sliceRunes(runes []rune, start, end int) string {
	if start < 0 || end > len(runes) || start >= end {
		return ""
	}
	return string(runes[start:end])
}

// sliceBytes returns text[start:end] in byte offsets, or "" when the offsets
// are out of range or split a UTF-8 sequence.
func sliceBytes(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return ""
	}
	s := text[start:end]
	if !utf8.ValidString(s) {
		return ""
	}
	return s
}

func preview(body string) string {
	if len(body) > 200 {
		return body[:200]
	}
	return body
}
