// Package strutil has small string helpers for user-facing text.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/amp-labs/amp-toolkit/hashing"
)

// Ellipsis is appended by Truncate.
const Ellipsis = "..."

// EndWithPeriod trims trailing whitespace and appends a period unless the
// text already ends with '.', '?', '!' or ':'. Blank input is returned as is.
func EndWithPeriod(value string) string {
	if strings.TrimSpace(value) == "" {
		return value
	}

	trimmed := strings.TrimRightFunc(value, unicode.IsSpace)
	if last, _ := utf8.DecodeLastRuneInString(trimmed); strings.ContainsRune(".?!:", last) {
		return trimmed
	}

	return trimmed + "."
}

// NumberDeclension picks the noun form that follows number in Russian:
// nominative for 1, 21, 31..., genitive singular for 2-4, 22-24...,
// genitive plural otherwise (including 11-14).
//
//	NumberDeclension(1, "час", "часа", "часов")  // час
//	NumberDeclension(3, "час", "часа", "часов")  // часа
//	NumberDeclension(12, "час", "часа", "часов") // часов
func NumberDeclension(number int, nominative, genitiveSingular, genitivePlural string) string {
	if number < 0 {
		number = -number
	}

	lastDigit := number % 10
	teen := number%100/10 == 1

	switch {
	case lastDigit == 1 && !teen:
		return nominative
	case lastDigit >= 2 && lastDigit <= 4 && !teen:
		return genitiveSingular
	default:
		return genitivePlural
	}
}

// RemoveNonLetters drops every rune that isn't a letter.
func RemoveNonLetters(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}

		return -1
	}, value)
}

// Truncate trims trailing whitespace and, if more than maxLen runes remain,
// cuts the text to maxLen runes followed by Ellipsis.
func Truncate(value string, maxLen int) string {
	trimmed := strings.TrimRightFunc(value, unicode.IsSpace)
	runes := []rune(trimmed)

	if len(runes) <= maxLen {
		return trimmed
	}

	return string(runes[:max(0, maxLen)]) + Ellipsis
}

// MD5Hex returns the lowercase hex MD5 digest of value's UTF-8 bytes.
func MD5Hex(value string) string {
	// Writes to a hash.Hash never fail.
	sum, _ := hashing.Md5(hashing.HashableString(value))

	return sum
}
