package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndWithPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "   ", expected: "   "},
		{input: "Done", expected: "Done."},
		{input: "Done.  ", expected: "Done."},
		{input: "Really?", expected: "Really?"},
		{input: "Stop!\n", expected: "Stop!"},
		{input: "As follows:", expected: "As follows:"},
		{input: "Готово", expected: "Готово."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, EndWithPeriod(tt.input))
		})
	}
}

func TestNumberDeclension(t *testing.T) {
	t.Parallel()

	forms := func(n int) string {
		return NumberDeclension(n, "час", "часа", "часов")
	}

	for _, n := range []int{1, 21, 101, 1001, -1} {
		assert.Equal(t, "час", forms(n), n)
	}

	for _, n := range []int{2, 3, 4, 22, 34, 102} {
		assert.Equal(t, "часа", forms(n), n)
	}

	for _, n := range []int{0, 5, 11, 12, 13, 14, 19, 111, 112, 25} {
		assert.Equal(t, "часов", forms(n), n)
	}
}

func TestRemoveNonLetters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abcПривет", RemoveNonLetters("a-b c1! Привет 42"))
	assert.Empty(t, RemoveNonLetters("123 !?"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "short text untouched", input: "hello", maxLen: 10, expected: "hello"},
		{name: "exact length untouched", input: "hello", maxLen: 5, expected: "hello"},
		{name: "long text cut", input: "hello world", maxLen: 5, expected: "hello..."},
		{name: "trailing space ignored", input: "hello   ", maxLen: 5, expected: "hello"},
		{name: "counts runes", input: "привет мир", maxLen: 6, expected: "привет..."},
		{name: "negative limit", input: "abc", maxLen: -1, expected: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestMD5Hex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", MD5Hex("hello"))
	assert.Equal(t, "608333adc72f545078ede3aad71bfe74", MD5Hex("привет"))
}
