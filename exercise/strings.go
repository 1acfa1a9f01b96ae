package exercise

import (
	"strings"

	"golang.org/x/text/cases"
)

// LongestWord returns the longest whitespace-separated word in the sentence.
// When several words share the maximum length, the first one wins.
// An empty or all-whitespace sentence returns the empty string.
//
// Length is measured in runes, not bytes, so multi-byte words compare fairly
// against ASCII ones.
func LongestWord(sentence string) string {
	longest := ""
	longestLen := 0

	for _, word := range strings.Fields(sentence) {
		if n := len([]rune(word)); n > longestLen {
			longest = word
			longestLen = n
		}
	}

	return longest
}

// Reverse returns the string with its runes in reverse order.
// Reversing twice yields the original string for any valid UTF-8 input.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IsPalindrome reports whether the string reads the same forwards and
// backwards. The comparison is exact: case and whitespace count.
// The empty string is a palindrome.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// IsPalindromeFold reports whether the string is a palindrome under Unicode
// case folding, so "Level" and "Racecar" qualify. Folding handles cases that
// strings.ToLower gets wrong, such as the Kelvin sign folding to 'k'.
func IsPalindromeFold(s string) bool {
	return IsPalindrome(cases.Fold().String(s))
}
