package content

import "unicode/utf8"

// EstimateTokens provides a fast token count estimate without a tokenizer
// dependency: utf8 rune count / 3, a middle ground between English
// (~4 chars/token) and denser scripts. Used only for the before/after
// numbers shown in the review pane.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	est := n / 3
	if est < 1 {
		return 1
	}
	return est
}
