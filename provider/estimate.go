package provider

import "unicode/utf8"

// CharsPerToken is the character-to-token ratio used by EstimateTokens.
// About four characters make one token in English text.
const CharsPerToken = 4.0

// EstimateTokens approximates the token count of text from its rune count.
func EstimateTokens(text string) int {
	return int(float64(utf8.RuneCountInString(text))/CharsPerToken + 0.5)
}

// EstimateUsage approximates usage for backends that do not report it.
func EstimateUsage(prompt, completion string) TokenUsage {
	in, out := EstimateTokens(prompt), EstimateTokens(completion)
	return TokenUsage{InputTokens: in, OutputTokens: out, TotalTokens: in + out}
}
