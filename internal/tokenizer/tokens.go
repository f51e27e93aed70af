// Package tokenizer provides delimited-text tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited text.
//
// The tokenizer emits character-class tokens only. Which characters are
// structural is decided by the dialect; the parser decides what a token
// means in its current state (a delimiter inside a quoted span is content).
const (
	// Structural tokens
	TokenDelimiter = "Delimiter" // field separator
	TokenQuote     = "Quote"     // quote character
	TokenEscape    = "Escape"    // escape character (only when configured)
	TokenNewline   = "Newline"   // \r\n, \n or \r

	// Field content token
	TokenField = "Field" // run of non-structural characters
)
