package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures which characters are structural.
type Options struct {
	// Delimiter separates fields. Default: ','
	Delimiter rune
	// Quote opens and closes quoted spans. Zero disables quote tokens.
	Quote rune
	// Escape removes the special meaning of the next character. Zero disables escape tokens.
	Escape rune
}

// DefaultOptions returns comma-delimited, double-quoted options without an escape character.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Quote:     '"',
	}
}

// NewTokenizer creates a tokenizer with default options.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer for the given structural characters.
// Matchers are tried in order:
// 1. Newlines (CRLF before LF and CR to match the longer sequence first)
// 2. Delimiter
// 3. Quote character
// 4. Escape character
// 5. Field content (everything else)
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	matchers := []tokenizer.Matcher{
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\r"),
		tokenizer.StringMatcherFunc(TokenDelimiter, string(opts.Delimiter)),
	}
	if opts.Quote != 0 {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenQuote, string(opts.Quote)))
	}
	if opts.Escape != 0 {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenEscape, string(opts.Escape)))
	}
	matchers = append(matchers, FieldContentMatcher(opts))

	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// NewTokenizerWithStream creates a tokenizer over a pre-configured stream.
// This is used to decode from an io.Reader.
func NewTokenizerWithStream(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// FieldContentMatcher matches runs of characters that are not structural
// under opts: not the delimiter, quote, escape, CR or LF.
//
// Performance: uses ByteStream for fast scanning when every structural
// character is ASCII.
func FieldContentMatcher(opts Options) tokenizer.Matcher {
	ascii := opts.Delimiter < 128 && opts.Quote < 128 && opts.Escape < 128
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if ascii {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fieldContentMatcherByte(byteStream, opts)
			}
		}
		return fieldContentMatcherRune(stream, opts)
	}
}

func fieldContentMatcherByte(stream tokenizer.ByteStream, opts Options) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if isStructural(rune(b), opts) {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

func fieldContentMatcherRune(stream tokenizer.Stream, opts Options) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if isStructural(r, opts) {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}

// isStructural reports whether r ends a field content run.
// Zero quote and escape runes never match: NUL is ordinary content.
func isStructural(r rune, opts Options) bool {
	switch {
	case r == '\n' || r == '\r':
		return true
	case r == opts.Delimiter:
		return true
	case opts.Quote != 0 && r == opts.Quote:
		return true
	case opts.Escape != 0 && r == opts.Escape:
		return true
	}
	return false
}
