// Package parser implements the delimited-text decoder state machine.
//
// The parser consumes character-class tokens from internal/tokenizer and
// assembles records one at a time. Each call to Next advances the token
// stream only as far as the end of the next record.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Decoding errors.
var (
	ErrUnterminatedQuote = errors.New("unexpected end of data in quoted field")
	ErrBareQuote         = errors.New("quote character in field with quoting disabled")
	ErrUnexpectedEOF     = errors.New("unexpected end of data after escape character")
	ErrNotNumeric        = errors.New("could not convert unquoted field to a number")
)

// Error carries the position of a decoding failure.
type Error struct {
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures the parser.
type Options struct {
	// Delimiter is the field separator. Default: ','
	Delimiter rune
	// Quote opens and closes quoted spans.
	Quote rune
	// Escape, if not 0, makes the following character literal.
	Escape rune
	// DoubleQuote treats a doubled quote inside a quoted span as a literal quote.
	DoubleQuote bool
	// SkipInitialSpace drops spaces that follow a delimiter outside quotes.
	SkipInitialSpace bool
	// QuoteNone disables quoted spans; any unescaped quote character is an error.
	QuoteNone bool
	// NonNumeric requires non-empty unquoted fields to be numbers.
	NonNumeric bool
}

// DefaultOptions returns comma-separated options with doubled quotes.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ',',
		Quote:       '"',
		DoubleQuote: true,
	}
}

type state int

const (
	stateStartField state = iota
	stateInField
	stateInQuotedField
	stateQuoteInQuotedField
	stateAfterEscape
)

// Parser decodes records from a token stream.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options
	done      bool

	state  state
	resume state
	field  strings.Builder
	quoted bool
	record []string

	line   int
	column int
}

// NewParser creates a parser over an in-memory input.
func NewParser(input string, opts Options) *Parser {
	return newParserWithStream(shapetokenizer.NewStream(input), opts)
}

// NewParserFromReader creates a parser that pulls input from r as records are requested.
func NewParserFromReader(r io.Reader, opts Options) *Parser {
	return newParserWithStream(shapetokenizer.NewStreamFromReader(r), opts)
}

func newParserWithStream(stream shapetokenizer.Stream, opts Options) *Parser {
	tokOpts := tokenizer.Options{
		Delimiter: opts.Delimiter,
		Quote:     opts.Quote,
		Escape:    opts.Escape,
	}
	tok := tokenizer.NewTokenizerWithStream(stream, tokOpts)

	p := &Parser{
		tokenizer: &tok,
		opts:      opts,
		line:      1,
		column:    1,
	}
	p.advance()
	return p
}

// Next returns the next record. It returns io.EOF once the input is exhausted.
// After an error the parser is finished and every later call returns io.EOF.
func (p *Parser) Next() ([]string, error) {
	if p.done {
		return nil, io.EOF
	}

	p.record = nil
	p.field.Reset()
	p.quoted = false
	p.state = stateStartField

	for p.hasToken {
		tok := p.peek()
		kind, value := tok.Kind(), tok.ValueString()
		p.line, p.column = tok.Row(), tok.Column()

		switch p.state {
		case stateStartField:
			switch kind {
			case tokenizer.TokenNewline:
				p.advance()
				if p.record == nil {
					// Blank line
					continue
				}
				return p.endRecord()
			case tokenizer.TokenQuote:
				if p.opts.QuoteNone {
					return p.fail(ErrBareQuote)
				}
				p.quoted = true
				p.state = stateInQuotedField
			case tokenizer.TokenEscape:
				p.resume = stateInField
				p.state = stateAfterEscape
			case tokenizer.TokenDelimiter:
				if p.opts.SkipInitialSpace && p.opts.Delimiter == ' ' {
					break
				}
				if err := p.saveField(); err != nil {
					return p.fail(err)
				}
			default:
				if p.opts.SkipInitialSpace {
					value = strings.TrimLeft(value, " ")
					if value == "" {
						break
					}
				}
				p.field.WriteString(value)
				p.state = stateInField
			}

		case stateInField:
			switch kind {
			case tokenizer.TokenNewline:
				p.advance()
				return p.endRecord()
			case tokenizer.TokenEscape:
				p.resume = stateInField
				p.state = stateAfterEscape
			case tokenizer.TokenDelimiter:
				if err := p.saveField(); err != nil {
					return p.fail(err)
				}
				p.state = stateStartField
			case tokenizer.TokenQuote:
				if p.opts.QuoteNone {
					return p.fail(ErrBareQuote)
				}
				p.field.WriteString(value)
			default:
				p.field.WriteString(value)
			}

		case stateInQuotedField:
			switch kind {
			case tokenizer.TokenEscape:
				p.resume = stateInQuotedField
				p.state = stateAfterEscape
			case tokenizer.TokenQuote:
				if p.opts.DoubleQuote {
					p.state = stateQuoteInQuotedField
				} else {
					p.state = stateInField
				}
			default:
				// Delimiters and newlines are content inside quotes.
				p.field.WriteString(value)
			}

		case stateQuoteInQuotedField:
			switch kind {
			case tokenizer.TokenQuote:
				p.field.WriteString(value)
				p.state = stateInQuotedField
			case tokenizer.TokenDelimiter:
				if err := p.saveField(); err != nil {
					return p.fail(err)
				}
				p.state = stateStartField
			case tokenizer.TokenNewline:
				p.advance()
				return p.endRecord()
			default:
				p.field.WriteString(value)
				p.state = stateInField
			}

		case stateAfterEscape:
			if kind == tokenizer.TokenNewline && value == "\r\n" && p.resume != stateInQuotedField {
				// Only the CR is escaped; the LF still ends the record.
				p.field.WriteByte('\r')
				p.advance()
				return p.endRecord()
			}
			p.field.WriteString(value)
			p.state = p.resume
		}

		p.advance()
	}

	return p.finish()
}

// finish terminates the pending record at end of input.
func (p *Parser) finish() ([]string, error) {
	switch p.state {
	case stateInQuotedField:
		return p.fail(ErrUnterminatedQuote)
	case stateAfterEscape:
		return p.fail(ErrUnexpectedEOF)
	case stateStartField:
		if p.record == nil {
			p.done = true
			return nil, io.EOF
		}
	}
	rec, err := p.endRecord()
	p.done = true
	return rec, err
}

func (p *Parser) endRecord() ([]string, error) {
	if err := p.saveField(); err != nil {
		return p.fail(err)
	}
	return p.record, nil
}

func (p *Parser) saveField() error {
	value := p.field.String()
	if p.opts.NonNumeric && !p.quoted && value != "" {
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return ErrNotNumeric
		}
	}
	if p.record == nil {
		p.record = make([]string, 0, 8)
	}
	p.record = append(p.record, value)
	p.field.Reset()
	p.quoted = false
	return nil
}

func (p *Parser) fail(err error) ([]string, error) {
	p.done = true
	return nil, &Error{Line: p.line, Column: p.column, Err: err}
}

// Helper methods

// peek returns current token without advancing.
func (p *Parser) peek() *shapetokenizer.Token {
	return p.current
}

// advance moves to next token.
func (p *Parser) advance() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
	} else {
		p.hasToken = false
		p.current = nil
	}
}
