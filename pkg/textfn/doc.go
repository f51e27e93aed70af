// Package textfn implements the text operators strsplit, strsplitv, strjoin
// and dateformat.
//
// Operators take Values and follow a three-way result contract: a value, a
// null Value when the input carries no answer (a null argument, a date that
// does not match its pattern), or an error when the call itself is wrong.
//
// Multiset operators (StrSplit, StrSplitV) return *Rows, a pull iterator
// that decodes one record per row requested. Scalar operators (StrJoin,
// DateFormat) return one Value.
//
// Options are name:value tokens:
//
//	dialect           csv or tsv
//	delimiter         one character, backslash escapes allowed
//	quotechar         one character, backslash escapes allowed
//	escapechar        one character, backslash escapes allowed
//	doublequote       t or f
//	quoting           QUOTE_ALL, QUOTE_NONE, QUOTE_MINIMAL or QUOTE_NONNUMERIC
//	skipinitialspace  t or f
//
// Errors are *UsageError for missing or leftover arguments, *dsv.ConfigError
// for bad options, *dsv.DecodeError and *dsv.EncodeError for malformed data,
// and *OperatorError for other operator failures.
package textfn
