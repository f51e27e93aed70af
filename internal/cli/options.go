package cli

import (
	"github.com/shapestone/shape-dsv/internal/argparse"
	"github.com/shapestone/shape-dsv/pkg/textfn"
)

// mergeOptions places configured default options before the given ones,
// dropping every default whose name is also given.
func mergeOptions(defaults, given []string) []string {
	seen := make(map[string]bool, len(given))
	for _, tok := range given {
		if key, _, ok := argparse.Split(tok); ok {
			seen[key] = true
		}
	}

	merged := make([]string, 0, len(defaults)+len(given))
	for _, tok := range defaults {
		if key, _, ok := argparse.Split(tok); ok && seen[key] {
			continue
		}
		merged = append(merged, tok)
	}
	return append(merged, given...)
}

func textValues(args []string) []textfn.Value {
	values := make([]textfn.Value, len(args))
	for i, a := range args {
		values[i] = textfn.Text(a)
	}
	return values
}
