// Package cssterm turns the CSS style strings produced by the renderer into
// terminal styles.
//
// Parsing is shallow: a style string is a `;`-separated list of
// `property: value` declarations, exactly what a `%c` console directive
// receives. Only the handful of properties that have a terminal equivalent
// are mapped; everything else is accepted and ignored.
package cssterm

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single `property: value` pair.
type Declaration struct {
	Property string
	Value    string
}

// String returns the declaration in its canonical `property: value` form.
func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Parse tokenises a style string into declarations, in source order.
// Property names are lowercased, values keep their original text with
// whitespace runs collapsed. Empty and malformed entries are dropped.
func Parse(style string) []Declaration {
	if strings.TrimSpace(style) == "" {
		return nil
	}

	parser := css.NewParser(parse.NewInputString(style), true)

	var decls []Declaration
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			// a malformed declaration is skipped, only the end of input stops the scan
			if parser.Err() == io.EOF {
				return decls
			}
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinTokens(parser.Values())
			if value == "" {
				continue
			}
			decls = append(decls, Declaration{
				Property: strings.ToLower(strings.TrimSpace(string(data))),
				Value:    value,
			})
		}
	}
}

// Normalize returns the declarations of style in canonical form.
func Normalize(style string) []string {
	decls := Parse(style)
	if len(decls) == 0 {
		return nil
	}
	out := make([]string, 0, len(decls))
	for _, d := range decls {
		out = append(out, d.String())
	}
	return out
}

func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
