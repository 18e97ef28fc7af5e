package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"iblang/internal/errors"
	"iblang/token"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(IBLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.CaseInsensitive("Keyword"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseString(path, string(source))
}

func ParseString(name, source string) (*Program, error) {
	return parser.ParseString(name, source)
}

// Check parses source with the strict grammar and turns the first syntax
// error, if any, into a diagnostic.
func Check(name, source string) []errors.Diagnostic {
	_, err := ParseString(name, source)
	if err == nil {
		return nil
	}
	return []errors.Diagnostic{toDiagnostic(name, source, err)}
}

func toDiagnostic(name, source string, err error) errors.Diagnostic {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.NewError(errors.ErrorStrictGrammar, err.Error(), token.NewSpan(name, 0, 0)).Build()
	}

	pos := pe.Position()
	start := min(max(pos.Offset, 0), len(source))
	end := min(start+1, len(source))

	return errors.NewError(errors.ErrorStrictGrammar,
		"strict grammar: "+pe.Message(),
		token.NewSpan(name, start, end)).
		WithNote("the strict grammar requires commas between parameters and arguments and '==' in conditions").
		Build()
}
