package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var IBLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `//[^\r\n]*`, nil},

		// Keywords before identifiers; they match in any case
		{"Keyword", `(?i)\b(func|true|false|if|else|return)\b`, nil},
		{"Ident", `[a-zA-Z][a-zA-Z0-9]*`, nil},

		// Literals
		{"Float", `[0-9]+\.[0-9]+`, nil},
		{"Integer", `[0-9]+`, nil},
		{"String", `"[^"\r\n]*"`, nil},

		// Operators, two characters first
		{"Operator", `(<=|>=|==|!=|&&|\|\||\+=|-=|\*=|/=|%=|<<|>>|[-+*/&|%!=<>])`, nil},

		// Punctuation (must come after operators)
		{"Punctuation", `[{}()\[\],]`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
