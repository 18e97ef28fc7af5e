package errors

// Error codes for the IB front end.
// These codes are used in diagnostic output, the language server and golden files
// so the same problem is identified the same way across the toolchain.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: A token appeared where the grammar does not allow it
	ErrorUnexpectedToken = "E0100"

	// E0101: A required token is absent
	ErrorMissingToken = "E0101"

	// E0102: A numeric literal could not be converted
	ErrorMalformedLiteral = "E0102"

	// E0103: A string literal reached a line break or end of input before its closing quote
	ErrorUnterminatedString = "E0103"

	// E0104: Input the lexer could not classify
	ErrorGarbageInput = "E0104"

	// E0900: Source does not conform to the strict reference grammar
	ErrorStrictGrammar = "E0900"
)
