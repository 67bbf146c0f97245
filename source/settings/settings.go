// All this does is contain in one place the constants controlling which bits of the inner workings of the
// lexer/parser/resolver are displayed to me for debugging purposes. In a release they must all be set to false.

package settings

const (
	// These do what it sounds like. The output goes to the trace logger at debug level.
	SHOW_LEXER    = false
	SHOW_PARSER   = false
	SHOW_RESOLVER = false

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)
