// This contains in one place the inlining switch, the filenames, and the constants
// controlling which bits of the inner workings of the parser and runner are displayed for
// debugging purposes. In a release the SHOW_* constants must all be set to false except
// SHOW_TESTS which may as well be left as true.

package settings

const (
	// If false, no call site is ever inlined, whatever the analyzer says. Turning it
	// off is useful for comparing the optimized and unoptimized node streams.
	OPTIMIZE_INLINE = true

	// These do what it sounds like.
	SHOW_PARSER  = false
	SHOW_RUNTIME = false

	SHOW_TESTS = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)

// The prelude is looked for in the working directory at startup.
const PreludeFilename = "Prelude.charm"

// The file the REPL keeps its line history in.
const HistoryFilename = ".charm_history.db"
