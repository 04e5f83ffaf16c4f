package hub

import (
	"fmt"
	"io"
	"os"

	"charm/source/dtypes"
	"charm/source/hub/history"
	"charm/source/parser"
	"charm/source/settings"
	"charm/source/text"
	"charm/source/vm"
)

// The hub owns one parser and one runner and drives them for the REPL: it
// loads the prelude, feeds lines through the pipeline, and renders results
// and errors without ever killing the session.
type Hub struct {
	parser  *parser.Parser
	runner  *vm.Runner
	in      io.Reader
	out     io.Writer
	History *history.Store
}

func New(in io.Reader, out io.Writer) *Hub {
	return &Hub{
		parser: parser.New("REPL"),
		runner: vm.NewRunner(out),
		in:     in,
		out:    out,
	}
}

// Open loads the prelude, if there is one, and opens the history store. Both
// are optional comforts: failure to find either leaves a working session.
func (h *Hub) Open() {
	h.loadPrelude()
	store, e := history.Open(settings.HistoryFilename)
	if e != nil {
		h.WriteString("can't open history store: " + e.Error() + "\n")
		return
	}
	h.History = store
}

func (h *Hub) Close() {
	if h.History != nil {
		h.History.Close()
	}
}

func (h *Hub) loadPrelude() {
	source, e := os.ReadFile(settings.PreludeFilename)
	if e != nil {
		h.WriteString(settings.PreludeFilename + " nonexistent or unopenable.\n")
		return
	}
	h.WriteString("Loading " + settings.PreludeFilename + "...\n")
	if !h.runLine(string(source)) {
		return
	}
	h.WriteString(settings.PreludeFilename + " loaded.\n")
}

// Do handles one REPL line, reporting whether the session should end.
func (h *Hub) Do(line string) (quit bool) {
	if line == "quit" {
		return true
	}
	if h.runLine(line) {
		h.WriteString(h.runner.DescribeStack())
	}
	return false
}

// runLine sends a text through the pipeline, reporting whether it got all the
// way through. Errors are printed, not returned: the REPL goes on.
func (h *Hub) runLine(line string) bool {
	functions, analyzer, e := h.parser.Lex(line)
	if e != nil {
		h.WriteError(e.Error())
		return false
	}
	if e := h.runner.Run(functions, analyzer); e != nil {
		h.WriteError(e.Error())
		for _, name := range h.runner.CallTrace() {
			h.WriteString(text.BULLET + "in " + text.Emph(name) + "\n")
		}
		return false
	}
	return true
}

// KnownNames is everything tab completion can offer: builtins, definitions,
// and names that so far have only a type signature.
func (h *Hub) KnownNames() []string {
	names := dtypes.Set[string]{}
	names.AddSet(h.runner.KnownNames())
	names.AddSet(h.parser.Analyzer().KnownFunctions())
	return dtypes.SortedStrings(names)
}

func (h *Hub) WriteString(s string) {
	fmt.Fprint(h.out, s)
}

func (h *Hub) WriteError(s string) {
	fmt.Fprint(h.out, text.ERROR+s+".\n")
}
