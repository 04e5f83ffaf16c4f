package repl

import (
	"strings"

	"charm/source/hub"
	"charm/source/text"

	"github.com/lmorg/readline"
)

func Start(h *hub.Hub) {
	rline := readline.NewInstance()
	rline.SetPrompt(text.PROMPT)
	rline.TabCompleter = makeCompleter(h)
	if h.History != nil {
		rline.History = h.History
	}
	for {
		line, e := rline.Readline()
		if e != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h.Do(line) {
			break
		}
	}
}

// Completion offers every name the session knows, builtin or defined, matching
// the word under the cursor. Readline wants the suggestions cropped by what has
// already been typed.
func makeCompleter(h *hub.Hub) func([]rune, int, readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
	return func(line []rune, pos int, dtx readline.DelayedTabContext) (string, []string, map[string]string, readline.TabDisplayType) {
		prefix := string(line[:pos])
		wordStart := strings.LastIndexByte(prefix, ' ') + 1
		word := prefix[wordStart:]
		suggestions := []string{}
		for _, name := range h.KnownNames() {
			if strings.HasPrefix(name, word) && name != word {
				suggestions = append(suggestions, name[len(word):])
			}
		}
		return prefix, suggestions, nil, readline.TabDisplayGrid
	}
}
