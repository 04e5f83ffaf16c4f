// REPL line history, kept in a little sqlite database so that it survives
// between sessions. The Store satisfies readline's History interface.

package history

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

type Store struct {
	db     *sql.DB
	length int
}

func Open(path string) (*Store, error) {
	db, e := sql.Open("sqlite", path)
	if e != nil {
		return nil, e
	}
	if _, e := db.Exec(`CREATE TABLE IF NOT EXISTS history (id INTEGER PRIMARY KEY AUTOINCREMENT, line TEXT NOT NULL)`); e != nil {
		db.Close()
		return nil, e
	}
	store := &Store{db: db}
	if e := db.QueryRow(`SELECT COUNT(*) FROM history`).Scan(&store.length); e != nil {
		db.Close()
		return nil, e
	}
	return store, nil
}

func (h *Store) Close() error {
	return h.db.Close()
}

// Write appends a line and returns its index, as readline expects.
func (h *Store) Write(s string) (int, error) {
	if _, e := h.db.Exec(`INSERT INTO history (line) VALUES (?)`, s); e != nil {
		return h.length, e
	}
	h.length++
	return h.length - 1, nil
}

func (h *Store) GetLine(i int) (string, error) {
	var line string
	e := h.db.QueryRow(`SELECT line FROM history ORDER BY id LIMIT 1 OFFSET ?`, i).Scan(&line)
	if e != nil {
		return "", e
	}
	return line, nil
}

func (h *Store) Len() int {
	return h.length
}

func (h *Store) Dump() interface{} {
	lines := []string{}
	rows, e := h.db.Query(`SELECT line FROM history ORDER BY id`)
	if e != nil {
		return lines
	}
	defer rows.Close()
	for rows.Next() {
		var line string
		if rows.Scan(&line) == nil {
			lines = append(lines, line)
		}
	}
	return lines
}
