package dict

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a read-only handle on a compiled dictionary database. Lookups are
// cached in memory because field filling hits the same headwords repeatedly
// (once per note field).
type Store struct {
	db *sql.DB

	mu         sync.RWMutex
	cache      map[string][]Entry
	maxWordLen int
}

// Open opens a compiled dictionary database.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("dictionary database not found at %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary database: %w", err)
	}

	s := &Store{
		db:    db,
		cache: make(map[string][]Entry),
	}
	if err := s.loadMeta(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) loadMeta() error {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'max_word_len'`).Scan(&value)
	if err != nil {
		return fmt.Errorf("failed to read dictionary metadata: %w", err)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid max_word_len in dictionary metadata: %q", value)
	}
	s.maxWordLen = n
	return nil
}

// MaxWordLen returns the length in runes of the longest headword.
func (s *Store) MaxWordLen() int {
	return s.maxWordLen
}

// Count returns the number of entries in the dictionary.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count dictionary entries: %w", err)
	}
	return n, nil
}

// Lookup returns all entries whose simplified or traditional headword equals
// word. A miss returns an empty slice, not an error.
func (s *Store) Lookup(word string) ([]Entry, error) {
	s.mu.RLock()
	cached, ok := s.cache[word]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	rows, err := s.db.Query(
		`SELECT traditional, simplified, pinyin, jyutping, senses, classifiers
		 FROM entries WHERE simplified = ? OR traditional = ?
		 ORDER BY id`, word, word)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup failed for %q: %w", word, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var jyutping, senses, classifiers sql.NullString
		if err := rows.Scan(&e.Traditional, &e.Simplified, &e.Pinyin, &jyutping, &senses, &classifiers); err != nil {
			return nil, fmt.Errorf("dictionary lookup failed for %q: %w", word, err)
		}
		e.Jyutping = jyutping.String
		if senses.String != "" {
			e.Senses = strings.Split(senses.String, "/")
		}
		if classifiers.String != "" {
			e.Classifiers = strings.Split(classifiers.String, ",")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dictionary lookup failed for %q: %w", word, err)
	}

	s.mu.Lock()
	s.cache[word] = entries
	s.mu.Unlock()
	return entries, nil
}

// First returns the first entry for word, or ok=false on a miss.
func (s *Store) First(word string) (Entry, bool, error) {
	entries, err := s.Lookup(word)
	if err != nil {
		return Entry{}, false, err
	}
	if len(entries) == 0 {
		return Entry{}, false, nil
	}
	return entries[0], true, nil
}

// HasWord reports whether word is a headword in either script.
func (s *Store) HasWord(word string) (bool, error) {
	entries, err := s.Lookup(word)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// LongestPrefix returns the longest headword that prefixes text, in runes.
// Returns ok=false when not even the first rune is a headword.
func (s *Store) LongestPrefix(text string) (string, bool, error) {
	runes := []rune(text)
	max := s.maxWordLen
	if len(runes) < max {
		max = len(runes)
	}
	for n := max; n >= 1; n-- {
		candidate := string(runes[:n])
		ok, err := s.HasWord(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// Compile writes entries into a fresh dictionary database at path,
// replacing any existing file.
func Compile(entries []Entry, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace dictionary database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create dictionary database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := insertEntries(db, entries); err != nil {
		return fmt.Errorf("failed to insert entries: %w", err)
	}
	return nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE entries (
			id integer PRIMARY KEY,
			traditional text NOT NULL,
			simplified text NOT NULL,
			pinyin text NOT NULL,
			jyutping text,
			senses text,
			classifiers text
		)`,
		`CREATE INDEX idx_entries_simplified ON entries(simplified)`,
		`CREATE INDEX idx_entries_traditional ON entries(traditional)`,
		`CREATE TABLE meta (
			key text PRIMARY KEY,
			value text NOT NULL
		)`,
	}
	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func insertEntries(db *sql.DB, entries []Entry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO entries (traditional, simplified, pinyin, jyutping, senses, classifiers)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	maxWordLen := 1
	for _, e := range entries {
		_, err := stmt.Exec(
			e.Traditional,
			e.Simplified,
			e.Pinyin,
			e.Jyutping,
			strings.Join(e.Senses, "/"),
			strings.Join(e.Classifiers, ","),
		)
		if err != nil {
			return err
		}
		if n := len([]rune(e.Simplified)); n > maxWordLen {
			maxWordLen = n
		}
		if n := len([]rune(e.Traditional)); n > maxWordLen {
			maxWordLen = n
		}
	}

	_, err = tx.Exec(`INSERT INTO meta (key, value) VALUES ('max_word_len', ?)`,
		strconv.Itoa(maxWordLen))
	if err != nil {
		return err
	}

	return tx.Commit()
}
