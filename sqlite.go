package nspell

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ConvertToSQLite exports m's vocabulary, tokenizer alphabet, and raw
// gram counts to a SQLite file at path, as a diagnostic / interop side
// channel (spec.md §4.G). It drops and recreates all three tables first.
// The core model need not consume this file; nothing in Train, Merge,
// or Score reads it back.
func (m *Model) ConvertToSQLite(path string) bool {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return false
	}
	defer db.Close()

	if err := createSQLiteSchema(db); err != nil {
		return false
	}
	if err := exportAlphabet(db, m); err != nil {
		return false
	}
	if err := exportWordsAndCounts(db, m); err != nil {
		return false
	}
	return true
}

func createSQLiteSchema(db *sql.DB) error {
	stmts := []string{
		"drop table if exists words",
		"drop table if exists counts",
		"drop table if exists alphabet",
		"create table words(id integer primary key, word text)",
		"create table counts(id_1 integer not null, id_2 integer, id_3 integer, count integer)",
		"create table alphabet(id integer primary key, letter text)",
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("nspell: %s: %w", s, err)
		}
	}
	return nil
}

func exportAlphabet(db *sql.DB, m *Model) error {
	stmt, err := db.Prepare("insert into alphabet values(?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	n := 0
	for r := range m.Alphabet() {
		if _, err := stmt.Exec(n, string(r)); err != nil {
			return err
		}
		n++
	}
	return nil
}

// exportWordsAndCounts enumerates the full id range the way the
// reference implementation's Convert does: a bounded triple-nested walk
// over every (id_1, id_2, id_3) combination, skipping zero counts at
// the bigram and trigram level. This is the only way to enumerate gram
// keys from a frozen, key-less perfect-hash Store (spec.md §4.B never
// guarantees key enumeration, only lookup).
func exportWordsAndCounts(db *sql.DB, m *Model) error {
	wordStmt, err := db.Prepare("insert into words values(?, ?)")
	if err != nil {
		return err
	}
	defer wordStmt.Close()

	countStmt, err := db.Prepare("insert into counts values(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer countStmt.Close()

	bound := m.vocab.Bound()
	for i := WordId(0); i < bound; i++ {
		c1 := m.count1(i)
		if _, err := countStmt.Exec(uint32(i), nil, nil, uint32(c1)); err != nil {
			return err
		}
		for j := WordId(0); j < bound; j++ {
			c2 := m.count2(i, j)
			if c2 == 0 {
				continue
			}
			if _, err := countStmt.Exec(uint32(i), uint32(j), nil, uint32(c2)); err != nil {
				return err
			}
			for k := WordId(0); k < bound; k++ {
				c3 := m.count3(i, j, k)
				if c3 == 0 {
					continue
				}
				if _, err := countStmt.Exec(uint32(i), uint32(j), uint32(k), uint32(c3)); err != nil {
					return err
				}
			}
		}
		if _, err := wordStmt.Exec(uint32(i), m.vocab.WordOf(i)); err != nil {
			return err
		}
	}
	return nil
}
