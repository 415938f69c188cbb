package nspell

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func TestConvertToSQLiteWritesExpectedRows(t *testing.T) {
	m := newTrainedModel(t, "the cat sat on the mat")
	path := filepath.Join(t.TempDir(), "model.sqlite")

	if !m.ConvertToSQLite(path) {
		t.Fatal("ConvertToSQLite failed")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening exported db: %v", err)
	}
	defer db.Close()

	var wordCount int
	if err := db.QueryRow("select count(*) from words").Scan(&wordCount); err != nil {
		t.Fatalf("querying words: %v", err)
	}
	if wordCount != 5 {
		t.Errorf("words table has %d rows, want 5", wordCount)
	}

	var theCount int
	theId := m.WordId("the")
	if err := db.QueryRow("select count from counts where id_1 = ? and id_2 is null and id_3 is null", uint32(theId)).Scan(&theCount); err != nil {
		t.Fatalf("querying unigram count: %v", err)
	}
	if theCount != 2 {
		t.Errorf("unigram count for \"the\" = %d, want 2", theCount)
	}
}
