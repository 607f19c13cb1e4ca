//go:build cgo

package genotypes

// With cgo available we use the mattn cgo sqlite3 driver, which is faster
// than the modernc pure-Go driver.

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"

// OpenMarkerIndex opens a SQLite marker index at path and probes its
// Metadata table.
func OpenMarkerIndex(path string) (*MarkerIndex, error) {
	idx := &MarkerIndex{
		Metadata: &MarkerIndexMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . Plain paths are promoted to
	// URI form so that query parameters keep working.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	idx.DB = db

	// Not all index files carry metadata; ignore any error
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return idx, nil
}
