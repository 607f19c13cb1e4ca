//go:build !cgo

package genotypes

// Without cgo we fall back to the modernc.org/sqlite pure-Go driver. It is
// slower than the cgo sqlite3 driver but keeps cross-compilation trivial.

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

const whichSQLiteDriver = "sqlite"

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

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}
	idx.DB = db

	// The index is read-only for us, so durability pragmas only cost time.
	_, err = db.DB.Exec(`
	PRAGMA journal_mode = OFF;
	PRAGMA synchronous = OFF;
	PRAGMA auto_vacuum = NONE;
	`)
	if err != nil {
		return nil, fmt.Errorf("unable to set pragmas: %w", err)
	}

	// Not all index files carry metadata; ignore any error
	_ = idx.DB.Get(idx.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return idx, nil
}
