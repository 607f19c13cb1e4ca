package genotypes

import (
	"database/sql"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// MarkerIndex wraps a SQLite marker-metadata index. The index holds one row
// per marker in the "Marker" table and, optionally, provenance in a
// "Metadata" table. It stores marker metadata only; genotypes never touch it.
type MarkerIndex struct {
	DB       *sqlx.DB
	Metadata *MarkerIndexMetadata
}

func (m *MarkerIndex) Close() error {
	return m.DB.Close()
}

// MarkerRow conforms to the data found in the rows of the SQLite table
// "Marker", and can be parsed directly with sqlx. The frequency column is
// nullable; a NULL frequency becomes UnsetFrequency on the template.
type MarkerRow struct {
	Chromosome       string          `db:"chromosome"`
	Label            string          `db:"label"`
	GeneticPosition  float64         `db:"genetic_position"`
	PhysicalPosition int             `db:"physical_position"`
	Frequency        sql.NullFloat64 `db:"minor_allele_frequency"`
}

// MarkerIndexMetadata conforms to the data found in the rows of the SQLite
// table "Metadata", where present.
type MarkerIndexMetadata struct {
	Filename          string `db:"filename"`
	FileSize          uint   `db:"file_size"`
	LastWriteTime     Time   `db:"last_write_time"`
	IndexCreationTime Time   `db:"index_creation_time"`
}

// ChromosomeTemplate reconstructs the named chromosome's template from the
// index, with markers ordered by genetic position.
func (m *MarkerIndex) ChromosomeTemplate(chromosome string) (*ChromosomeTemplate, error) {
	rows := []MarkerRow{}
	if err := m.DB.Select(&rows,
		`SELECT chromosome, label, genetic_position, physical_position, minor_allele_frequency
		 FROM Marker WHERE chromosome = ? ORDER BY genetic_position`, chromosome); err != nil {
		return nil, pfx.Err(err)
	}

	if len(rows) == 0 {
		return nil, pfx.Err(fmt.Errorf("no markers indexed for chromosome %s", chromosome))
	}

	template := NewChromosomeTemplate(chromosome)
	for _, row := range rows {
		frequency := float64(UnsetFrequency)
		if row.Frequency.Valid {
			frequency = row.Frequency.Float64
		}

		if err := template.AddMarker(frequency, row.GeneticPosition, row.Label, row.PhysicalPosition); err != nil {
			return nil, err
		}
	}

	return template, nil
}

// ChromosomeTemplates reconstructs every chromosome present in the index, in
// chromosome-label order.
func (m *MarkerIndex) ChromosomeTemplates() ([]*ChromosomeTemplate, error) {
	chromosomes := []string{}
	if err := m.DB.Select(&chromosomes,
		`SELECT DISTINCT chromosome FROM Marker ORDER BY chromosome`); err != nil {
		return nil, pfx.Err(err)
	}

	templates := make([]*ChromosomeTemplate, 0, len(chromosomes))
	for _, chromosome := range chromosomes {
		template, err := m.ChromosomeTemplate(chromosome)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return templates, nil
}
