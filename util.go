package genotypes

// WhichSQLiteDriver reports the sqlx driver name the marker index was built
// with, which depends on whether cgo was available.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
