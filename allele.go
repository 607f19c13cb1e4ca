package genotypes

// AlleleCode is the set of types usable as per-marker allele codes. Integer
// codes use 0 as the missing sentinel (1 = major allele, 2 = minor allele);
// string codes use the empty string. In both cases the missing sentinel is the
// zero value, which is also the reference code of the sparse encoding.
type AlleleCode interface {
	~uint8 | ~string
}

// Genotype is one individual's unordered pair of allele codes at a single
// marker, one code per strand.
type Genotype[T AlleleCode] [2]T

// Missing reports whether the genotype is entirely ungenotyped, i.e. both
// strands hold the missing sentinel. A genotype with one observed allele is
// not considered missing.
func (g Genotype[T]) Missing() bool {
	var missing T
	return g[0] == missing && g[1] == missing
}

// AlleleSource is the read contract shared by the dense and sparse chromosome
// encodings. Code consuming genotypes (notably ChromwideIBS) is written
// against this interface so that either encoding can be supplied.
type AlleleSource[T AlleleCode] interface {
	// NMarkers returns the number of markers covered by the chromosome.
	NMarkers() int

	// Missing returns a mask with true at every ungenotyped marker.
	Missing() []bool

	// Dense materializes the chromosome as a dense allele sequence.
	Dense() GenotypedChromosome[T]
}
