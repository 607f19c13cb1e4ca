package genotypes

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// GenotypedChromosome holds one strand's allele codes for every marker of a
// chromosome, one code per marker in marker order. It is the dense encoding;
// see SparseGenotypedChromosome for the deviation-list encoding of the same
// data.
type GenotypedChromosome[T AlleleCode] []T

// NMarkers returns the number of markers on the chromosome.
func (g GenotypedChromosome[T]) NMarkers() int {
	return len(g)
}

// Missing returns a mask with true at every marker whose stored code is the
// missing sentinel (0 for integer codes, the empty string for string codes).
func (g GenotypedChromosome[T]) Missing() []bool {
	var missing T

	mask := make([]bool, len(g))
	for i, x := range g {
		mask[i] = x == missing
	}

	return mask
}

// Dense satisfies AlleleSource. The receiver is returned as-is.
func (g GenotypedChromosome[T]) Dense() GenotypedChromosome[T] {
	return g
}

// Equal compares two chromosomes elementwise and returns a mask with true at
// every marker holding the same code in both.
func (g GenotypedChromosome[T]) Equal(other GenotypedChromosome[T]) ([]bool, error) {
	if len(g) != len(other) {
		return nil, pfx.Err(fmt.Errorf("%w: %d markers vs %d markers", ErrSizeMismatch, len(g), len(other)))
	}

	mask := make([]bool, len(g))
	for i, x := range g {
		mask[i] = x == other[i]
	}

	return mask, nil
}

// NotEqual is the elementwise negation of Equal.
func (g GenotypedChromosome[T]) NotEqual(other GenotypedChromosome[T]) ([]bool, error) {
	mask, err := g.Equal(other)
	if err != nil {
		return nil, err
	}

	for i := range mask {
		mask[i] = !mask[i]
	}

	return mask, nil
}

// Ordering is undefined for genotype data: allele codes are categorical, so
// the relational operations below exist only to fail loudly if downstream
// code tries to rank chromosomes numerically.

// Less always fails with ErrNotMeaningful.
func (g GenotypedChromosome[T]) Less(other GenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// Greater always fails with ErrNotMeaningful.
func (g GenotypedChromosome[T]) Greater(other GenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// LessEq always fails with ErrNotMeaningful.
func (g GenotypedChromosome[T]) LessEq(other GenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// GreaterEq always fails with ErrNotMeaningful.
func (g GenotypedChromosome[T]) GreaterEq(other GenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}
