package genotypes

import (
	"fmt"

	"github.com/carbocation/pfx"
)

type indexedAllele[T AlleleCode] struct {
	Index  int
	Allele T
}

// SparseGenotypedChromosome is the deviation-list encoding of a chromosome
// strand. Only markers whose code differs from the reference code (the zero
// value of T) are stored, as ordered (index, allele) pairs, along with an
// ordered list of the indices holding the missing sentinel. Every index
// absent from both lists implicitly holds the reference code.
//
// Because the reference code and the missing sentinel coincide for both
// supported code types, the two lists are disjoint by construction.
type SparseGenotypedChromosome[T AlleleCode] struct {
	size           int
	nonRefAlleles  []indexedAllele[T]
	missingIndices []int
}

// NewSparseGenotypedChromosome builds the sparse encoding from a dense allele
// sequence in a single scan.
func NewSparseGenotypedChromosome[T AlleleCode](data []T) *SparseGenotypedChromosome[T] {
	var refcode T

	s := &SparseGenotypedChromosome[T]{
		size: len(data),
	}

	for i, x := range data {
		if x != refcode {
			s.nonRefAlleles = append(s.nonRefAlleles, indexedAllele[T]{Index: i, Allele: x})
		} else {
			s.missingIndices = append(s.missingIndices, i)
		}
	}

	return s
}

// NMarkers returns the number of markers on the chromosome.
func (s *SparseGenotypedChromosome[T]) NMarkers() int {
	return s.size
}

// Missing returns a mask with true at every recorded missing index. The mask
// is built from the missing-index list alone, so construction work is
// proportional to the missing count, but the returned mask always covers the
// full marker range.
func (s *SparseGenotypedChromosome[T]) Missing() []bool {
	mask := make([]bool, s.size)
	for _, i := range s.missingIndices {
		mask[i] = true
	}

	return mask
}

// Dense satisfies AlleleSource via ToDense.
func (s *SparseGenotypedChromosome[T]) Dense() GenotypedChromosome[T] {
	return s.ToDense()
}

// ToDense reconstructs the full-length allele sequence: a reference-code fill,
// overwritten at every recorded deviation, then at every recorded missing
// index with the missing sentinel. The missing writes are kept explicit even
// though the sentinel equals the reference fill for the supported code types,
// since the round-trip guarantee is on the stored codes, not on the fill.
func (s *SparseGenotypedChromosome[T]) ToDense() GenotypedChromosome[T] {
	var refcode, missing T

	arr := make(GenotypedChromosome[T], s.size)
	for i := range arr {
		arr[i] = refcode
	}

	for _, ia := range s.nonRefAlleles {
		arr[ia.Index] = ia.Allele
	}

	for _, i := range s.missingIndices {
		arr[i] = missing
	}

	return arr
}

// Equal compares two sparse chromosomes and returns a mask with true at every
// marker holding the same code in both. Markers that deviate from the
// reference code in exactly one of the two chromosomes are unequal; markers
// deviating in both are compared by stored allele value; all remaining
// markers hold the reference code in both and are equal.
func (s *SparseGenotypedChromosome[T]) Equal(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	if s.size != other.size {
		return nil, pfx.Err(fmt.Errorf("%w: %d markers vs %d markers", ErrSizeMismatch, s.size, other.size))
	}

	mask := make([]bool, s.size)
	for i := range mask {
		mask[i] = true
	}

	a := make(map[int]T, len(s.nonRefAlleles))
	for _, ia := range s.nonRefAlleles {
		a[ia.Index] = ia.Allele
	}

	for _, ib := range other.nonRefAlleles {
		va, ok := a[ib.Index]
		if !ok {
			// Non-reference in other only
			mask[ib.Index] = false
			continue
		}
		if va != ib.Allele {
			mask[ib.Index] = false
		}
		delete(a, ib.Index)
	}

	// Non-reference in s only
	for i := range a {
		mask[i] = false
	}

	return mask, nil
}

// NotEqual is the elementwise negation of Equal.
func (s *SparseGenotypedChromosome[T]) NotEqual(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	mask, err := s.Equal(other)
	if err != nil {
		return nil, err
	}

	for i := range mask {
		mask[i] = !mask[i]
	}

	return mask, nil
}

// Ordering is as undefined for the sparse encoding as for the dense one.

// Less always fails with ErrNotMeaningful.
func (s *SparseGenotypedChromosome[T]) Less(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// Greater always fails with ErrNotMeaningful.
func (s *SparseGenotypedChromosome[T]) Greater(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// LessEq always fails with ErrNotMeaningful.
func (s *SparseGenotypedChromosome[T]) LessEq(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}

// GreaterEq always fails with ErrNotMeaningful.
func (s *SparseGenotypedChromosome[T]) GreaterEq(other *SparseGenotypedChromosome[T]) ([]bool, error) {
	return nil, pfx.Err(ErrNotMeaningful)
}
