package genotypes

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// MissingIBS is the conventional numeric stand-in for an undefined IBS state
// in chromosome-wide output, where the result array must stay homogeneous.
const MissingIBS = 64

// IBS returns the number of alleles identical by state between two genotypes
// at one marker, in 0..2. Each genotype is treated as a two-element multiset,
// so strand order never matters and IBS(a, b) == IBS(b, a).
//
// If either genotype is entirely missing the comparison is undefined and IBS
// returns ok == false.
func IBS[T AlleleCode](g1, g2 Genotype[T]) (shared int, ok bool) {
	if g1.Missing() || g2.Missing() {
		return 0, false
	}

	// Multiset intersection of two 2-element multisets: greedily pair each
	// allele of g1 with an unconsumed equal allele of g2.
	var used [2]bool
	for _, x := range g1 {
		for j, y := range g2 {
			if !used[j] && x == y {
				used[j] = true
				shared++
				break
			}
		}
	}

	return shared, true
}

// ChromwideIBS computes per-marker IBS between two individuals across a whole
// chromosome. a1 and b1 are the first individual's two strands, a2 and b2 the
// second's; any of the four may be dense or sparse, and mixing encodings
// changes nothing about the output. Markers where either individual is
// entirely ungenotyped are reported as missingValue (conventionally
// MissingIBS) so that the result stays a homogeneous numeric array. Output
// order matches marker order.
func ChromwideIBS[T AlleleCode](a1, b1, a2, b2 AlleleSource[T], missingValue uint8) ([]uint8, error) {
	n := a1.NMarkers()
	for _, strand := range []AlleleSource[T]{b1, a2, b2} {
		if strand.NMarkers() != n {
			return nil, pfx.Err(fmt.Errorf("%w: %d markers vs %d markers", ErrSizeMismatch, n, strand.NMarkers()))
		}
	}

	// Materializing dense views first keeps the per-marker loop identical for
	// both encodings, so dense and sparse inputs cannot drift apart.
	da1, db1 := a1.Dense(), b1.Dense()
	da2, db2 := a2.Dense(), b2.Dense()

	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		shared, ok := IBS(Genotype[T]{da1[i], db1[i]}, Genotype[T]{da2[i], db2[i]})
		if !ok {
			out[i] = missingValue
			continue
		}
		out[i] = uint8(shared)
	}

	return out, nil
}
