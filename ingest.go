package genotypes

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// ChromosomePair is one individual's diploid genotype for one chromosome: the
// two strands' allele sequences, densely encoded.
type ChromosomePair[T AlleleCode] struct {
	StrandA GenotypedChromosome[T]
	StrandB GenotypedChromosome[T]
}

// SparseChromosomePair is the sparse-encoded equivalent of ChromosomePair.
type SparseChromosomePair[T AlleleCode] struct {
	StrandA *SparseGenotypedChromosome[T]
	StrandB *SparseGenotypedChromosome[T]
}

// GenotypesFromSequentialAlleles turns a flat, strand-interleaved series of
// allele codes into per-chromosome genotypes. The series covers the given
// templates' chromosomes back to back with two codes per marker, so the
// series 1 2 1 2 1 2 over a single three-marker template becomes strand A
// [1,1,1] and strand B [2,2,2]. Occurrences of missingCode are replaced with
// the missing sentinel before splitting; the type match between missingCode
// and the data is enforced by the shared type parameter.
func GenotypesFromSequentialAlleles[T AlleleCode](templates []*ChromosomeTemplate, data []T, missingCode T) ([]ChromosomePair[T], error) {
	strandA, strandB, err := splitStrands(templates, data, missingCode)
	if err != nil {
		return nil, err
	}

	genotypes := make([]ChromosomePair[T], 0, len(templates))

	start := 0
	for _, template := range templates {
		stop := start + template.NMarkers()
		genotypes = append(genotypes, ChromosomePair[T]{
			StrandA: GenotypedChromosome[T](strandA[start:stop:stop]),
			StrandB: GenotypedChromosome[T](strandB[start:stop:stop]),
		})
		start = stop
	}

	return genotypes, nil
}

// SparseGenotypesFromSequentialAlleles is GenotypesFromSequentialAlleles with
// sparse-encoded output.
func SparseGenotypesFromSequentialAlleles[T AlleleCode](templates []*ChromosomeTemplate, data []T, missingCode T) ([]SparseChromosomePair[T], error) {
	strandA, strandB, err := splitStrands(templates, data, missingCode)
	if err != nil {
		return nil, err
	}

	genotypes := make([]SparseChromosomePair[T], 0, len(templates))

	start := 0
	for _, template := range templates {
		stop := start + template.NMarkers()
		genotypes = append(genotypes, SparseChromosomePair[T]{
			StrandA: NewSparseGenotypedChromosome(strandA[start:stop]),
			StrandB: NewSparseGenotypedChromosome(strandB[start:stop]),
		})
		start = stop
	}

	return genotypes, nil
}

func splitStrands[T AlleleCode](templates []*ChromosomeTemplate, data []T, missingCode T) (strandA, strandB []T, err error) {
	var missing T

	nmarkers := 0
	for _, template := range templates {
		nmarkers += template.NMarkers()
	}

	if len(data) != 2*nmarkers {
		return nil, nil, pfx.Err(fmt.Errorf("%w: %d allele codes for %d markers (want %d)", ErrSizeMismatch, len(data), nmarkers, 2*nmarkers))
	}

	strandA = make([]T, 0, nmarkers)
	strandB = make([]T, 0, nmarkers)
	for i, x := range data {
		if x == missingCode {
			x = missing
		}
		if i%2 == 0 {
			strandA = append(strandA, x)
		} else {
			strandB = append(strandB, x)
		}
	}

	return strandA, strandB, nil
}
