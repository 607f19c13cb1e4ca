package genotypes

import "errors"

// ErrNotMeaningful is returned by ordering operations on genotype containers.
// Allele codes are categorical labels, not magnitudes, so ordering two
// chromosomes has no defined result.
var ErrNotMeaningful = errors.New("value comparisons not meaningful for genotypes")

// ErrSizeMismatch is returned when two chromosomes with different marker
// counts are compared or combined.
var ErrSizeMismatch = errors.New("trying to compare different-sized chromosomes")

// ErrInvalidFrequency is returned when a marker frequency is outside [0,1], or
// when chromosome generation is attempted while any frequency is still unset.
var ErrInvalidFrequency = errors.New("invalid marker frequency")
