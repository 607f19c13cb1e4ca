package genotypes

import (
	"errors"
	"testing"
)

func TestDenseMissing(t *testing.T) {
	g := GenotypedChromosome[uint8]{1, 0, 2, 0, 1}
	expected := []bool{false, true, false, true, false}

	mask := g.Missing()
	for i := range expected {
		if mask[i] != expected[i] {
			t.Errorf("marker %d: got %v, expected %v", i, mask[i], expected[i])
		}
	}

	s := GenotypedChromosome[string]{"A", "", "T"}
	maskS := s.Missing()
	if !maskS[1] || maskS[0] || maskS[2] {
		t.Errorf("string missing mask: got %v, expected [false true false]", maskS)
	}
}

func TestDenseEqual(t *testing.T) {
	a := GenotypedChromosome[uint8]{1, 2, 1, 2}
	b := GenotypedChromosome[uint8]{1, 1, 1, 2}

	mask, err := a.Equal(b)
	if err != nil {
		t.Fatal(err)
	}

	expected := []bool{true, false, true, true}
	for i := range expected {
		if mask[i] != expected[i] {
			t.Errorf("marker %d: got %v, expected %v", i, mask[i], expected[i])
		}
	}

	notMask, err := a.NotEqual(b)
	if err != nil {
		t.Fatal(err)
	}
	for i := range mask {
		if notMask[i] == mask[i] {
			t.Errorf("marker %d: NotEqual should negate Equal", i)
		}
	}
}

func TestDenseEqualSizeMismatch(t *testing.T) {
	a := GenotypedChromosome[uint8]{1, 2}
	b := GenotypedChromosome[uint8]{1, 2, 1}

	if _, err := a.Equal(b); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestDenseOrderingNotMeaningful(t *testing.T) {
	a := GenotypedChromosome[uint8]{1, 2}
	b := GenotypedChromosome[uint8]{2, 1}

	for name, op := range map[string]func(GenotypedChromosome[uint8]) ([]bool, error){
		"Less":      a.Less,
		"Greater":   a.Greater,
		"LessEq":    a.LessEq,
		"GreaterEq": a.GreaterEq,
	} {
		if _, err := op(b); !errors.Is(err, ErrNotMeaningful) {
			t.Errorf("%s: expected ErrNotMeaningful, got %v", name, err)
		}
	}
}
