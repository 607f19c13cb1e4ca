package genotypes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/carbocation/pfx"
)

// UnsetFrequency is the sentinel stored for markers whose minor-allele
// frequency has not been provided yet. Chromosome generation refuses to run
// while any marker still holds it.
const UnsetFrequency = -1

// Marker is one row of a ChromosomeTemplate: a diallelic marker's map
// position, optional physical position and label, and minor-allele frequency.
// The physical position is decorative and never enters any computation.
type Marker struct {
	Label            string
	GeneticPosition  float64 // centimorgans
	PhysicalPosition int     // base pairs
	Frequency        float64 // minor-allele frequency, or UnsetFrequency
}

// ChromosomeTemplate describes one chromosome's ordered markers: positions,
// labels, and minor-allele frequencies. It holds no genotypes itself; it
// sizes empty chromosomes and drives stochastic generation of new ones under
// linkage equilibrium, where every marker is drawn independently. That is not
// what a real chromosome looks like (there is no LD between markers), but it
// is the right generator for seed chromosomes in pool initialization and for
// purely family-based linkage studies.
type ChromosomeTemplate struct {
	// Label is the chromosome name, if any.
	Label string

	geneticMap  []float64
	physicalMap []int
	labels      []string
	frequencies []float64
}

// NewChromosomeTemplate returns an empty template for the named chromosome.
func NewChromosomeTemplate(label string) *ChromosomeTemplate {
	return &ChromosomeTemplate{Label: label}
}

func (t *ChromosomeTemplate) String() string {
	label := t.Label
	if label == "" {
		label = "object"
	}

	span := 0.0
	if t.NMarkers() > 0 {
		span = t.Span()
	}

	return fmt.Sprintf("Chromosome %s: %d markers, %g cM", label, t.NMarkers(), span)
}

// AddMarker appends one marker to the template, keeping the four parallel
// sequences in lockstep. Pass UnsetFrequency when the minor-allele frequency
// is not yet known; any other value must lie in [0,1]. Markers are never
// removed once added.
func (t *ChromosomeTemplate) AddMarker(frequency, mapPosition float64, label string, bp int) error {
	if err := validFrequency(frequency); err != nil {
		return err
	}

	t.geneticMap = append(t.geneticMap, mapPosition)
	t.physicalMap = append(t.physicalMap, bp)
	t.labels = append(t.labels, label)
	t.frequencies = append(t.frequencies, frequency)

	return nil
}

// SetFrequency overwrites the minor-allele frequency of a previously added
// marker. Indexing past the marker count panics, as with any slice.
func (t *ChromosomeTemplate) SetFrequency(i int, frequency float64) error {
	if err := validFrequency(frequency); err != nil {
		return err
	}

	t.frequencies[i] = frequency

	return nil
}

func validFrequency(frequency float64) error {
	if frequency == UnsetFrequency {
		return nil
	}
	if math.IsNaN(frequency) || frequency < 0 || frequency > 1 {
		return pfx.Err(fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency))
	}

	return nil
}

// NMarkers returns the number of markers added so far.
func (t *ChromosomeTemplate) NMarkers() int {
	return len(t.geneticMap)
}

// Marker returns a copy of the i'th marker's metadata.
func (t *ChromosomeTemplate) Marker(i int) Marker {
	return Marker{
		Label:            t.labels[i],
		GeneticPosition:  t.geneticMap[i],
		PhysicalPosition: t.physicalMap[i],
		Frequency:        t.frequencies[i],
	}
}

// Frequency returns the minor-allele frequency of the i'th marker, which may
// be UnsetFrequency.
func (t *ChromosomeTemplate) Frequency(i int) float64 {
	return t.frequencies[i]
}

// Span returns the genetic distance in centimorgans between the first and
// last markers. It panics on an empty template.
func (t *ChromosomeTemplate) Span() float64 {
	return t.geneticMap[len(t.geneticMap)-1] - t.geneticMap[0]
}

// Empty returns an all-missing dense chromosome sized to the template.
func (t *ChromosomeTemplate) Empty() GenotypedChromosome[uint8] {
	return make(GenotypedChromosome[uint8], t.NMarkers())
}

// LinkageEquilibriumChromosome generates one chromosome strand by drawing
// every marker independently: code 2 (minor allele) with probability equal to
// the marker's frequency, code 1 otherwise. A nil rng uses the process-global
// source; pass an explicit *rand.Rand for reproducible draws or for
// per-worker streams under concurrency.
func (t *ChromosomeTemplate) LinkageEquilibriumChromosome(rng *rand.Rand) (GenotypedChromosome[uint8], error) {
	if err := t.frequenciesSet(); err != nil {
		return nil, err
	}

	chrom := make(GenotypedChromosome[uint8], t.NMarkers())
	for i, f := range t.frequencies {
		if randFloat(rng) < f {
			chrom[i] = 2
		} else {
			chrom[i] = 1
		}
	}

	return chrom, nil
}

// LinkageEquilibriumChromosomes generates n independent chromosome strands in
// one call.
func (t *ChromosomeTemplate) LinkageEquilibriumChromosomes(rng *rand.Rand, n int) ([]GenotypedChromosome[uint8], error) {
	if err := t.frequenciesSet(); err != nil {
		return nil, err
	}

	chroms := make([]GenotypedChromosome[uint8], 0, n)
	for j := 0; j < n; j++ {
		chrom := make(GenotypedChromosome[uint8], t.NMarkers())
		for i, f := range t.frequencies {
			if randFloat(rng) < f {
				chrom[i] = 2
			} else {
				chrom[i] = 1
			}
		}
		chroms = append(chroms, chrom)
	}

	return chroms, nil
}

func (t *ChromosomeTemplate) frequenciesSet() error {
	for i, f := range t.frequencies {
		if f < 0 {
			return pfx.Err(fmt.Errorf("%w: frequency for marker %d is not specified", ErrInvalidFrequency, i))
		}
	}

	return nil
}

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}

	return rng.Float64()
}
