package genotypes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const exampleTemplate = `1
3
rs1 0.9 0.1 0.05 1000

rs2 0.5 0.5 0.10 2000
rs3 0.1 0.9 0.20 3000
`

func writeTemplateFile(t *testing.T, name, body string, compress bool) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if compress {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
		if err := gz.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := f.WriteString(body); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkExampleTemplate(t *testing.T, template *ChromosomeTemplate) {
	t.Helper()

	if template.Label != "1" {
		t.Errorf("label = %q, expected %q", template.Label, "1")
	}
	if template.NMarkers() != 3 {
		t.Fatalf("NMarkers = %d, expected 3", template.NMarkers())
	}

	// Marginal recombination probabilities accumulate into map positions
	wantCM := []float64{0.05, 0.15, 0.35}
	wantFreq := []float64{0.1, 0.5, 0.9}
	wantBP := []int{1000, 2000, 3000}
	for i := 0; i < 3; i++ {
		marker := template.Marker(i)
		if marker.GeneticPosition < wantCM[i]-1e-12 || marker.GeneticPosition > wantCM[i]+1e-12 {
			t.Errorf("marker %d: position %g, expected %g", i, marker.GeneticPosition, wantCM[i])
		}
		if marker.Frequency != wantFreq[i] {
			t.Errorf("marker %d: frequency %g, expected %g", i, marker.Frequency, wantFreq[i])
		}
		if marker.PhysicalPosition != wantBP[i] {
			t.Errorf("marker %d: bp %d, expected %d", i, marker.PhysicalPosition, wantBP[i])
		}
	}
}

func TestReadGenomeSIMLATemplate(t *testing.T) {
	path := writeTemplateFile(t, "chrom.template", exampleTemplate, false)

	template, err := ReadGenomeSIMLATemplate(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	checkExampleTemplate(t, template)
}

func TestReadGenomeSIMLATemplateGzip(t *testing.T) {
	path := writeTemplateFile(t, "chrom.template.gz", exampleTemplate, true)

	template, err := ReadGenomeSIMLATemplate(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	checkExampleTemplate(t, template)
}

func TestReadGenomeSIMLATemplateBadFrequency(t *testing.T) {
	body := "1\n1\nrs1 0.9 oops 0.05 1000\n"
	path := writeTemplateFile(t, "chrom.template", body, false)

	if _, err := ReadGenomeSIMLATemplate(path, nil); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestReadGenomeSIMLATemplateTruncated(t *testing.T) {
	path := writeTemplateFile(t, "chrom.template", "1\n", false)

	if _, err := ReadGenomeSIMLATemplate(path, nil); err == nil {
		t.Error("expected an error for a template with no marker records")
	}
}

func TestReadGenomeSIMLATemplateMalformedRecord(t *testing.T) {
	body := "1\n1\nrs1 0.9 0.1\n"
	path := writeTemplateFile(t, "chrom.template", body, false)

	if _, err := ReadGenomeSIMLATemplate(path, nil); err == nil {
		t.Error("expected an error for a record with missing fields")
	}
}
