package genotypes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genomisc"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// ReadGenomeSIMLATemplate reads a genomeSIMLA format chromosome template file
// into a ChromosomeTemplate. The path may be local or a gs:// URI; gs:// paths
// require a non-nil storage client. Files ending in .gz or .zst are
// decompressed transparently.
//
// The format is one header line with the chromosome label, one line with the
// marker count (redundant with the records and ignored), then one record per
// marker: label, major-allele frequency, minor-allele frequency, marginal
// recombination probability, physical position. The marginal recombination
// probabilities are accumulated into absolute map positions, which is the
// shape the template wants.
func ReadGenomeSIMLATemplate(path string, client *storage.Client) (*ChromosomeTemplate, error) {
	f, err := genomisc.MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(path, f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return parseGenomeSIMLATemplate(r)
}

// maybeDecompress wraps r in a decompressor chosen by the path's extension.
func maybeDecompress(path string, r io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	}

	return r, nil
}

func parseGenomeSIMLATemplate(r io.Reader) (*ChromosomeTemplate, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, pfx.Err(fmt.Errorf("template file is empty"))
	}
	template := NewChromosomeTemplate(strings.TrimSpace(scanner.Text()))

	// Marker-count line; the records themselves are authoritative
	if !scanner.Scan() {
		return nil, pfx.Err(fmt.Errorf("template file for chromosome %s has no marker records", template.Label))
	}

	lastCM := 0.0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cols := strings.Fields(line)
		if len(cols) != 5 {
			return nil, pfx.Err(fmt.Errorf("marker record %q has %d fields; expected 5", line, len(cols)))
		}

		minorFreq, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%w: marker %s: %v", ErrInvalidFrequency, cols[0], err))
		}

		cm, err := strconv.ParseFloat(cols[3], 64)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("marker %s: bad recombination probability: %v", cols[0], err))
		}
		lastCM += cm

		bp, err := strconv.Atoi(cols[4])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("marker %s: bad physical position: %v", cols[0], err))
		}

		if err := template.AddMarker(minorFreq, lastCM, cols[0], bp); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return template, nil
}
