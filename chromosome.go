package genotypes

// Chromosome translates a numeric human chromosome code into its standard
// two-character label. Codes outside the recognized range come back as "NA".
func Chromosome(chr uint16) string {
	switch {
	case chr >= 1 && chr <= 9:
		return string([]byte{'0', '0' + byte(chr)})
	case chr >= 10 && chr <= 22:
		return string([]byte{'0' + byte(chr/10), '0' + byte(chr%10)})
	case chr == 23:
		return "0X"
	case chr == 24:
		return "0Y"
	case chr == 253:
		return "XY"
	case chr == 254:
		return "MT"
	}

	return "NA"
}
