package parser

// sniffCandidates are the delimiters considered by SniffDelimiter, in tie-break order.
var sniffCandidates = []byte{',', ';', '\t', '|'}

// SniffDelimiter guesses the field separator from the first record's line.
// Characters inside quotes are ignored. It falls back to comma.
func SniffDelimiter(text string) rune {
	counts := make(map[byte]int, len(sniffCandidates))
	inQuotes := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' {
			inQuotes = !inQuotes
			continue
		}
		if inQuotes {
			continue
		}
		if c == '\n' || c == '\r' {
			break
		}
		counts[c]++
	}

	best, bestCount := byte(','), 0
	for _, cand := range sniffCandidates {
		if counts[cand] > bestCount {
			best, bestCount = cand, counts[cand]
		}
	}
	return rune(best)
}

// validDelimiter reports whether d can be used by the scanner.
func validDelimiter(d rune) bool {
	if d <= 0 || d >= 0x80 {
		return false
	}
	switch d {
	case '"', '\n', '\r':
		return false
	}
	return true
}
