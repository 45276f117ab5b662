package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// DefaultMissingTokens are the field values read as missing, compared
// case-insensitively after trimming surrounding whitespace. The empty
// string is always missing.
var DefaultMissingTokens = []string{
	"#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

type missingSet map[string]struct{}

func newMissingSet(tokens []string) missingSet {
	set := make(missingSet, len(tokens))
	for _, tok := range tokens {
		set[strings.ToUpper(strings.TrimSpace(tok))] = struct{}{}
	}
	return set
}

func (m missingSet) isMissing(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	_, ok := m[strings.ToUpper(v)]
	return ok
}

// InferType returns the narrowest type every non-missing value satisfies,
// checking integer, float, boolean and string in that order. A nil token
// list means DefaultMissingTokens.
func InferType(values []string, missingTokens []string) models.ColumnType {
	if missingTokens == nil {
		missingTokens = DefaultMissingTokens
	}
	return inferType(values, newMissingSet(missingTokens))
}

func inferType(values []string, missing missingSet) models.ColumnType {
	allInt, allFloat, allBool := true, true, true
	present := 0
	for _, raw := range values {
		if missing.isMissing(raw) {
			continue
		}
		present++
		v := strings.TrimSpace(raw)
		if allInt && !isInteger(v) {
			allInt = false
		}
		if allFloat && !isDecimal(v) {
			allFloat = false
		}
		if allBool && !isBoolLiteral(v) {
			allBool = false
		}
		if !allInt && !allFloat && !allBool {
			break
		}
	}

	switch {
	case present == 0:
		return models.TypeMissingOnly
	case allInt:
		return models.TypeInteger
	case allFloat:
		return models.TypeFloat
	case allBool:
		return models.TypeBoolean
	default:
		return models.TypeString
	}
}

// coerce converts raw into a cell of type typ. Values that cannot be
// represented become missing.
func coerce(raw string, typ models.ColumnType, missing missingSet) models.Cell {
	if missing.isMissing(raw) {
		return models.MissingCell()
	}
	v := strings.TrimSpace(raw)
	switch typ {
	case models.TypeInteger:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return models.IntCell(i)
		}
	case models.TypeFloat:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return models.FloatCell(f)
		}
	case models.TypeBoolean:
		if isBoolLiteral(v) {
			return models.BoolCell(strings.EqualFold(v, "true"))
		}
	case models.TypeString:
		return models.StringCell(raw)
	}
	return models.MissingCell()
}

// isInteger matches [+-]?[0-9]+ within the int64 range.
func isInteger(s string) bool {
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// isDecimal matches a plain decimal literal with optional fraction and
// exponent. Hex, underscores, inf and nan are rejected.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isBoolLiteral(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
