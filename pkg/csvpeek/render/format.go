// Package render turns parsed tables into aligned text previews.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/models"
)

// width measurement must not depend on the terminal locale.
var widthCond = runewidth.NewCondition()

var controlEscaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// FormatCell renders a cell in its canonical text form.
func FormatCell(c models.Cell, opts Options) string {
	switch c.Type() {
	case models.TypeInteger:
		v, _ := c.Int()
		return strconv.FormatInt(v, 10)
	case models.TypeFloat:
		v, _ := c.Float()
		return FormatFloat(v)
	case models.TypeBoolean:
		if v, _ := c.Bool(); v {
			return "True"
		}
		return "False"
	case models.TypeString:
		v, _ := c.Str()
		return clip(controlEscaper.Replace(v), opts.MaxColWidth)
	default:
		return opts.missingToken()
	}
}

// FormatFloat returns the shortest decimal string that parses back to v.
// Magnitudes outside [1e-4, 1e16) use exponent notation. Integral values
// keep a trailing ".0" so they read as floats.
func FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return widthCond.StringWidth(s)
}

func clip(s string, max int) string {
	if max <= 0 || widthCond.StringWidth(s) <= max {
		return s
	}
	return widthCond.Truncate(s, max, "...")
}
