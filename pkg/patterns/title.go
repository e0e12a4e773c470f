package patterns

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/scifig/pkg/figure"
)

// KV is one key/value pair shown in an annotated title.
type KV struct {
	Key   string
	Value any
}

var titleSymbols = map[string]string{
	"r2":        "R²",
	"r_squared": "R²",
	"lambda":    "λ",
	"beta":      "β",
}

// FormatTitle builds a title carrying annotation values on a second line:
//
//	FormatTitle("(a) Results", "", KV{"R2", 0.995}) // "(a) Results\n(R²=0.995)"
//
// Recognised keys are replaced by their symbol (r2 and r_squared by R²,
// lambda by λ, beta by β). Floats with magnitude below 0.01 or above 1000
// use scientific notation, other floats three decimals; any other value is
// printed as is. When no pairs are given a non-empty subtitle is wrapped in
// parentheses instead.
func FormatTitle(base, subtitle string, pairs ...KV) string {
	switch {
	case len(pairs) > 0:
		parts := make([]string, len(pairs))
		for i, kv := range pairs {
			key := kv.Key
			if sym, ok := titleSymbols[strings.ToLower(key)]; ok {
				key = sym
			}
			parts[i] = key + "=" + formatValue(kv.Value)
		}
		return base + "\n(" + strings.Join(parts, ", ") + ")"
	case subtitle != "":
		return base + "\n(" + subtitle + ")"
	default:
		return base
	}
}

func formatValue(v any) string {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return fmt.Sprint(v)
	}
	if a := math.Abs(f); a < 0.01 || a > 1000 {
		return fmt.Sprintf("%.2e", f)
	}
	return fmt.Sprintf("%.3f", f)
}

// ApplyTitle formats a title with [FormatTitle] and sets it on p with the
// given font size.
func ApplyTitle(p *figure.Panel, base string, size float64, pairs ...KV) {
	p.Title.Text = FormatTitle(base, "", pairs...)
	p.Title.Size = size
}
