package journal

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/scifig/pkg/errors"
	"github.com/matzehuels/scifig/pkg/units"
)

// journalsFile is the TOML layout of a custom journals file:
//
//	[[journal]]
//	key = "my_journal"
//	name = "My Journal"
//	base = "nature"
//	aliases = ["myj"]
//	unit = "mm"
//	width_single = 85
//	color_cycle = ["#0072B2", "#D55E00"]
type journalsFile struct {
	Journals []fileJournal `toml:"journal"`
}

// fileJournal holds one [[journal]] table. Pointer fields distinguish
// "absent" (inherit from base) from an explicit zero.
type fileJournal struct {
	Key     string   `toml:"key"`
	Name    string   `toml:"name"`
	Base    string   `toml:"base"`
	Aliases []string `toml:"aliases"`
	Unit    string   `toml:"unit"`

	Category *string `toml:"category"`

	WidthSingle *float64 `toml:"width_single"`
	Width15Col  *float64 `toml:"width_1_5col"`
	WidthDouble *float64 `toml:"width_double"`
	MaxHeight   *float64 `toml:"max_height"`

	FontAxisLabel  *float64 `toml:"font_axis_label"`
	FontTickLabel  *float64 `toml:"font_tick_label"`
	FontTitle      *float64 `toml:"font_title"`
	FontLegend     *float64 `toml:"font_legend"`
	FontAnnotation *float64 `toml:"font_annotation"`
	FontFamily     *string  `toml:"font_family"`

	LineWidthData      *float64 `toml:"line_width_data"`
	LineWidthFit       *float64 `toml:"line_width_fit"`
	LineWidthReference *float64 `toml:"line_width_reference"`
	LineWidthAxis      *float64 `toml:"line_width_axis"`

	MarkerSizeData      *float64 `toml:"marker_size_data"`
	MarkerSizeHighlight *float64 `toml:"marker_size_highlight"`

	DPI        *int     `toml:"dpi"`
	Formats    []string `toml:"formats"`
	ColorCycle []string `toml:"color_cycle"`
	Notes      *string  `toml:"notes"`
}

// LoadFile registers every journal defined in the TOML file at path into r
// and returns the registered specs in file order.
func LoadFile(r *Registry, path string) ([]*Spec, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "journals file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return Load(r, f)
}

// Load decodes a TOML journals document from rd and registers its entries.
// Each entry inherits unspecified fields from its base journal (the default
// spec when base is empty). Lengths are converted from the entry's unit
// ("in", "mm" or "cm"; inches when empty). Nothing is registered when any
// entry is invalid.
func Load(r *Registry, rd io.Reader) ([]*Spec, error) {
	var doc journalsFile
	if _, err := toml.NewDecoder(rd).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode journals file")
	}

	type pending struct {
		key     string
		aliases []string
		spec    Spec
	}
	var out []pending
	for i, fj := range doc.Journals {
		spec, err := fj.build(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "journal #%d", i+1)
		}
		key := fj.Key
		if key == "" {
			key = spec.Name
		}
		out = append(out, pending{key: key, aliases: fj.Aliases, spec: spec})
	}

	specs := make([]*Spec, 0, len(out))
	for _, p := range out {
		specs = append(specs, r.RegisterAliases(p.spec, append([]string{p.key}, p.aliases...)...))
	}
	return specs, nil
}

func (fj *fileJournal) build(r *Registry) (Spec, error) {
	if fj.Name == "" && fj.Key == "" {
		return Spec{}, errors.New(errors.ErrCodeInvalidInput, "journal needs a name or key")
	}

	base := Defaults()
	if fj.Base != "" {
		b, err := r.Get(fj.Base)
		if err != nil {
			return Spec{}, err
		}
		base = b.With(nil)
	}

	toInches, err := lengthConverter(fj.Unit)
	if err != nil {
		return Spec{}, err
	}

	for _, c := range fj.ColorCycle {
		if _, err := colorful.Hex(c); err != nil {
			return Spec{}, errors.New(errors.ErrCodeInvalidInput, "invalid color %q in color_cycle", c)
		}
	}

	return base.With(func(s *Spec) {
		s.Name = fj.Name
		if s.Name == "" {
			s.Name = fj.Key
		}
		s.Category = CategoryCustom
		if fj.Category != nil {
			s.Category = Category(strings.ToLower(*fj.Category))
		}
		setLength(&s.WidthSingle, fj.WidthSingle, toInches)
		setLength(&s.Width15Col, fj.Width15Col, toInches)
		setLength(&s.WidthDouble, fj.WidthDouble, toInches)
		setLength(&s.MaxHeight, fj.MaxHeight, toInches)
		set(&s.FontAxisLabel, fj.FontAxisLabel)
		set(&s.FontTickLabel, fj.FontTickLabel)
		set(&s.FontTitle, fj.FontTitle)
		set(&s.FontLegend, fj.FontLegend)
		set(&s.FontAnnotation, fj.FontAnnotation)
		set(&s.FontFamily, fj.FontFamily)
		set(&s.LineWidthData, fj.LineWidthData)
		set(&s.LineWidthFit, fj.LineWidthFit)
		set(&s.LineWidthReference, fj.LineWidthReference)
		set(&s.LineWidthAxis, fj.LineWidthAxis)
		set(&s.MarkerSizeData, fj.MarkerSizeData)
		set(&s.MarkerSizeHighlight, fj.MarkerSizeHighlight)
		set(&s.DPI, fj.DPI)
		set(&s.Notes, fj.Notes)
		if fj.Formats != nil {
			s.Formats = fj.Formats
		}
		if fj.ColorCycle != nil {
			s.ColorCycle = fj.ColorCycle
		}
	}), nil
}

func lengthConverter(unit string) (func(float64) float64, error) {
	switch strings.ToLower(unit) {
	case "", "in", "inch", "inches":
		return func(v float64) float64 { return v }, nil
	case "mm":
		return units.MMToInches, nil
	case "cm":
		return units.CMToInches, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown unit %q (must be in, mm or cm)", unit)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setLength(dst *float64, v *float64, conv func(float64) float64) {
	if v != nil {
		*dst = conv(*v)
	}
}
