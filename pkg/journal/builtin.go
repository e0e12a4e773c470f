package journal

// registerBuiltins fills r with the publisher guidelines shipped with scifig.
// Later registrations win on alias collisions ("sci" ends up on Default SCI).
func registerBuiltins(r *Registry) {
	d := Defaults()

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Nature"
		s.Category = CategoryNature
		s.Formats = []string{"pdf", "eps", "tiff"}
		s.Notes = "Preferred fonts: Arial, Helvetica. Avoid serif fonts."
	}), "nature", "nat")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Nature Communications"
		s.Category = CategoryNature
		s.Notes = "Same as Nature main journal."
	}), "nature_communications", "nat_comm", "ncomm")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Science"
		s.Category = CategoryScience
		s.WidthSingle = 2.25 // 57 mm
		s.Width15Col = 4.5   // 114 mm
		s.WidthDouble = 6.0  // 152 mm
		s.MaxHeight = 8.5
		s.FontAxisLabel = 8
		s.FontTickLabel = 7
		s.FontTitle = 8
		s.FontLegend = 7
		s.FontAnnotation = 6
		s.Formats = []string{"pdf", "eps"}
		s.Notes = "Science uses narrower columns. Font sizes slightly smaller."
	}), "science", "sci")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Science Advances"
		s.Category = CategoryScience
		s.Notes = "More flexible than Science main journal."
	}), "science_advances", "sci_adv")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Cell"
		s.Category = CategoryCell
		s.WidthSingle = 3.35 // 85 mm
		s.Width15Col = 5.0   // 127 mm
		s.WidthDouble = 6.85 // 174 mm
		s.FontAxisLabel = 8
		s.FontTickLabel = 7
		s.FontTitle = 8
		s.FontLegend = 7
		s.FontAnnotation = 6
		s.Formats = []string{"pdf", "eps", "tiff"}
		s.Notes = "Cell prefers compact figures. Arial font strongly preferred."
	}), "cell")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "ACS (General)"
		s.Category = CategoryACS
		s.WidthSingle = 3.25 // 82.5 mm
		s.Width15Col = 5.0
		s.MaxHeight = 9.5
		s.FontTitle = 10
		s.Formats = []string{"pdf", "eps", "tiff"}
		s.ColorCycle = []string{
			"#0072B2", "#D55E00", "#009E73", "#CC79A7",
			"#F0E442", "#56B4E9", "#E69F00", "#000000",
		}
		s.Notes = "ACS recommends colorblind-safe palettes."
	}), "acs", "jacs", "acs_nano", "nano_letters")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "RSC (General)"
		s.Category = CategoryRSC
		s.WidthSingle = 3.25 // 8.3 cm
		s.Width15Col = 5.0
		s.WidthDouble = 6.75 // 17.1 cm
		s.Formats = []string{"pdf", "eps", "tiff"}
		s.Notes = "RSC journals follow similar standards."
	}), "rsc", "chem_comm", "chemical_communications")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Elsevier (General)"
		s.Category = CategoryElsevier
		s.MaxHeight = 9.5
		s.FontTitle = 10
		s.Formats = []string{"pdf", "eps", "tiff", "jpg"}
		s.Notes = "Elsevier accepts wide range of formats. Check specific journal."
	}), "elsevier", "polymer")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "Wiley (General)"
		s.Category = CategoryWiley
		s.WidthSingle = 3.25 // 82 mm
		s.Width15Col = 5.0   // 127 mm
		s.WidthDouble = 6.75 // 171 mm
		s.Formats = []string{"pdf", "eps", "tiff"}
		s.Notes = "Check specific Wiley journal for variations."
	}), "wiley", "angew", "adv_mater")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = "IEEE (General)"
		s.Category = CategoryIEEE
		s.Width15Col = 5.0
		s.FontAxisLabel = 10
		s.FontTickLabel = 9
		s.FontTitle = 10
		s.FontLegend = 9
		s.FontAnnotation = 8
		s.FontFamily = "serif"
		s.Formats = []string{"pdf", "eps"}
		s.Notes = "IEEE traditionally uses serif fonts (Times)."
	}), "ieee")

	r.RegisterAliases(d.With(func(s *Spec) {
		s.Name = DefaultName
		s.Notes = "Balanced defaults suitable for most SCI journals."
	}), "default", "sci", "standard")
}

// DefaultName is the display name of the fallback specification.
const DefaultName = "Default SCI"
