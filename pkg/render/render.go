package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/matzehuels/scifig/pkg/errors"
	"github.com/matzehuels/scifig/pkg/figure"
)

// DefaultDPI is used for raster output when no resolution is given.
const DefaultDPI = 300

var (
	rasterFormats = []string{"png", "jpg", "jpeg", "tif", "tiff"}
	vectorFormats = []string{"svg", "pdf", "eps"}
)

// Formats returns every supported output format.
func Formats() []string { return slices.Concat(rasterFormats, vectorFormats) }

// IsRaster reports whether format is rasterized at a resolution.
func IsRaster(format string) bool { return slices.Contains(rasterFormats, normalizeFormat(format)) }

func normalizeFormat(f string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f)), ".")
}

// ContentType returns the media type of format. Case and a leading dot are
// ignored as in [Encode]; unknown formats report PNG, the default encoding.
func ContentType(format string) string {
	switch normalizeFormat(format) {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	case "eps":
		return "application/postscript"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "tif", "tiff":
		return "image/tiff"
	}
	return "image/png"
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

// Encode draws fig and writes it to w in format. dpi applies to raster
// formats only; a non-positive dpi means [DefaultDPI].
func Encode(w io.Writer, fig *figure.Figure, format string, dpi int) error {
	if err := errors.ValidateFormat(format, Formats()); err != nil {
		return err
	}
	if len(fig.Panels) != fig.Rows*fig.Cols {
		return errors.New(errors.ErrCodeInvalidInput,
			"figure has %d panels for a %dx%d grid", len(fig.Panels), fig.Rows, fig.Cols)
	}

	width := vg.Length(fig.Width) * vg.Inch
	height := vg.Length(fig.Height) * vg.Inch
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	var c canvasWriter
	switch f := normalizeFormat(format); f {
	case "svg":
		c = vgsvg.New(width, height)
	case "pdf":
		c = vgpdf.New(width, height)
	case "eps":
		c = vgeps.New(width, height)
	default:
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		switch f {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	}

	if err := drawFigure(fig, draw.New(c)); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// Save writes fig once per format to base+"."+format, creating the parent
// directory, and returns the written paths. Raster formats receive dpi,
// vector formats none.
func Save(fig *figure.Figure, base string, formats []string, dpi int) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}

	var paths []string
	for _, format := range formats {
		path := base + "." + normalizeFormat(format)
		if err := saveOne(fig, path, format, dpi); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func saveOne(fig *figure.Figure, path, format string, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Encode(f, fig, format, dpi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// panelPadding separates neighbouring panels.
const panelPadding = 2 * vg.Millimeter

func drawFigure(fig *figure.Figure, dc draw.Canvas) error {
	th := thumbs{}
	plots := make([][]*plot.Plot, fig.Rows)
	for r := range fig.Rows {
		plots[r] = make([]*plot.Plot, fig.Cols)
		for c := range fig.Cols {
			pl, err := panelPlot(fig.Panel(r, c), fig.FontFamily, th)
			if err != nil {
				return fmt.Errorf("panel %d: %w", r*fig.Cols+c, err)
			}
			plots[r][c] = pl
		}
	}

	area := fraction(dc, fig.LayoutRect)
	if !fig.Suptitle.Empty() {
		size := fig.Suptitle.Size
		if size <= 0 {
			size = 10
		}
		sty := textStyle(size)
		sty.XAlign, sty.YAlign = text.XCenter, text.YTop
		top := vg.Point{X: (area.Min.X + area.Max.X) / 2, Y: area.Max.Y}
		dc.FillText(sty, top, fig.Suptitle.Text)
		area.Max.Y -= vg.Points(size * 1.6)
	}

	tiles := draw.Tiles{Rows: fig.Rows, Cols: fig.Cols, PadX: panelPadding, PadY: panelPadding}
	canvases := plot.Align(plots, tiles, draw.Canvas{Canvas: dc.Canvas, Rectangle: area})
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	for _, l := range fig.Legends {
		drawFigureLegend(dc, fig.LayoutRect, l, th)
	}
	return nil
}

// fraction maps a [left, bottom, right, top] rectangle in figure fractions
// onto the canvas.
func fraction(dc draw.Canvas, r [4]float64) vg.Rectangle {
	size := dc.Size()
	at := func(fx, fy float64) vg.Point {
		return vg.Point{
			X: dc.Min.X + vg.Length(fx)*size.X,
			Y: dc.Min.Y + vg.Length(fy)*size.Y,
		}
	}
	return vg.Rectangle{Min: at(r[0], r[1]), Max: at(r[2], r[3])}
}

// legendArea returns the part of the canvas left free by the layout
// rectangle on the side the legend is placed.
func legendArea(rect [4]float64, loc figure.Location) [4]float64 {
	switch loc {
	case figure.LocLowerCenter, figure.LocLowerLeft, figure.LocLowerRight:
		return [4]float64{0, 0, 1, rect[1]}
	case figure.LocUpperCenter, figure.LocUpperLeft, figure.LocUpperRight:
		return [4]float64{0, rect[3], 1, 1}
	case figure.LocCenterLeft, figure.LocRight:
		return [4]float64{rect[2], 0, 1, 1}
	case figure.LocCenterRight:
		return [4]float64{0, 0, rect[0], 1}
	}
	return [4]float64{0, 0, 1, 1}
}

// drawFigureLegend draws l centred in its free area, splitting the entries
// into l.Columns side-by-side columns filled top to bottom.
func drawFigureLegend(dc draw.Canvas, rect [4]float64, l *figure.Legend, th thumbs) {
	if len(l.Entries) == 0 {
		return
	}
	cols := max(l.Columns, 1)
	per := (len(l.Entries) + cols - 1) / cols

	var (
		legends []plot.Legend
		widths  []vg.Length
		total   vg.Length
		height  vg.Length
	)
	for i := 0; i < len(l.Entries); i += per {
		leg := plot.NewLegend()
		leg.Top, leg.Left = true, true
		if l.FontSize > 0 {
			leg.TextStyle.Font.Size = vg.Points(l.FontSize)
		}
		for _, e := range l.Entries[i:min(i+per, len(l.Entries))] {
			if t, ok := th[e.Handle]; ok {
				leg.Add(e.Label, t)
			} else {
				leg.Add(e.Label)
			}
		}
		size := leg.Rectangle(dc).Size()
		legends = append(legends, leg)
		widths = append(widths, size.X)
		total += size.X
		height = max(height, size.Y)
	}

	area := fraction(dc, legendArea(rect, l.Loc))
	if area.Size().Y < height {
		area.Max.Y = area.Min.Y + height
	}
	x := area.Min.X + (area.Size().X-total)/2
	top := area.Min.Y + (area.Size().Y+height)/2
	for i, leg := range legends {
		c := draw.Canvas{Canvas: dc.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: x, Y: top - height},
			Max: vg.Point{X: x + widths[i], Y: top},
		}}
		leg.Draw(c)
		x += widths[i]
	}
}

func textStyle(size float64) text.Style {
	f := plot.DefaultFont
	f.Size = vg.Points(size)
	return text.Style{
		Color:   color.Black,
		Font:    f,
		Handler: plot.DefaultTextHandler,
	}
}
