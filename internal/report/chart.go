package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"codereview/internal/types"
)

const (
	chartTitle   = "Code Quality Breakdown"
	chartWidth   = 640
	chartHeight  = 480
	chartRadius  = 150.0
	startAngle   = 140.0 // degrees, counter-clockwise from 3 o'clock
	shadowOffset = 5.0
	labelRadius  = 1.1
	pctRadius    = 0.6
)

type slice struct {
	label   string
	color   string
	explode float64 // fraction of the radius
	value   int
}

// Slices are always laid out Good, Moderate, Critical
func chartSlices(t types.SeverityTally) []slice {
	return []slice{
		{label: "Good", color: "#4CAF50", explode: 0, value: t.Good},
		{label: "Needs Improvement", color: "#FFA726", explode: 0.1, value: t.Moderate},
		{label: "Critical", color: "#EF5350", explode: 0.2, value: t.Critical},
	}
}

var placeholderSlice = slice{label: "No data", color: "#BDBDBD", value: 1}

// RenderChart draws the severity breakdown as a PNG pie chart. An empty
// tally yields a single "No data" slice.
func RenderChart(t types.SeverityTally) ([]byte, error) {
	slices := chartSlices(t)
	showPct := true
	if t.Total() == 0 {
		slices = []slice{placeholderSlice}
		showPct = false
	}

	total := 0
	for _, s := range slices {
		total += s.value
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	dc.SetHexColor("#000000")
	dc.DrawStringAnchored(chartTitle, chartWidth/2, 30, 0.5, 0.5)

	cx, cy := float64(chartWidth)/2, float64(chartHeight)/2+20
	wedges := layout(slices, total, cx, cy)

	// shadow pass
	dc.SetRGBA(0, 0, 0, 0.25)
	for _, w := range wedges {
		drawWedge(dc, w.x+shadowOffset, w.y+shadowOffset, w.from, w.to)
		dc.Fill()
	}

	for _, w := range wedges {
		dc.SetHexColor(w.color)
		drawWedge(dc, w.x, w.y, w.from, w.to)
		dc.Fill()
	}

	dc.SetHexColor("#000000")
	for _, w := range wedges {
		cos, sin := math.Cos(w.mid), math.Sin(w.mid)
		lx := w.x + cos*chartRadius*labelRadius
		ly := w.y - sin*chartRadius*labelRadius
		ax := 0.0
		if cos < 0 {
			ax = 1
		}
		dc.DrawStringAnchored(w.label, lx, ly, ax, 0.5)

		if showPct {
			px := w.x + cos*chartRadius*pctRadius
			py := w.y - sin*chartRadius*pctRadius
			dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", w.pct), px, py, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type wedge struct {
	slice
	x, y     float64 // exploded centre
	from, to float64 // counter-clockwise angles in radians
	mid      float64
	pct      float64
}

// layout assigns angles to every non-empty slice
func layout(slices []slice, total int, cx, cy float64) []wedge {
	var wedges []wedge
	angle := startAngle * math.Pi / 180

	for _, s := range slices {
		if s.value == 0 {
			continue
		}
		frac := float64(s.value) / float64(total)
		sweep := frac * 2 * math.Pi
		mid := angle + sweep/2
		wedges = append(wedges, wedge{
			slice: s,
			x:     cx + math.Cos(mid)*s.explode*chartRadius,
			y:     cy - math.Sin(mid)*s.explode*chartRadius,
			from:  angle,
			to:    angle + sweep,
			mid:   mid,
			pct:   frac * 100,
		})
		angle += sweep
	}
	return wedges
}

// drawWedge builds a closed wedge path; screen y grows downward so the
// counter-clockwise angles are negated
func drawWedge(dc *gg.Context, x, y, from, to float64) {
	dc.MoveTo(x, y)
	dc.DrawArc(x, y, chartRadius, -to, -from)
	dc.ClosePath()
}
