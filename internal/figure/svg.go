package figure

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/tumorkit/internal/vessels"
)

// Projection views 3D points from the given azimuth and elevation (radians).
type Projection struct {
	Azimuth, Elevation float64
}

var DefaultProjection = Projection{Azimuth: -math.Pi / 3, Elevation: math.Pi / 6}

// Project returns screen x (right) and y (up).
func (pr Projection) Project(p vessels.Point) (float64, float64) {
	ca, sa := math.Cos(pr.Azimuth), math.Sin(pr.Azimuth)
	ce, se := math.Cos(pr.Elevation), math.Sin(pr.Elevation)
	x := p.X*ca - p.Y*sa
	depth := p.X*sa + p.Y*ca
	y := p.Z*ce - depth*se
	return x, y
}

// SegmentsSVG draws every segment as a line in a width×height SVG.
func SegmentsSVG(segs []vessels.Segment, width, height int, title, strokeColor string, pr Projection) string {
	if len(segs) == 0 {
		return ""
	}

	type line struct{ x1, y1, x2, y2 float64 }
	lines := make([]line, len(segs))
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, s := range segs {
		x1, y1 := pr.Project(s.Start)
		x2, y2 := pr.Project(s.End)
		lines[i] = line{x1, y1, x2, y2}
		minX = math.Min(minX, math.Min(x1, x2))
		maxX = math.Max(maxX, math.Max(x1, x2))
		minY = math.Min(minY, math.Min(y1, y2))
		maxY = math.Max(maxY, math.Max(y1, y2))
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	minY -= rangeY * 0.05
	rangeX *= 1.1
	rangeY *= 1.1
	// Keep the aspect ratio.
	scale := math.Min(float64(width)/rangeX, float64(height)/rangeY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))
	if title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="20" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>
`, width/2, escape(title)))
	}
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1" fill="none">
`, strokeColor))
	for _, l := range lines {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`,
			(l.x1-minX)*scale, float64(height)-(l.y1-minY)*scale,
			(l.x2-minX)*scale, float64(height)-(l.y2-minY)*scale))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
