package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/radioactive/internal/timeline"
)

type point struct{ X, Y float64 }

// logPoints maps a series onto log10(time), log10(total), dropping samples
// that cannot be placed on log axes.
func logPoints(s *timeline.Series) []point {
	var pts []point
	for i, smp := range s.Samples {
		if s.Times[i] <= 0 || smp.Total <= 0 {
			continue
		}
		pts = append(pts, point{math.Log10(s.Times[i]), math.Log10(smp.Total)})
	}
	return pts
}

// SeriesToSVG draws the total of a series on log-log axes. It returns ""
// when fewer than two samples are plottable.
func SeriesToSVG(s *timeline.Series, width, height int, strokeColor string) string {
	points := logPoints(s)
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="4" y="14" fill="#888888" font-size="12">log10 %s (%s) vs log10 years</text>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, s.Quantity, s.Quantity.Unit(), strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
