package trellis

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// NewTextGeometry measures content with face and returns one rectangle per
// non-empty line, stacked at the face's line height and aligned against the
// widest line. The top of the first line sits at y = 0.
//
// The result is a fresh value: when the content, face or alignment of a
// text visual changes, build a new geometry and swap it in.
func NewTextGeometry(content string, face font.Face, align TextAlign) *GeometryRectGroup {
	lines := strings.Split(content, "\n")
	lineHeight := fixedToFloat(face.Metrics().Height)

	widths := make([]float64, len(lines))
	var maxWidth float64
	for i, line := range lines {
		widths[i] = fixedToFloat(font.MeasureString(face, line))
		if widths[i] > maxWidth {
			maxWidth = widths[i]
		}
	}

	rects := make([]*GeometryRect, 0, len(lines))
	for i, w := range widths {
		if w == 0 {
			continue
		}
		var x float64
		switch align {
		case TextAlignCenter:
			x = (maxWidth - w) / 2
		case TextAlignRight:
			x = maxWidth - w
		}
		rects = append(rects, NewGeometryRect(
			Vec2{x, float64(i) * lineHeight},
			Vec2{w, lineHeight},
		))
	}
	return NewGeometryRectGroup(rects...)
}
