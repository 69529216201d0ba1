// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scratch

import "image"

// eraseSegment clears every cell whose center lies within radius of the
// segment a-b, which is what a round-capped line of width 2*radius covers.
func (s *Surface) eraseSegment(a, b image.Point) {
	r := s.radius
	box := image.Rect(min(a.X, b.X)-r, min(a.Y, b.Y)-r, max(a.X, b.X)+r+1, max(a.Y, b.Y)+r+1).
		Intersect(s.overlay.Rect)

	limit := float64(r * r)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if distSquared(image.Point{X: x, Y: y}, a, b) > limit {
				continue
			}

			i := s.overlay.PixOffset(x, y)
			if s.overlay.Pix[i] == transparent {
				continue
			}
			s.overlay.Pix[i] = transparent
			s.cleared++
		}
	}
}

// distSquared is the squared distance from p to the segment a-b.
func distSquared(p, a, b image.Point) float64 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	px, py := float64(p.X-a.X), float64(p.Y-a.Y)

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return px*px + py*py
	}

	t := (px*dx + py*dy) / lenSq
	t = max(0, min(1, t))

	ex, ey := px-t*dx, py-t*dy
	return ex*ex + ey*ey
}
