// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scratch

import (
	"image"
	"time"
)

const (
	// RevealThreshold is the transparent fraction that must be exceeded to
	// reveal the gift.
	RevealThreshold = 0.5

	// HideDelay is how long the overlay stays on screen after reveal.
	HideDelay = 500 * time.Millisecond

	// DefaultRadius is the brush radius in cells.
	DefaultRadius = 2

	opaque      = 0xff
	transparent = 0x00
)

// State is the reveal progress of a surface.
type State int

const (
	Covered State = iota
	PartiallyRevealed
	Revealed
)

func (s State) String() string {
	switch s {
	case Covered:
		return "covered"
	case PartiallyRevealed:
		return "partially revealed"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Options configures a Surface.
type Options struct {
	// Radius of the brush in cells. Zero means DefaultRadius.
	Radius int

	// OnReveal is called once, synchronously, when the surface becomes
	// revealed.
	OnReveal func()
}

// Surface is a scratchable overlay.
type Surface struct {
	overlay *image.Alpha
	total   int
	cleared int

	radius   int
	onReveal func()

	stroking bool
	last     image.Point

	revealed bool
}

// New allocates a fully opaque width x height overlay. Non-positive sizes
// produce an empty surface whose fraction is 0.
func New(width, height int, opts Options) *Surface {
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}

	s := &Surface{
		radius:   radius,
		onReveal: opts.OnReveal,
	}
	s.allocate(width, height)

	return s
}

func (s *Surface) allocate(width, height int) {
	width, height = max(width, 0), max(height, 0)

	s.overlay = image.NewAlpha(image.Rect(0, 0, width, height))
	for i := range s.overlay.Pix {
		s.overlay.Pix[i] = opaque
	}
	s.total = width * height
	s.cleared = 0
	s.stroking = false
}

// Resize reallocates the overlay at the new size. Scratch progress starts
// over from 0, but a surface that was already revealed stays revealed.
func (s *Surface) Resize(width, height int) {
	s.allocate(width, height)
}

// Begin starts a stroke at p. Nothing is erased until the pointer moves.
func (s *Surface) Begin(p image.Point) {
	s.stroking = true
	s.last = p
}

// Move erases the brush path from the last point to p. It is a no-op when
// no stroke is active.
func (s *Surface) Move(p image.Point) {
	if !s.stroking {
		return
	}

	s.eraseSegment(s.last, p)
	s.last = p
	s.checkReveal()
}

// End stops the current stroke.
func (s *Surface) End() {
	s.stroking = false
}

// Stroking reports whether a stroke is active.
func (s *Surface) Stroking() bool {
	return s.stroking
}

// Fraction is the share of fully transparent cells, maintained as cells
// are erased.
func (s *Surface) Fraction() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.cleared) / float64(s.total)
}

// Sample scans the whole overlay and returns the transparent fraction.
func (s *Surface) Sample() float64 {
	if s.total == 0 {
		return 0
	}

	count := 0
	for _, a := range s.overlay.Pix {
		if a == transparent {
			count++
		}
	}
	return float64(count) / float64(s.total)
}

// Revealed reports whether the reveal threshold was ever crossed.
func (s *Surface) Revealed() bool {
	return s.revealed
}

func (s *Surface) State() State {
	switch {
	case s.revealed:
		return Revealed
	case s.cleared > 0:
		return PartiallyRevealed
	default:
		return Covered
	}
}

// Covered reports whether the cell at (x, y) is still opaque. Points outside
// the surface are reported as uncovered.
func (s *Surface) Covered(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(s.overlay.Rect) {
		return false
	}
	return s.overlay.AlphaAt(x, y).A != transparent
}

// Bounds returns the overlay rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return s.overlay.Rect
}

func (s *Surface) checkReveal() {
	if s.revealed || s.Fraction() <= RevealThreshold {
		return
	}

	s.revealed = true
	if s.onReveal != nil {
		s.onReveal()
	}
}
