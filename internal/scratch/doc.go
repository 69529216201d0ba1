// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scratch implements the scratch-off overlay of a gift card.
//
// A [Surface] is an opaque alpha bitmap laid over the gift. Pointer strokes
// erase circular brush paths from it, and the surface keeps track of the
// fraction of cells that became fully transparent. The first time that
// fraction exceeds [RevealThreshold] the surface is revealed and the reveal
// callback fires; the flag never resets afterwards.
//
// The package has no UI dependencies. The terminal client maps mouse
// events to [Surface.Begin], [Surface.Move] and [Surface.End] and draws
// covered cells using [Surface.Covered].
//
// A Surface is not safe for concurrent use.
package scratch
