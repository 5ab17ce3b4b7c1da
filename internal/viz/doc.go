// Package viz renders the Möbius strip mesh in the terminal.
//
// Rendering happens on a Braille sub-pixel [Canvas] through a rotating
// [Camera] projection:
//
//   - [Canvas]: Braille-based pixel canvas with a per-cell color layer
//   - [Camera]: 3D → 2D projection with equal-aspect framing
//   - [Model]: interactive Bubble Tea viewer
//
// The viewer highlights the v = +w/2 boundary curve in red and the v = 0
// centerline in blue, and shades surface points by height through a named
// colormap.
//
// # Key Bindings
//
//	←/→ ↑/↓  Rotate
//	+/-      Zoom
//	Space    Toggle spin
//	W        Toggle wireframe
//	S        Toggle surface
//	C        Cycle colormap
//	R        Reset camera
//	Q        Quit
package viz
