// Package vmath provides 2D vector math tagged with coordinate spaces.
//
// Every vector carries a phantom space parameter so that values from
// different coordinate frames cannot be mixed by accident:
//
//   - [Screen]: raw window pixels as reported by the input layer
//   - [Viewport]: pixels of the simulation's texture buffer
//   - [World]: the unscaled coordinate system entities live in
//
// The tag costs nothing at runtime. Moving a value between spaces is
// always an explicit call — [ScreenToViewport] and friends apply the
// pixel scale and camera offset, while [CastUnit] only reinterprets the
// tag and must be reserved for callers that have already accounted for
// the transform.
//
//	mouse := vmath.V[float64, vmath.Screen](x, y)
//	world := vmath.ScreenToWorld(mouse, scale, camera)
package vmath
