// Package quarkgl is a small software 3D engine for desktop visualizations.
//
// It keeps a retained scene graph (groups and meshes with position/rotation/scale),
// a perspective camera, ambient and point lights, and a fixed raster pipeline:
//
//	Scene → World transform → View/Projection → Clipping → Rasterization → Target.
//
// The renderer draws into a caller-provided Target and keeps its depth buffer and
// triangle scratch space between frames, so steady-state rendering does not allocate.
//
// Math uses float64 throughout. Projection state is explicit: changing a camera's
// aspect ratio has no effect until UpdateProjectionMatrix is called.
//
// Lights only act on ShadingLambert materials. ShadingBasic draws the flat
// material color, so a scene built only from basic materials looks the same
// with or without its lights.
package quarkgl
