// Package retro3d is a real-time, CPU-only pseudo-3D renderer for
// portal/sector worlds in the style of early first-person shooters: no
// z-buffer, column-wise wall rasterization, span-based floor/ceiling
// rasterization and billboard sprites, with rooms clipped against each
// other through a breadth-first portal traversal.
package retro3d
