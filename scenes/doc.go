// Package scenes provides the built-in Renderable scenes and registers
// them with the sandbox scene registry on import:
//
//	triangle  hard-coded triangle generated from the vertex index
//	quad      six colored vertices forming a quad
//	uniform   triangle colored from a uniform buffer
//	textured  indexed quad sampling an image file
//	camera2d  pixel-space triangle viewed through a pannable 2D camera
//	canvas    card drawn with gg on the CPU and sampled as a texture
//
// Import the package for its side effect:
//
//	import _ "github.com/gogpu/sandbox/scenes"
package scenes
