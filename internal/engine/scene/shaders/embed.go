// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader displaces the flat grid by the elevation texture.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader shades the terrain from the surface texture.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// CloudsVertexShader is the vertex shader for the cloud layer.
//
//go:embed clouds.vert
var CloudsVertexShader string

// CloudsFragmentShader is the fragment shader for the cloud layer.
//
//go:embed clouds.frag
var CloudsFragmentShader string
