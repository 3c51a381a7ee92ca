// Package scene reads and writes scene metadata: the title, description
// and copyright strings of a level, the identifiers of its baked lightmap
// textures, and the settings the lightmap baker used.
//
// The metadata is a flat key-value document:
//
//	Title: Courtyard
//	Description: Evening lighting pass
//	Copyright: (c) Example Studio
//	Lightmaps:
//	  - Lightmap0: 5f0e2a3c9b1d4e7f8a6b5c4d3e2f1a0b
//	    Lightmap1: 0123456789abcdef0123456789abcdef
//	    Lightmap2: 00000000000000000000000000000000
//	LightmapSettings:
//	  AtlasSize: 1024
//	  BounceCount: 1
//
// Documents are YAML; JSON scene files are accepted as input as well.
// The package does not depend on the matrix types of gmath and only shares
// its logger.
package scene
