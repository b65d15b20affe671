/*
Package nubik implements the device-independent core of a real-time 2D
tile game: a batching 2D renderer, a texture-sorted sprite batch, glyph
fonts, and the game world simulation.

# Overview

Geometry flows through three layers. Game code records draw calls into a
SpriteBatch, which groups them into per-texture buckets so a full frame
needs at most one texture bind per distinct texture. On End the batch
replays each bucket through the Renderer, which accumulates interleaved
vertex data CPU-side and flushes it to a Mesh as a single draw call.
Batches split transparently when the fixed vertex budget would overflow,
so callers can stream unlimited geometry through one fixed-size buffer.

Everything that touches the GPU is behind small interfaces (Mesh,
Texture) implemented by backend/opengl, which also owns the multi-pass
bloom pipeline. Tests substitute recording fakes for those interfaces.

# Quick Start

	mesh := opengl.NewMesh(nubik.MaxVertices, opengl.SpriteVertexAttributes())
	renderer := nubik.NewRenderer(mesh)
	batch := nubik.NewSpriteBatch(renderer)

	// Game loop
	batch.Begin()
	world.Draw(batch, tileTexture, viewWidth, viewHeight)
	batch.End()
*/
package nubik
