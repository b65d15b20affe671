package nubik

// Tile identifies one cell kind in the world grid.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileGrass
	TileDirt
	TileStone
)

// World geometry and simulation constants. Distances are in pixels,
// times in seconds.
const (
	// TileSize is the edge length of one grid cell on screen.
	TileSize = 16

	// MaxDelta caps the simulation step so a stalled frame cannot
	// destabilize the physics. Work is never cancelled, only clamped.
	MaxDelta = 0.033

	// Gravity accelerates the player and falling tiles.
	Gravity = 1200
)

// tileAtlasColumns is the layout of the tile atlas texture: a square
// grid of equally sized cells indexed row-major.
const tileAtlasColumns = 4

// atlasUV returns the normalized atlas region of a cell index.
func atlasUV(index int) (u0, v0, u1, v1 float32) {
	step := float32(1) / tileAtlasColumns
	column := index % tileAtlasColumns
	row := index / tileAtlasColumns

	u0 = float32(column) * step
	v0 = float32(row) * step
	return u0, v0, u0 + step, v0 + step
}

// UV returns the tile's atlas region. TileEmpty has no region.
func (t Tile) UV() (u0, v0, u1, v1 float32) {
	return atlasUV(int(t))
}

// Solid reports whether the tile blocks movement and supports tiles
// above it.
func (t Tile) Solid() bool {
	return t != TileEmpty
}

// WorldState owns the full mutable game state: the tile grid, the live
// entities and the camera. It is passed explicitly into update and draw
// calls; there is no process-wide game state.
type WorldState struct {
	Width  int // grid width in tiles
	Height int // grid height in tiles

	tiles    []Tile // row-major
	Entities []Entity
	Player   *Player
	View     Vec2
	SkyColor Color
}

// NewWorldState generates a world of the given grid size: a flat
// grass-topped terrain over dirt and stone, with the player spawned
// above the surface.
func NewWorldState(width, height int) *WorldState {
	w := &WorldState{
		Width:    width,
		Height:   height,
		tiles:    make([]Tile, width*height),
		SkyColor: Color{R: 0.53, G: 0.81, B: 0.92, A: 1},
	}

	surface := height / 2
	for y := surface; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case y == surface:
				w.setTile(x, y, TileGrass)
			case y < surface+4:
				w.setTile(x, y, TileDirt)
			default:
				w.setTile(x, y, TileStone)
			}
		}
	}

	w.Player = &Player{
		Pos: Vec2{
			X: float32(width) / 2 * TileSize,
			Y: float32(surface-2) * TileSize,
		},
	}
	w.Entities = append(w.Entities, w.Player)

	return w
}

// TileAt returns the tile at grid coordinates. Cells outside the grid
// read as solid stone so the world edge blocks movement and catches
// falling tiles.
func (w *WorldState) TileAt(tx, ty int) Tile {
	if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
		return TileStone
	}
	return w.tiles[ty*w.Width+tx]
}

func (w *WorldState) setTile(tx, ty int, t Tile) {
	if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
		return
	}
	w.tiles[ty*w.Width+tx] = t
}

// SolidAt reports whether the pixel position lies in a solid cell.
func (w *WorldState) SolidAt(x, y float32) bool {
	return w.TileAt(int(x)/TileSize, int(y)/TileSize).Solid()
}

// Dig breaks the tile at grid coordinates, triggers the dig sound and
// releases the unsupported tiles above it as falling entities.
func (w *WorldState) Dig(tx, ty int, audio Audio) {
	if !w.TileAt(tx, ty).Solid() || tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height {
		return
	}

	w.setTile(tx, ty, TileEmpty)
	audio.PlayDig()
	w.releaseGroupAbove(tx, ty)
}

// releaseGroupAbove converts the contiguous run of tiles directly above
// an emptied cell into falling entities, top of the run first so lower
// tiles do not land on tiles that are about to fall.
func (w *WorldState) releaseGroupAbove(tx, ty int) {
	top := ty - 1
	for top >= 0 && w.TileAt(tx, top).Solid() {
		top--
	}

	for y := top + 1; y < ty; y++ {
		tile := w.TileAt(tx, y)
		w.setTile(tx, y, TileEmpty)
		w.Entities = append(w.Entities, &FallingTile{
			Tile: tile,
			Pos:  Vec2{X: float32(tx) * TileSize, Y: float32(y) * TileSize},
		})
	}
}

// Update advances the simulation by one tick. The step is clamped to
// MaxDelta; entities update serially in insertion order and finished
// entities are removed afterwards.
func (w *WorldState) Update(input Input, audio Audio, dt float32) {
	if dt > MaxDelta {
		dt = MaxDelta
	}

	for _, entity := range w.Entities {
		entity.Update(w, input, audio, dt)
	}

	live := w.Entities[:0]
	for _, entity := range w.Entities {
		if !entity.Done() {
			live = append(live, entity)
		}
	}
	w.Entities = live
}

// UpdateView centers the camera on the player, clamped to the world
// bounds.
func (w *WorldState) UpdateView(viewWidth, viewHeight float32) {
	w.View.X = clamp(w.Player.Pos.X+PlayerWidth/2-viewWidth/2, 0, float32(w.Width)*TileSize-viewWidth)
	w.View.Y = clamp(w.Player.Pos.Y+PlayerHeight/2-viewHeight/2, 0, float32(w.Height)*TileSize-viewHeight)
}

// Draw emits the visible tile grid and every entity into the batch.
func (w *WorldState) Draw(batch *SpriteBatch, tiles Texture, viewWidth, viewHeight float32) {
	minX := int(w.View.X) / TileSize
	minY := int(w.View.Y) / TileSize
	maxX := int(w.View.X+viewWidth)/TileSize + 1
	maxY := int(w.View.Y+viewHeight)/TileSize + 1

	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			tile := w.TileAt(tx, ty)
			if tx < 0 || tx >= w.Width || ty < 0 || ty >= w.Height || !tile.Solid() {
				continue
			}

			u0, v0, u1, v1 := tile.UV()
			batch.DrawRect(tiles,
				float32(tx)*TileSize-w.View.X, float32(ty)*TileSize-w.View.Y,
				TileSize, TileSize, u0, v0, u1, v1, ColorWhite)
		}
	}

	for _, entity := range w.Entities {
		entity.Draw(batch, tiles, w.View)
	}
}

// DrawBloom emits only the bloom-source entities. The frame pipeline
// renders this subset in isolation to seed the blur passes.
func (w *WorldState) DrawBloom(batch *SpriteBatch, tiles Texture) {
	for _, entity := range w.Entities {
		if entity.IsBloomSource() {
			entity.Draw(batch, tiles, w.View)
		}
	}
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
