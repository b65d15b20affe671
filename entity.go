package nubik

// Entity is a live game object. The set is closed: Player and
// FallingTile. Each variant implements its own update, draw and bloom
// capability instead of switching on a type tag.
type Entity interface {
	Update(w *WorldState, input Input, audio Audio, dt float32)
	Draw(batch *SpriteBatch, tiles Texture, view Vec2)

	// IsBloomSource reports whether the entity is re-rendered into the
	// bloom extraction pass.
	IsBloomSource() bool

	// Done reports whether the entity should be removed after this tick.
	Done() bool
}

// Player movement tuning.
const (
	PlayerWidth  = 12
	PlayerHeight = 28

	playerSpeed     = 140
	playerJumpSpeed = 420

	// playerAtlasIndex is the player sprite's cell in the tile atlas.
	playerAtlasIndex = 15
)

// Player is the controllable character: horizontal movement, jumping,
// gravity and digging straight down.
type Player struct {
	Pos      Vec2
	Vel      Vec2
	onGround bool
	digHeld  bool
}

func (p *Player) IsBloomSource() bool { return false }
func (p *Player) Done() bool          { return false }

// Update applies input and gravity, then resolves grid collisions one
// axis at a time.
func (p *Player) Update(w *WorldState, input Input, audio Audio, dt float32) {
	p.Vel.X = 0
	if input.IsKeyDown(KeyLeft) {
		p.Vel.X = -playerSpeed
	}
	if input.IsKeyDown(KeyRight) {
		p.Vel.X = playerSpeed
	}
	if input.IsKeyDown(KeyUp) && p.onGround {
		p.Vel.Y = -playerJumpSpeed
	}
	p.Vel.Y += Gravity * dt

	p.moveX(w, p.Vel.X*dt)
	p.moveY(w, p.Vel.Y*dt)

	// One dig per key press, not per frame held.
	if input.IsKeyDown(KeyDown) {
		if !p.digHeld {
			p.digHeld = true
			tx := int(p.Pos.X+PlayerWidth/2) / TileSize
			ty := int(p.Pos.Y+PlayerHeight) / TileSize
			w.Dig(tx, ty, audio)
		}
	} else {
		p.digHeld = false
	}
}

func (p *Player) moveX(w *WorldState, dx float32) {
	p.Pos.X += dx
	if !p.collides(w) {
		return
	}

	if dx > 0 {
		p.Pos.X = float32((int(p.Pos.X)+PlayerWidth)/TileSize*TileSize) - PlayerWidth
	} else {
		p.Pos.X = float32(int(p.Pos.X)/TileSize*TileSize + TileSize)
	}
	p.Vel.X = 0
}

func (p *Player) moveY(w *WorldState, dy float32) {
	p.Pos.Y += dy
	p.onGround = false
	if !p.collides(w) {
		return
	}

	if dy > 0 {
		p.Pos.Y = float32((int(p.Pos.Y)+PlayerHeight)/TileSize*TileSize) - PlayerHeight
		p.onGround = true
	} else {
		p.Pos.Y = float32(int(p.Pos.Y)/TileSize*TileSize + TileSize)
	}
	p.Vel.Y = 0
}

// collides samples the grid at the corners of the player's bounding box.
func (p *Player) collides(w *WorldState) bool {
	return w.SolidAt(p.Pos.X, p.Pos.Y) ||
		w.SolidAt(p.Pos.X+PlayerWidth-1, p.Pos.Y) ||
		w.SolidAt(p.Pos.X, p.Pos.Y+PlayerHeight-1) ||
		w.SolidAt(p.Pos.X+PlayerWidth-1, p.Pos.Y+PlayerHeight-1)
}

// Draw emits the player sprite.
func (p *Player) Draw(batch *SpriteBatch, tiles Texture, view Vec2) {
	u0, v0, u1, v1 := atlasUV(playerAtlasIndex)
	batch.DrawRect(tiles, p.Pos.X-view.X, p.Pos.Y-view.Y, PlayerWidth, PlayerHeight, u0, v0, u1, v1, ColorWhite)
}

// FallingTile is a grid tile in free fall after losing support. Falling
// tiles glow: they are the bloom sources of the frame pipeline.
type FallingTile struct {
	Tile   Tile
	Pos    Vec2
	Vel    float32
	landed bool
}

func (f *FallingTile) IsBloomSource() bool { return true }
func (f *FallingTile) Done() bool          { return f.landed }

// Update accelerates the tile downward and snaps it back into the grid
// when the cell below is solid.
func (f *FallingTile) Update(w *WorldState, input Input, audio Audio, dt float32) {
	f.Vel += Gravity * dt
	f.Pos.Y += f.Vel * dt

	tx := int(f.Pos.X) / TileSize
	bottom := int(f.Pos.Y) + TileSize
	if !w.TileAt(tx, bottom/TileSize).Solid() {
		return
	}

	w.setTile(tx, bottom/TileSize-1, f.Tile)
	f.landed = true
	audio.PlayImpact()
}

// Draw emits the tile quad at its free-fall position.
func (f *FallingTile) Draw(batch *SpriteBatch, tiles Texture, view Vec2) {
	u0, v0, u1, v1 := f.Tile.UV()
	batch.DrawRect(tiles, f.Pos.X-view.X, f.Pos.Y-view.Y, TileSize, TileSize, u0, v0, u1, v1, ColorWhite)
}
