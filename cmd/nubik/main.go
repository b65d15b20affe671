// Command nubik runs the tile game.
//
// Controls: arrows or WASD to move and jump, down to dig the tile under
// the player, escape to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/VVatashi/nubik"
	"github.com/VVatashi/nubik/backend/opengl"
)

const windowTitle = "nubik"

var (
	settingsPath = flag.String("settings", "settings.yaml", "Path to the settings file")
	assetDir     = flag.String("assets", "assets", "Path to the asset directory")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := nubik.LoadSettings(*settingsPath)
	if err != nil {
		return err
	}

	window, err := opengl.NewWindow(settings.Window.Width, settings.Window.Height, windowTitle, settings.Window.VSync)
	if err != nil {
		return err
	}
	defer window.Terminate()

	width, height := window.FramebufferSize()
	pipeline, err := opengl.NewPipeline(width, height, opengl.WithSamples(settings.MSAASamples))
	if err != nil {
		return err
	}
	defer pipeline.Delete()

	window.SetResizeCallback(pipeline.Resize)

	tiles, err := loadTexture(*assetDir + "/tiles.png")
	if err != nil {
		return err
	}
	defer tiles.Delete()
	// Tile edges must stay crisp when the atlas is minified.
	tiles.SetParameter(opengl.TextureMinFilter, opengl.FilterNearest)
	tiles.SetParameter(opengl.TextureMagFilter, opengl.FilterNearest)

	fontAtlas, err := loadTexture(*assetDir+"/font.png", opengl.WithMSDF())
	if err != nil {
		return err
	}
	defer fontAtlas.Delete()

	font, err := nubik.LoadFont(*assetDir + "/font.bin")
	if err != nil {
		return err
	}
	log.Printf("loaded font with %d glyphs", font.GlyphCount())

	world := nubik.NewWorldState(128, 64)
	audio := nubik.NopAudio{}

	lastTime := window.Time()
	for !window.ShouldClose() {
		window.Poll()
		if window.Input().IsKeyDown(nubik.KeyEscape) {
			break
		}

		now := window.Time()
		dt := float32(now - lastTime)
		lastTime = now

		world.Update(window.Input(), audio, dt)

		width, height := window.FramebufferSize()
		viewW, viewH := float32(width), float32(height)
		world.UpdateView(viewW, viewH)

		pipeline.Frame(now*1000,
			func(batch *nubik.SpriteBatch) {
				world.Draw(batch, tiles, viewW, viewH)
				batch.DrawStringOffCenter(fontAtlas, font, "nubik", viewW/2, 40, 32, nubik.ColorWhite)
			},
			func(batch *nubik.SpriteBatch) {
				world.DrawBloom(batch, tiles)
			})

		window.Swap()
	}

	return nil
}

func loadTexture(path string, opts ...opengl.TextureOption) (*opengl.Texture, error) {
	img, err := nubik.LoadImage(path)
	if err != nil {
		return nil, err
	}

	texture := opengl.NewTexture(img.Width, img.Height, opts...)
	texture.SetImage(img.Width, img.Height, img.Pixels)
	return texture, nil
}
