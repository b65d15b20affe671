// Command fontgen converts the glyph layout CSV emitted by
// msdf-atlas-gen into the binary glyph table the game loads at startup.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/VVatashi/nubik"
)

var (
	inPath  = flag.String("in", "font.csv", "Input glyph layout CSV")
	outPath = flag.String("out", "font.bin", "Output binary glyph table")
)

func main() {
	flag.Parse()

	file, err := os.Open(*inPath)
	if err != nil {
		log.Fatalln("open input:", err)
	}
	defer file.Close()

	font, err := nubik.ParseGlyphCSV(file)
	if err != nil {
		log.Fatalln("parse glyphs:", err)
	}

	if err := os.WriteFile(*outPath, font.SerializeData(), 0o644); err != nil {
		log.Fatalln("write output:", err)
	}

	log.Printf("wrote %d glyphs to %s", font.GlyphCount(), *outPath)
}
