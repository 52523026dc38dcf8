// Command pngdump decodes a PNG file with this module's decoder and reports
// its geometry, optionally re-encoding the decoded raster through the
// standard library's image/png so the result can be opened in any viewer.
// It exists to exercise the library from outside its own test suite, the
// way a graphical viewer's file-open handler would — windowing, menus, and
// bitmap presentation are all out of this repository's scope.
package main

import (
	"flag"
	"image"
	stdpng "image/png"
	"log"
	"os"

	png "github.com/XC-Zero/pngraster"
)

func main() {
	var (
		path           string
		order          string
		maxChunkBytes  uint
		allowInterlace bool
		out            string
	)
	flag.StringVar(&path, "png", "", "PNG file to decode")
	flag.StringVar(&order, "order", "rgba", "output channel order: rgba or bgra")
	flag.UintVar(&maxChunkBytes, "max-chunk-bytes", 100*1024*1024, "per-chunk size cap in bytes")
	flag.BoolVar(&allowInterlace, "allow-interlace", true, "decode Adam7-interlaced images instead of rejecting them")
	flag.StringVar(&out, "out", "", "optional path to re-encode the decoded raster as a standard PNG")
	flag.Parse()

	if path == "" {
		log.Fatal("usage: pngdump -png <path> [-out <path>] [-order rgba|bgra] [-allow-interlace=false]")
	}

	opts := png.DefaultOptions()
	opts.MaxChunkBytes = uint32(maxChunkBytes)
	opts.AllowInterlace = allowInterlace
	switch order {
	case "rgba":
		opts.ByteOrder = png.OrderRGBA
	case "bgra":
		opts.ByteOrder = png.OrderBGRA
	default:
		log.Fatalf("unknown -order %q, want rgba or bgra", order)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f, opts)
	if err != nil {
		log.Fatalf("decode failed: %+v", err)
	}
	log.Printf("decoded %s: %dx%d, %d bytes of pixels", path, img.Width, img.Height, len(img.Pixels))

	if out == "" {
		return
	}
	if opts.ByteOrder == png.OrderBGRA {
		log.Println("note: -out re-encodes assuming RGBA channel order; BGRA output will look colour-swapped")
	}
	if err := writeStandardPNG(out, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", out)
}

func writeStandardPNG(path string, img *png.Image) error {
	rgba := image.NewNRGBA(image.Rect(0, 0, int(img.Width), int(img.Height)))
	copy(rgba.Pix, img.Pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return stdpng.Encode(f, rgba)
}
