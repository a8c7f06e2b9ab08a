// atlastool packs a terrain source sheet into the runtime texture atlas
// offline, for inspection and cache priming.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/halvden/hexfield/internal/engine/atlas"
	"github.com/halvden/hexfield/internal/engine/terrain"
	"github.com/halvden/hexfield/internal/logger"
	"github.com/halvden/hexfield/pkg/sheet"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := logger.Init("info", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "pack":
		cmdPack(args)
	case "stats":
		cmdStats(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`atlastool - terrain atlas packing utility

Usage:
  atlastool <command> [options]

Commands:
  pack <sheet> [-o out.png] [-cache file]  Pack the sheet, write the atlas
  stats <sheet>                            Pack and report catalogue stats

Examples:
  atlastool pack textures/terrain.png -o atlas.png
  atlastool pack textures/terrain.tga -cache cache/atlas.lz4
  atlastool stats textures/terrain.png`)
}

func cmdPack(args []string) {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	out := fs.String("o", "atlas.png", "Output PNG path")
	cachePath := fs.String("cache", "", "Also write an atlas cache file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool pack <sheet> [-o out.png] [-cache file]")
		os.Exit(1)
	}

	sh, a := pack(fs.Arg(0))

	f, err := os.Create(*out)
	if err != nil {
		fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, a.Pixels()); err != nil {
		fatal(err)
	}
	fmt.Printf("Atlas:  %s (%dx%d)\n", *out, atlas.Size, atlas.Size)

	if *cachePath != "" {
		if err := atlas.SaveCache(*cachePath, a, sh.Hash()); err != nil {
			fatal(err)
		}
		fmt.Printf("Cache:  %s\n", *cachePath)
	}
}

func cmdStats(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: atlastool stats <sheet>")
		os.Exit(1)
	}

	sh, a := pack(args[0])

	fmt.Printf("Sheet:  %s (%dx%d, hash %016x)\n", args[0], sh.Width(), sh.Height(), sh.Hash())
	fmt.Printf("Blocks: %d packed\n", a.Layout().Len())
}

func pack(path string) (*sheet.Sheet, *atlas.Atlas) {
	sh, err := sheet.Load(path)
	if err != nil {
		fatal(err)
	}

	m := terrain.BuildDefault(logger.Log)
	return sh, m.BuildAtlas(sh)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
