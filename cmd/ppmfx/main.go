// Command ppmfx applies a filter to a plain-text pixel-map (PPM) image.
//
// Usage:
//
//	ppmfx [-v] <source> <destination> <filter>
//
// where filter is one of emboss, invert, grayscale, motionblur.
// Paths ending in .gz are read and written gzip-compressed.
// The destination is written only after the whole pipeline succeeds.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pixfx/ppmfx"
)

func main() {
	verbose := flag.Bool("v", false, "log pipeline status to stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	if *verbose {
		ppmfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	srcPath := flag.Arg(0)
	dstPath := flag.Arg(1)
	filterName := flag.Arg(2)

	text, err := readFile(srcPath)
	if err != nil {
		log.Fatalf("ppmfx: %v", err)
	}

	out, err := ppmfx.Run(text, filterName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := writeFile(dstPath, out); err != nil {
		log.Fatalf("ppmfx: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ppmfx [-v] <source> <destination> <filter>\n")
	fmt.Fprintf(os.Stderr, "filters: emboss, invert, grayscale, motionblur\n")
	flag.PrintDefaults()
}

// readFile reads the whole source file, gunzipping paths ending in .gz.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeFile writes text to path, gzipping paths ending in .gz.
func writeFile(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gw = gzip.NewWriter(f)
		w = gw
	}

	if _, err := io.WriteString(w, text); err != nil {
		_ = f.Close()
		return err
	}
	if gw != nil {
		if err := gw.Close(); err != nil {
			_ = f.Close()
			return err
		}
	}
	return f.Close()
}
