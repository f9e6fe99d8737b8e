// Command ppmtrans rotates, flips or transposes a portable pixmap.
//
// Usage:
//
//	ppmtrans [-rotate 0|90|180|270] [-flip horizontal|vertical] [-transpose]
//	         [-row-major|-col-major|-block-major] [-layout plain|blocked]
//	         [-time file] [file]
//
// The image is read from file, or standard input when no file is given, and
// the result is written to standard output as a raw (P6) pixmap.
//
// The traversal order flag also picks the storage layout: row-major and
// col-major use the plain layout, block-major the blocked one. -layout
// overrides that choice; a layout that cannot traverse in the requested
// order is rejected before any input is read. With -time, the CPU time of
// the transformation alone is appended to file.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/locality/blocked"
	"github.com/katalvlaran/locality/grid"
	"github.com/katalvlaran/locality/internal/cputime"
	"github.com/katalvlaran/locality/methods"
	"github.com/katalvlaran/locality/pnm"
	"github.com/katalvlaran/locality/transform"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// config is the validated command line.
type config struct {
	op       transform.Op
	order    grid.Order
	layout   string
	timeFile string
	input    string // "" means stdin
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var (
		cfg                          config
		rotate                       int
		flip                         string
		transpose                    bool
		rowMajor, colMajor, blockMaj bool
	)

	fs := flag.NewFlagSet("ppmtrans", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&rotate, "rotate", 0, "rotate clockwise by 0, 90, 180 or 270 degrees")
	fs.StringVar(&flip, "flip", "", "mirror the image: horizontal or vertical")
	fs.BoolVar(&transpose, "transpose", false, "mirror across the main diagonal")
	fs.BoolVar(&rowMajor, "row-major", false, "traverse rows first (plain layout)")
	fs.BoolVar(&colMajor, "col-major", false, "traverse columns first (plain layout)")
	fs.BoolVar(&blockMaj, "block-major", false, "traverse block by block (blocked layout)")
	fs.StringVar(&cfg.layout, "layout", "", "storage layout: plain or blocked")
	fs.StringVar(&cfg.timeFile, "time", "", "append a CPU time report to `file`")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.input = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("at most one input file, got %d", fs.NArg())
	}

	ops := 0
	op, err := transform.ParseRotation(rotate)
	if err != nil {
		return cfg, err
	}
	if op != transform.Rotate0 {
		ops++
		cfg.op = op
	}
	if flip != "" {
		if cfg.op, err = transform.ParseFlip(flip); err != nil {
			return cfg, err
		}
		ops++
	}
	if transpose {
		cfg.op = transform.Transpose
		ops++
	}
	if ops > 1 {
		return cfg, errors.New("-rotate, -flip and -transpose are mutually exclusive")
	}

	layout := "plain"
	orders := 0
	cfg.order = grid.Default
	if rowMajor {
		cfg.order = grid.RowMajor
		orders++
	}
	if colMajor {
		cfg.order = grid.ColMajor
		orders++
	}
	if blockMaj {
		cfg.order, layout = grid.BlockMajor, "blocked"
		orders++
	}
	if orders > 1 {
		return cfg, errors.New("-row-major, -col-major and -block-major are mutually exclusive")
	}
	if cfg.layout == "" {
		cfg.layout = layout
	}

	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "ppmtrans: ", 0)

	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Print(err)
		return 1
	}
	if err = transformImage(cfg, stdin, stdout); err != nil {
		logger.Print(err)
		return 1
	}

	return 0
}

// transformImage reads, transforms and writes one image. Nothing reaches
// stdout unless every step succeeds.
func transformImage(cfg config, stdin io.Reader, stdout io.Writer) error {
	s, mapFn, err := methods.Select(cfg.layout, cfg.order)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	img, err := pnm.Read(in, s)
	if err != nil {
		return err
	}
	defer func() { _ = img.Free() }()
	width, height := img.Width(), img.Height()

	var timer cputime.Timer
	timer.Start()
	out, err := transform.Apply(img.Pixels, s, mapFn, cfg.op)
	elapsed := timer.Stop()
	if err != nil {
		return err
	}
	if err = img.Replace(out); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = pnm.Write(&buf, img); err != nil {
		return err
	}

	if cfg.timeFile != "" {
		f, err := os.OpenFile(cfg.timeFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		err = cputime.Report(f, cfg.input, width, height, blocked.CacheLineSize, elapsed)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	_, err = stdout.Write(buf.Bytes())

	return err
}
