// Command img2num turns raster images into paint-by-numbers SVGs.
//
// Run with no flags to drop into the interactive workbench (see
// pkg/cli.RunCLI). Pass -in and -out for a non-interactive, scriptable
// single-shot conversion instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Fepozopo/img2num/pkg/cli"
	"github.com/Fepozopo/img2num/pkg/img2num"
	"github.com/Fepozopo/img2num/pkg/semver"
)

func main() {
	var (
		in             = flag.String("in", "", "input image path (enables one-shot mode)")
		out            = flag.String("out", "out.svg", "output SVG path (one-shot mode)")
		k              = flag.Int("k", 8, "palette size for k-means quantization")
		minRegionArea  = flag.Int("min-region-area", 16, "regions smaller than this many pixels are merged away")
		colorSpaceFlag = flag.String("color-space", "lab", "color space for quantization and bilateral filtering: lab|rgb")
		seed           = flag.Int64("seed", 1, "RNG seed for reproducible k-means++ seeding")
		drawBorders    = flag.Bool("borders", false, "also stroke each region's outline in the output SVG")
		showVersion    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if *in == "" {
		cli.RunCLI()
		return
	}

	if err := runOneShot(*in, *out, *k, *minRegionArea, *colorSpaceFlag, *seed, *drawBorders); err != nil {
		fmt.Fprintln(os.Stderr, "img2num:", err)
		os.Exit(1)
	}
}

func printVersion() {
	v, err := semver.Parse(cli.Version)
	if err != nil {
		fmt.Printf("img2num %s\n", cli.Version)
		return
	}
	fmt.Printf("img2num v%s\n", v.String())
}

func runOneShot(inPath, outPath string, k, minRegionArea int, colorSpaceFlag string, seed int64, drawBorders bool) error {
	buf, err := cli.DecodeRgba8(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	cs, err := parseColorSpace(colorSpaceFlag)
	if err != nil {
		return err
	}

	opts := img2num.DefaultPipelineOptions()
	opts.KMeansK = k
	opts.KMeansColorSpace = cs
	opts.BilateralColorSpace = cs
	opts.MinRegionArea = minRegionArea
	opts.RNGSeed = seed
	opts.SVG.DrawContourBorders = drawBorders

	result, err := img2num.Convert(buf, opts)
	if err != nil {
		return fmt.Errorf("converting %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, []byte(result.SVG), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s (%d regions)\n", outPath, len(result.Graph.Regions))
	return nil
}

func parseColorSpace(s string) (img2num.ColorSpace, error) {
	switch s {
	case "lab", "Lab", "LAB":
		return img2num.ColorSpaceLab, nil
	case "rgb", "RGB":
		return img2num.ColorSpaceRGB, nil
	default:
		return 0, fmt.Errorf("unknown color space %q (want lab or rgb)", s)
	}
}
