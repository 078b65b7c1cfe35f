// uimtool is a CLI utility for batch conversion of UIM mesh assets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/amudkip/uimbatch/internal/batch"
	"github.com/amudkip/uimbatch/internal/config"
	"github.com/amudkip/uimbatch/internal/logger"
	"github.com/amudkip/uimbatch/internal/scene"
	"github.com/amudkip/uimbatch/pkg/uim"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "import":
		cmdImport(args)
	case "convert":
		cmdConvert(args)
	case "watch":
		cmdWatch(args)
	case "init-config":
		cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`uimtool - UIM asset batch conversion utility

Usage:
  uimtool <command> [options]

Commands:
  info <file.json>                Show mesh statistics for one UIM asset
  import <dir> [options]          Batch import a directory of UIM files
  convert <dir> -o <outdir>       Rewrite UIM files as .json + .txt pairs
  watch <dir> -o <outdir>         Convert continuously on file changes
  init-config                     Write a default config file

Common options:
  -config <path>   Config file (default: uimtool.yaml, then user config dir)
  -debug           Enable debug logging
  -invert-y        Flip Y coordinates (default true)

Examples:
  uimtool info scene_007.json
  uimtool import ./frames -flipbook -manifest frames.json
  uimtool convert ./frames -o ./out
  uimtool watch ./incoming -o ./out`)
}

// setup loads configuration and initializes logging for a command.
func setup(configPath string, debug bool) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{Debug: debug})
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// listUIMFiles returns the .json file names in dir, unordered; the
// importer applies the natural sort.
func listUIMFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uimtool info <file.json>")
		os.Exit(1)
	}
	setup(*configPath, *debug)

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	asset, err := uim.DecodeAsset(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ud := asset.Properties.UimData
	minX, minY, maxX, maxY := uim.VertexBounds(ud.GeomVertices)

	fmt.Printf("Asset:     %s\n", asset.Name)
	fmt.Printf("Type:      %s\n", asset.Type)
	fmt.Printf("Class:     %s\n", asset.Class)
	fmt.Printf("Vertices:  %d\n", len(ud.GeomVertices))
	fmt.Printf("Triangles: %d\n", len(ud.Indices)/3)
	fmt.Printf("Indices:   %d\n", len(ud.Indices))
	fmt.Printf("Bounds:    X [%.6f, %.6f]  Y [%.6f, %.6f]\n", minX, maxX, minY, maxY)

	if ud.VertexNum != len(ud.GeomVertices) {
		fmt.Printf("Warning: stored vertexNum=%d disagrees with vertex list length %d\n",
			ud.VertexNum, len(ud.GeomVertices))
	}
	if ud.IndexNum != len(ud.Indices) {
		fmt.Printf("Warning: stored indexNum=%d disagrees with index list length %d\n",
			ud.IndexNum, len(ud.Indices))
	}
}

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	invertY := fs.Bool("invert-y", true, "Flip Y coordinates")
	flipbook := fs.Bool("flipbook", false, "Generate visibility flipbook keyframes")
	manifest := fs.String("manifest", "", "Write a JSON manifest of the batch")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uimtool import <dir> [options]")
		os.Exit(1)
	}
	cfg := setup(*configPath, *debug)
	opts := importOptions(cfg, fs, *invertY, *flipbook)

	dir := fs.Arg(0)
	names, err := listUIMFiles(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	col := scene.NewCollection()
	res, err := batch.Import(col, dir, names, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d objects (%d skipped)\n", len(res.Imported), len(res.Skipped))
	for _, skip := range res.Skipped {
		fmt.Printf("  skipped %s: %s\n", skip.Name, skip.Reason)
	}
	if opts.BuildFlipbook {
		fmt.Printf("Timeline end frame: %d\n", col.FrameEnd())
		for _, obj := range res.Imported {
			fmt.Printf("  %-24s frame %d\n", obj.Name, obj.FrameIndex)
		}
	}

	if *manifest != "" {
		if err := batch.WriteManifest(*manifest, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Manifest written to %s\n", *manifest)
	}
}

// importOptions merges config defaults with explicitly set flags.
func importOptions(cfg *config.Config, fs *flag.FlagSet, invertY, flipbook bool) batch.ImportOptions {
	opts := batch.ImportOptions{
		InvertY:       cfg.IO.InvertY,
		BuildFlipbook: cfg.IO.BuildFlipbook,
		FrameSuffix:   cfg.IO.FrameSuffix,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "invert-y":
			opts.InvertY = invertY
		case "flipbook":
			opts.BuildFlipbook = flipbook
		}
	})
	return opts
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	invertY := fs.Bool("invert-y", true, "Flip Y coordinates")
	out := fs.String("o", "", "Output directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uimtool convert <dir> -o <outdir>")
		os.Exit(1)
	}
	cfg := setup(*configPath, *debug)
	cfg.Resolve(config.Flags{OutputDir: *out})
	opts := importOptions(cfg, fs, *invertY, false)

	dir := fs.Arg(0)
	names, err := listUIMFiles(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	col := scene.NewCollection()
	res, err := batch.Import(col, dir, names, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, skip := range res.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %s: %s\n", skip.Name, skip.Reason)
	}

	exported, err := batch.Export(col, cfg.IO.OutputDir, batch.ExportOptions{
		InvertY:      opts.InvertY,
		SelectedOnly: false,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d UIM JSON/TXT pairs to %s\n", exported, cfg.IO.OutputDir)
}

func cmdWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	debug := fs.Bool("debug", false, "Enable debug logging")
	invertY := fs.Bool("invert-y", true, "Flip Y coordinates")
	out := fs.String("o", "", "Output directory")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uimtool watch <dir> -o <outdir>")
		os.Exit(1)
	}
	cfg := setup(*configPath, *debug)
	cfg.Resolve(config.Flags{OutputDir: *out})
	opts := importOptions(cfg, fs, *invertY, false)

	w, err := batch.NewWatcher(fs.Arg(0), cfg.IO.OutputDir, opts.InvertY)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		w.Close()
	}()

	fmt.Printf("Watching %s -> %s (Ctrl-C to stop)\n", fs.Arg(0), cfg.IO.OutputDir)
	if err := w.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdInitConfig(args []string) {
	fs := flag.NewFlagSet("init-config", flag.ExitOnError)
	fs.Parse(args)

	path, err := config.Default().Save()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Config written to %s\n", path)
}
