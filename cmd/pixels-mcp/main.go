package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/raw-pixels-mcp/internal/benchmark"
	"github.com/ironsheep/raw-pixels-mcp/internal/config"
	"github.com/ironsheep/raw-pixels-mcp/internal/document"
	"github.com/ironsheep/raw-pixels-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("raw-pixels-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "bench" {
		if len(os.Args) < 3 {
			log.Fatal("usage: raw-pixels-mcp bench <image> [output]")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := runBench(ctx, cfg, os.Args[2], os.Args[3:])
		stop()
		if err != nil {
			log.Fatalf("Benchmark error: %v", err)
		}
		return
	}

	if cfg.Debug() {
		log.Printf("Raw Pixels MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Raw files in %s, layers named %q", cfg.TempDir, cfg.LayerName)
	}

	srv := server.New(cfg)
	if err := srv.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("raw-pixels-mcp - MCP server for fast raw pixel access")
	fmt.Println()
	fmt.Println("Usage: raw-pixels-mcp [options]")
	fmt.Println("       raw-pixels-mcp bench <image> [output]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  bench            Time the color sampler against the raw buffer round trip.")
	fmt.Println("                   With [output], the edited document is saved there.")
	fmt.Println()
	fmt.Println("Environment variables (also read from ./.env):")
	fmt.Println("  PIXELS_MCP_LOG_LEVEL=debug     Enable debug logging")
	fmt.Println("  PIXELS_MCP_TEMP_DIR=<dir>      Directory for intermediate .raw files")
	fmt.Println("  PIXELS_MCP_LAYER_NAME=<name>   Name of imported layers (default Pixels)")
	fmt.Println("  PIXELS_MCP_SAMPLE_COUNT=<n>    Sampler benchmark size (default 1000)")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
}

func runBench(ctx context.Context, cfg *config.Config, path string, rest []string) error {
	doc, err := document.Open(path)
	if err != nil {
		return err
	}

	samp, err := benchmark.RunSampler(ctx, doc.Flatten(), cfg.SampleCount)
	if err != nil {
		return err
	}
	log.Printf("Sampled %d pixels in %.3f seconds", samp.Pixels, samp.Seconds)

	opts := benchmark.DefaultOptions()
	opts.SkipImport = len(rest) == 0
	host := document.NewRawFileHost(cfg.TempDir, cfg.LayerName)
	rep, err := benchmark.Run(ctx, doc, host, opts)
	if err != nil {
		return err
	}
	log.Printf("Snapshot in %.3f seconds", rep.SnapshotSeconds)
	log.Printf("Got %.3f megapixels in %.3f seconds", float64(rep.Read.Pixels)/1e6, rep.Read.Seconds)

	if len(rest) > 0 {
		if err := doc.Save(rest[0]); err != nil {
			return err
		}
		log.Printf("Layer %q created, saved to %s", rep.Layer, rest[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"sampler": samp,
		"raw":     rep,
	})
}
