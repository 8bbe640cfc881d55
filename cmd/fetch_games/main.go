package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/csvy/hockey-elo/internal/adapters/outbound/csvfetch"
	"github.com/csvy/hockey-elo/internal/config"
	"github.com/csvy/hockey-elo/internal/telemetry"
)

func main() {
	cfg := config.Load()

	outDir := flag.String("out", cfg.DataDir, "directory for downloaded CSVs")
	rps := flag.Float64("rps", cfg.FetchRPS, "max requests per second")
	flag.Parse()

	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	urls := flag.Args()
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fetch_games [flags] url [url ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := csvfetch.NewClient(*rps, cfg.FetchTimeout)

	failed := 0
	for _, url := range urls {
		dest := filepath.Join(*outDir, destName(url))
		if err := client.Fetch(ctx, url, dest); err != nil {
			telemetry.Errorf("fetch %s: %v", url, err)
			failed++
			if ctx.Err() != nil {
				break
			}
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// destName derives a filename from the URL path, defaulting the
// extension to .csv.
func destName(url string) string {
	base := filepath.Base(strings.TrimSuffix(url, "/"))
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "games"
	}
	if filepath.Ext(base) == "" {
		base += ".csv"
	}
	return base
}
