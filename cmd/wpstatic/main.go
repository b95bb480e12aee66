package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/eringen/wpstatic"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "migrate"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "migrate":
		if err := runMigrate(); err != nil {
			if errors.Is(err, wpstatic.ErrNoPosts) {
				fmt.Fprintln(os.Stderr, "No posts found.")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	case "preview":
		app := wpstatic.New(configFromEnv())
		if err := app.Preview(wpstatic.EnvOr("PREVIEW_ADDR", ":3000")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("wpstatic %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runMigrate() error {
	cfg := configFromEnv()
	cfg.APIURL = wpstatic.MustEnv("WP_API_URL")
	app := wpstatic.New(cfg)
	return app.Run(context.Background())
}

func configFromEnv() wpstatic.Config {
	maxWidth, _ := strconv.Atoi(wpstatic.EnvOr("MAX_IMAGE_WIDTH", "0"))
	return wpstatic.Config{
		APIURL:      os.Getenv("WP_API_URL"),
		Name:        wpstatic.EnvOr("SITE_NAME", "Blog"),
		URL:         wpstatic.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      os.Getenv("SITE_AUTHOR"),
		OutputDir:   wpstatic.EnvOr("OUTPUT_DIR", "site"),

		MaxImageWidth: maxWidth,
	}
}

func printUsage() {
	fmt.Println(`wpstatic - Migrate a WordPress blog into a static HTML site

Usage:
  wpstatic <command>

Commands:
  migrate       Run the full migration (default)
  preview       Serve the generated site locally
  version       Print the wpstatic version
  help          Show this help message

Environment:
  WP_API_URL        WordPress posts endpoint (required for migrate)
  SITE_NAME         Site name for page titles and the header (default "Blog")
  SITE_URL          Canonical site URL for the feed and sitemap
  SITE_DESCRIPTION  Site description for the RSS channel
  SITE_AUTHOR       Owner name for the footer copyright line
  OUTPUT_DIR        Output directory (default "site")
  MAX_IMAGE_WIDTH   Downscale JPEGs wider than this (default 0 = keep originals)
  PREVIEW_ADDR      Preview listen address (default ":3000")`)
}
