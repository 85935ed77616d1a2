package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/mread"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Fetcher  mread.Fetcher
	Parser   mread.Parser
	Renderer mread.Renderer
	Store    mread.ArticleStore

	// Opener is nil when the saved file should not be opened.
	Opener mread.Opener

	// Ext is the saved file's extension, including the dot.
	Ext string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string        `arg:"" help:"Medium article URL"`
	NoOpen  bool          `name:"no-open" help:"Don't open the saved article in a browser"`
	Debug   bool          `short:"d" help:"Enable debug logging"`
	Yes     bool          `short:"y" help:"Don't ask for confirmation on non-Medium URLs"`
	Timeout time.Duration `short:"t" help:"Fetch timeout per request (default 30s)"`
	Dir     string        `help:"Directory to save articles in (default ~/.medium-reader/articles)"`
	Format  string        `short:"f" help:"Output format: html or markdown"`
	Browser bool          `short:"b" help:"Fetch with a headless browser"`
	Enrich  string        `help:"Metadata enrichment: none, readability or trafilatura"`
	Config  string        `short:"c" type:"path" help:"Config file path"`
}

// ReadCmd fetches, extracts, renders, saves and opens one article.
type ReadCmd struct {
	URL string
	Yes bool
}
