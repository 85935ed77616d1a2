package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mread"
	"github.com/fwojciec/mread/browser"
	"github.com/fwojciec/mread/chain"
	"github.com/fwojciec/mread/config"
	"github.com/fwojciec/mread/fs"
	"github.com/fwojciec/mread/goquery"
	"github.com/fwojciec/mread/htmltemplate"
	"github.com/fwojciec/mread/htmltomarkdown"
	mhttp "github.com/fwojciec/mread/http"
	"github.com/fwojciec/mread/readability"
	"github.com/fwojciec/mread/rod"
	mslog "github.com/fwojciec/mread/slog"
	"github.com/fwojciec/mread/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin answers the confirmation prompt.
	Stdin io.Reader

	// Getenv looks up environment variables.
	Getenv func(string) string

	// Services for end-to-end testing. When nil, Run builds the real ones.
	Fetcher mread.Fetcher
	Opener  mread.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Getenv: os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mread"),
		kong.Description("Fetch a Medium article and save it as a clean standalone page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided. Run 'mread --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded",
		"format", cfg.Format,
		"enrichment", cfg.Enrichment,
		"browser", cfg.Browser,
		"timeout", cfg.Timeout,
	)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	base := m.Fetcher
	if base == nil {
		base, err = newBaseFetcher(cfg)
		if err != nil {
			if cfg.Browser {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			}
			return fmt.Errorf("failed to create fetcher: %w", err)
		}
	}
	thresholds := goqueryThresholds(cfg.Thresholds)
	fetcher := chain.NewFetcher(
		mslog.NewLoggingFetcher(base, logger),
		goquery.NewPaywallDetector(thresholds),
		chain.WithSources(sources(cfg.Proxies)),
		chain.WithLogger(logger),
	)
	defer fetcher.Close()
	deps.Fetcher = fetcher

	parserOpts := []goquery.ParserOption{goquery.WithThresholds(thresholds)}
	switch cfg.Enrichment {
	case config.EnrichReadability:
		parserOpts = append(parserOpts, goquery.WithEnricher(readability.NewExtractor()))
	case config.EnrichTrafilatura:
		parserOpts = append(parserOpts, goquery.WithEnricher(trafilatura.NewExtractor()))
	}
	deps.Parser = mslog.NewLoggingParser(goquery.NewParser(parserOpts...), logger)

	switch cfg.Format {
	case config.FormatMarkdown:
		deps.Renderer = htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter())
		deps.Ext = ".md"
	default:
		deps.Renderer = htmltemplate.NewRenderer()
		deps.Ext = ".html"
	}

	dir := cfg.Storage.Dir
	if dir == "" {
		dir, err = fs.DefaultDir()
		if err != nil {
			return err
		}
	}
	deps.Store = mslog.NewLoggingStore(fs.NewStore(dir), logger)

	if !cli.NoOpen {
		deps.Opener = m.Opener
		if deps.Opener == nil {
			deps.Opener = browser.NewOpener()
		}
	}

	cmd := &ReadCmd{
		URL: cli.URL,
		Yes: cli.Yes,
	}
	return cmd.Run(deps)
}

// loadConfig reads the config file and applies flags on top of it.
func (m *Main) loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	if path == "" {
		var err error
		if path, err = config.DefaultPath(m.Getenv); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cli.Timeout > 0 {
		cfg.Timeout = cli.Timeout
	}
	if cli.Dir != "" {
		cfg.Storage.Dir = cli.Dir
	}
	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.Enrich != "" {
		cfg.Enrichment = cli.Enrich
	}
	if cli.Browser {
		cfg.Browser = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBaseFetcher returns the fetcher every chain source goes through.
func newBaseFetcher(cfg *config.Config) (mread.Fetcher, error) {
	if cfg.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(cfg.Timeout)}
		if cfg.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cfg.UserAgent))
		}
		return rod.NewFetcher(opts...)
	}

	opts := []mhttp.Option{
		mhttp.WithTimeout(cfg.Timeout),
		mhttp.WithRateLimit(cfg.RateLimit),
	}
	if cfg.UserAgent != "" {
		opts = append(opts, mhttp.WithUserAgent(cfg.UserAgent))
	}
	return mhttp.NewFetcher(opts...), nil
}

// sources returns the primary source followed by the configured proxies.
func sources(proxies []config.Proxy) []chain.Source {
	out := []chain.Source{chain.Primary()}
	for _, p := range proxies {
		out = append(out, chain.Proxy(p.Name, p.Prefix))
	}
	return out
}

func goqueryThresholds(t config.Thresholds) goquery.Thresholds {
	return goquery.Thresholds{
		BodyMinChars:           t.BodyMinChars,
		StructuredBodyMinChars: t.StructuredBodyMinChars,
		PaywallBodyMaxChars:    t.PaywallBodyMaxChars,
		PaywallPageMaxChars:    t.PaywallPageMaxChars,
		EllipsisWindow:         t.EllipsisWindow,
	}
}
