package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/icondeck"
	"github.com/fwojciec/icondeck/discover"
	"github.com/fwojciec/icondeck/etree"
	"github.com/fwojciec/icondeck/goquery"
	deckhttp "github.com/fwojciec/icondeck/http"
	deckslog "github.com/fwojciec/icondeck/slog"
	"github.com/fwojciec/icondeck/web"
)

// requestsPerSecond is the per-domain throttle for raw file fetches.
const requestsPerSecond = 4.0

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Optional overrides for end-to-end testing.
	Pipeline *discover.Pipeline
	Refresh  web.RefreshFunc
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("icondeck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'icondeck --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := web.ParseConfig()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Repo = repoFromFlags(cli, cfg)
	deps.Logger = logger
	deps.Config = cfg

	pipeline := m.Pipeline
	if pipeline == nil {
		pipeline = newPipeline(logger)
	}
	deps.Pipeline = pipeline

	refresh := m.Refresh
	if refresh == nil {
		refresh = func(ctx context.Context) (icondeck.Collection, *icondeck.Index, error) {
			return runDiscovery(ctx, pipeline, deps.Repo, nil)
		}
	}
	deps.Refresh = refresh

	return kongCtx.Run(deps)
}

// newPipeline wires the default discovery pipeline: index manifest first,
// then the repo-hosting contents API, then directory-listing scraping.
func newPipeline(logger *slog.Logger) *discover.Pipeline {
	client := &http.Client{Timeout: deckhttp.DefaultFetchTimeout}

	sources := []icondeck.Source{
		deckhttp.NewIndexSource(client),
		deckhttp.NewContentsSource(client),
		deckhttp.NewListingSource(client, goquery.NewListingParser()),
	}
	for i, source := range sources {
		sources[i] = deckslog.NewLoggingSource(source, logger)
	}

	return &discover.Pipeline{
		Sources:     sources,
		Fetcher:     deckslog.NewLoggingFetcher(deckhttp.NewFetcher(), logger),
		Inspector:   etree.NewInspector(),
		RateLimiter: discover.NewDomainLimiter(requestsPerSecond),
		RetryDelays: discover.DefaultRetryDelays(),
		Logger:      logger,
	}
}

// runDiscovery executes one discovery run and builds the manifest from it.
func runDiscovery(ctx context.Context, pipeline *discover.Pipeline, repo icondeck.Repo, progress discover.ProgressFunc) (icondeck.Collection, *icondeck.Index, error) {
	icons, result, err := pipeline.Run(ctx, repo, progress)
	if err != nil {
		return nil, nil, err
	}
	return icons, icondeck.BuildIndex(icons, result.RunID, time.Now().UTC()), nil
}

// repoFromFlags combines environment configuration with CLI overrides.
func repoFromFlags(cli *CLI, cfg web.Config) icondeck.Repo {
	repo := cfg.Repo()
	if cli.Owner != "" {
		repo.Owner = cli.Owner
	}
	if cli.Repo != "" {
		repo.Name = cli.Repo
	}
	if cli.Branch != "" {
		repo.Branch = cli.Branch
	}
	if len(cli.Folders) > 0 {
		repo.Folders = cli.Folders
	}
	if cli.BaseURL != "" {
		repo.BaseURL = cli.BaseURL
	}
	return repo
}
