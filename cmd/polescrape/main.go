package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
	"github.com/hamudal/Hall-of-Pole-Version-6/csv"
	psgoquery "github.com/hamudal/Hall-of-Pole-Version-6/goquery"
	pshttp "github.com/hamudal/Hall-of-Pole-Version-6/http"
	"github.com/hamudal/Hall-of-Pole-Version-6/rod"
	"github.com/hamudal/Hall-of-Pole-Version-6/scrape"
	psslog "github.com/hamudal/Hall-of-Pole-Version-6/slog"
	"github.com/hamudal/Hall-of-Pole-Version-6/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("polescrape"),
		kong.Description("Scrape pole studio listing pages to CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	urls, err := collectURLs(cli)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no listing URLs provided")
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	var fetcher polestudio.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = pshttp.NewFetcher(pshttp.WithTimeout(timeout))
	}
	deps.Fetcher = psslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	deps.Extractor = psgoquery.NewExtractor()
	deps.Log = psslog.NewLoggingLog(scrape.NewLog(), logger)
	deps.Limiter = scrape.NewDomainLimiter(cli.Rate)
	deps.Concurrency = cli.Concurrency

	out, closeOut, err := openOutput(cli.Output, stdout)
	if err != nil {
		return err
	}
	defer closeOut()
	deps.Writer = csv.NewWriter(out)

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()
		deps.Studios = sqlite.NewStudioService(db)
	}

	cmd := &ScrapeCmd{URLs: urls}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output      string        `short:"o" default:"studios.csv" help:"CSV output path (\"-\" for stdout)"`
	DB          string        `help:"SQLite database path; when set, records are also persisted"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate        float64       `default:"1" help:"Max requests per second per domain"`
	Browser     bool          `help:"Render pages in a headless browser (needed for client-rendered listings)"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
	URLsFile    string        `short:"f" help:"File with one listing URL per line"`
	URLs        []string      `arg:"" optional:"" help:"Listing page URLs to scrape"`
}

// collectURLs merges positional URLs with the optional URL file, preserving
// order: file entries first, then arguments.
func collectURLs(cli *CLI) ([]string, error) {
	var urls []string

	if cli.URLsFile != "" {
		f, err := os.Open(cli.URLsFile)
		if err != nil {
			return nil, fmt.Errorf("opening URL file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			urls = append(urls, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading URL file: %w", err)
		}
	}

	urls = append(urls, cli.URLs...)
	return urls, nil
}

// openOutput opens the CSV destination. "-" writes to stdout.
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
