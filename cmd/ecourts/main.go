package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rjoshi/ecourts"
	"github.com/rjoshi/ecourts/fs"
	"github.com/rjoshi/ecourts/gopretty"
	"github.com/rjoshi/ecourts/goquery"
	"github.com/rjoshi/ecourts/resty"
	"github.com/rjoshi/ecourts/rod"
	"github.com/rjoshi/ecourts/scrape"
	ecourtslog "github.com/rjoshi/ecourts/slog"
	"github.com/rjoshi/ecourts/sqlite"
	"github.com/rjoshi/ecourts/toml"
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
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Database path. Resolved from ECOURTS_DB, then the config file, then
	// ~/.ecourts/ecourts.db.
	DBPath string

	// SQLite database used by the session log.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService ecourts.SessionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     os.Getenv("ECOURTS_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ecourts"),
		kong.Description("Retrieve public court-case data from the eCourts portal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ecourts --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	// Load configuration
	config, err := toml.Load(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set ECOURTS_CONFIG to use a different config file\n")
		return fmt.Errorf("failed to load config from %q: %w", m.ConfigPath, err)
	}
	deps.Config = config

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	dbPath := m.DBPath
	if dbPath == "" {
		dbPath = config.DBPath
	}
	if dbPath == "" {
		dbPath = defaultDBPath()
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ECOURTS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SessionService = sqlite.NewSessionService(m.DB)
	deps.DB = m.DB
	deps.Sessions = m.SessionService

	// Wire the browser session for the commands that capture from the portal
	if cmd == "causelist" || cmd == "search" {
		browser, err := rod.NewBrowser(config.BaseURL)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		extractor := goquery.NewExtractor()
		accessor := rod.NewLoggingAccessor(rod.NewAccessor(browser.Page()), logger)
		locator := ecourtslog.NewLoggingLocator(&scrape.Locator{
			Accessor:  accessor,
			Extractor: extractor,
			Interval:  config.PollInterval,
			Deadline:  config.Deadline,
		}, logger)

		deps.Portal = browser
		deps.Scraper = &scrape.Scraper{
			Locator:   locator,
			Extractor: extractor,
			Writer:    fs.NewWriter(gopretty.NewRenderer(), config.CauseListDir, config.OrdersDir),
			Sessions:  m.SessionService,
		}
		deps.NewOrderFetcher = func(dir, referer string, cookies []*http.Cookie) ecourts.OrderFetcher {
			return resty.NewFetcher(dir, referer, cookies)
		}
	}

	return kongCtx.Run(deps)
}

func defaultConfigPath() string {
	if path := os.Getenv("ECOURTS_CONFIG"); path != "" {
		return path
	}
	path, err := toml.DefaultPath()
	if err != nil {
		return "config.toml"
	}
	return path
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ecourts.db"
	}
	dir := filepath.Join(home, ".ecourts")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ecourts.db")
}
