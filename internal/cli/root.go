package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"beerrank-cli/internal/config"
	"beerrank-cli/internal/format"
	"beerrank-cli/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type App struct {
	Source     string
	Timeout    string
	ConfigPath string
	LogFile    string
	PrettyJSON bool
	Format     string

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "beerrank [query...]",
		Short:        "Beer ranking list: search and sort by fame or popularity",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  beerrank

  # Start the TUI with a search already applied
  beerrank pale ale

  # Scriptable output
  beerrank list --search ale --sort fame --format table
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			// No terminal => print the list instead of taking over the screen.
			if !isTerminal(cmd.OutOrStdout()) {
				f := "table"
				if cmd.Flags().Changed("format") || os.Getenv("BEERRANK_FORMAT") != "" {
					f = app.Format
				}
				return runList(cmd, app, listOptions{search: query, format: f})
			}
			return runTUI(app, query)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(app)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Source, "source", envOr("BEERRANK_SOURCE", ""), "Item source: http(s) URL or local JSON file (default: public beer list)")
	cmd.PersistentFlags().StringVar(&app.Timeout, "timeout", envOr("BEERRANK_TIMEOUT", ""), "Fetch timeout, e.g. 10s (default 30s)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("BEERRANK_CONFIG", ""), "Path to config.yaml (default ~/.beerrank/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("BEERRANK_LOG_FILE", ""), "TUI log file (default $TMPDIR/beerrank.log)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("BEERRANK_FORMAT", "json"), "Output format (json|edn|table)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// resolveConfig layers defaults, the config file, BEERRANK_* variables and
// finally explicit flags.
func resolveConfig(app *App) (*config.Config, error) {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(app.Source); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(app.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid --timeout %q: %w", v, err)
		}
		cfg.Timeout = config.Duration(d)
	}
	if v := strings.TrimSpace(app.LogFile); v != "" {
		cfg.LogFile = v
	}
	return cfg, nil
}

func runTUI(app *App, query string) error {
	f, err := tea.LogToFile(app.cfg.LogFile, "beerrank")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	logger := slog.New(slog.NewTextHandler(f, nil)).With("source", app.cfg.Source)
	logger.Info("starting tui", "timeout", time.Duration(app.cfg.Timeout), "search", query)

	return tui.Run(tui.Options{
		Loader:        app.cfg.Loader(),
		Logger:        logger,
		InitialSearch: query,
		Theme:         app.cfg.TUI.Theme,
		Glyphs:        app.cfg.TUI.Glyphs,
		Timeout:       time.Duration(app.cfg.Timeout),
	})
}

// stderrLogger is used outside the TUI, where the terminal is free.
func stderrLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
