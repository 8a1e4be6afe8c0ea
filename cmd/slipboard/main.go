package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jkullberg/slipboard/internal/adapters/storage/sqlite"
	"github.com/jkullberg/slipboard/internal/app"
	"github.com/jkullberg/slipboard/internal/config"
	"github.com/jkullberg/slipboard/internal/domain"
	"github.com/jkullberg/slipboard/internal/platform"
	"github.com/jkullberg/slipboard/internal/tui"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// rootFlags carries the persistent flag values shared by every subcommand.
type rootFlags struct {
	configPath string
	dbPath     string
	appName    string
	devMode    bool
}

// runtime bundles everything a command needs after startup wiring.
type runtime struct {
	cfg    config.Config
	paths  platform.Paths
	logger *runtimeLogger
	repo   *sqlite.Repository
	svc    *app.Service
}

// close releases the runtime's repository and log sinks.
func (r *runtime) close() {
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			r.logger.Warn("sqlite close failed", "err", err)
		}
	}
	if err := r.logger.Close(); err != nil && r.logger.shouldLogToSink(r.logger.consoleSink) {
		fmt.Fprintf(os.Stderr, "warning: close runtime log sink: %v\n", err)
	}
}

// main handles main.
func main() {
	root := newRootCmd()
	if err := fang.Execute(context.Background(), root, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "slipboard",
		Short: "A two-column drag-and-drop card board for the terminal",
		Long: `Slipboard deals a hand of markdown cards into two columns and lets you
drag them around with the mouse or move them with the keyboard. Card sets
can be saved as named decks and dealt again later; the column layout of a
session is never persisted.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config TOML")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "path to sqlite database")
	root.PersistentFlags().StringVar(&flags.appName, "app", defaultAppName(), "application name for config/data path resolution")
	root.PersistentFlags().BoolVar(&flags.devMode, "dev", defaultDevMode(), "use dev mode paths (<app>-dev)")

	root.AddCommand(newDealCmd(flags))
	root.AddCommand(newDecksCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newImportCmd(flags))
	root.AddCommand(newPathsCmd(flags))
	return root
}

// defaultAppName resolves the app name from the environment.
func defaultAppName() string {
	if v := strings.TrimSpace(os.Getenv("SLIPBOARD_APP_NAME")); v != "" {
		return v
	}
	return "slipboard"
}

// defaultDevMode resolves the dev-mode default from the build and environment.
func defaultDevMode() bool {
	if v, ok := parseBoolEnv("SLIPBOARD_DEV_MODE"); ok {
		return v
	}
	return version == "dev"
}

// parseBoolEnv parses input into a normalized form.
func parseBoolEnv(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// setup resolves paths and config, opens logging and storage, and wires the
// application service.
func setup(flags *rootFlags) (*runtime, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: flags.appName,
		DevMode: flags.devMode,
	})
	if err != nil {
		return nil, err
	}

	configPath := flags.configPath
	if configPath == "" {
		if envPath := strings.TrimSpace(os.Getenv("SLIPBOARD_CONFIG")); envPath != "" {
			configPath = envPath
		} else {
			configPath = paths.ConfigPath
		}
	}
	dbPath := flags.dbPath
	dbOverridden := strings.TrimSpace(dbPath) != ""
	if !dbOverridden {
		if envPath := strings.TrimSpace(os.Getenv("SLIPBOARD_DB_PATH")); envPath != "" {
			dbPath = envPath
			dbOverridden = true
		} else {
			dbPath = paths.DBPath
		}
	}

	cfg, err := config.Load(configPath, config.Default(dbPath))
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", configPath, err)
	}
	if dbOverridden {
		cfg.Database.Path = dbPath
	}

	logger, err := newRuntimeLogger(os.Stderr, flags.appName, flags.devMode, cfg.Logging, time.Now)
	if err != nil {
		return nil, fmt.Errorf("configure runtime logger: %w", err)
	}
	logger.Info("startup configuration resolved", "app", flags.appName, "dev_mode", flags.devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "db_path", cfg.Database.Path)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	logger.Info("opening sqlite repository", "db_path", cfg.Database.Path)
	repo, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("sqlite open failed", "db_path", cfg.Database.Path, "err", err)
		_ = logger.Close()
		return nil, fmt.Errorf("open sqlite repository: %w", err)
	}

	svc := app.NewService(repo, uuid.NewString, nil, nil, app.ServiceConfig{
		DealCount: cfg.Deal.Count,
		MinHeight: cfg.Deal.MinHeight,
		MaxHeight: cfg.Deal.MaxHeight,
		Palette:   cfg.Deal.Palette,
	})
	logger.Debug("application service initialized", "deal_count", cfg.Deal.Count)

	return &runtime{cfg: cfg, paths: paths, logger: logger, repo: repo, svc: svc}, nil
}

// runBoard runs the interactive board.
func runBoard(_ context.Context, flags *rootFlags) error {
	rt, err := setup(flags)
	if err != nil {
		return err
	}
	defer rt.close()

	// Keep TUI rendering clean: runtime logs stay in the dev-file sink while the board is active.
	rt.logger.SetConsoleEnabled(false)
	rt.logger.Info("starting tui program loop")

	m := tui.NewModel(rt.svc, tui.WithConfirmQuit(rt.cfg.UI.ConfirmQuit))
	if _, err := programFactory(m).Run(); err != nil {
		rt.logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	rt.logger.Info("command flow complete", "command", "tui")
	return nil
}

// newDealCmd builds the non-interactive deal subcommand.
func newDealCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "deal [deck]",
		Short: "Deal a board to stdout without starting the TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.close()

			var board domain.Board
			if len(args) == 1 {
				board, err = rt.svc.DealFromDeck(cmd.Context(), args[0])
			} else {
				board, err = rt.svc.DealNew(cmd.Context())
			}
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), board)
			return nil
		},
	}
}

// printBoard prints the dealt columns top to bottom.
func printBoard(w io.Writer, board domain.Board) {
	for _, side := range []domain.Side{domain.SideLeft, domain.SideRight} {
		fmt.Fprintf(w, "%s:\n", side)
		for i, card := range board.Cards(side) {
			fmt.Fprintf(w, "  %d. %-24s %s %dpx\n", i+1, card.Title(), card.Color, card.Height)
		}
	}
}

// newDecksCmd builds the deck management subcommands.
func newDecksCmd(flags *rootFlags) *cobra.Command {
	decks := &cobra.Command{
		Use:   "decks",
		Short: "Manage saved decks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved decks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.close()

			out, err := rt.svc.ListDecks(cmd.Context())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved decks")
				return nil
			}
			for _, deck := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d cards\tupdated %s\n",
					deck.Name, len(deck.Cards), deck.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.close()

			if err := rt.svc.DeleteDeck(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted deck %q\n", args[0])
			return nil
		},
	}

	decks.AddCommand(list, del)
	return decks
}

// newExportCmd builds the snapshot export subcommand.
func newExportCmd(flags *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all saved decks as a JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.close()

			snap, err := rt.svc.ExportSnapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("export snapshot: %w", err)
			}
			encoded, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot json: %w", err)
			}
			encoded = append(encoded, '\n')

			if outPath == "-" {
				_, err := cmd.OutOrStdout().Write(encoded)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create export output dir: %w", err)
			}
			if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "-", "output file path ('-' for stdout)")
	return cmd
}

// newImportCmd builds the snapshot import subcommand.
func newImportCmd(flags *rootFlags) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import decks from a JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" {
				return fmt.Errorf("--in is required")
			}
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.close()

			content, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var snap app.Snapshot
			if err := json.Unmarshal(content, &snap); err != nil {
				return fmt.Errorf("decode snapshot json: %w", err)
			}
			imported, err := rt.svc.ImportSnapshot(cmd.Context(), snap)
			if err != nil {
				return fmt.Errorf("import snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d decks\n", imported)
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input snapshot JSON file")
	return cmd
}

// newPathsCmd builds the path inspection subcommand.
func newPathsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and data paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := platform.DefaultPathsWithOptions(platform.Options{
				AppName: flags.appName,
				DevMode: flags.devMode,
			})
			if err != nil {
				return err
			}
			return printPaths(cmd.OutOrStdout(), flags, paths)
		},
	}
}

// printPaths prints the resolved runtime paths.
func printPaths(w io.Writer, flags *rootFlags, paths platform.Paths) error {
	_, _ = fmt.Fprintf(w, "app: %s\n", flags.appName)
	_, _ = fmt.Fprintf(w, "dev_mode: %t\n", flags.devMode)
	_, _ = fmt.Fprintf(w, "config: %s\n", paths.ConfigPath)
	_, _ = fmt.Fprintf(w, "data_dir: %s\n", paths.DataDir)
	_, _ = fmt.Fprintf(w, "db: %s\n", paths.DBPath)
	return nil
}
