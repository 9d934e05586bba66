package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rocket/internal/config"
	"rocket/internal/desktop"
	"rocket/internal/index"
	"rocket/internal/launcher"
	"rocket/internal/logging"
	"rocket/internal/power"
	"rocket/internal/recent"
	"rocket/internal/search"
	"rocket/internal/session"
	"rocket/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

// options holds the persistent flags
type options struct {
	configPath string
	debug      bool
}

// env is everything a command needs after startup
type env struct {
	cfg   config.Config
	index *index.Index
	cache *recent.Cache
}

// setup loads the config, points the logger at the right sink and builds the
// application index. Interactive runs log to a file since the TUI owns the
// terminal.
func setup(ctx context.Context, opts *options, interactive bool, stderr io.Writer) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if interactive {
		if err := logging.UseFile(config.LogPath(), cfg.LogLevel); err != nil {
			logging.UseWriter(io.Discard, cfg.LogLevel)
		}
	} else {
		logging.UseConsole(stderr, cfg.LogLevel)
	}
	if opts.debug {
		logging.SetLevel("debug")
	}
	logging.Debug().Str("config", opts.configPath).Bool("interactive", interactive).Msg("starting")

	cache, err := recent.Load(config.RecentAppsPath(), cfg.RecentAppsLimit)
	if err != nil {
		logging.Warn().Err(err).Str("path", cache.Path()).Msg("failed to load recent apps, starting empty")
	}

	dirs := cfg.ApplicationDirs
	if len(dirs) == 0 {
		dirs = desktop.DataDirs()
	}

	idx := index.Build(ctx, dirs)
	logging.Debug().Int("apps", idx.Len()).Strs("dirs", dirs).Msg("index ready")

	return &env{
		cfg:   cfg,
		index: idx,
		cache: cache,
	}, nil
}

// newLauncher returns a launcher that records launches only when recent
// apps are enabled
func (e *env) newLauncher() *launcher.Launcher {
	var opts []launcher.Option
	if e.cfg.EnableRecentApps && e.cache != nil {
		opts = append(opts, launcher.WithRecorder(e.cache))
	}
	return launcher.New(e.cfg.Shell, opts...)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rocket",
		Short:         "A keyboard-driven application launcher",
		Long:          "rocket finds installed desktop applications, filters them as you type and launches the one you pick.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(
		newListCmd(opts),
		newSearchCmd(opts),
		newRecentCmd(opts),
		newLaunchCmd(opts),
		newInspectCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)
	return root
}

func runTUI(ctx context.Context, opts *options) error {
	e, err := setup(ctx, opts, true, os.Stderr)
	if err != nil {
		return err
	}
	defer logging.Close()
	defer func() {
		if !e.cfg.EnableRecentApps {
			return
		}
		if err := e.cache.Save(); err != nil {
			logging.Warn().Err(err).Str("path", e.cache.Path()).Msg("failed to save recent apps")
		}
	}()

	s := session.New(e.cfg, e.index, e.newLauncher(), power.NewSystem(nil), e.cache)
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the names of all indexed applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, entry := range e.index.All() {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Name)
			}
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the applications whose name contains the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = e.cfg.MaxSearchResults
			}
			for _, entry := range search.Search(strings.Join(args, " "), e.index.All(), limit) {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "max", "n", 0, "maximum number of results (default max_search_results)")
	return cmd
}

func newRecentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Print recently launched applications that are still installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !e.cfg.EnableRecentApps {
				logging.Info().Msg("recent apps are disabled")
				return nil
			}
			for _, entry := range recent.Seed(e.cache, e.index, e.cfg.MaxSearchResults) {
				fmt.Fprintln(cmd.OutOrStdout(), entry.Name)
			}
			return nil
		},
	}
}

// errNotFound is returned when no indexed application has the requested name
var errNotFound = errors.New("application not found")

func newLaunchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <name>",
		Short: "Launch the application with exactly this name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			entry, ok := e.index.Find(args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], errNotFound)
			}
			return e.newLauncher().Launch(entry.Name, entry.Command)
		},
	}
}

func newInspectCmd(opts *options) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show the desktop entry file behind an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), opts, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			entry, ok := e.index.Find(args[0])
			if !ok {
				return fmt.Errorf("%q: %w", args[0], errNotFound)
			}

			data, err := os.ReadFile(entry.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", entry.Path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s (%s)\n", entry.Path, ui.FileType(entry.Path))
			fmt.Fprintf(out, "# command: %s\n", entry.Command)
			if plain {
				_, err = out.Write(data)
				return err
			}
			return ui.Highlight(out, string(data), entry.Path)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print without syntax highlighting")
	return cmd
}

// errConfigExists is returned by init when it would overwrite a config file
var errConfigExists = errors.New("config file already exists")

func newInitCmd(opts *options) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w (use --force to overwrite)", path, errConfigExists)
			}
			if err := config.Default().Save(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rocket %s (built %s)\n", version, buildTime)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
