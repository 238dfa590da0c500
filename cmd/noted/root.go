package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/noted/internal/config"
	"github.com/sandeepkv93/noted/internal/storage"
	"github.com/sandeepkv93/noted/internal/store"
	"github.com/sandeepkv93/noted/internal/update"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	dataPath   string
	backend    string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "noted",
		Short:         "Notes with checklists, in the terminal",
		Long:          `noted keeps plain-text notes, collects every ☐/☑ line into a task list and continues bullet or checkbox lists as you type.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTUI(cmd.Context())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	flags.StringVar(&opts.dataPath, "data", "", "Path to the notes file (overrides config)")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend: json or sqlite")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newListCmd(opts),
		newNewCmd(opts),
		newShowCmd(opts),
		newTasksCmd(opts),
		newToggleCmd(opts),
		newDeleteCmd(opts),
	)
	return root
}

// resolve layers defaults, the config file, the environment and flags.
func (o *rootOptions) resolve(logOut io.Writer) error {
	cfg, err := config.LoadFile(o.configPath, config.Default())
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)
	if o.dataPath != "" {
		cfg.DataPath = o.dataPath
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	o.cfg = cfg.WithLogBesideData()
	o.logger = newLogger(logOut, cfg.LogLevel)
	slog.SetDefault(o.logger)
	return nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// openStore loads the configured repository. The returned close func must be
// called once the command is done with the store.
func (o *rootOptions) openStore(ctx context.Context) (*store.Store, func(), error) {
	backend, err := storage.ParseBackend(o.cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	if dir := filepath.Dir(o.cfg.DataPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	repo, err := storage.Open(backend, o.cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	st := store.New(repo, store.WithLogger(o.logger))
	st.Load(ctx)
	o.logger.Debug("store opened", "backend", backend, "path", o.cfg.DataPath, "notes", st.Len())
	closeFn := func() {
		if err := repo.Close(); err != nil {
			o.logger.Warn("close repository", "err", err)
		}
	}
	return st, closeFn, nil
}

// runTUI sends logs to the log file since the terminal belongs to the UI.
func (o *rootOptions) runTUI(ctx context.Context) error {
	if dir := filepath.Dir(o.cfg.LogPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	logFile, err := os.OpenFile(o.cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	o.logger = newLogger(logFile, o.cfg.LogLevel)
	slog.SetDefault(o.logger)

	st, closeStore, err := o.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	model := update.NewModel(st, update.Options{
		EditorWidth:  o.cfg.EditorWidth,
		PreviewStyle: o.cfg.PreviewStyle,
		Logger:       o.logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
