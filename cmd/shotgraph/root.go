package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/shotgraph/internal/config"
	"github.com/hammamikhairi/shotgraph/internal/engine"
	"github.com/hammamikhairi/shotgraph/internal/logger"
	"github.com/hammamikhairi/shotgraph/internal/preset"
	"github.com/hammamikhairi/shotgraph/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "shotgraph",
	Short: "Chart Decent espresso shot profiles",
	Long: "Shotgraph parses the advanced shot profiles of the Decent espresso machine " +
		"and charts the temperature, pressure and flow each one asks for.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose/debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "disable all logging")
	rootCmd.PersistentFlags().String("log-file", ".shotgraph-logs/shotgraph.log", "file to write logs to (use \"stderr\" to log to console)")
	rootCmd.PersistentFlags().String("profiles-dir", "", "load profile documents from this directory instead of the bundled set")

	_ = viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(config.KeyQuiet, rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag(config.KeyProfilesDir, rootCmd.PersistentFlags().Lookup("profiles-dir"))
}

// app holds the wired dependencies shared by every command.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *storage.MemoryStore
	engine *engine.Engine

	closeLog func()
}

// newApp resolves configuration and wires the catalog, store and engine.
func newApp() (*app, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	logOut, closeLog := openLog(cfg.LogFile)

	// Route the standard log package to the same place so library output
	// never lands on the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	bundle := preset.Bundled()
	if cfg.ProfilesDir != "" {
		if _, err := os.Stat(cfg.ProfilesDir); err != nil {
			closeLog()
			return nil, fmt.Errorf("profiles dir: %w", err)
		}
		bundle = os.DirFS(cfg.ProfilesDir)
		log.Info("loading profiles from %s", cfg.ProfilesDir)
	}

	lib := preset.NewLibrary(bundle, log.Named("preset"))
	store := storage.NewMemoryStore(log.Named("storage"))
	eng := engine.New(lib, store, log.Named("engine"), engine.WithConcurrency(cfg.Concurrency))

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		engine:   eng,
		closeLog: closeLog,
	}, nil
}

func (a *app) Close() { a.closeLog() }

// openLog returns the log destination. Logs go to a file by default so
// terminal output stays clean; "stderr" or an empty path log to the
// console.
func openLog(path string) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

// runWithApp adapts a command body that needs the wired app.
func runWithApp(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, args, a)
	}
}
