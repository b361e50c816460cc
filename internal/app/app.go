package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/composer"
	"github.com/five82/familyboard/internal/config"
	"github.com/five82/familyboard/internal/logging"
	"github.com/five82/familyboard/internal/nav"
	"github.com/five82/familyboard/internal/prefs"
	"github.com/five82/familyboard/internal/ui"
)

// Options configure the FamilyBoard application. Empty fields fall back to
// the config file, then to built-in defaults.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/familyboard/prefs.toml
	Keyboard   string // auto, onscreen or native
	Layout     string // grid or strip
	LogFile    string
	LogLevel   string
}

// stdinIsTerminal reports whether a keyboard is attached. Replaced in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run boots the FamilyBoard TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(logging.Options{Path: cfg.LogFile, Level: logLevel(opts, cfg)})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	uiOpts := build(cfg, opts.PrefsPath, logger)
	logger.Info("familyboard starting",
		slog.String("layout", cfg.BoardLayout),
		slog.String("keyboard", cfg.Keyboard),
		slog.Bool("native_input", uiOpts.NativeInput),
		slog.String("theme", uiOpts.ThemeName),
	)

	if err := ui.Run(ctx, uiOpts); err != nil {
		logger.Error("ui exited", slog.String("error", err.Error()))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("familyboard stopped")
	return nil
}

// resolveConfig loads the config file and applies command line overrides.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if v := strings.TrimSpace(opts.Keyboard); v != "" {
		cfg.Keyboard = config.NormalizeKeyboard(v)
	}
	if v := strings.TrimSpace(opts.Layout); v != "" {
		cfg.BoardLayout = config.NormalizeLayout(v)
	}
	if v := strings.TrimSpace(opts.LogFile); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = expanded
	}
	return cfg, nil
}

// logLevel picks the flag, then LOG_LEVEL, then the config file.
func logLevel(opts Options, cfg config.Config) string {
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		return v
	}
	if os.Getenv("LOG_LEVEL") != "" {
		return ""
	}
	return cfg.LogLevel
}

// build wires the session, navigator and composer for cfg.
func build(cfg config.Config, prefsPath string, logger *slog.Logger) ui.Options {
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("load prefs failed, using defaults", slog.String("path", prefsPath), slog.String("error", err.Error()))
	}

	variant := nav.VariantGrid
	if cfg.BoardLayout == config.LayoutStrip {
		variant = nav.VariantStrip
	}

	session := &board.Session{}
	return ui.Options{
		Navigator: nav.New(session, variant, logger),
		Composer: composer.New(composer.Options{
			ClearOnReject: variant == nav.VariantStrip,
		}),
		NativeInput: nativeInput(cfg.Keyboard),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   prefsPath,
		Logger:      logger,
	}
}

func nativeInput(mode string) bool {
	switch mode {
	case config.KeyboardNative:
		return true
	case config.KeyboardOnScreen:
		return false
	default:
		return stdinIsTerminal()
	}
}
