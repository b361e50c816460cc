package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/familyboard/internal/config"
	"github.com/five82/familyboard/internal/logging"
	"github.com/five82/familyboard/internal/nav"
	"github.com/five82/familyboard/internal/prefs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "keyboard = \"native\"\nboard_layout = \"grid\"\n")
	logFile := filepath.Join(t.TempDir(), "fb.log")

	cfg, err := resolveConfig(Options{
		ConfigPath: path,
		Keyboard:   "onscreen",
		Layout:     "STRIP",
		LogFile:    logFile,
	})
	require.NoError(t, err)
	require.Equal(t, config.KeyboardOnScreen, cfg.Keyboard)
	require.Equal(t, config.LayoutStrip, cfg.BoardLayout)
	require.Equal(t, logFile, cfg.LogFile)
}

func TestResolveConfig_MalformedFileFails(t *testing.T) {
	path := writeConfig(t, "keyboard = [")
	_, err := resolveConfig(Options{ConfigPath: path})
	require.Error(t, err)
}

func TestLogLevel_Precedence(t *testing.T) {
	cfg := config.Config{LogLevel: "warn"}

	t.Setenv("LOG_LEVEL", "")
	require.Equal(t, "debug", logLevel(Options{LogLevel: "debug"}, cfg))
	require.Equal(t, "warn", logLevel(Options{}, cfg))

	t.Setenv("LOG_LEVEL", "error")
	require.Empty(t, logLevel(Options{}, cfg), "empty level defers to LOG_LEVEL")
}

func TestBuild_StripLayoutWiresVariantAndDraftRule(t *testing.T) {
	cfg := config.Default()
	cfg.BoardLayout = config.LayoutStrip
	cfg.Keyboard = config.KeyboardOnScreen

	opts := build(cfg, filepath.Join(t.TempDir(), "prefs.toml"), logging.Discard())
	require.Equal(t, nav.VariantStrip, opts.Navigator.Variant())
	require.False(t, opts.Navigator.HasBack())
	require.False(t, opts.NativeInput)

	opts.Composer.AppendSpace()
	_, ok := opts.Composer.SubmitDraft()
	require.False(t, ok)
	require.Empty(t, opts.Composer.Draft(), "strip layout clears rejected drafts")
}

func TestBuild_GridLayoutKeepsRejectedDraft(t *testing.T) {
	opts := build(config.Default(), filepath.Join(t.TempDir(), "prefs.toml"), logging.Discard())
	require.Equal(t, nav.VariantGrid, opts.Navigator.Variant())

	opts.Composer.AppendSpace()
	_, ok := opts.Composer.SubmitDraft()
	require.False(t, ok)
	require.Equal(t, " ", opts.Composer.Draft())
}

func TestBuild_UsesSavedTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, prefs.Save(path, prefs.Prefs{Theme: "Slate"}))

	opts := build(config.Default(), path, logging.Discard())
	require.Equal(t, "Slate", opts.ThemeName)
	require.Equal(t, path, opts.PrefsPath)
}

func TestNativeInput_AutoFollowsTerminal(t *testing.T) {
	orig := stdinIsTerminal
	t.Cleanup(func() { stdinIsTerminal = orig })

	stdinIsTerminal = func() bool { return true }
	require.True(t, nativeInput(config.KeyboardAuto))
	require.False(t, nativeInput(config.KeyboardOnScreen))

	stdinIsTerminal = func() bool { return false }
	require.False(t, nativeInput(config.KeyboardAuto))
	require.True(t, nativeInput(config.KeyboardNative))
}
