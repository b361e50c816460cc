package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/familyboard/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("familyboard", pflag.ContinueOnError)
	configPath := flags.String("config", "", "config file path (default ~/.config/familyboard/config.toml)")
	prefsPath := flags.String("prefs", "", "preferences file path (default ~/.config/familyboard/prefs.toml)")
	keyboard := flags.String("keyboard", "", "text entry: auto, onscreen or native")
	layout := flags.String("layout", "", "board layout: grid or strip")
	logFile := flags.String("log-file", "", "log file path")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "familyboard: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Keyboard:   *keyboard,
		Layout:     *layout,
		LogFile:    *logFile,
		LogLevel:   *logLevel,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "familyboard: %v\n", err)
		return 1
	}
	return 0
}
