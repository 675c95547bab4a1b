package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/casesim/internal/app"
	"github.com/abhisek/casesim/internal/platform/config"
	"github.com/abhisek/casesim/internal/platform/logging"
	"github.com/abhisek/casesim/internal/session"
	"github.com/spf13/cobra"
)

// runApp builds the picker and logger, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, closeLog, err := tuiLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	return app.Run(app.Options{
		Picker: pickerFromFlags(cmd),
		Logger: logger,
	})
}

// pickerFromFlags returns a seeded picker when --seed is set.
func pickerFromFlags(cmd *cobra.Command) session.Picker {
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		return session.NewSeededPicker(seed)
	}
	return session.NewRandomPicker()
}

// tuiLogger logs to --log-file, or nowhere. The terminal belongs to the UI.
func tuiLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logging.Discard(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := logging.New(config.LogConfig{Level: "debug", Format: "text"}, f)
	return logger, func() { f.Close() }, nil
}
