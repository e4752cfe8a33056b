package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/kilnedit/kiln/editor"
	"github.com/kilnedit/kiln/internal/logutils"
)

// Version is populated at build time via -ldflags. When installed with
// `go install module@version` it falls back to the module build info.
var version = "dev"

func build() string {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
		}
	}
	return v
}

func main() {
	app := &cli.Command{
		Name:      "kiln",
		Usage:     "a small terminal text editor",
		UsageText: "kiln [options] [file]",
		Version:   build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal)",
				Sources: cli.EnvVars("KILN_LOG_LEVEL"),
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write a JSON debug log to this file",
				Sources: cli.EnvVars("KILN_LOG_FILE"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger, closeLog, err := logutils.New(c.String("log-level"), c.String("log-file"))
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			defer closeLog()

			m := editor.New(editor.Config{
				Path:    c.Args().First(),
				Storage: editor.OSStorage{},
				KeyMap:  editor.DefaultKeyMap(),
				Style:   editor.DefaultStyle(),
				Logger:  logger,
				Version: build(),
			})

			// The program owns the terminal: raw mode and the alternate
			// screen are restored on every exit path, including signals.
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
