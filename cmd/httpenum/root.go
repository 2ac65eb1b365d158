package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type app struct {
	logger *slog.Logger
	out    io.Writer
	asJSON bool
}

func rootCmd() *cobra.Command {
	var (
		logLevel   string
		outputJSON bool
	)

	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:   "httpenum",
		Short: "Look up HTTP status codes, methods, URI schemes and content types",
		Long: `httpenum exposes the closed HTTP vocabulary catalogs.

Examples:
  httpenum status 418
  httpenum method PATCH
  httpenum scheme wss
  httpenum content-type --header "application/json; charset=utf-8"
  httpenum content-type --ext PNG
  httpenum list status --group client-error
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}

			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			a.out = cmd.OutOrStdout()
			a.asJSON = outputJSON
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output results as JSON")

	cmd.AddCommand(
		statusCmd(a),
		methodCmd(a),
		schemeCmd(a),
		contentTypeCmd(a),
		listCmd(a),
	)

	return cmd
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.Errorf("invalid log level %q", s)
}

// render writes v as a JSON document or text as-is, depending on --json.
func (a *app) render(v any, text string) error {
	if a.asJSON {
		return errors.Wrap(json.NewEncoder(a.out).Encode(v), "encoding result")
	}

	_, err := fmt.Fprintln(a.out, text)
	return err
}
