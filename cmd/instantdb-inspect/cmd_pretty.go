package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/daveycodez/better-auth-instantdb/internal/docinput"
	"github.com/daveycodez/better-auth-instantdb/pkg/inspect"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type prettyOptions struct {
	format   string
	mode     string
	color    string
	showPath bool
}

func newPrettyCmd(root *rootOptions) *cobra.Command {
	opts := &prettyOptions{}
	cmd := &cobra.Command{
		Use:   "pretty [file]",
		Short: "Pretty-print a JSON or YAML document",
		Long: `Decodes a JSON or YAML document from the file argument or stdin and prints
it with the rich (Go syntax, colorized) or generic (indented JSON) renderer.
JSON documents embedded in string values are expanded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPretty(cmd, args, root.logger, opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "auto", "input format: auto, json or yaml")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "render mode, overrides INSPECT_RENDER_MODE")
	cmd.Flags().StringVar(&opts.color, "color", "", "color mode, overrides INSPECT_COLOR")
	cmd.Flags().BoolVar(&opts.showPath, "path", false, "report the render path on stderr")
	return cmd
}

func runPretty(cmd *cobra.Command, args []string, logger *zap.Logger, opts *prettyOptions) error {
	format, err := docinput.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	body, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	doc, err := docinput.Decode(body, format)
	if err != nil {
		return errors.Wrapf(err, "pretty: %s", source)
	}

	inspOpts := []inspect.Option{inspect.WithLogger(logger)}
	if opts.mode != "" {
		inspOpts = append(inspOpts, inspect.WithMode(inspect.Mode(opts.mode)))
	}
	if opts.color != "" {
		inspOpts = append(inspOpts, inspect.WithColor(inspect.ColorMode(opts.color)))
	}
	insp, _, err := inspect.NewFromEnv(inspOpts...)
	if err != nil {
		return err
	}

	res := insp.Render(doc)
	logger.Debug("rendered document",
		zap.String("source", source),
		zap.String("path", string(res.Path)),
		zap.Int("bytes", len(body)))
	if res.Err != nil {
		logger.Debug("render fell back", zap.Error(res.Err))
	}
	if opts.showPath {
		fmt.Fprintf(cmd.ErrOrStderr(), "path: %s\n", res.Path)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return err
}

func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", errors.Wrap(err, "pretty: read stdin")
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", errors.Wrapf(err, "pretty: read %s", args[0])
	}
	return data, args[0], nil
}
