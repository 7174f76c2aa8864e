package main

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/xanalytics/internal/analysis"
	"github.com/Mr-Dark-debug/xanalytics/internal/profile"
	"github.com/Mr-Dark-debug/xanalytics/pkg/jsonutil"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// profileOptions holds the flags of the profile subcommand.
type profileOptions struct {
	format  string
	mode    string
	style   string
	compact bool
}

func newProfileCmd(a *app) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile <handle>",
		Short: "Print the generated profile report for a handle",
		Long: `Generates the profile for a handle and prints it without the dashboard.

Formats:
  markdown  plain markdown report (default)
  pretty    markdown rendered for the terminal
  json      the full report as JSON

Example:
  xanalytics profile @abc --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProfile(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "markdown", "Output format: markdown, pretty, json")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Generator mode override: fixed, sequence")
	cmd.Flags().StringVar(&opts.style, "style", "auto", "Glamour style for --format pretty (auto, dark, light, notty)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Minify --format json output")
	return cmd
}

func (a *app) runProfile(cmd *cobra.Command, handle string, opts *profileOptions) error {
	mode := a.cfg.GeneratorMode()
	if opts.mode != "" {
		m, err := profile.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		mode = m
	}

	analyzer := analysis.NewAnalyzer(profile.NewGenerator(mode), nil)
	report, err := analyzer.FullAnalysis(handle)
	if err != nil {
		return err
	}

	a.logger.Debug("profile generated",
		zap.String("handle", report.Profile.Handle),
		zap.String("mode", string(mode)),
		zap.String("band", report.Band.Level))

	out, err := renderReport(analyzer, report, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// renderReport formats a report according to the --format flag.
func renderReport(analyzer *analysis.Analyzer, report *analysis.Report, opts *profileOptions) (string, error) {
	switch strings.ToLower(opts.format) {
	case "json":
		out, err := jsonutil.Indent(report)
		if err != nil {
			return "", err
		}
		if opts.compact {
			return jsonutil.CompactJSON(strings.TrimSpace(out)) + "\n", nil
		}
		return out, nil

	case "markdown", "md":
		return analyzer.FormatReport(report), nil

	case "pretty":
		style := glamour.WithAutoStyle()
		if opts.style != "auto" {
			style = glamour.WithStandardStyle(opts.style)
		}
		r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
		if err != nil {
			return "", fmt.Errorf("creating markdown renderer: %w", err)
		}
		out, err := r.Render(analyzer.FormatReport(report))
		if err != nil {
			return "", fmt.Errorf("rendering report: %w", err)
		}
		return out, nil

	default:
		return "", fmt.Errorf("unknown format %q (want markdown, pretty or json)", opts.format)
	}
}
