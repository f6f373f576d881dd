package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/go-edidinfo/internal/report"
	"github.com/s0up4200/go-edidinfo/internal/settings"
	"github.com/s0up4200/go-edidinfo/pkg/edidinfo"
)

var version = "dev"

const repoSlug = "s0up4200/go-edidinfo"

type rootOptions struct {
	configFile  string
	format      string
	reportFile  string
	stdout      bool
	diagnostics bool
	uncommon    bool
	verbose     bool
	selfUpdate  bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "edidinfo <path>",
		Short:         "Decode EDID blobs and their CTA-861 extension blocks.",
		Long:          "Decode an EDID blob (raw binary or hex dump, \"-\" for stdin) and print an edid-decode style report.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.selfUpdate {
				return runSelfUpdate(cmd.Context(), cmd.OutOrStdout())
			}
			if len(args) != 1 {
				return errors.New("requires an EDID path")
			}
			return runRoot(cmd, args[0], opts)
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update edidinfo",
		Long:  "Update edidinfo to latest version (release builds only).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfUpdate(cmd.Context(), cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "edidinfo version: %s\n", version)
			return nil
		},
		DisableFlagsInUseLine: true,
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "YAML settings file")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", settings.FormatText, "Report format: text, yaml or json")
	rootCmd.Flags().StringVarP(&opts.reportFile, "reportfilename", "o", "", "The report filename with extension, \"{0}\" is replaced with the input name")
	rootCmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write report to stdout")
	rootCmd.Flags().BoolVarP(&opts.diagnostics, "diagnostics", "d", true, "Include conformity diagnostics (use --diagnostics=false to hide)")
	rootCmd.Flags().BoolVarP(&opts.uncommon, "uncommon", "u", false, "List uncommon features found in the EDID")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log decoder diagnostics and progress")
	rootCmd.Flags().BoolVar(&opts.selfUpdate, "self-update", false, "Update edidinfo to latest version (release builds only)")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "edidinfo: %s\n", err.Error())
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, path string, opts rootOptions) error {
	s := settings.Default()
	if opts.configFile != "" {
		loaded, err := settings.Load(opts.configFile)
		if err != nil {
			return err
		}
		s = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		s.Format = opts.format
	}
	if flags.Changed("diagnostics") {
		s.ShowDiagnostics = opts.diagnostics
	}
	if flags.Changed("uncommon") {
		s.ShowUncommon = opts.uncommon
	}
	if opts.reportFile != "" {
		s.ReportFileName = opts.reportFile
	}
	if opts.stdout {
		s.ReportFileName = "-"
	}
	if opts.verbose {
		s.LogLevel = "debug"
	}
	if err := s.Validate(); err != nil {
		return err
	}
	lvl, err := s.Level()
	if err != nil {
		return err
	}
	level.Set(lvl)

	res, err := edidinfo.Run(cmd.Context(), edidinfo.Options{
		Path:  path,
		Input: cmd.InOrStdin(),
		Settings: edidinfo.Settings{
			Format:          s.Format,
			ShowDiagnostics: s.ShowDiagnostics,
			ShowUncommon:    s.ShowUncommon,
			ReportFileName:  s.ReportFileName,
		},
		OnProgress: logProgress,
		Logger:     slog.Default(),
	})
	if err != nil {
		return err
	}

	if err := report.WriteReport(cmd.OutOrStdout(), res.ReportPath, res.Report); err != nil {
		return err
	}
	if res.ReportPath != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", res.ReportPath)
	}
	return nil
}

func logProgress(ev edidinfo.ProgressEvent) {
	slog.Debug("edidinfo progress",
		"stage", ev.Stage,
		"path", ev.Path,
		"bytes", ev.Bytes,
		"blocks", ev.Blocks,
		"diagnostics", ev.Diagnostics,
		"elapsed", ev.Elapsed,
	)
}

func runSelfUpdate(ctx context.Context, out io.Writer) error {
	if version == "" || version == "dev" {
		return errors.New("self-update is only available in release builds")
	}

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version: %w", err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", repoSlug, version)
	}

	if latest.LessOrEqual(version) {
		fmt.Fprintf(out, "Current binary is the latest version: %s\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version: %s\n", latest.Version())
	return nil
}
