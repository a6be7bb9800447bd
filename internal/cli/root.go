// Package cli wires the zap command line: flag parsing, engine
// construction, prompting, and colored outcome reporting.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/zap/internal/engine"
)

var (
	flagDate          string
	flagStamp         string
	flagReference     string
	flagAdjust        string
	flagTemplate      string
	flagContext       string
	flagNoCreate      bool
	flagCreateParents bool
	flagAccessOnly    bool
	flagModOnly       bool
	flagSymlink       bool
	flagOpen          bool
	flagYes           bool
)

// rootCmd is the zap command itself: touch files, optionally from a template.
var rootCmd = &cobra.Command{
	Use:     "zap [flags] FILE...",
	Version: "dev",
	Short:   "touch, but with templates",
	Long: `zap creates files if they don't exist, optionally pre-populated from a
template, and updates their access and modification times.

Times come from -d/-t/-r or default to now; -A shifts the existing times
by a relative amount instead. Templates are sourced from
~/.config/zap/templates/<name>.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Run(requestFromFlags(args))
		if err != nil {
			return err
		}

		for _, outcome := range result.Files {
			printOutcome(outcome)
		}

		if flagOpen {
			if err := eng.OpenInEditor(args); err != nil {
				PrintWarning(fmt.Sprintf("could not open editor: %v", err))
			}
		}

		if result.Failed() {
			return fmt.Errorf("%s failed", PrintCount(countFailed(result), "file", "files"))
		}
		return nil
	},
}

// requestFromFlags maps the parsed flags and positional arguments onto an
// engine request.
func requestFromFlags(paths []string) *engine.TouchRequest {
	return &engine.TouchRequest{
		Paths:            paths,
		Date:             flagDate,
		Stamp:            flagStamp,
		Reference:        flagReference,
		Adjust:           flagAdjust,
		Template:         flagTemplate,
		Context:          flagContext,
		NoCreate:         flagNoCreate,
		CreateParents:    flagCreateParents,
		AccessOnly:       flagAccessOnly,
		ModificationOnly: flagModOnly,
		SymlinkOnly:      flagSymlink,
	}
}

func countFailed(result *engine.Result) int {
	n := 0
	for _, f := range result.Files {
		if f.Status == engine.StatusFailed {
			n++
		}
	}
	return n
}

// printOutcome reports one file's terminal state.
func printOutcome(f engine.FileOutcome) {
	switch f.Status {
	case engine.StatusCreated:
		PrintSuccess(fmt.Sprintf("created %s", f.Path))
	case engine.StatusTouched:
		PrintSuccess(fmt.Sprintf("touched %s", f.Path))
	case engine.StatusSkipped:
		PrintInfo(fmt.Sprintf("skipped %s: %s", f.Path, f.Detail))
	case engine.StatusDeclined:
		PrintInfo(fmt.Sprintf("left %s alone: %s", f.Path, f.Detail))
	case engine.StatusFailed:
		PrintError(fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagDate, "date", "d", "", "Set times from a date string (RFC 3339, space allowed for 'T')")
	flags.StringVarP(&flagStamp, "timestamp", "t", "", "Set times from a [[CC]YY]MMDDhhmm[.SS] stamp")
	flags.StringVarP(&flagReference, "reference", "r", "", "Set times from this file's times")
	flags.StringVarP(&flagAdjust, "adjust", "A", "", "Shift times by [-][[hh]mm]SS instead of setting them")
	flags.StringVarP(&flagTemplate, "template", "T", "", "Pre-populate the file from this template")
	flags.StringVarP(&flagContext, "context", "C", "", "Template context as key=value,key=value pairs")
	flags.BoolVarP(&flagNoCreate, "no-create", "c", false, "Do not create files that don't exist")
	flags.BoolVarP(&flagCreateParents, "create-parents", "p", false, "Create missing parent directories without asking")
	flags.BoolVarP(&flagAccessOnly, "access", "a", false, "Only update the access time")
	flags.BoolVarP(&flagModOnly, "modification", "m", false, "Only update the modification time")
	flags.BoolVarP(&flagSymlink, "symlink", "s", false, "Act on a symlink itself instead of its target")
	flags.BoolVarP(&flagOpen, "open", "o", false, "Open the files with your $EDITOR afterwards")
	flags.BoolVarP(&flagYes, "yes", "y", false, "Answer yes to every prompt")

	rootCmd.MarkFlagsMutuallyExclusive("date", "timestamp", "reference")

	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the zap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	})
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
