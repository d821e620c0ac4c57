// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/ryo1kato/mllgrep/pkg/boundary"
	"github.com/ryo1kato/mllgrep/pkg/driver"
	"github.com/ryo1kato/mllgrep/pkg/recsearch"
	"github.com/ryo1kato/mllgrep/pkg/render"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// MllgrepVersion is the current version of mllgrep
var MllgrepVersion = "v0.0.0"

// MllgrepBuildTime is the build timestamp of mllgrep
var MllgrepBuildTime = ""

// ExitUsage is returned for configuration errors (bad pattern, bad
// separator, unknown option) so they are distinguishable from "no match"
const ExitUsage = 2

type cliFlags struct {
	patterns   []string
	andMode    bool
	invert     bool
	ignoreCase bool
	countOnly  bool
	color      string
	separator  string
	timestamp  bool
	fuzzy      bool
	debug      bool
}

func buildSeparator(flags *cliFlags) (*boundary.Separator, error) {
	// The timestamp preset wins over an explicit separator expression
	if flags.timestamp {
		return boundary.Timestamp(), nil
	}
	if flags.separator != "" {
		return boundary.Compile(flags.separator)
	}
	return boundary.Default(), nil
}

func resolveMode(flags *cliFlags) (string, error) {
	if flags.countOnly {
		return render.ModeCount, nil
	}
	switch flags.color {
	case "always":
		return render.ModeHighlight, nil
	case "never":
		return render.ModePlain, nil
	case "auto", "":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return render.ModeHighlight, nil
		}
		return render.ModePlain, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (want always, never, or auto)", flags.color)
	}
}

func runGrep(flags *cliFlags, args []string) (int, error) {
	patterns := flags.patterns
	if len(patterns) == 0 {
		if len(args) == 0 {
			return ExitUsage, fmt.Errorf("no search pattern given")
		}
		patterns = []string{args[0]}
		args = args[1:]
	}

	ps, err := recsearch.MakePatternSet(recsearch.Config{
		Patterns:   patterns,
		RequireAll: flags.andMode,
		Invert:     flags.invert,
		IgnoreCase: flags.ignoreCase,
		Fuzzy:      flags.fuzzy,
	})
	if err != nil {
		return ExitUsage, err
	}

	sep, err := buildSeparator(flags)
	if err != nil {
		return ExitUsage, err
	}

	mode, err := resolveMode(flags)
	if err != nil {
		return ExitUsage, err
	}

	logrus.Debugf("separator: %q (window %d lines)", sep.Expr(), sep.WindowLines())
	logrus.Debugf("searcher: %s", recsearch.PrettyPrint(ps.Searcher()))

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	status := driver.Run(driver.Config{
		PatternSet: ps,
		Separator:  sep,
		Mode:       mode,
		Out:        os.Stdout,
	}, paths)
	return status, nil
}

func main() {
	// An interactive interrupt is a clean termination: nothing beyond the
	// current record is buffered, so there is no partial output to lose.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		os.Exit(0)
	}()

	// Help and the version subcommand exit 0; RunE overwrites this with
	// the real match status.
	flags := &cliFlags{}
	exitStatus := driver.ExitMatch

	rootCmd := &cobra.Command{
		Use:   "mllgrep [flags] PATTERN [FILE...]",
		Short: "grep for multi-line records",
		Long: `mllgrep searches multi-line records instead of single lines. Records are
delimited by a separator pattern (blank lines and dashed rules by default,
or log timestamp headers with -t) and a record is printed whole when it
matches. Reads stdin when no FILE is given; "-" denotes stdin. Files
ending in .gz, .zst, or .bz2 are decompressed transparently.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.debug {
				logrus.SetLevel(logrus.DebugLevel)
				logrus.SetFormatter(&logrus.TextFormatter{
					FullTimestamp: true,
				})
			}
			status, err := runGrep(flags, args)
			exitStatus = status
			return err
		},
	}

	rootCmd.Flags().StringArrayVarP(&flags.patterns, "regexp", "e", nil, "search pattern (may be given multiple times)")
	rootCmd.Flags().BoolVarP(&flags.andMode, "and", "a", false, "require all patterns to match a record (default: any)")
	rootCmd.Flags().BoolVarP(&flags.invert, "invert-match", "v", false, "select records that do not match")
	rootCmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "case-insensitive matching")
	rootCmd.Flags().BoolVarP(&flags.countOnly, "count", "c", false, "print only a count of matching records per input")
	rootCmd.Flags().StringVar(&flags.color, "color", "auto", "highlight matches: always, never, or auto")
	rootCmd.Flags().StringVarP(&flags.separator, "separator", "r", "", "record separator regexp")
	rootCmd.Flags().BoolVarP(&flags.timestamp, "timestamp", "t", false, "use the log timestamp separator preset")
	rootCmd.Flags().BoolVar(&flags.fuzzy, "fuzzy", false, "fzf-style fuzzy matching instead of regexps")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mllgrep",
		Run: func(cmd *cobra.Command, args []string) {
			if MllgrepBuildTime != "" {
				fmt.Printf("%s+%s\n", MllgrepVersion, MllgrepBuildTime)
			} else {
				fmt.Printf("%s+dev\n", MllgrepVersion)
			}
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mllgrep: %v\n", err)
		if exitStatus == driver.ExitMatch || exitStatus == driver.ExitNoMatch {
			exitStatus = ExitUsage
		}
		os.Exit(exitStatus)
	}
	os.Exit(exitStatus)
}
