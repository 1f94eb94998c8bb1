// SPDX-License-Identifier: MIT

// Package cli implements the polyctl command tree: parse polynomials given in
// the compact "deg:coeff,..." form, operate on them and print the result.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvpoly/poly"
)

// Version is filled when building with -ldflags, but *not* when installing via
// "go install".
var Version string

// ErrBadFlag reports a flag value outside its documented range.
var ErrBadFlag = errors.New("polyctl: invalid flag value")

// settings carries the persistent flags and the logger shared by every
// subcommand of one command tree.
type settings struct {
	canonical bool
	precision int
	verbose   bool
	logger    *log.Logger
}

// options converts the persistent flags into poly options.
func (s *settings) options() []poly.Option {
	opts := []poly.Option{poly.WithRenderPrecision(s.precision)}
	if s.canonical {
		opts = append(opts, poly.WithInputPolicy(poly.InputCanonical))
	}

	return opts
}

// parse reads one operand in the compact form under the current options.
func (s *settings) parse(arg string) (*poly.Polynomial, error) {
	p, err := poly.ParsePairs(arg, s.options()...)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{
		"input":  arg,
		"degree": p.Degree(),
		"terms":  p.TermCount(),
	}).Debug("parsed operand")

	return p, nil
}

// NewRootCommand builds a fresh polyctl command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&settings{logger: log.New()})
}

func newRootCommand(s *settings) *cobra.Command {
	root := &cobra.Command{
		Use:           "polyctl",
		Short:         "Sparse polynomial toolbox.",
		Long:          "Build, combine, evaluate and fingerprint sparse univariate polynomials.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.precision < 0 {
				return fmt.Errorf("--precision %d: %w", s.precision, ErrBadFlag)
			}
			configureLogger(s.logger, cmd.ErrOrStderr(), s.verbose)
			s.logger.WithFields(log.Fields{
				"canonical": s.canonical,
				"precision": s.precision,
			}).Debug("options resolved")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintf(cmd.OutOrStdout(), "polyctl %s\n", version())
				return nil
			}

			return cmd.Help()
		},
	}

	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().BoolVar(&s.canonical, "canonical", false, "sort and merge unsorted operand terms instead of rejecting them")
	root.PersistentFlags().IntVar(&s.precision, "precision", poly.DefaultRenderPrecision, "decimals printed per coefficient")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "increase logging verbosity")

	root.AddCommand(
		newRenderCmd(s),
		newEvalCmd(s),
		newFoldCmd(s, "add", "Sum two or more polynomials.", (*poly.Polynomial).AddPolynomial),
		newFoldCmd(s, "mul", "Multiply two or more polynomials.", (*poly.Polynomial).MultiplyPolynomial),
		newScaleCmd(s),
		newSampleCmd(s),
		newDigestCmd(s),
	)

	return root
}

// Execute runs polyctl against os.Args. It is called by main.main().
func Execute() {
	s := &settings{logger: log.New()}
	if err := execute(newRootCommand(s), s); err != nil {
		os.Exit(1)
	}
}

// execute runs root and reports a failure through the tree's own logger.
// Flag errors fire before PersistentPreRunE, so the logger is configured here
// as well.
func execute(root *cobra.Command, s *settings) error {
	err := root.Execute()
	if err != nil {
		configureLogger(s.logger, root.ErrOrStderr(), s.verbose)
		s.logger.Error(err)
	}

	return err
}

// configureLogger routes logs to w and disables colours unless w is a terminal.
func configureLogger(l *log.Logger, w io.Writer, verbose bool) {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{DisableColors: !tty, DisableTimestamp: !tty})
	if verbose {
		l.SetLevel(log.DebugLevel)
	} else {
		l.SetLevel(log.InfoLevel)
	}
}

// version reports the build version.
func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(unknown version)"
}

// getFlag reads a boolean flag that is known to exist.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		return false
	}

	return r
}
