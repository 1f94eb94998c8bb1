// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpoly/poly"
)

// formatFloat prints a scalar result with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printPoly writes p either rendered or as JSON.
func printPoly(cmd *cobra.Command, p *poly.Polynomial, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), p.Render())
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return err
}

func newRenderCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "render POLY",
		Short: "Print a polynomial in canonical rendered form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.parse(args[0])
			if err != nil {
				return err
			}

			return printPoly(cmd, p, false)
		},
	}
}

func newEvalCmd(s *settings) *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "eval --at X POLY",
		Short: "Evaluate a polynomial at X.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.parse(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatFloat(p.Evaluate(at)))

			return err
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "point at which to evaluate")

	return cmd
}

// newFoldCmd builds a command that folds op left to right over its operands.
func newFoldCmd(s *settings, use, short string, op func(p, other *poly.Polynomial) error) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   use + " POLY POLY...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := s.parse(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				next, err := s.parse(arg)
				if err != nil {
					return err
				}
				if err := op(acc, next); err != nil {
					return err
				}
				s.logger.WithFields(log.Fields{"op": use, "degree": acc.Degree()}).Debug("folded operand")
			}

			return printPoly(cmd, acc, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func newScaleCmd(s *settings) *cobra.Command {
	var (
		degree int
		coeff  float64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "scale --degree D --coeff C POLY",
		Short: "Multiply a polynomial by the monomial C·x^D.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.parse(args[0])
			if err != nil {
				return err
			}
			if err := p.MultiplyMonomial(degree, coeff); err != nil {
				return err
			}

			return printPoly(cmd, p, asJSON)
		},
	}
	cmd.Flags().IntVar(&degree, "degree", 0, "degree shift D (>= 0)")
	cmd.Flags().Float64Var(&coeff, "coeff", 1, "coefficient C")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func newDigestCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "digest POLY",
		Short: "Print the blake3 fingerprint of a polynomial.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.parse(args[0])
			if err != nil {
				return err
			}
			sum := p.Digest()
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sum[:]))

			return err
		},
	}
}
