// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpoly/poly"
)

// minSampleSteps is the smallest grid that contains both endpoints.
const minSampleSteps = 2

// Summary holds descriptive statistics of a polynomial sampled on a grid.
type Summary struct {
	Min, Max, Mean, StdDev float64
}

// Sample evaluates p at steps evenly spaced points covering [from, to]
// (both endpoints included) and returns the values.
func Sample(p *poly.Polynomial, from, to float64, steps int) ([]float64, error) {
	if steps < minSampleSteps {
		return nil, fmt.Errorf("steps %d < %d: %w", steps, minSampleSteps, ErrBadFlag)
	}

	values := make([]float64, steps)
	h := (to - from) / float64(steps-1)
	for i := range values {
		x := from + float64(i)*h
		if i == steps-1 {
			x = to
		}
		values[i] = p.Evaluate(x)
	}

	return values, nil
}

// Summarize computes min, max, mean and population standard deviation.
func Summarize(values []float64) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Min, err = stats.Min(values); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(values); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(values); err != nil {
		return Summary{}, err
	}

	return s, nil
}

func newSampleCmd(s *settings) *cobra.Command {
	var (
		from, to float64
		steps    int
	)
	cmd := &cobra.Command{
		Use:   "sample --from A --to B --steps N POLY",
		Short: "Evaluate a polynomial on an even grid and summarize the values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := s.parse(args[0])
			if err != nil {
				return err
			}
			values, err := Sample(p, from, to, steps)
			if err != nil {
				return err
			}
			sum, err := Summarize(values)
			if err != nil {
				return err
			}
			s.logger.WithFields(log.Fields{"from": from, "to": to, "steps": steps}).Debug("sampled")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "min=%s max=%s mean=%s stddev=%s\n",
				formatFloat(sum.Min), formatFloat(sum.Max), formatFloat(sum.Mean), formatFloat(sum.StdDev))

			return err
		},
	}
	cmd.Flags().Float64Var(&from, "from", -1, "left end of the grid")
	cmd.Flags().Float64Var(&to, "to", 1, "right end of the grid")
	cmd.Flags().IntVar(&steps, "steps", 11, "number of grid points (>= 2)")

	return cmd
}
