// SPDX-License-Identifier: MIT

// Command squaremat prints the Square operator walkthrough and evaluates
// single operations on matrices given on the command line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/squaremat/internal/config"
	"github.com/katalvlaran/squaremat/internal/demo"
	"github.com/katalvlaran/squaremat/matrix"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("squaremat: ")
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd wires every subcommand to out; running the root alone runs the demo.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configFile string
		noColor    bool
	)

	runDemo := func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if configFile != "" {
			var err error
			if cfg, err = config.Load(configFile); err != nil {
				return err
			}
		}
		if noColor {
			cfg.Style.Color = false
		}
		return demo.Run(out, cfg)
	}

	rootCmd := &cobra.Command{
		Use:           "squaremat",
		Short:         "square matrix operator walkthrough",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDemo,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "demo config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled headings")
	rootCmd.SetOut(out)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "print every operation on the configured operands",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}

	var rows string
	detCmd := &cobra.Command{
		Use:   "det",
		Short: "determinant by cofactor expansion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(rows)
			if err != nil {
				return err
			}
			d, err := matrix.Det(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, d)
			return err
		},
	}
	detCmd.Flags().StringVar(&rows, "rows", "", `matrix rows, e.g. "4,6;3,8"`)
	_ = detCmd.MarkFlagRequired("rows")

	var (
		powRows string
		power   int
	)
	powCmd := &cobra.Command{
		Use:   "pow",
		Short: "raise a matrix to a non-negative power",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMatrix(powRows)
			if err != nil {
				return err
			}
			res, err := matrix.Pow(m, power)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, res)
			return err
		},
	}
	powCmd.Flags().StringVar(&powRows, "rows", "", `matrix rows, e.g. "1,1;1,0"`)
	powCmd.Flags().IntVarP(&power, "power", "p", 2, "exponent (>= 0)")
	_ = powCmd.MarkFlagRequired("rows")

	rootCmd.AddCommand(demoCmd, detCmd, powCmd)

	return rootCmd
}

// parseMatrix reads rows separated by ';' and values separated by ','.
func parseMatrix(s string) (*matrix.Square, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("parse rows: %w", matrix.ErrInvalidSize)
	}
	lines := strings.Split(s, ";")
	rows := make([][]float64, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, ",")
		rows[i] = make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("parse rows: row %d col %d: %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return matrix.NewFromRows(rows)
}
