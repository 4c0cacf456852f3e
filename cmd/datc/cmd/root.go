package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/freeeve/datc-orders/internal/logger"
	"github.com/freeeve/datc-orders/pkg/diplomacy"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "datc",
	Short: "Convert DATC standard notation to orders",
	Long: `datc reads Diplomacy orders in DATC standard notation from stdin and
writes them to stdout, by default as an EDN map keyed by order vectors.

Formats:
  edn   - orders map with an empty result placeholder per order
  dson  - compact DSON order strings joined by " ; "
  json  - array of order objects`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(cmd.InOrStdin(), cmd.OutOrStdout(), outputFormat)
	},
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "edn", "output format: edn, dson or json")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "datc: %v\n", err)
}

// convert reads notation from r and writes the rendered orders to w. Nothing
// is written when the notation fails to parse.
func convert(r io.Reader, w io.Writer, format string) error {
	render, err := renderer(format)
	if err != nil {
		return err
	}
	input, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	orders, err := diplomacy.ParseNotation(string(input))
	if err != nil {
		return err
	}
	out, err := render(orders)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func renderer(format string) (func([]diplomacy.Order) (string, error), error) {
	switch format {
	case "edn":
		return func(orders []diplomacy.Order) (string, error) {
			return diplomacy.FormatEDN(orders), nil
		}, nil
	case "dson":
		return func(orders []diplomacy.Order) (string, error) {
			return diplomacy.FormatDSON(orders), nil
		}, nil
	case "json":
		return func(orders []diplomacy.Order) (string, error) {
			if orders == nil {
				orders = []diplomacy.Order{}
			}
			b, err := json.MarshalIndent(orders, "", "  ")
			return string(b), err
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want edn, dson or json)", format)
}
