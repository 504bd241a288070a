// Command pegcli is a thin packaging wrapper around the peg package: it
// reads a grammar file and an input file (or stdin), parses the grammar,
// and reports whether the grammar matches the input. It is an external
// collaborator, not part of the core library's tested contract.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	peg "github.com/hucsmn/pegrammar"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type parseParams struct {
	rule    string
	verbose bool
}

func rootCommand() *cobra.Command {
	params := &parseParams{}

	root := &cobra.Command{
		Use:   "pegcli <grammar-file> <input-file>",
		Short: "Recognize an input against a PEG grammar",
		Long: `pegcli reads a PEG grammar from <grammar-file> and an input from
<input-file> (or "-" for stdin), then reports a match span or a
mismatch with its furthest reached position.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], args[1], params)
		},
	}
	root.Flags().StringVar(&params.rule, "rule", "", "starting rule name (default: the grammar's first rule)")
	root.Flags().BoolVarP(&params.verbose, "verbose", "v", false, "log grammar construction and the parse outcome")
	return root
}

func runParse(out io.Writer, grammarPath, inputPath string, params *parseParams) error {
	grammarText, err := os.ReadFile(grammarPath)
	if err != nil {
		return fmt.Errorf("reading grammar file: %w", err)
	}
	input, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	var opts []peg.Option
	if params.verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		opts = append(opts, peg.WithLogger(log))
	}

	g, err := peg.ParseGrammar(string(grammarText), opts...)
	if err != nil {
		return fmt.Errorf("parsing grammar: %w", err)
	}

	result := g.Parse(string(input), params.rule)
	if peg.IsMismatch(result) {
		pos := peg.PositionAt(string(input), result.Furthest)
		fmt.Fprintf(out, "mismatch: furthest=%d (%s)\n", result.Furthest, pos)
		return nil
	}
	fmt.Fprintf(out, "match: [%d, %d)\n", result.Start, result.End)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
