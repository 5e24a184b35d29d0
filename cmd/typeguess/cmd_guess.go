package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"typeguess/guess"
	"typeguess/typeref"
)

var (
	guessTypes []string
	guessYAML  bool
)

var guessCmd = &cobra.Command{
	Use:   "guess [value]",
	Short: "Guess which declared type a value represents",
	Long: `Guess runs the elimination engine over a single value. The value is
taken as a raw string by default; with --yaml it is decoded first, so lists
and mappings can be passed inline, e.g.:

  typeguess guess --types integer,float,boolean,string 10.44
  typeguess guess --yaml --types "integer[],float[]" "[1, 2, 3]"`,
	Args: cobra.ExactArgs(1),
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().StringSliceVarP(&guessTypes, "types", "t", nil,
		"candidate types in declaration order, e.g. integer,float,string")
	guessCmd.Flags().BoolVar(&guessYAML, "yaml", false,
		"decode the value as YAML before guessing")
	_ = guessCmd.MarkFlagRequired("types")
}

func runGuess(cmd *cobra.Command, args []string) error {
	types, err := typeref.ParseList(guessTypes)
	if err != nil {
		return err
	}

	var value any = args[0]
	if guessYAML {
		if err := yaml.Unmarshal([]byte(args[0]), &value); err != nil {
			return fmt.Errorf("failed to decode value as YAML: %w", err)
		}
	}

	logger.Debug("Guessing type",
		zap.Strings("candidates", types.Names()),
		zap.Any("value", value))

	resolved, ok := guess.New().GuessFor(value, types)
	if !ok {
		fmt.Println("no decision")
		return nil
	}

	fmt.Println(resolved)
	return nil
}
