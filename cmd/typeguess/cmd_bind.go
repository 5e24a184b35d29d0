package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"typeguess/bind"
	"typeguess/utils"
)

var (
	bindSchemaPath string
	bindSetEntries []string
)

var bindCmd = &cobra.Command{
	Use:   "bind [config.yaml]",
	Short: "Coerce a YAML config file against a declared schema",
	Long: `Bind decodes the config file into untyped values and coerces every
schema-declared key to its guessed type. The schema is a flat YAML mapping of
key to type expression; entries can also be given inline:

  typeguess bind --schema schema.yaml config.yaml
  typeguess bind --set port=integer --set hosts="string[]" config.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runBind,
}

func init() {
	bindCmd.Flags().StringVarP(&bindSchemaPath, "schema", "s", "",
		"schema YAML file mapping keys to type expressions")
	bindCmd.Flags().StringArrayVar(&bindSetEntries, "set", nil,
		"inline schema entry, key=types")
}

func runBind(cmd *cobra.Command, args []string) error {
	schema := bind.Schema{}

	if bindSchemaPath != "" {
		loaded, err := bind.LoadSchema(bindSchemaPath)
		if err != nil {
			return err
		}
		schema = loaded
	}

	for _, entry := range bindSetEntries {
		key, expr := utils.Unpack2(strings.SplitN(entry, "=", 2))
		if key == "" || expr == "" {
			return fmt.Errorf("invalid --set entry %q, want key=types", entry)
		}
		schema[key] = expr
	}

	logger.Debug("Binding config",
		zap.String("config", args[0]),
		zap.Int("declared_keys", len(schema)))

	values, diags, err := bind.New(nil, nil).File(args[0], schema)
	if err != nil {
		return err
	}
	diags.Emit(logger)

	out, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to render bound config: %w", err)
	}

	fmt.Print(string(out))
	return nil
}
