package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/paneset/internal/cli/styles"
	"github.com/bnema/paneset/internal/infrastructure/config"
)

const schemaFilePerm = 0o644

var schemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, its file location, or its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, environment overrides and
normalization have been applied.`,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file, for editor completion and
validation.

Examples:
  paneset config schema                       # Print to stdout
  paneset config schema -o schema.json        # Write to a file`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return config.EncodeTOML(app.Config, cmd.OutOrStdout())
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
			return nil
		}
	}

	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, exists))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}

	if schemaOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return err
	}

	if err := os.WriteFile(schemaOutput, schema, schemaFilePerm); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	if app := GetApp(); app != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderWritten("schema", schemaOutput))
	}
	return nil
}
