package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/findpopup/internal/cli/styles"
	"github.com/bnema/findpopup/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration status",
	Long:  `Display the config file path and whether it exists.`,
	RunE:  runConfigStatus,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, environment overrides and normalization.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the configuration JSON schema",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to the config file")
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.Manager.GetConfigFile()
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return nil
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigInfo(path, exists))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := toml.Marshal(app.Manager.Get())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(styles.NewConfigRenderer(app.Theme).RenderEffective(string(data)))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !schemaWrite {
		data, err := config.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	path, err := app.Manager.WriteSchemaFile()
	if err != nil {
		return err
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}
