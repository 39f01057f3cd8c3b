package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hookline/hookline/cli"
	"github.com/hookline/hookline/config"
	"github.com/hookline/hookline/errors"
)

// NewValidateCmd creates the 'validate' command. Validation is two-layered:
// the raw document is checked against the embedded JSON Schema, then the
// parsed config is checked semantically (unique hook ids per source block,
// stage names in {commit, push}, revision pins on remote sources).
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the hookline configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			path, err := cli.InitConfig(opts.ConfigFile)
			if err != nil {
				return err
			}
			if path == "" {
				cwd, _ := os.Getwd()
				return errors.ConfigNotFound(cwd)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigInvalid, "read config file")
			}

			// Schema validation runs on the raw document so unknown fields
			// are caught before struct decoding drops them.
			var doc map[string]interface{}
			if strings.EqualFold(filepath.Ext(path), ".toml") {
				err = toml.Unmarshal(raw, &doc)
			} else {
				err = yaml.Unmarshal(raw, &doc)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse config file")
			}

			validator, err := config.NewSchemaValidator()
			if err != nil {
				return err
			}
			if err := validator.Validate(doc); err != nil {
				return errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			hooks := 0
			for _, repo := range cfg.Repos {
				hooks += len(repo.Hooks)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d source(s), %d hook(s).\n", path, len(cfg.Repos), hooks)
			return nil
		},
	}
}
