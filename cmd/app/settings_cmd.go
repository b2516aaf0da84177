package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"weathertext.app/internal/core/settings"
	"weathertext.app/internal/ports"
	"weathertext.app/pkg/errors"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the persisted weather settings",
	}

	cmd.AddCommand(newSettingsShowCmd())
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the settings in effect as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			defer shutdownQuietly(application.Shutdown)

			return writeSettings(cmd.OutOrStdout(), application.SettingsUseCase().Current())
		},
	}
}

func newSettingsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings and persist them",
		Example: `  weathertext settings set --source wttr
  weathertext settings set --cache-seconds 600 --add-ribbon=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := patchFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			application, err := newApplication(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			defer shutdownQuietly(application.Shutdown)

			updated, err := application.SettingsUseCase().Update(cmd.Context(), patch)
			if err != nil {
				return err
			}
			return writeSettings(cmd.OutOrStdout(), updated)
		},
	}

	cmd.Flags().String("source", "", "Weather provider: wttr, openweathermap or not-selected")
	cmd.Flags().Int("cache-seconds", settings.DefaultCacheSeconds, "Seconds a fetched text stays fresh")
	cmd.Flags().Bool("add-ribbon", true, "Show the quick access control")
	return cmd
}

// patchFromFlags builds a patch from the flags the user actually passed
func patchFromFlags(flags *pflag.FlagSet) (settings.Patch, error) {
	var patch settings.Patch

	if flags.Changed("source") {
		value, _ := flags.GetString("source")
		source := ports.ProviderIDFromString(value)
		if !source.IsValid() {
			return patch, errors.NewValidationError(fmt.Sprintf("unknown source %q", value))
		}
		patch.Source = &source
	}
	if flags.Changed("cache-seconds") {
		seconds, _ := flags.GetInt("cache-seconds")
		patch.CacheSeconds = &seconds
	}
	if flags.Changed("add-ribbon") {
		addRibbon, _ := flags.GetBool("add-ribbon")
		patch.AddRibbon = &addRibbon
	}

	if patch.IsEmpty() {
		return patch, errors.NewValidationError("no settings to change, pass at least one flag")
	}
	return patch, nil
}

func writeSettings(w io.Writer, s settings.Settings) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}
