package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the weather text for the selected provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			application, err := newApplication(ctx, os.Stderr)
			if err != nil {
				return err
			}
			defer shutdownQuietly(application.Shutdown)

			item, err := application.WeatherService().CurrentText(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "provider: %s\nfetched:  %s\n\n",
					item.Provider, time.UnixMilli(item.FetchedAtMs).Format(time.RFC3339))
			}
			fmt.Fprintln(out, item.Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print provider and fetch time")
	return cmd
}

func shutdownQuietly(shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
