package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL  string
	json    bool
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "franchise",
		Short: "Manage the athletes, venues and finances of a fighter franchise",
		Long: `A command-line client for the fighter franchise API. Every command
loads the collections it needs from the server, applies the change and
prints the resulting state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			return a.open(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", "", "Base URL of the franchise API (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAthletesCmd(a))
	rootCmd.AddCommand(newVenuesCmd(a))
	rootCmd.AddCommand(newFinanceCmd(a))
	return rootCmd
}

func Execute() {
	log.SetOutput(os.Stderr)
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
