package cli

import (
	"fmt"

	"github.com/Belphemur/popcorn/internal/config"

	"github.com/spf13/cobra"
)

func (a *app) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Subcommand for searching imdb ids",
		Long:  `Search IMDb titles and print each match followed by its IMDb id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.GetLogger()
			logger.Debug().Str("query", args[0]).Msg("Running search command")

			results, err := a.client().Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if len(results) == 0 {
				_, err := fmt.Fprintln(a.deps.Out, "No results")
				return err
			}
			for _, result := range results {
				if _, err := fmt.Fprintf(a.deps.Out, "%s %s\n", result.Label, result.IMDBID); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
