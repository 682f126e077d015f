package cli

import (
	"errors"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/selector"

	"github.com/spf13/cobra"
)

func (a *app) newShowCommand() *cobra.Command {
	var (
		season     int
		episode    int
		resolution string
		locale     string
	)

	cmd := &cobra.Command{
		Use:   "show <imdb_id>",
		Short: "Subcommand for downloading shows",
		Long: `Print the seasons of a show with their episode count. With both --season and
--episode, open the magnet-link of that episode in the chosen resolution, or list
the available resolutions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.GetLogger()
			imdbID := args[0]

			query := selector.ShowQuery{Resolution: a.resolution(cmd, resolution)}
			if cmd.Flags().Changed("season") && cmd.Flags().Changed("episode") {
				query.Season = &season
				query.Episode = &episode
			}
			lang := a.locale(cmd, locale)

			logger.Debug().Str("imdbID", imdbID).Str("locale", lang).Str("resolution", query.Resolution).Msg("Running show command")

			result, err := a.client().FetchShow(cmd.Context(), imdbID, lang)
			if err != nil {
				return err
			}

			show, err := result.Unwrap(metrics.EndpointShow, imdbID)
			if errors.Is(err, &apperrors.ErrNotFound{}) {
				return a.present(selector.NotFound(imdbID))
			}

			return a.present(selector.SelectShow(show, query, a.defaults()))
		},
	}

	cmd.Flags().IntVarP(&season, "season", "s", 0, "Season number")
	cmd.Flags().IntVarP(&episode, "episode", "e", 0, "Episode number")
	addSelectionFlags(cmd, &resolution, &locale)
	return cmd
}
