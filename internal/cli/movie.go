package cli

import (
	"errors"

	"github.com/Belphemur/popcorn/internal/apperrors"
	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/metrics"
	"github.com/Belphemur/popcorn/internal/selector"

	"github.com/spf13/cobra"
)

func (a *app) newMovieCommand() *cobra.Command {
	var resolution, locale string

	cmd := &cobra.Command{
		Use:   "movie <imdb_id>",
		Short: "Subcommand for downloading movies",
		Long: `Print the title of a movie and open its magnet-link for the chosen locale and
resolution, or list the available resolutions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.GetLogger()
			imdbID := args[0]

			query := selector.MovieQuery{
				Locale:     a.locale(cmd, locale),
				Resolution: a.resolution(cmd, resolution),
			}

			logger.Debug().Str("imdbID", imdbID).Str("locale", query.Locale).Str("resolution", query.Resolution).Msg("Running movie command")

			result, err := a.client().FetchMovie(cmd.Context(), imdbID, query.Locale)
			if err != nil {
				return err
			}

			movie, err := result.Unwrap(metrics.EndpointMovie, imdbID)
			if errors.Is(err, &apperrors.ErrNotFound{}) {
				return a.present(selector.NotFound(imdbID))
			}

			return a.present(selector.SelectMovie(movie, query, a.defaults()))
		},
	}

	addSelectionFlags(cmd, &resolution, &locale)
	return cmd
}
