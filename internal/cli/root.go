package cli

import (
	"io"
	"os"

	"github.com/Belphemur/popcorn/internal/browser"
	"github.com/Belphemur/popcorn/internal/client"
	"github.com/Belphemur/popcorn/internal/config"
	"github.com/Belphemur/popcorn/internal/selector"

	"github.com/spf13/cobra"
)

const examples = `  popcorn search "rick and morty"             List matched titles with corresponding id
  popcorn show tt2861424                      Count seasons and episodes
  popcorn show tt2861424 -s 1 -e 1            Show available resolutions for 1st episode of 1st season
  popcorn show tt2861424 -s 1 -e 1 -r 1080p   Open magnet-link for chosen resolution
  popcorn movie tt0485947                     Show available resolutions for film "Mr.Nobody"
  popcorn movie tt0485947 -r 1080p            Open magnet-link for chosen resolution
  popcorn movie tt0485947 -r 1080p -l ru      Video will be with Russian translation (also works with shows)`

// Dependencies are the collaborators a command needs. Tests swap them for
// fakes; DefaultDependencies wires the real ones.
type Dependencies struct {
	Out       io.Writer
	Err       io.Writer
	NewClient func(cfg *config.Config) client.Client
	Launcher  browser.Launcher
	Version   string
}

// DefaultDependencies writes to the process streams, talks to the
// configured servers and opens the system browser.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Out:       os.Stdout,
		Err:       os.Stderr,
		NewClient: client.NewClient,
		Launcher:  browser.NewSystemLauncher(),
		Version:   version,
	}
}

// app carries the state shared by the commands of one invocation
type app struct {
	deps       Dependencies
	configFile string
	cfg        *config.Config
}

// NewRootCommand builds the popcorn command tree
func NewRootCommand(deps Dependencies) *cobra.Command {
	return (&app{deps: deps}).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	deps := a.deps
	rootCmd := &cobra.Command{
		Use:   "popcorn",
		Short: "Find and open Popcorn Time torrents for shows and movies",
		Long: `popcorn queries a Popcorn Time API server for shows and movies by IMDb id,
summarises their seasons and opens the magnet-link of the chosen episode or movie
in the default browser. The search command looks up IMDb ids by title.`,
		Example:           examples,
		Version:           deps.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	rootCmd.PersistentFlags().StringP("domain", "d", config.DefaultDomain, "Choose Popcorn Time API server")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: config.yaml in ., ./config or ~/.config/popcorn)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: trace, debug, info, warn or error")

	rootCmd.AddCommand(
		a.newShowCommand(),
		a.newMovieCommand(),
		a.newSearchCommand(),
	)

	rootCmd.SetOut(deps.Out)
	rootCmd.SetErr(deps.Err)
	return rootCmd
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Init(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) client() client.Client {
	return a.deps.NewClient(a.cfg)
}

func (a *app) defaults() selector.Defaults {
	return selector.Defaults{
		Locale:     a.configuredLocale(),
		Resolution: config.DefaultResolution,
	}
}

func (a *app) configuredLocale() string {
	if a.cfg.Locale != "" {
		return a.cfg.Locale
	}
	return config.DefaultLocale
}

// locale and resolution prefer the command flag and fall back to the
// configured value. An empty --lang counts as unset.
func (a *app) locale(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("lang") && flagValue != "" {
		return flagValue
	}
	return a.configuredLocale()
}

func (a *app) resolution(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("resolution") {
		return flagValue
	}
	return a.cfg.Resolution
}

func (a *app) present(outcome selector.Outcome) error {
	return selector.NewPresenter(a.deps.Out, a.deps.Launcher).Present(outcome)
}

func addSelectionFlags(cmd *cobra.Command, resolution, locale *string) {
	cmd.Flags().StringVarP(resolution, "resolution", "r", "", "Resolution to open, e.g. 720p or 1080p (default: list available resolutions)")
	cmd.Flags().StringVarP(locale, "lang", "l", "", "Translation locale, e.g. en or ru (default: en)")
}
