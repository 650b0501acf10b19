package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// Commands carrying this annotation run without configuration or network
// clients.
const annotationSkipWire = "blc.skip-wire"

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	noSpinner  bool
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "blc",
		Short:         "Bundesliga coach context CLI (blc): build chatbot prompts about club coaches",
		Long:          "blc (Bundesliga coach context) recognises a German city in a question, looks up the Bundesliga club from that city and its current head coach on Wikidata, fetches the coach biography from Wikipedia and renders a chatbot system prompt from a template.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationSkipWire] != "" {
				return nil
			}

			wired, err := wireApp(cmd, opts)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: $HOME/.config/blc/config.toml, then ./config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console, json")
	flags.BoolVar(&opts.noSpinner, "no-spinner", false, "Do not show a spinner while loading the club index")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newAskCmd(app),
		newClubsCmd(app),
		newCoachCmd(app),
		newConfigCmd(app, opts),
	)

	return rootCmd
}
