package cmd

import (
	"github.com/bnema/bundesliga-context-cli/internal/application"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Ask about Bundesliga coaches interactively",
		Long:  "Start an interactive session. Each question naming a city with a Bundesliga club prints the chatbot system prompt for that club's head coach. Type 'exit' to quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := loadIndex(cmd, app, false)
			if err != nil {
				return err
			}

			chat := application.NewChat(app.service, index, app.chatPrinter)
			return chat.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
