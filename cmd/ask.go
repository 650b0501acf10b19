package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Answer a single question and print the rendered prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := loadIndex(cmd, app, asJSON)
			if err != nil {
				return err
			}

			answer, err := app.service.Ask(cmd.Context(), index, strings.Join(args, " "))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(answer)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer.Prompt)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render the full answer as JSON")

	return cmd
}
