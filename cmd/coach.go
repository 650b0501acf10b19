package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCoachCmd(app *app) *cobra.Command {
	var withBiography bool

	cmd := &cobra.Command{
		Use:   "coach <club-id>",
		Short: "Print the current head coach of a club by Wikidata id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			club := domain.ClubRecord{ID: domain.ClubID(strings.TrimSpace(args[0]))}

			coach, err := app.service.ResolveCoach(cmd.Context(), club)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), coach); err != nil {
				return err
			}
			if !withBiography {
				return nil
			}

			biography, err := app.service.FetchBiography(cmd.Context(), coach)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", biography)
			return err
		},
	}

	cmd.Flags().BoolVar(&withBiography, "bio", false, "Also print the coach biography")

	return cmd
}
