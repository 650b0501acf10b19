package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	clubsrender "github.com/bnema/bundesliga-context-cli/internal/adapters/render/clubs"
	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/spf13/cobra"
)

type clubEntry struct {
	City string
	Name string
	ID   domain.ClubID
}

func newClubsCmd(app *app) *cobra.Command {
	var asJSON bool
	var opts clubsrender.RenderOptions

	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "List the cities and Bundesliga clubs the chatbot recognises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := loadIndex(cmd, app, asJSON)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(clubEntries(index))
			}

			rendered, err := app.clubsRenderer(index, opts)
			if err != nil {
				return fmt.Errorf("render clubs: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Only list cities containing this text")
	cmd.Flags().BoolVar(&opts.HideIDs, "no-ids", false, "Hide Wikidata identifiers")

	return cmd
}

func clubEntries(index domain.CityClubIndex) []clubEntry {
	entries := make([]clubEntry, 0, len(index))
	for city, club := range index {
		entries = append(entries, clubEntry{City: city, Name: club.Name, ID: club.ID})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].City < entries[j].City
	})

	return entries
}
