package clubs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Filter keeps only cities containing it, ignoring case.
	Filter  string
	HideIDs bool
}

func renderView(index domain.CityClubIndex, opts RenderOptions, s styles) string {
	cities := filteredCities(index, opts.Filter)

	lines := []string{
		s.title.Render("Bundesliga Clubs"),
		s.header.Render(fmt.Sprintf("cities: %d", len(cities))),
	}

	if len(cities) == 0 {
		lines = append(lines, s.empty.Render("No clubs available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, city := range cities {
		width = max(width, lipgloss.Width(city))
	}

	for _, city := range cities {
		lines = append(lines, renderRow(city, index[city], width, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(city string, club domain.ClubRecord, width int, opts RenderOptions, s styles) string {
	parts := []string{
		s.city.Width(width).Render(city),
		s.arrow.Render("→"),
		s.club.Render(clubName(club)),
	}
	if !opts.HideIDs {
		parts = append(parts, s.id.Render("("+string(club.ID)+")"))
	}

	return strings.Join(parts, " ")
}

func filteredCities(index domain.CityClubIndex, filter string) []string {
	filter = strings.ToLower(strings.TrimSpace(filter))

	cities := make([]string, 0, len(index))
	for city := range index {
		if strings.TrimSpace(city) == "" {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(city), filter) {
			continue
		}
		cities = append(cities, city)
	}
	sort.Strings(cities)

	return cities
}

func clubName(club domain.ClubRecord) string {
	if strings.TrimSpace(club.Name) == "" {
		return string(club.ID)
	}
	return club.Name
}
