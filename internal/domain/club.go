package domain

import (
	"fmt"
	"regexp"
)

// ClubID is the opaque knowledge-graph identifier of a club, e.g. "Q15789".
type ClubID string

type ClubRecord struct {
	Name string
	ID   ClubID
}

// RawClub is one (club URI, club label, city label) row as returned by the
// knowledge source, before the identifier has been extracted from the URI.
type RawClub struct {
	URI       string
	Label     string
	CityLabel string
}

// CityClubIndex maps a city display name to the club headquartered there.
// It is built once per session and only read afterwards.
type CityClubIndex map[string]ClubRecord

var clubURIPattern = regexp.MustCompile(`entity/(.*)`)

// ClubIDFromURI extracts the identifier that follows "entity/" in a
// knowledge-graph entity URI.
func ClubIDFromURI(uri string) (ClubID, bool) {
	match := clubURIPattern.FindStringSubmatch(uri)
	if match == nil || match[1] == "" {
		return "", false
	}
	return ClubID(match[1]), true
}

// BuildCityClubIndex converts raw club rows into a CityClubIndex. A single
// row without an extractable identifier fails the whole build. When two rows
// share a city label the later one wins.
func BuildCityClubIndex(records []RawClub) (CityClubIndex, error) {
	index := make(CityClubIndex, len(records))
	for i, record := range records {
		id, ok := ClubIDFromURI(record.URI)
		if !ok {
			return nil, NewLookupError("build city club index", fmt.Errorf("record %d: club %q has no identifier in %q", i, record.Label, record.URI))
		}
		index[record.CityLabel] = ClubRecord{Name: record.Label, ID: id}
	}

	return index, nil
}
