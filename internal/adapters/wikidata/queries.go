package wikidata

import "fmt"

// Clubs of type association football club (Q476028), football team
// (Q847017) or women's football club (Q103229495) playing in the
// Bundesliga (Q82595), with their headquarters city (P159).
const clubsQueryTemplate = `
SELECT DISTINCT ?club ?clubLabel ?city ?cityLabel
WHERE
{
  VALUES ?type { wd:Q476028 wd:Q847017 wd:Q103229495 }
  ?club wdt:P31 ?type;
        wdt:P118 wd:Q82595.
  ?club wdt:P159 ?city
  SERVICE wikibase:label { bd:serviceParam wikibase:language "%s". }
}
`

// Head coach (P286) of a single club.
const coachesQueryTemplate = `
SELECT DISTINCT ?coach ?coachLabel
WHERE
{
  wd:%s wdt:P286 ?coach.
  SERVICE wikibase:label { bd:serviceParam wikibase:language "[AUTO_LANGUAGE],mul,%s". }
}
`

var (
	clubsQueryVars   = []string{"club", "clubLabel", "cityLabel"}
	coachesQueryVars = []string{"coachLabel"}
)

func clubsQuery(language string) string {
	return fmt.Sprintf(clubsQueryTemplate, language)
}

func coachesQuery(club, language string) string {
	return fmt.Sprintf(coachesQueryTemplate, club, language)
}
