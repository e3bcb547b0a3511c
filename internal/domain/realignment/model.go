package realignment

import "strings"

// TeamRealignment maps a team abbreviation to its conference and division.
type TeamRealignment struct {
	Team       string
	Conference string
	Division   string
	Name       string
}

// Lookup indexes realignment rows by normalized team abbreviation.
type Lookup map[string]TeamRealignment

func BuildLookup(rows []TeamRealignment) Lookup {
	lookup := make(Lookup, len(rows))
	for _, row := range rows {
		lookup[NormalizeTeam(row.Team)] = row
	}
	return lookup
}

func (l Lookup) Get(team string) (TeamRealignment, bool) {
	row, ok := l[NormalizeTeam(team)]
	return row, ok
}

func NormalizeTeam(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
