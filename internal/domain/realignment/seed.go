package realignment

// DefaultAlignment returns the 32-team conference and division assignments.
func DefaultAlignment() []TeamRealignment {
	return []TeamRealignment{
		{Team: "DAL", Conference: "People", Division: "People with Jobs", Name: "Cowboys"},
		{Team: "KC", Conference: "People", Division: "People", Name: "Chiefs"},
		{Team: "TB", Conference: "People", Division: "Violent People", Name: "Buccaneers"},
		{Team: "CIN", Conference: "Animals", Division: "Cats", Name: "Bengals"},
		{Team: "MIA", Conference: "Animals", Division: "Surf & Turf", Name: "Dolphins"},
		{Team: "CAR", Conference: "Animals", Division: "Cats", Name: "Panthers"},
		{Team: "LV", Conference: "People", Division: "Violent People", Name: "Raiders"},
		{Team: "ARI", Conference: "Animals", Division: "North America", Name: "Cardinals"},
		{Team: "PIT", Conference: "People", Division: "People with Jobs", Name: "Steelers"},
		{Team: "NYG", Conference: "People", Division: "Fictional People", Name: "Giants"},
		{Team: "TEN", Conference: "People", Division: "Fictional People", Name: "Titans"},
		{Team: "SF", Conference: "People", Division: "People with Jobs", Name: "49ers"},
		{Team: "DET", Conference: "Animals", Division: "Cats", Name: "Lions"},
		{Team: "HOU", Conference: "People", Division: "People", Name: "Texans"},
		{Team: "BAL", Conference: "Animals", Division: "Birds of Prey", Name: "Ravens"},
		{Team: "MIN", Conference: "People", Division: "Violent People", Name: "Vikings"},
		{Team: "WAS", Conference: "People", Division: "People with Jobs", Name: "Commanders"},
		{Team: "CLE", Conference: "People", Division: "People", Name: "Browns"},
		{Team: "JAX", Conference: "Animals", Division: "Cats", Name: "Jaguars"},
		{Team: "CHI", Conference: "Animals", Division: "North America", Name: "Bears"},
		{Team: "NE", Conference: "People", Division: "People", Name: "Patriots"},
		{Team: "BUF", Conference: "Animals", Division: "Surf & Turf", Name: "Bills"},
		{Team: "SEA", Conference: "Animals", Division: "Birds of Prey", Name: "Seahawks"},
		{Team: "LA", Conference: "Animals", Division: "Surf & Turf", Name: "Rams"},
		{Team: "DEN", Conference: "Animals", Division: "North America", Name: "Broncos"},
		{Team: "PHI", Conference: "Animals", Division: "Birds of Prey", Name: "Eagles"},
		{Team: "ATL", Conference: "Animals", Division: "Birds of Prey", Name: "Falcons"},
		{Team: "LAC", Conference: "People", Division: "Violent People", Name: "Chargers"},
		{Team: "GB", Conference: "People", Division: "People with Jobs", Name: "Packers"},
		{Team: "NYJ", Conference: "People", Division: "Fictional People", Name: "Jets"},
		{Team: "IND", Conference: "Animals", Division: "North America", Name: "Colts"},
		{Team: "NO", Conference: "People", Division: "Fictional People", Name: "Saints"},
	}
}
