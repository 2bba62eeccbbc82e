package internal

type FantasyContent struct {
	League *League `xml:"league"`
	Team   *Team   `xml:"team"`
	Player *Player `xml:"player"`
}

type League struct {
	Key   string `xml:"league_key"`
	Name  string `xml:"name"`
	Teams *Teams `xml:"teams"`
}

type Teams struct {
	Teams []Team `xml:"team"`
}

type Team struct {
	Key             string  `xml:"team_key"`
	ID              int     `xml:"team_id"`
	Name            string  `xml:"name"`
	Nickname        string  `xml:"nickname"`
	TeamPoints      *Points `xml:"team_points"`
	ProjectedPoints *Points `xml:"team_projected_points"`
	Roster          *Roster `xml:"roster"`
}

// Points totals arrive as strings and are sometimes empty, so the
// conversion to float64 happens in the client with a default of zero.
type Points struct {
	Total string `xml:"total"`
}

type Roster struct {
	Players *Players `xml:"players"`
}

type Players struct {
	Players []Player `xml:"player"`
}

type Player struct {
	Key             string      `xml:"player_key"`
	Name            *PlayerName `xml:"name"`
	PlayerPoints    *Points     `xml:"player_points"`
	ProjectedPoints *Points     `xml:"player_projected_points"`
}

type PlayerName struct {
	Full string `xml:"full"`
}
