package scoreboard

import "time"

// MatchSnapshot is the serialisable form of a summary entry.
type MatchSnapshot struct {
	Rank       int    `json:"rank"`
	ID         string `json:"id"`
	HomeTeam   string `json:"homeTeam"`
	AwayTeam   string `json:"awayTeam"`
	HomeScore  int    `json:"homeScore"`
	AwayScore  int    `json:"awayScore"`
	TotalScore int    `json:"totalScore"`
	StartedAt  string `json:"startedAt"`
}

// Snapshot converts an ordered summary into ranked snapshots (rank starts at 1).
func Snapshot(summary []Match) []MatchSnapshot {
	out := make([]MatchSnapshot, 0, len(summary))
	for i, m := range summary {
		out = append(out, MatchSnapshot{
			Rank:       i + 1,
			ID:         m.ID.String(),
			HomeTeam:   m.HomeTeam,
			AwayTeam:   m.AwayTeam,
			HomeScore:  m.Score.Home,
			AwayScore:  m.Score.Away,
			TotalScore: m.TotalScore(),
			StartedAt:  m.StartedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}
