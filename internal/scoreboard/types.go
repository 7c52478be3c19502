package scoreboard

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// keySeparator joins home and away team names into a match key.
const keySeparator = " vs "

// ScorePair is the (home, away) score of a match. Updates replace the whole pair.
type ScorePair struct {
	Home int
	Away int
}

func (s ScorePair) Total() int {
	return s.Home + s.Away
}

// Match is an immutable value describing one live match.
// Score changes produce a new Match with the same ID, StartedAt and Seq.
type Match struct {
	ID        uuid.UUID
	HomeTeam  string
	AwayTeam  string
	Score     ScorePair
	StartedAt time.Time
	Seq       uint64 // start order within one scoreboard
}

// MatchKey is directional: MatchKey("A", "B") != MatchKey("B", "A").
func MatchKey(home, away string) string {
	return home + keySeparator + away
}

func (m Match) Key() string {
	return MatchKey(m.HomeTeam, m.AwayTeam)
}

func (m Match) TotalScore() int {
	return m.Score.Total()
}

func (m Match) withScore(s ScorePair) Match {
	m.Score = s
	return m
}

func (m Match) String() string {
	return fmt.Sprintf("%s %d - %s %d", m.HomeTeam, m.Score.Home, m.AwayTeam, m.Score.Away)
}
