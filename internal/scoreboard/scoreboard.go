// Package scoreboard keeps the set of live football matches and a ranked
// summary of them that stays consistent under concurrent updates.
package scoreboard

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Clock supplies start times for new matches.
type Clock func() time.Time

// Scoreboard owns the match registry and the sorted summary derived from it.
//
// Every mutation runs under mu: validate, change the registry, re-sort, publish.
// Readers only load the published slice, so Summary never waits for a writer.
type Scoreboard struct {
	mu  sync.Mutex
	seq uint64

	matches   MatchStore
	validator Validator
	clock     Clock
	log       *slog.Logger

	sorted atomic.Pointer[[]Match]
}

// New builds an empty scoreboard. A nil clock means time.Now, a nil store
// means a fresh InMemoryMatchStore.
func New(clock Clock, store MatchStore, log *slog.Logger) *Scoreboard {
	if clock == nil {
		clock = time.Now
	}
	if store == nil {
		store = NewInMemoryMatchStore()
	}
	if log == nil {
		log = slog.Default()
	}

	s := &Scoreboard{
		matches: store,
		clock:   clock,
		log:     log,
	}
	s.mu.Lock()
	s.refreshLocked()
	s.mu.Unlock()
	return s
}

// StartMatch registers a new match with score 0-0.
func (s *Scoreboard) StartMatch(home, away string) error {
	if err := s.validator.ValidateTeams(home, away); err != nil {
		return err
	}
	key := MatchKey(home, away)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.ValidateNotExists(key, s.matches); err != nil {
		return err
	}

	s.seq++
	m := Match{
		ID:        uuid.New(),
		HomeTeam:  home,
		AwayTeam:  away,
		StartedAt: s.clock(),
		Seq:       s.seq,
	}
	s.matches.Put(key, m)
	s.refreshLocked()

	s.log.Debug("match started", "key", key, "id", m.ID, "live", s.matches.Len())
	return nil
}

// UpdateScore replaces the score of a live match. Team names are checked
// first, then scores, then existence.
func (s *Scoreboard) UpdateScore(home, away string, homeScore, awayScore int) error {
	if err := s.validator.ValidateTeams(home, away); err != nil {
		return err
	}
	if err := s.validator.ValidateScores(homeScore, awayScore); err != nil {
		return err
	}
	key := MatchKey(home, away)

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.matches.Get(key)
	if !ok {
		return notFound(key)
	}

	next := cur.withScore(ScorePair{Home: homeScore, Away: awayScore})
	s.matches.Put(key, next)
	s.refreshLocked()

	s.log.Debug("score updated", "key", key, "id", next.ID, "score", next.String())
	return nil
}

// FinishMatch removes a live match.
func (s *Scoreboard) FinishMatch(home, away string) error {
	if err := s.validator.ValidateTeams(home, away); err != nil {
		return err
	}
	key := MatchKey(home, away)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.ValidateExists(key, s.matches); err != nil {
		return err
	}
	s.matches.Delete(key)
	s.refreshLocked()

	s.log.Debug("match finished", "key", key, "live", s.matches.Len())
	return nil
}

// Summary returns the live matches ordered by total score (desc), most
// recently started first on ties. The slice is a copy owned by the caller.
func (s *Scoreboard) Summary() []Match {
	cur := *s.sorted.Load()
	out := make([]Match, len(cur))
	copy(out, cur)
	return out
}

// Len is the number of live matches in the last published summary.
func (s *Scoreboard) Len() int {
	return len(*s.sorted.Load())
}

func (s *Scoreboard) refreshLocked() {
	ms := s.matches.List()
	sortMatches(ms)
	s.sorted.Store(&ms)
}
