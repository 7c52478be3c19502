package scoreboard

import "strings"

// Validator holds the precondition checks used by Scoreboard. It has no state.
type Validator struct{}

func (Validator) ValidateTeams(home, away string) error {
	if strings.TrimSpace(home) == "" || strings.TrimSpace(away) == "" {
		return invalidInput(msgInvalidTeams)
	}
	return nil
}

func (Validator) ValidateScores(home, away int) error {
	if home < 0 || away < 0 {
		return invalidInput(msgNegativeScores)
	}
	return nil
}

func (Validator) ValidateExists(key string, store MatchStore) error {
	if _, ok := store.Get(key); !ok {
		return notFound(key)
	}
	return nil
}

func (Validator) ValidateNotExists(key string, store MatchStore) error {
	if _, ok := store.Get(key); ok {
		return alreadyExists(key)
	}
	return nil
}
