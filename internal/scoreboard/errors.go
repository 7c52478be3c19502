package scoreboard

import "errors"

// Error kinds. Use errors.Is against these.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyExists = errors.New("match already exists")
)

const (
	msgInvalidTeams   = "Team names must not be null or empty."
	msgNegativeScores = "Scores cannot be negative."
)

// MatchError carries the kind, the offending key (if any) and a stable message.
type MatchError struct {
	Kind error
	Key  string
	Msg  string
}

func (e *MatchError) Error() string {
	return e.Msg
}

func (e *MatchError) Unwrap() error {
	return e.Kind
}

func invalidInput(msg string) error {
	return &MatchError{Kind: ErrInvalidInput, Msg: msg}
}

func notFound(key string) error {
	return &MatchError{Kind: ErrMatchNotFound, Key: key, Msg: "Match not found: " + key}
}

func alreadyExists(key string) error {
	return &MatchError{Kind: ErrMatchAlreadyExists, Key: key, Msg: "Match already exists: " + key}
}
