// Package feed replays scripted match events against a scoreboard.
//
// A feed is a YAML document with a name and an ordered list of events:
//
//	name: group-a
//	events:
//	  - {op: start,  home: Mexico, away: Canada}
//	  - {op: update, home: Mexico, away: Canada, homeScore: 0, awayScore: 5}
//	  - {op: finish, home: Mexico, away: Canada}
package feed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Op string

const (
	OpStart  Op = "start"
	OpUpdate Op = "update"
	OpFinish Op = "finish"
)

var ErrUnknownOp = errors.New("unknown event op")

type Event struct {
	Op        Op     `yaml:"op"`
	Home      string `yaml:"home"`
	Away      string `yaml:"away"`
	HomeScore int    `yaml:"homeScore"`
	AwayScore int    `yaml:"awayScore"`
}

func (e Event) String() string {
	if e.Op == OpUpdate {
		return fmt.Sprintf("%s %s %d-%d %s", e.Op, e.Home, e.HomeScore, e.AwayScore, e.Away)
	}
	return fmt.Sprintf("%s %s vs %s", e.Op, e.Home, e.Away)
}

type Feed struct {
	Name   string  `yaml:"name"`
	Events []Event `yaml:"events"`
}

// Parse decodes a feed document. Ops are case-insensitive; anything other
// than start|update|finish is rejected.
func Parse(data []byte) (Feed, error) {
	var f Feed
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Feed{}, fmt.Errorf("decode feed: %w", err)
	}
	for i := range f.Events {
		ev := &f.Events[i]
		ev.Op = Op(strings.ToLower(strings.TrimSpace(string(ev.Op))))
		switch ev.Op {
		case OpStart, OpUpdate, OpFinish:
		default:
			return Feed{}, fmt.Errorf("event %d: %w: %q", i, ErrUnknownOp, ev.Op)
		}
	}
	return f, nil
}

// Load reads and parses a feed file. An unnamed feed takes the file's base name.
func Load(path string) (Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Feed{}, fmt.Errorf("read feed %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return Feed{}, fmt.Errorf("feed %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Board is the set of scoreboard mutations a feed drives.
type Board interface {
	StartMatch(home, away string) error
	UpdateScore(home, away string, homeScore, awayScore int) error
	FinishMatch(home, away string) error
}

func Apply(b Board, ev Event) error {
	switch ev.Op {
	case OpStart:
		return b.StartMatch(ev.Home, ev.Away)
	case OpUpdate:
		return b.UpdateScore(ev.Home, ev.Away, ev.HomeScore, ev.AwayScore)
	case OpFinish:
		return b.FinishMatch(ev.Home, ev.Away)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, ev.Op)
	}
}
