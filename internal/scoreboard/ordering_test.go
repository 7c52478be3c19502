package scoreboard

import (
	"testing"
	"time"
)

func TestCompareMatches(t *testing.T) {
	t0 := kickoff
	t1 := kickoff.Add(time.Minute)

	cases := []struct {
		name string
		a, b Match
		want int
	}{
		{
			name: "higher total first",
			a:    Match{Score: ScorePair{Home: 2, Away: 1}, StartedAt: t0},
			b:    Match{Score: ScorePair{Home: 1, Away: 1}, StartedAt: t1},
			want: -1,
		},
		{
			name: "equal total, later start first",
			a:    Match{Score: ScorePair{Home: 1, Away: 1}, StartedAt: t1},
			b:    Match{Score: ScorePair{Home: 2}, StartedAt: t0},
			want: -1,
		},
		{
			name: "equal total, earlier start last",
			a:    Match{StartedAt: t0},
			b:    Match{StartedAt: t1},
			want: 1,
		},
		{
			name: "same instant, higher seq first",
			a:    Match{StartedAt: t0, Seq: 2},
			b:    Match{StartedAt: t0, Seq: 1},
			want: -1,
		},
		{
			name: "identical",
			a:    Match{StartedAt: t0, Seq: 1},
			b:    Match{StartedAt: t0, Seq: 1},
			want: 0,
		},
	}

	for _, tc := range cases {
		if got := compareMatches(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: compareMatches=%d want %d", tc.name, got, tc.want)
		}
	}
}

func TestSortMatches(t *testing.T) {
	ms := []Match{
		{HomeTeam: "low", Score: ScorePair{Home: 1}, StartedAt: kickoff, Seq: 1},
		{HomeTeam: "high-old", Score: ScorePair{Home: 3}, StartedAt: kickoff, Seq: 2},
		{HomeTeam: "high-new", Score: ScorePair{Away: 3}, StartedAt: kickoff.Add(time.Second), Seq: 3},
	}
	sortMatches(ms)

	want := []string{"high-new", "high-old", "low"}
	for i, m := range ms {
		if m.HomeTeam != want[i] {
			t.Fatalf("position %d: got %s want %s", i, m.HomeTeam, want[i])
		}
	}
}
