package game

import (
	"strings"
	"testing"
)

var shapes = []Shape{Rock, Paper, Scissors}

func TestBeats(t *testing.T) {
	beats, how := Beats(Rock, Paper)
	if beats {
		t.Errorf("rock should not beat paper")
	}
	beats, how = Beats(Paper, Rock)
	if !beats {
		t.Errorf("paper should beat rock")
	}
	if !strings.Contains(how, "cover") {
		t.Errorf("paper should cover rock")
	}
	beats, how = Beats(Scissors, Scissors)
	if beats || how != "ties" {
		t.Errorf("scissors vs scissors should tie, got %v %q", beats, how)
	}
}

func TestResolveAllPairs(t *testing.T) {
	// rows are the player, columns the computer
	table := [3][3]Outcome{
		Rock:     {Rock: Tie, Paper: Loss, Scissors: Win},
		Paper:    {Rock: Win, Paper: Tie, Scissors: Loss},
		Scissors: {Rock: Loss, Paper: Win, Scissors: Tie},
	}
	for _, p := range shapes {
		for _, c := range shapes {
			got := Resolve(p, c)
			if got != table[p][c] {
				t.Errorf("Resolve(%s, %s) = %s, want %s", p, c, got, table[p][c])
			}
			if (got == Tie) != (p == c) {
				t.Errorf("Resolve(%s, %s) = %s, tie iff equal", p, c, got)
			}
		}
	}
}

func TestResolveAntiSymmetric(t *testing.T) {
	for _, a := range shapes {
		for _, b := range shapes {
			if a == b {
				continue
			}
			if (Resolve(a, b) == Win) != (Resolve(b, a) == Loss) {
				t.Errorf("%s vs %s is not anti-symmetric: %s / %s", a, b, Resolve(a, b), Resolve(b, a))
			}
		}
	}
}

func TestResolveInvalidPanics(t *testing.T) {
	cases := [][2]Shape{
		{Shape(3), Rock},
		{Paper, Shape(-1)},
		{Shape(7), Shape(7)},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Resolve(%d, %d) should panic", int(c[0]), int(c[1]))
				}
			}()
			Resolve(c[0], c[1])
		}()
	}
}

func TestWinningShape(t *testing.T) {
	if w := WinningShape(Rock, Scissors); w != Rock {
		t.Errorf("rock should win over scissors, got %s", w)
	}
	if w := WinningShape(Rock, Paper); w != Paper {
		t.Errorf("paper should win over rock, got %s", w)
	}
	if w := WinningShape(Paper, Scissors); w != Scissors {
		t.Errorf("scissors should win over paper, got %s", w)
	}
}

func TestPlay(t *testing.T) {
	r := Play(1, Rock, Scissors)
	if r.Outcome != Win || r.Summary != "Rock breaks Scissors" {
		t.Errorf("unexpected round: %+v", r)
	}
	r = Play(2, Scissors, Rock)
	if r.Outcome != Loss || r.Summary != "Rock breaks Scissors" {
		t.Errorf("unexpected round: %+v", r)
	}
	r = Play(3, Paper, Paper)
	if r.Outcome != Tie || r.Summary != "Both played Paper, tie" || r.Number != 3 {
		t.Errorf("unexpected round: %+v", r)
	}
}

func TestOutcomeMessage(t *testing.T) {
	want := map[Outcome]string{
		Win:  "You won the game!",
		Loss: "You lost the game.",
		Tie:  "This game is a tie.",
	}
	for o, msg := range want {
		if o.Message() != msg {
			t.Errorf("%s message = %q, want %q", o, o.Message(), msg)
		}
	}
	if got := Outcome(7).Message(); got != "Unknown outcome 7." {
		t.Errorf("unknown outcome should not read as a tie, got %q", got)
	}
	if got := Outcome(7).String(); got != "Outcome(7)" {
		t.Errorf("unknown outcome string = %q", got)
	}
}

func TestSessionID(t *testing.T) {
	id := NewSessionID()
	if len(id) != SESSIONID_LENGTH {
		t.Errorf("session id %q should be %d chars", id, SESSIONID_LENGTH)
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", r) {
			t.Errorf("session id %q has unexpected character %q", id, r)
		}
	}
}
