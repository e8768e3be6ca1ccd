package season

import "testing"

func fp(v float64) *float64 {
	return &v
}

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Side
		wantOK     bool
		wantTie    bool
		wantWinner string
	}{
		{
			name:    "declared tie on either side",
			a:       Side{TeamKey: "t1", WinStatus: "tie", Points: fp(120)},
			b:       Side{TeamKey: "t2", WinStatus: "", Points: fp(80)},
			wantOK:  true,
			wantTie: true,
		},
		{
			name:       "single win status beats points",
			a:          Side{TeamKey: "t1", WinStatus: "win", Points: fp(80)},
			b:          Side{TeamKey: "t2", WinStatus: "loss", Points: fp(120)},
			wantOK:     true,
			wantWinner: "t1",
		},
		{
			name:       "win status on second side",
			a:          Side{TeamKey: "t1", Points: fp(80)},
			b:          Side{TeamKey: "t2", WinStatus: "WIN"},
			wantOK:     true,
			wantWinner: "t2",
		},
		{
			name:       "both sides claim win falls back to points",
			a:          Side{TeamKey: "t1", WinStatus: "win", Points: fp(90)},
			b:          Side{TeamKey: "t2", WinStatus: "win", Points: fp(100)},
			wantOK:     true,
			wantWinner: "t2",
		},
		{
			name:       "points decide without status",
			a:          Side{TeamKey: "t1", Points: fp(101.5)},
			b:          Side{TeamKey: "t2", Points: fp(99.25)},
			wantOK:     true,
			wantWinner: "t1",
		},
		{
			name:    "equal points tie",
			a:       Side{TeamKey: "t1", Points: fp(88.4)},
			b:       Side{TeamKey: "t2", Points: fp(88.4)},
			wantOK:  true,
			wantTie: true,
		},
		{
			name:   "missing points unresolved",
			a:      Side{TeamKey: "t1", Points: fp(100)},
			b:      Side{TeamKey: "t2"},
			wantOK: false,
		},
		{
			name:   "no signal at all unresolved",
			a:      Side{TeamKey: "t1"},
			b:      Side{TeamKey: "t2"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := ResolveOutcome(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%t, got %t", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if out.Tie != tt.wantTie {
				t.Fatalf("expected tie=%t, got %t", tt.wantTie, out.Tie)
			}
			if !tt.wantTie && out.Winner != tt.wantWinner {
				t.Fatalf("expected winner %s, got %s", tt.wantWinner, out.Winner)
			}
		})
	}
}

func TestResolveMatchupRequiresTwoSides(t *testing.T) {
	if _, ok := ResolveMatchup([]Side{{TeamKey: "t1", Points: fp(100)}}); ok {
		t.Fatal("expected one-sided matchup to stay unresolved")
	}
	sides := []Side{
		{TeamKey: "t1", Points: fp(100)},
		{TeamKey: "t2", Points: fp(90)},
		{TeamKey: "t3", Points: fp(80)},
	}
	if _, ok := ResolveMatchup(sides); ok {
		t.Fatal("expected three-sided matchup to stay unresolved")
	}
}
