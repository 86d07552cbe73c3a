package history

import (
	"testing"

	"clickchess/src/base"
)

func TestPushPopLIFO(t *testing.T) {
	h := NewHistory()
	h.Push(Entry{UCI: "e2e4", SAN: "e4"})
	h.Push(Entry{UCI: "e7e5", SAN: "e5", ByEngine: true})

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}

	e, ok := h.Pop()
	if !ok || e.UCI != "e7e5" || !e.ByEngine {
		t.Fatalf("Pop = %+v, %v; want engine e7e5", e, ok)
	}
	e, ok = h.Pop()
	if !ok || e.UCI != "e2e4" || e.ByEngine {
		t.Fatalf("Pop = %+v, %v; want human e2e4", e, ok)
	}
	if _, ok := h.Pop(); ok {
		t.Fatal("Pop on empty history reported ok")
	}
}

func TestAnchorClearsEntries(t *testing.T) {
	h := NewHistory()
	h.Push(Entry{UCI: "e2e4", SAN: "e4"})
	h.Anchor("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	if h.Len() != 0 {
		t.Fatalf("Len after Anchor = %d, want 0", h.Len())
	}
	if h.Baseline() == base.FEN_START_GAME {
		t.Fatal("Anchor did not replace the baseline")
	}
}

func TestTopDoesNotRemove(t *testing.T) {
	h := NewHistory()
	h.Push(Entry{UCI: "g1f3", SAN: "Nf3"})

	if e, ok := h.Top(); !ok || e.UCI != "g1f3" {
		t.Fatalf("Top = %+v, %v", e, ok)
	}
	if h.Len() != 1 {
		t.Fatalf("Top removed the entry, Len = %d", h.Len())
	}
}

func TestUCIMovesOrder(t *testing.T) {
	h := NewHistory()
	h.Push(Entry{UCI: "e2e4"})
	h.Push(Entry{UCI: "e7e5"})
	h.Push(Entry{UCI: "g1f3"})

	got := h.UCIMoves()
	want := []string{"e2e4", "e7e5", "g1f3"}
	if len(got) != len(want) {
		t.Fatalf("UCIMoves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UCIMoves[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMovesText(t *testing.T) {
	tests := []struct {
		name     string
		baseline string
		sans     []string
		want     string
	}{
		{
			name:     "empty",
			baseline: base.FEN_START_GAME,
			want:     "",
		},
		{
			name:     "white baseline",
			baseline: base.FEN_START_GAME,
			sans:     []string{"e4", "e5", "Nf3", "Nc6", "Bb5"},
			want:     "1. e4 e5 2. Nf3 Nc6 3. Bb5",
		},
		{
			name:     "black baseline",
			baseline: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			sans:     []string{"e5", "Nf3"},
			want:     "1... e5 2. Nf3",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHistory()
			h.Anchor(tc.baseline)
			for _, san := range tc.sans {
				h.Push(Entry{SAN: san})
			}
			if got := h.MovesText(); got != tc.want {
				t.Fatalf("MovesText = %q, want %q", got, tc.want)
			}
		})
	}
}
