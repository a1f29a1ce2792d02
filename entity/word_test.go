package entity

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/vmath"
)

func newTestWord(text string) *Word {
	return NewWord(text, vmath.V(100, 200), vmath.V(0, -20), pixelMetrics, metrics.Font{}, testStyle())
}

func TestWordLayout(t *testing.T) {
	w := newTestWord("cat")

	if w.Size() != vmath.V(30, 20) {
		t.Errorf("Expected size (30,20), got %+v", w.Size())
	}

	letters := w.Letters()
	for i, l := range letters {
		want := vmath.V(100+float64(i)*10, 200)
		if l.Pos != want {
			t.Errorf("Letter %d at %+v, expected %+v", i, l.Pos, want)
		}
	}
}

func TestWordLettersFollowAnchor(t *testing.T) {
	w := NewWord("hello", vmath.V(0, 300), vmath.V(3, -25), pixelMetrics, metrics.Font{}, testStyle())

	for i := 0; i < 100; i++ {
		w.Update(16 * time.Millisecond)
	}

	for i, l := range w.Letters() {
		want := w.Pos.Add(vmath.V(float64(i)*10, 0))
		if !approxEqual(l.Pos, want, 1e-9) {
			t.Errorf("Letter %d drifted: %+v, expected %+v", i, l.Pos, want)
		}
	}
}

func TestWordMatchSequence(t *testing.T) {
	w := newTestWord("Cat")

	for i, c := range []rune("cAT") {
		if !w.MatchChar(c) {
			t.Fatalf("Character %d (%q) should match", i, c)
		}
		if w.Matched != i+1 {
			t.Fatalf("Expected matched %d, got %d", i+1, w.Matched)
		}
	}
	if !w.Complete() || !w.IsReadyToRemove() {
		t.Error("Fully typed word should be complete and ready to remove")
	}
	if w.MatchChar('t') {
		t.Error("Complete word should not accept more characters")
	}
}

func TestWordMissDoesNotReset(t *testing.T) {
	w := newTestWord("test")
	w.MatchChar('t')
	w.MatchChar('e')

	for _, c := range []rune("tzxe") {
		if w.MatchChar(c) {
			t.Fatalf("%q should miss while expecting 's'", c)
		}
		if w.Matched != 2 {
			t.Fatalf("Miss changed matched count to %d", w.Matched)
		}
	}

	if !w.MatchChar('s') || w.Matched != 3 {
		t.Errorf("Expected progress to resume at 3, got %d", w.Matched)
	}
}

func TestWordMatchMonotonicRandomized(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	words := []string{"cat", "dog", "house", "tree", "apple", "sun"}

	for i := 0; i < 300; i++ {
		text := words[rng.IntN(len(words))]
		w := newTestWord(text)
		prev := 0

		for steps := 0; steps < 50 && !w.Complete(); steps++ {
			var c rune
			if rng.IntN(3) == 0 {
				c = rune('a' + rng.IntN(26))
			} else {
				c, _ = w.Expected()
			}

			expected, _ := w.Expected()
			advanced := w.MatchChar(c)

			if advanced != sameRune(c, expected) {
				t.Fatalf("%q: typed %q expecting %q, advanced=%v", text, c, expected, advanced)
			}
			if w.Matched < prev || w.Matched > prev+1 {
				t.Fatalf("%q: matched moved from %d to %d", text, prev, w.Matched)
			}
			prev = w.Matched
		}
	}
}

func TestWordOffscreenAnyLetter(t *testing.T) {
	w := newTestWord("dog")
	if w.IsOffscreen(0) {
		t.Fatal("Word should start on screen")
	}

	// 200 up to -20.1: 220.1 units at 20 units/s
	w.Update(secs(11.01))
	if !w.IsOffscreen(0) {
		t.Errorf("Word at y=%v should be offscreen", w.Pos.Y)
	}
}

func TestWordGlyphColors(t *testing.T) {
	style := testStyle()
	w := newTestWord("cat")
	w.MatchChar('c')

	glyphs := w.Glyphs(0)
	if len(glyphs) != 3 {
		t.Fatalf("Expected 3 glyphs, got %d", len(glyphs))
	}
	if glyphs[0].Color != style.Matched {
		t.Error("Typed character should use the matched colour")
	}
	if glyphs[1].Color != style.Base || glyphs[2].Color != style.Base {
		t.Error("Untyped characters should use the base colour")
	}
	if glyphs[2].Char != 't' {
		t.Errorf("Expected 't', got %q", glyphs[2].Char)
	}
}

func TestWordHighlightIsDisplayOnly(t *testing.T) {
	style := testStyle()
	w := newTestWord("cat")
	w.Highlight(0)

	if w.Matched != 0 || w.IsReadyToRemove() {
		t.Error("Highlight must not change progress or removal")
	}
	if got := w.Glyphs(0)[0].Color; got != style.Flash.Palette[0] {
		t.Errorf("Highlighted word should flash, got %+v", got)
	}
}
