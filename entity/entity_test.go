package entity

import (
	"testing"
	"time"

	"github.com/lixenwraith/type-tutor/metrics"
	"github.com/lixenwraith/type-tutor/vmath"
)

func TestEntityDispatchLetter(t *testing.T) {
	e := NewLetterEntity(NewLetter('k', vmath.V(0, 50), vmath.V(0, -10), vmath.V(10, 20), testStyle()))

	if e.Kind() != KindLetter || e.Text() != "k" {
		t.Fatalf("Expected letter 'k', got %v %q", e.Kind(), e.Text())
	}
	if _, ok := e.Word(); ok {
		t.Error("Letter entity should not expose a word")
	}

	e.Update(time.Second)
	if l, _ := e.Letter(); l.Pos.Y != 40 {
		t.Errorf("Expected y=40, got %v", l.Pos.Y)
	}

	if !e.MatchChar('K', 0) {
		t.Error("Expected match")
	}
	if e.IsReadyToRemove(secs(0.5)) || !e.IsReadyToRemove(secs(0.75)) {
		t.Error("Letter entity removal should follow the flash cycle")
	}
	if got := len(e.Glyphs(0)); got != 1 {
		t.Errorf("Expected 1 glyph, got %d", got)
	}
}

func TestEntityDispatchWord(t *testing.T) {
	w := NewWord("sun", vmath.V(0, 50), vmath.V(0, -10), pixelMetrics, metrics.Font{}, testStyle())
	e := NewWordEntity(w)

	if e.Kind() != KindWord || e.Text() != "sun" {
		t.Fatalf("Expected word 'sun', got %v %q", e.Kind(), e.Text())
	}
	if e.Bounds() != (vmath.Rect{X: 0, Y: 50, W: 30, H: 20}) {
		t.Errorf("Unexpected bounds %+v", e.Bounds())
	}

	for _, c := range "sun" {
		e.MatchChar(c, 0)
	}
	if !e.IsReadyToRemove(0) {
		t.Error("Completed word should be removable immediately")
	}
	if e.IsOffscreen(0) {
		t.Error("Word should still be on screen")
	}
}

func TestKindString(t *testing.T) {
	if KindLetter.String() != "letter" || KindWord.String() != "word" || Kind(0).String() != "unknown" {
		t.Error("Unexpected kind names")
	}
}
