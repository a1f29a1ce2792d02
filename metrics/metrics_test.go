package metrics

import "testing"

func TestCellMetricsMeasure(t *testing.T) {
	m := NewCellMetrics()
	font := Font{Name: "mono"}

	tests := []struct {
		text string
		w    float64
	}{
		{"", 0},
		{"cat", 3},
		{"hello", 5},
		{"日本", 4},
	}

	for _, tt := range tests {
		w, h := m.Measure(tt.text, font)
		if w != tt.w {
			t.Errorf("Measure(%q) width = %v, expected %v", tt.text, w, tt.w)
		}
		if h != 1 {
			t.Errorf("Measure(%q) height = %v, expected 1", tt.text, h)
		}
	}
}

func TestCellMetricsDeterministic(t *testing.T) {
	m := NewCellMetrics()
	font := Font{Name: "mono", Size: 12}
	w1, h1 := m.Measure("word", font)
	w2, h2 := m.Measure("word", font)
	if w1 != w2 || h1 != h2 {
		t.Errorf("Expected identical measurements, got (%v,%v) and (%v,%v)", w1, h1, w2, h2)
	}
}

func TestMeasureFunc(t *testing.T) {
	var tm TextMetrics = MeasureFunc(func(text string, font Font) (float64, float64) {
		return float64(len(text)) * font.Size, font.Size * 2
	})

	w, h := tm.Measure("ab", Font{Size: 10})
	if w != 20 || h != 20 {
		t.Errorf("Expected (20,20), got (%v,%v)", w, h)
	}
}

func TestCellMetricsColumns(t *testing.T) {
	m := NewCellMetrics()
	for _, text := range []string{"cat", "日本", "§x"} {
		w, _ := m.Measure(text, Font{})
		if got := m.Columns(text); float64(got) != w {
			t.Errorf("Columns(%q) = %d, expected %v", text, got, w)
		}
	}

	if m.RuneColumns('a') != 1 || m.RuneColumns('日') != 2 {
		t.Errorf("Expected rune widths 1 and 2, got %d and %d", m.RuneColumns('a'), m.RuneColumns('日'))
	}
	if m.RuneColumns('§') != 1 {
		t.Errorf("Expected ambiguous rune to be narrow, got %d", m.RuneColumns('§'))
	}
}
