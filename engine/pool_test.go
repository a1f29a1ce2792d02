package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/vmath"
)

func countingSpawner(n *int) Spawner {
	return SpawnerFunc(func(_ []*entity.Entity, b vmath.Rect) *entity.Entity {
		*n++
		return testWord("cat", vmath.V(b.X, b.Bottom()-1), vmath.V(0, -1))
	})
}

func TestPoolSpawnCadenceResetsToZero(t *testing.T) {
	calls := 0
	p := NewPool(countingSpawner(&calls), vmath.Rect{W: 40, H: 20}, PoolConfig{SpawnInterval: time.Second})

	p.MaybeSpawn(600 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("Expected no spawn before interval, got %d", calls)
	}
	p.MaybeSpawn(600 * time.Millisecond) // 1.2s, overshoot discarded
	if calls != 1 {
		t.Fatalf("Expected 1 spawn, got %d", calls)
	}
	p.MaybeSpawn(900 * time.Millisecond)
	if calls != 1 {
		t.Errorf("Expected timer reset to zero, got %d spawns", calls)
	}
	p.MaybeSpawn(100 * time.Millisecond)
	if calls != 2 {
		t.Errorf("Expected 2 spawns, got %d", calls)
	}
}

func TestPoolSkipsEmptyBounds(t *testing.T) {
	calls := 0
	p := NewPool(countingSpawner(&calls), vmath.Rect{}, PoolConfig{SpawnInterval: time.Millisecond})
	if e := p.MaybeSpawn(time.Second); e != nil || calls != 0 {
		t.Errorf("Expected no spawn into empty bounds, got %d calls", calls)
	}
}

func TestPoolAssignsIDsInOrder(t *testing.T) {
	p := NewPool(nil, vmath.Rect{W: 40, H: 20}, PoolConfig{})
	a := testWord("ant", vmath.V(0, 10), vmath.V(0, -1))
	b := testWord("bee", vmath.V(10, 10), vmath.V(0, -1))
	p.Add(a)
	p.Add(nil)
	p.Add(b)

	if p.Len() != 2 {
		t.Fatalf("Expected 2 entities, got %d", p.Len())
	}
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", a.ID, b.ID)
	}
}

func TestPoolPruneKeepsOrder(t *testing.T) {
	p := NewPool(nil, vmath.Rect{W: 40, H: 20}, PoolConfig{})
	a := testWord("ant", vmath.V(0, 10), vmath.V(0, -1))
	gone := testWord("bee", vmath.V(10, -5), vmath.V(0, -1))
	c := testWord("cow", vmath.V(20, 15), vmath.V(0, -1))
	done := testWord("dog", vmath.V(30, 12), vmath.V(0, -1))
	for _, e := range []*entity.Entity{a, gone, c, done} {
		p.Add(e)
	}
	for _, r := range "dog" {
		done.MatchChar(r, 0)
	}

	dropped := p.Prune(0)
	if len(dropped) != 2 {
		t.Fatalf("Expected 2 dropped, got %d", len(dropped))
	}

	live := p.Live()
	if len(live) != 2 || live[0] != a || live[1] != c {
		t.Errorf("Expected [ant cow], got %d entities", len(live))
	}
	if p.Removed() != 2 {
		t.Errorf("Expected removed count 2, got %d", p.Removed())
	}
}

func TestPoolTickMovesThenPrunes(t *testing.T) {
	p := NewPool(nil, vmath.Rect{W: 40, H: 20}, PoolConfig{})
	w := testWord("ant", vmath.V(0, 0.5), vmath.V(0, -2))
	p.Add(w)

	if dropped := p.Tick(time.Second, time.Second); len(dropped) != 1 {
		t.Errorf("Expected word above the top to be dropped, got %d", len(dropped))
	}
	if p.Len() != 0 {
		t.Errorf("Expected empty pool, got %d", p.Len())
	}
}

func TestPoolBoundaryRelativeToBounds(t *testing.T) {
	p := NewPool(nil, vmath.Rect{Y: 1, W: 40, H: 20}, PoolConfig{})
	w := testWord("ant", vmath.V(0, 0.5), vmath.V(0, -1))
	p.Add(w)

	// bottom at 1.5 is still below the playfield top at y=1
	p.Prune(0)
	if p.Len() != 1 {
		t.Fatalf("Expected word to survive, got %d live", p.Len())
	}
	p.Tick(time.Second, time.Second)
	if p.Len() != 0 {
		t.Errorf("Expected word culled above y=1, got %d live", p.Len())
	}
}
