package engine

import (
	"time"

	"github.com/lixenwraith/type-tutor/entity"
	"github.com/lixenwraith/type-tutor/vmath"
)

// Spawner produces a new entity for the current live set, nil means nothing this time
type Spawner interface {
	Spawn(live []*entity.Entity, bounds vmath.Rect) *entity.Entity
}

// SpawnerFunc adapts a function to Spawner
type SpawnerFunc func(live []*entity.Entity, bounds vmath.Rect) *entity.Entity

// Spawn calls f(live, bounds)
func (f SpawnerFunc) Spawn(live []*entity.Entity, bounds vmath.Rect) *entity.Entity {
	return f(live, bounds)
}

// PoolConfig holds lifecycle parameters of the pool
type PoolConfig struct {
	SpawnInterval time.Duration
	// Boundary is the y, relative to the top of the bounds, an entity must cross to be culled
	Boundary float64
}

// Pool owns the live entities in insertion order.
// Motion is written only by Update; removal is decided only by Prune.
type Pool struct {
	entities   []*entity.Entity
	nextID     uint64
	sinceSpawn time.Duration

	spawner Spawner
	bounds  vmath.Rect
	cfg     PoolConfig

	spawned int
	removed int
}

// NewPool creates an empty pool spawning into bounds
func NewPool(spawner Spawner, bounds vmath.Rect, cfg PoolConfig) *Pool {
	return &Pool{
		spawner: spawner,
		bounds:  bounds,
		cfg:     cfg,
	}
}

// Live returns the live entities, oldest first. Callers may change match state
// but must not reorder, append or remove.
func (p *Pool) Live() []*entity.Entity {
	return p.entities
}

// Len returns the live entity count
func (p *Pool) Len() int {
	return len(p.entities)
}

// Bounds returns the spawn area
func (p *Pool) Bounds() vmath.Rect {
	return p.bounds
}

// SetBounds changes the spawn area, e.g. after a terminal resize
func (p *Pool) SetBounds(r vmath.Rect) {
	p.bounds = r
}

// SetSpawner replaces the spawner and restarts the spawn timer
func (p *Pool) SetSpawner(s Spawner) {
	p.spawner = s
	p.sinceSpawn = 0
}

// Add appends e and assigns it an ID
func (p *Pool) Add(e *entity.Entity) {
	if e == nil {
		return
	}
	p.nextID++
	e.ID = p.nextID
	p.entities = append(p.entities, e)
	p.spawned++
}

// Clear removes every entity
func (p *Pool) Clear() {
	clear(p.entities)
	p.entities = p.entities[:0]
	p.sinceSpawn = 0
}

// Spawned returns the number of entities added since creation
func (p *Pool) Spawned() int {
	return p.spawned
}

// Removed returns the number of entities pruned since creation
func (p *Pool) Removed() int {
	return p.removed
}

// MaybeSpawn advances the spawn timer and spawns once it reaches the interval.
// The timer resets to zero rather than subtracting the interval.
func (p *Pool) MaybeSpawn(dt time.Duration) *entity.Entity {
	p.sinceSpawn += dt
	if p.sinceSpawn < p.cfg.SpawnInterval {
		return nil
	}
	p.sinceSpawn = 0

	if p.spawner == nil || p.bounds.Empty() {
		return nil
	}
	e := p.spawner.Spawn(p.entities, p.bounds)
	p.Add(e)
	return e
}

// Update moves every live entity by dt
func (p *Pool) Update(dt time.Duration) {
	for _, e := range p.entities {
		e.Update(dt)
	}
}

// Prune drops offscreen and finished entities, keeping order, and returns them
func (p *Pool) Prune(now time.Duration) []*entity.Entity {
	var dropped []*entity.Entity
	boundary := p.bounds.Y + p.cfg.Boundary
	kept := p.entities[:0]
	for _, e := range p.entities {
		if e.IsOffscreen(boundary) || e.IsReadyToRemove(now) {
			dropped = append(dropped, e)
			continue
		}
		kept = append(kept, e)
	}
	// Release references held by the tail
	clear(p.entities[len(kept):])
	p.entities = kept
	p.removed += len(dropped)
	return dropped
}

// Tick updates every entity then prunes
func (p *Pool) Tick(dt, now time.Duration) []*entity.Entity {
	p.Update(dt)
	return p.Prune(now)
}
