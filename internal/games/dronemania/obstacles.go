package dronemania

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/dronemania/internal/config"
	"github.com/vovakirdan/dronemania/internal/core"
)

// ObstacleKind is the closed set of obstacle types.
type ObstacleKind int

const (
	KindChimney ObstacleKind = iota
	KindFlare
)

// String returns the kind name used in logs and snapshots.
func (k ObstacleKind) String() string {
	switch k {
	case KindChimney:
		return "chimney"
	case KindFlare:
		return "flare"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k ObstacleKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Obstacle is an immutable world-space rectangle. X is the left edge in
// world coordinates; Y is the top edge.
type Obstacle struct {
	ID     uint64
	X      float64
	Y      float64
	Width  float64
	Height float64
	Kind   ObstacleKind
}

// Rect returns the obstacle bounds in world space.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// ViewportRect returns the obstacle bounds relative to the viewport.
func (o Obstacle) ViewportRect(scrollOffset float64) core.Rect {
	return o.Rect().Translate(-scrollOffset, 0)
}

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded pseudorandom source.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Generator creates obstacle batches ahead of the viewport. Its id counter
// lives as long as the generator, so ids never repeat across restarts.
type Generator struct {
	rng    RandomSource
	world  config.World
	cfg    config.Obstacles
	nextID uint64
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng RandomSource, world config.World, cfg config.Obstacles) *Generator {
	return &Generator{
		rng:   rng,
		world: world,
		cfg:   cfg,
	}
}

// Reconfigure swaps the random source and tunables. The id counter is kept.
func (g *Generator) Reconfigure(rng RandomSource, world config.World, cfg config.Obstacles) {
	g.rng = rng
	g.world = world
	g.cfg = cfg
}

// Generate returns one chimney just past the right edge of the viewport
// and, from the configured level on, possibly a flare further ahead.
func (g *Generator) Generate(scrollOffset float64, level int) []Obstacle {
	batch := make([]Obstacle, 0, 2)

	chimney := g.cfg.Chimney
	w := g.uniform(chimney.MinWidth, chimney.MaxWidth)
	h := g.uniform(chimney.MinHeight, chimney.MaxHeight)
	batch = append(batch, g.grounded(KindChimney, g.world.Width+scrollOffset+g.cfg.SpawnLead, w, h))

	flare := g.cfg.Flare
	if level >= flare.MinLevel && g.rng.Float64() < flare.Chance {
		x := g.world.Width + scrollOffset + g.uniform(flare.MinLead, flare.MaxLead)
		w := g.uniform(flare.MinWidth, flare.MaxWidth)
		h := g.uniform(flare.MinHeight, flare.MaxHeight)
		batch = append(batch, g.grounded(KindFlare, x, w, h))
	}

	return batch
}

// grounded builds an obstacle whose base sits on the ground line.
func (g *Generator) grounded(kind ObstacleKind, x, w, h float64) Obstacle {
	g.nextID++
	return Obstacle{
		ID:     g.nextID,
		X:      x,
		Y:      g.world.GroundY() - h,
		Width:  w,
		Height: h,
		Kind:   kind,
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Prune returns the obstacles whose left edge is less than margin units
// behind the viewport. The input slice is not modified.
func Prune(obstacles []Obstacle, scrollOffset, margin float64) []Obstacle {
	kept := make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if o.X-scrollOffset > -margin {
			kept = append(kept, o)
		}
	}
	return kept
}
