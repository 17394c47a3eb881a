package juan

import (
	"github.com/vovakirdan/juan-jump/internal/config"
)

// scriptedRand replays fixed draws. ints are the 1-based values a
// "uniform in [1, n]" draw should produce.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return n - 1 // never a hit
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v - 1
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// memKeeper is an in-memory registry.ScoreKeeper.
type memKeeper struct {
	values map[string]int
	writes []string
}

func newMemKeeper() *memKeeper {
	return &memKeeper{values: make(map[string]int)}
}

func (k *memKeeper) Store(key string, value int) error {
	k.values[key] = value
	k.writes = append(k.writes, key)
	return nil
}

func (k *memKeeper) StoreIfGreater(key string, value int) (bool, error) {
	if old, ok := k.values[key]; ok && old >= value {
		return false, nil
	}
	k.values[key] = value
	k.writes = append(k.writes, key)
	return true, nil
}

func testConfig() config.JuanConfig {
	return config.DefaultJuanConfig()
}

func normalPlatform(x, y float64) Platform {
	cfg := testConfig()
	return Platform{
		Pos:        vec(x, y),
		Size:       cfg.Platforms.Normal,
		Category:   CategoryNormal,
		Active:     true,
		Collidable: true,
		Alpha:      1,
	}
}
