// Package dataset generates small synthetic 2-D binary classification sets
// with ±1 labels.
package dataset

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Sample is one labeled point.
type Sample struct {
	X []float64
	Y float64 // -1 or +1
}

// Dataset is a named collection of samples.
type Dataset struct {
	Name    string
	Samples []Sample
}

// Config controls dataset generation.
type Config struct {
	Samples int     // Number of points (default: 100)
	Noise   float64 // Standard deviation of Gaussian jitter
	Seed    int64   // Random seed (0 means 1)
}

func (c Config) withDefaults() Config {
	if c.Samples <= 0 {
		c.Samples = 100
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

// Generator builds a dataset from a configuration.
type Generator func(Config) Dataset

var generators = map[string]Generator{
	"moons": Moons,
	"xor":   XOR,
}

// Names returns the registered dataset names, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName generates the dataset registered under name.
func ByName(name string, config Config) (Dataset, error) {
	gen, ok := generators[name]
	if !ok {
		return Dataset{}, errors.Errorf("unknown dataset %q (available: %v)", name, Names())
	}
	return gen(config), nil
}

// Moons generates two interleaving half circles.
//
// The upper moon is labeled -1 and the lower one +1. Odd sample counts put
// the extra point in the upper moon.
func Moons(config Config) Dataset {
	config = config.withDefaults()
	//nolint:gosec // Synthetic data, not security-critical
	rng := rand.New(rand.NewSource(config.Seed))

	nOuter := (config.Samples + 1) / 2
	nInner := config.Samples - nOuter
	samples := make([]Sample, 0, config.Samples)
	for i := range nOuter {
		theta := angle(i, nOuter)
		samples = append(samples, Sample{
			X: jitter(rng, config.Noise, math.Cos(theta), math.Sin(theta)),
			Y: -1,
		})
	}
	for i := range nInner {
		theta := angle(i, nInner)
		samples = append(samples, Sample{
			X: jitter(rng, config.Noise, 1-math.Cos(theta), 0.5-math.Sin(theta)),
			Y: 1,
		})
	}
	rng.Shuffle(len(samples), func(i, j int) { samples[i], samples[j] = samples[j], samples[i] })
	return Dataset{Name: "moons", Samples: samples}
}

// XOR generates points in [-1, 1]² labeled +1 when both coordinates share
// a sign.
func XOR(config Config) Dataset {
	config = config.withDefaults()
	//nolint:gosec // Synthetic data, not security-critical
	rng := rand.New(rand.NewSource(config.Seed))

	samples := make([]Sample, config.Samples)
	for i := range samples {
		x, y := 2*rng.Float64()-1, 2*rng.Float64()-1
		label := -1.0
		if x*y > 0 {
			label = 1
		}
		samples[i] = Sample{X: jitter(rng, config.Noise, x, y), Y: label}
	}
	return Dataset{Name: "xor", Samples: samples}
}

// Inputs returns the feature vectors.
func (d Dataset) Inputs() [][]float64 {
	xs := make([][]float64, len(d.Samples))
	for i, s := range d.Samples {
		xs[i] = s.X
	}
	return xs
}

// Labels returns the labels.
func (d Dataset) Labels() []float64 {
	ys := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		ys[i] = s.Y
	}
	return ys
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Samples)
}

// angle returns the i-th of n evenly spaced angles in [0, π].
func angle(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return math.Pi * float64(i) / float64(n-1)
}

func jitter(rng *rand.Rand, noise float64, coords ...float64) []float64 {
	if noise == 0 {
		return coords
	}
	for i := range coords {
		coords[i] += rng.NormFloat64() * noise
	}
	return coords
}
