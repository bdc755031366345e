package main

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// field samples smooth noise over arena cells, normalized to [0, 1].
type field struct {
	noise   opensimplex.Noise
	freq    float64 // per cell
	octaves int
}

// Two independent fields drive an arena: terrain picks tree pillars,
// density scales the box chance.
func newTerrainField(seed uint64) field {
	return field{noise: opensimplex.New(int64(seed)), freq: 0.15, octaves: 3}
}

func newDensityField(seed uint64) field {
	return field{noise: opensimplex.New(int64(seed + 1)), freq: 0.1, octaves: 2}
}

// At returns the field value on cell p. Each octave doubles the frequency
// and halves the weight.
func (f field) At(p point) float64 {
	var total, weight float64
	freq, amp := f.freq, 1.0
	for i := 0; i < f.octaves; i++ {
		total += f.noise.Eval2(float64(p.x)*freq, float64(p.y)*freq) * amp
		weight += amp
		freq *= 2
		amp /= 2
	}
	v := (total/weight + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// treeAt reports whether the pillar on p is a tree rather than stone.
func (f field) treeAt(p point) bool {
	return f.At(p) > 0.55
}

// boxChance is the chance of a box on p for a base density in [0, 1].
func (f field) boxChance(p point, density float64) float64 {
	return density * (0.5 + f.At(p))
}
