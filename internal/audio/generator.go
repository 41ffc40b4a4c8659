package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine that sweeps linearly from one frequency to
// another over length samples, with a short attack and exponential decay.
type ToneGenerator struct {
	sr     beep.SampleRate
	from   float64
	to     float64
	length int
	pos    int
	phase  float64
}

// NewToneGenerator creates a sweeping tone generator.
func NewToneGenerator(sr beep.SampleRate, from, to float64, length int) *ToneGenerator {
	return &ToneGenerator{sr: sr, from: from, to: to, length: max(length, 1)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulates so the sweep stays continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		envelope := attack * math.Exp(-3*progress)
		sample := 0.25 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// NoiseGenerator generates a decaying crackle over a low rumble.
type NoiseGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewNoiseGenerator creates a noise generator. The seed makes the
// crackle reproducible.
func NewNoiseGenerator(sr beep.SampleRate, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
