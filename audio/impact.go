package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ImpactGenerator synthesizes one collision blip: a short sine burst whose
// pitch falls toward a floor while the amplitude decays exponentially.
// Harder impacts start higher and louder, reading as a sharper "tick"
type ImpactGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int

	startFreq float64
	floorFreq float64
	amplitude float64
	phase     float64
}

// NewImpactGenerator creates a blip generator. intensity in [0,1] scales
// both pitch and loudness; out-of-range values are clamped
func NewImpactGenerator(sr beep.SampleRate, intensity float64) *ImpactGenerator {
	if intensity < 0 || math.IsNaN(intensity) {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return &ImpactGenerator{
		sr:        sr,
		samples:   sr.N(90 * time.Millisecond),
		startFreq: 220 + 660*intensity,
		floorFreq: 110,
		amplitude: 0.08 + 0.22*intensity,
	}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}

		progress := float64(g.pos) / float64(g.samples)

		// Pitch slides down; amplitude decays exponentially
		freq := g.floorFreq + (g.startFreq-g.floorFreq)*(1-progress)*(1-progress)
		amp := g.amplitude * math.Exp(-6*progress)

		val := amp * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error { return nil }
