package audio

import (
	"math"
	"testing"
)

func drain(g *ImpactGenerator) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := g.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestImpactGeneratorTerminates(t *testing.T) {
	g := NewImpactGenerator(sampleRate, 1)
	samples := drain(g)

	if len(samples) != g.samples {
		t.Fatalf("streamed %d samples, want %d", len(samples), g.samples)
	}

	// A finished generator stays finished
	buf := make([][2]float64, 16)
	if n, ok := g.Stream(buf); n != 0 || ok {
		t.Fatalf("finished generator streamed n=%d ok=%v", n, ok)
	}
}

func TestImpactGeneratorDecays(t *testing.T) {
	samples := drain(NewImpactGenerator(sampleRate, 1))

	peak := func(window [][2]float64) float64 {
		m := 0.0
		for _, s := range window {
			if a := math.Abs(s[0]); a > m {
				m = a
			}
		}
		return m
	}

	head := peak(samples[:len(samples)/4])
	tail := peak(samples[3*len(samples)/4:])
	if tail >= head/4 {
		t.Fatalf("no decay: head peak %f, tail peak %f", head, tail)
	}
}

func TestImpactGeneratorIntensityScalesLoudness(t *testing.T) {
	soft := drain(NewImpactGenerator(sampleRate, 0))
	hard := drain(NewImpactGenerator(sampleRate, 1))

	peak := func(samples [][2]float64) float64 {
		m := 0.0
		for _, s := range samples {
			if a := math.Abs(s[0]); a > m {
				m = a
			}
		}
		return m
	}

	if peak(hard) <= peak(soft) {
		t.Fatalf("hard impact (%f) not louder than soft (%f)", peak(hard), peak(soft))
	}
}

func TestImpactGeneratorClampsIntensity(t *testing.T) {
	for _, intensity := range []float64{-5, 2, math.NaN()} {
		samples := drain(NewImpactGenerator(sampleRate, intensity))
		for i, s := range samples {
			if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
				t.Fatalf("intensity %f: sample %d out of range: %f", intensity, i, s[0])
			}
		}
	}
}

func TestPlayImpactBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	// Must degrade to silence, not panic or touch the speaker
	sm.PlayImpact(5)
	sm.Cleanup()
}
