package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBuffer = 100 * time.Millisecond

	buzzAmplitude     = 0.2
	sweepAmplitude    = 0.15
	pulseKickAmp      = 0.4
	pulseBassAmp      = 0.15
	crackNoiseAmp     = 0.25
	crackRumbleAmp    = 0.3
	chirpAmplitude    = 0.25
	crackRumbleFreqHz = 80.0
	pulseBassFreqHz   = 110.0
	pulseKickFreqHz   = 60.0
)

// buzz is a harsh tone with the first three harmonics and a 20ms fade-in
type buzz struct {
	freq float64
	pos  int
}

func newBuzz(freq float64) *buzz {
	return &buzz{freq: freq}
}

func (g *buzz) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		s := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(4*math.Pi*g.freq*t) +
			0.075*math.Sin(6*math.Pi*g.freq*t)
		s *= math.Min(t/0.02, 1) * buzzAmplitude
		samples[i] = [2]float64{s, s}
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// sweep rises from lo to hi and back over one cycle; looped for rope tension
type sweep struct {
	lo, hi float64
	cycle  int
	pos    int
}

func newSweep(lo, hi float64, cycle time.Duration) *sweep {
	return &sweep{lo: lo, hi: hi, cycle: sampleRate.N(cycle)}
}

func (g *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		c := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := g.lo + (g.hi-g.lo)*math.Sin(c*math.Pi)
		amp := sweepAmplitude * (0.5 + 0.5*math.Sin(c*math.Pi*2))
		s := amp * math.Sin(2*math.Pi*freq*t)
		samples[i] = [2]float64{s, s}
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error { return nil }

// pulse is a kick plus bass line at a fixed beat; looped while the pursuer hunts
type pulse struct {
	beat int
	kick int
	pos  int
}

func newPulse(beat time.Duration) *pulse {
	return &pulse{beat: sampleRate.N(beat), kick: sampleRate.N(100 * time.Millisecond)}
}

func (g *pulse) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		p := g.pos % g.beat
		t := float64(p) / float64(sampleRate)
		s := pulseBassAmp * math.Sin(2*math.Pi*pulseBassFreqHz*t)
		if p < g.kick {
			env := 1 - float64(p)/float64(g.kick)
			s += pulseKickAmp * env * math.Sin(2*math.Pi*pulseKickFreqHz*(1+2*env)*t)
		}
		samples[i] = [2]float64{s, s}
		g.pos++
	}
	return len(samples), true
}

func (g *pulse) Err() error { return nil }

// crack is exponentially decaying noise over a low rumble
type crack struct {
	rng *rand.Rand
	pos int
}

func newCrack(seed int64) *crack {
	return &crack{rng: rand.New(rand.NewSource(seed))}
}

func (g *crack) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		noise := g.rng.Float64()*2 - 1
		s := math.Exp(-t*8) * (crackNoiseAmp*noise + crackRumbleAmp*math.Sin(2*math.Pi*crackRumbleFreqHz*t))
		samples[i] = [2]float64{s, s}
		g.pos++
	}
	return len(samples), true
}

func (g *crack) Err() error { return nil }

// chirp glides linearly from one pitch to another over length with a decaying envelope
type chirp struct {
	from, to float64
	length   int
	phase    float64
	pos      int
}

func newChirp(from, to float64, length time.Duration) *chirp {
	return &chirp{from: from, to: to, length: sampleRate.N(length)}
}

func (g *chirp) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		c := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*c
		g.phase += freq / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		s := chirpAmplitude * (1 - c) * math.Sin(2*math.Pi*g.phase)
		samples[i] = [2]float64{s, s}
		g.pos++
	}
	return len(samples), true
}

func (g *chirp) Err() error { return nil }
