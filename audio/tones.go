package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a sine tone gliding linearly from one frequency to another with a
// linear fade-out. It ends after its duration.
type sweep struct {
	from, to float64
	gain     float64
	total    int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, gain float64, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, gain: gain, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		val := s.gain * (1 - progress) * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// chord is the fallback background track: an A major triad gated by a 2Hz
// rhythm.
type chord struct {
	total int
	pos   int
	rate  beep.SampleRate
}

func newChord(d time.Duration, rate beep.SampleRate) *chord {
	return &chord{total: rate.N(d), rate: rate}
}

func (c *chord) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.total {
			return i, i > 0
		}
		t := float64(c.pos) / float64(c.rate)
		melody := math.Sin(2*math.Pi*440*t) + 0.5*math.Sin(2*math.Pi*550*t) + 0.3*math.Sin(2*math.Pi*660*t)
		rhythm := 0.5
		if math.Sin(2*math.Pi*2*t) > 0 {
			rhythm = 1
		}
		// Peak of the triad is 1.8; keep the mix inside [-1, 1].
		val := 0.3 * melody * rhythm / 1.8

		samples[i][0] = val
		samples[i][1] = val
		c.pos++
	}
	return len(samples), true
}

func (c *chord) Err() error { return nil }

// fallbackTone builds the synthesized stand-in for a sound whose file could
// not be loaded.
func fallbackTone(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case "eat":
		return newSweep(440, 880, 150*time.Millisecond, 0.3, rate)
	case "death":
		return newSweep(880, 220, 500*time.Millisecond, 0.4, rate)
	case "background":
		return newChord(4*time.Second, rate)
	default:
		return newSweep(880, 880, 100*time.Millisecond, 0.3, rate)
	}
}
