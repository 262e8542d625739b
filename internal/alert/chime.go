package alert

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeAmplitude  = 0.4
)

var chimeFormat = beep.Format{
	SampleRate:  chimeSampleRate,
	NumChannels: 2,
	Precision:   2,
}

// chime renders one period of the built-in alarm: two falling notes then a gap.
func chime() *beep.Buffer {
	sr := chimeFormat.SampleRate
	buf := beep.NewBuffer(chimeFormat)
	buf.Append(beep.Seq(
		tone(sr, 880, 200*time.Millisecond),
		beep.Silence(sr.N(100*time.Millisecond)),
		tone(sr, 660, 200*time.Millisecond),
		beep.Silence(sr.N(600*time.Millisecond)),
	))
	return buf
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	var phase float64
	step := freq / float64(sr)
	return beep.Take(sr.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := chimeAmplitude * math.Sin(2*math.Pi*phase)
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	}))
}
