//go:build ignore

// This program generates the embedded default alarm sound.
// Run with: go generate ./internal/sound
package main

import (
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	sampleRate = 44100
	groups     = 3
	beeps      = 4
	beepOn     = 0.09 // seconds
	beepOff    = 0.06
	groupRest  = 0.4
	amplitude  = 0.45 // headroom for the default 1.5x gain
	ramp       = 0.005
)

func main() {
	f, err := os.Create("assets/alarm.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           generateAlarm(),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}

// generateAlarm renders groups of short two-partial beeps separated by rests.
func generateAlarm() []int {
	beepLen := beeps * (beepOn + beepOff)
	groupLen := beepLen + groupRest
	n := int(sampleRate * groups * groupLen)

	samples := make([]int, n)
	for i := range samples {
		t := float64(i) / sampleRate
		g := math.Mod(t, groupLen)
		if g >= beepLen {
			continue
		}
		b := math.Mod(g, beepOn+beepOff)
		if b >= beepOn {
			continue
		}
		envelope := math.Min(1, math.Min(b/ramp, (beepOn-b)/ramp))
		v := math.Sin(2*math.Pi*1760*t) + 0.3*math.Sin(2*math.Pi*3520*t)
		v = math.Max(-1, math.Min(1, v/1.3*amplitude*envelope))
		samples[i] = int(v * 32767)
	}
	return samples
}
