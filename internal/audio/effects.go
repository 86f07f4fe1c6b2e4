package audio

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// amplify scales samples linearly; 1.0 leaves them untouched and 0 silences them.
func amplify(s beep.Streamer, factor float64) beep.Streamer {
	if factor == 1 {
		return s
	}
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}

// newFadeIn ramps the amplitude linearly from silence to full over the first
// length samples, then holds full gain.
func newFadeIn(s beep.Streamer, length int) beep.Streamer {
	if length <= 0 {
		return s
	}
	return effects.Transition(s, length, 0, 1, effects.TransitionLinear)
}
