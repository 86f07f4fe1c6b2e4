package sound

import (
	_ "embed"
)

//go:generate go run gen_alarm.go

// DefaultName is the name reported for the built-in clip.
const DefaultName = "embedded:alarm.wav"

// defaultAlarm is a three second alarm-clock beep pattern.
//
//go:embed assets/alarm.wav
var defaultAlarm []byte

// Default returns the clip built from the embedded alarm sound.
func Default() (*Clip, error) {
	return New(DefaultName, defaultAlarm)
}
