// Package audio plays alert clips through the default output device.
// It uses the beep library for decoding, gain and fade-in, and opens the
// speaker only for the length of one playback.
package audio
