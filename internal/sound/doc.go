// Package sound holds the alert sound: the embedded default clip or an override
// file, its detected format and its probed play time. A Clip never changes after
// construction; every Decode call reads the shared bytes through a fresh reader.
package sound
