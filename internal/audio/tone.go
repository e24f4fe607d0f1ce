// Package audio implements the beeper that sounds while the sound timer of
// the machine is active.
package audio

import "encoding/binary"

const (
	// SampleRate of the generated tone in Hz.
	SampleRate = 44100
	// Frequency of the tone in Hz.
	Frequency = 440

	amplitude      = 6000
	bytesPerSample = 2
)

// squareWave is an endless mono signed 16 bit little endian square wave.
type squareWave struct {
	period int // samples per full wave
	pos    int
}

func newSquareWave(sampleRate, frequency int) *squareWave {
	return &squareWave{
		period: max(sampleRate/frequency, 2),
	}
}

// Read fills p with whole samples of the wave.
func (w *squareWave) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample * bytesPerSample
	for i := 0; i < n; i += bytesPerSample {
		value := int16(amplitude)
		if w.pos >= w.period/2 {
			value = -amplitude
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(value))

		w.pos++
		if w.pos == w.period {
			w.pos = 0
		}
	}
	return n, nil
}
