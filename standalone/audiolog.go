package standalone

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// logFlushSamples is how many interleaved samples accumulate before
// the logger hands a chunk to the WAV encoder. Samples arrive one
// stereo pair at a time.
const logFlushSamples = 2048

// AudioLogger records the emulator's audio stream to a WAV file for
// debugging sound output. Samples arrive interleaved stereo int16 at
// the core's native rate.
type AudioLogger struct {
	file *os.File
	enc  *wav.Encoder
	buf  *audio.IntBuffer
}

// NewAudioLogger opens path for writing and prepares a 16-bit stereo
// WAV encoder at the given sample rate.
func NewAudioLogger(path string, sampleRate int) (*AudioLogger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio log: %w", err)
	}
	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	return &AudioLogger{
		file: f,
		enc:  enc,
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			Data:   make([]int, 0, logFlushSamples),
		},
	}, nil
}

// Write appends interleaved stereo samples to the log. Data reaches
// the encoder in chunks; Close flushes whatever remains.
func (l *AudioLogger) Write(samples []int16) error {
	for _, s := range samples {
		l.buf.Data = append(l.buf.Data, int(s))
	}
	if len(l.buf.Data) < logFlushSamples {
		return nil
	}
	return l.flush()
}

// flush hands the accumulated samples to the encoder.
func (l *AudioLogger) flush() error {
	if len(l.buf.Data) == 0 {
		return nil
	}
	if err := l.enc.Write(l.buf); err != nil {
		return fmt.Errorf("failed to write audio log: %w", err)
	}
	l.buf.Data = l.buf.Data[:0]
	return nil
}

// Close flushes buffered samples, finalizes the WAV header, and closes
// the file.
func (l *AudioLogger) Close() error {
	flushErr := l.flush()
	if err := l.enc.Close(); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to finalize audio log: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return err
	}
	return flushErr
}
