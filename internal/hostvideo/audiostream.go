//go:build !headless

package hostvideo

import (
	"encoding/binary"
	"io"
	"sync"
)

// sampleStream adapts the console's per-frame []int16 stereo sample
// batches into the io.Reader ebiten/v2/audio.Player expects: a growable
// FIFO byte buffer, appended to once per frame and drained by the player
// as it consumes bytes.
type sampleStream struct {
	mu  sync.Mutex
	buf []byte
}

func newSampleStream() *sampleStream { return &sampleStream{} }

// push appends one frame's worth of interleaved stereo samples.
func (s *sampleStream) push(samples []int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	s.buf = append(s.buf, b...)
}

// Read drains buffered audio bytes, emitting silence if the producer
// hasn't kept up — preferable to blocking the audio callback.
func (s *sampleStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	if n < len(p) {
		for i := n; i < len(p); i++ {
			p[i] = 0
		}
		n = len(p)
	}
	return n, nil
}

var _ io.Reader = (*sampleStream)(nil)
