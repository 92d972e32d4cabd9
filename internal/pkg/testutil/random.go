package testutil

import (
	"io"
	"sync"
)

// CyclicReader is a deterministic io.Reader that repeats a fixed byte pattern forever.
// It stands in for crypto/rand when padding bytes must be reproducible.
type CyclicReader struct {
	mu      sync.Mutex
	pattern []byte
	offset  int
}

// NewCyclicReader returns a reader repeating pattern. An empty pattern yields zero bytes.
func NewCyclicReader(pattern ...byte) *CyclicReader {
	if len(pattern) == 0 {
		pattern = []byte{0x00}
	}
	return &CyclicReader{pattern: append([]byte(nil), pattern...)}
}

// Read fills p from the pattern, continuing where the previous call stopped.
func (r *CyclicReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range p {
		p[i] = r.pattern[r.offset]
		r.offset = (r.offset + 1) % len(r.pattern)
	}
	return len(p), nil
}

// FailingReader returns Err from every Read.
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read(_ []byte) (int, error) {
	if r.Err == nil {
		return 0, io.ErrUnexpectedEOF
	}
	return 0, r.Err
}
