package buffer

import "sync"

// ComplexBuffer wraps a complex128 slice with reuse-friendly semantics,
// mirroring Buffer for the complex-valued series produced by reconstruction
// (T_out) and by the FFT driver's scratch grids.
type ComplexBuffer struct {
	samples []complex128
}

// NewComplex returns a zero-filled ComplexBuffer of the given length.
func NewComplex(length int) *ComplexBuffer {
	if length < 0 {
		length = 0
	}
	return &ComplexBuffer{samples: make([]complex128, length)}
}

// ComplexFromSlice wraps an existing slice without copying.
func ComplexFromSlice(s []complex128) *ComplexBuffer {
	return &ComplexBuffer{samples: s}
}

// Samples returns the underlying slice.
func (b *ComplexBuffer) Samples() []complex128 {
	return b.samples
}

// Len returns the current number of samples.
func (b *ComplexBuffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *ComplexBuffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *ComplexBuffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]complex128, n)
		copy(s, b.samples)
		b.samples = s
	}
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *ComplexBuffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// ComplexPool provides sync.Pool-based ComplexBuffer reuse, used by the
// SimpleFFT driver for its padded frequency-domain scratch grids.
type ComplexPool struct {
	pool sync.Pool
}

// NewComplexPool returns a ComplexPool ready for use.
func NewComplexPool() *ComplexPool {
	return &ComplexPool{
		pool: sync.Pool{
			New: func() any {
				return &ComplexBuffer{}
			},
		},
	}
}

// Get returns a ComplexBuffer with the requested length, zeroed.
// Callers must return it via Put when done.
func (p *ComplexPool) Get(length int) *ComplexBuffer {
	b := p.pool.Get().(*ComplexBuffer)
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a ComplexBuffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *ComplexPool) Put(b *ComplexBuffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
