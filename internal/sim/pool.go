package sim

import "sync"

// FramePool recycles frame-sized byte buffers for consumers that need
// a stable copy of a texture (encoders, recorders) while the engine
// keeps mutating its own buffer.
type FramePool struct {
	pool sync.Pool
	size int
}

func NewFramePool(frameSize int) *FramePool {
	return &FramePool{
		size: frameSize,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]byte, frameSize)
			},
		},
	}
}

func (p *FramePool) Get() []byte {
	return p.pool.Get().([]byte)
}

func (p *FramePool) Put(b []byte) {
	if len(b) == p.size {
		for i := range b {
			b[i] = 0
		}
		p.pool.Put(b)
	}
}

func (p *FramePool) GetAndCopy(src []byte) []byte {
	dst := p.Get()
	copy(dst, src)
	return dst
}
