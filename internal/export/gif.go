package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	"github.com/crawley-dev/physics-toy/internal/sim"
	"github.com/crawley-dev/physics-toy/internal/vmath"
)

// GIFRecorder captures every Nth frame of a headless run and encodes
// the collection as an animated GIF. Raw RGBA copies are kept during
// the run; quantization happens once at save time so it never costs
// frame budget.
type GIFRecorder struct {
	every  int
	delay  int // per frame, hundredths of a second
	size   vmath.Vec[int, vmath.Viewport]
	pool   *sim.FramePool
	frames [][]byte
}

var _ sim.Observer = (*GIFRecorder)(nil)

// NewGIFRecorder captures one of every n frames with the given
// playback delay in 1/100ths of a second.
func NewGIFRecorder(every, delay int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{every: every, delay: delay}
}

func (g *GIFRecorder) OnFrame(front sim.Frontend, frame uint64, t float64) {
	if frame%uint64(g.every) != 0 {
		return
	}

	data := front.TextureData()
	if g.pool == nil {
		g.size = data.Size
		g.pool = sim.NewFramePool(len(data.Buf))
	}
	// A mid-run resize would change the frame geometry; drop frames
	// that no longer match the recording.
	if data.Size != g.size || len(data.Buf) != 4*g.size.X*g.size.Y {
		return
	}

	g.frames = append(g.frames, g.pool.GetAndCopy(data.Buf))
}

// Frames reports how many frames have been captured.
func (g *GIFRecorder) Frames() int { return len(g.frames) }

// Save quantizes the captured frames and writes the GIF, returning
// the buffers to the pool.
func (g *GIFRecorder) Save(path string) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("no frames captured")
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(g.frames)),
		Delay: make([]int, 0, len(g.frames)),
	}

	rect := image.Rect(0, 0, g.size.X, g.size.Y)
	for _, raw := range g.frames {
		rgba := &image.RGBA{Pix: raw, Stride: 4 * g.size.X, Rect: rect}

		frame := image.NewPaletted(rect, palette.Plan9)
		draw.FloydSteinberg.Draw(frame, rect, rgba, image.Point{})

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, g.delay)
		g.pool.Put(raw)
	}
	g.frames = g.frames[:0]

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gif.EncodeAll(file, anim)
}
