package render

import (
	"github.com/gdamore/tcell/v2"
)

// Buffer is an RGB pixel compositor at half-block resolution: a terminal
// of C columns and R rows backs a C x 2R pixel grid, flushed with '▀'
// cells whose foreground is the top pixel and background the bottom.
type Buffer struct {
	px     []RGB // Persistent allocation, reused across resizes
	width  int
	height int // pixel rows, always 2x the terminal rows
}

// NewBuffer creates a pixel buffer for a terminal of cols x rows cells.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts to a new terminal size, reallocating only when capacity
// falls short.
func (b *Buffer) Resize(cols, rows int) {
	b.width = cols
	b.height = rows * 2
	size := b.width * b.height
	if cap(b.px) < size {
		b.px = make([]RGB, size)
	} else {
		b.px = b.px[:size]
	}
}

// Size returns the pixel dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Clear floods every pixel with c.
func (b *Buffer) Clear(c RGB) {
	for i := range b.px {
		b.px[i] = c
	}
}

// At returns the pixel at (x, y); out-of-range reads come back black.
func (b *Buffer) At(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGBBlack
	}
	return b.px[y*b.width+x]
}

// Set writes a pixel, ignoring out-of-range coordinates.
func (b *Buffer) Set(x, y int, c RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.px[y*b.width+x] = c
}

// BlendAt alpha-composites src over the pixel.
func (b *Buffer) BlendAt(x, y int, src RGB, alpha float64) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.px[i] = Blend(b.px[i], src, alpha)
}

// AddAt additively composites src into the pixel for glow accumulation.
func (b *Buffer) AddAt(x, y int, src RGB, alpha float64) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.px[i] = Add(b.px[i], src, alpha)
}

// ScreenAt lightens the pixel with a screen blend.
func (b *Buffer) ScreenAt(x, y int, src RGB, alpha float64) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.px[i] = Screen(b.px[i], src, alpha)
}

// Flush writes the buffer to the screen, pairing pixel rows into
// half-block cells. The caller shows the screen.
func (b *Buffer) Flush(screen tcell.Screen) {
	rows := b.height / 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < b.width; cx++ {
			top := b.px[(cy*2)*b.width+cx]
			bot := b.px[(cy*2+1)*b.width+cx]
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
}
