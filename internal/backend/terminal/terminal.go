// Package terminal renders the playfield into a tcell screen using half-block
// glyphs, two vertical samples per cell.
package terminal

import (
	"fmt"
	"image/color"

	"dodge/internal/core"
	"dodge/internal/render"
	"dodge/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

type label struct {
	s    string
	x, y int
	c    color.RGBA
}

// Window is a core.Window backed by a tcell screen.
type Window struct {
	screen tcell.Screen
	events chan tcell.Event

	field      core.Size
	cols, rows int
	canvas     *render.Canvas
	bg         color.RGBA
	labels     []label

	pacer *core.FixedStep

	mouse      geom.Vec2
	buttonDown bool
	keys       map[core.Key]bool
	buttons    map[core.MouseButton]bool
	closing    bool
	closed     bool
}

func init() {
	core.Register("terminal", Open)
}

// Open initializes the terminal and returns a window covering all of it.
func Open(size core.Size, _ string) (core.Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	return newWindow(screen, size), nil
}

func newWindow(screen tcell.Screen, size core.Size) *Window {
	screen.EnableMouse()
	screen.HideCursor()
	cols, rows := screen.Size()
	w := &Window{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		field:   size,
		cols:    cols,
		rows:    rows,
		canvas:  render.NewCanvas(cols, rows*2, size),
		pacer:   core.NewFixedStep(60),
		keys:    map[core.Key]bool{},
		buttons: map[core.MouseButton]bool{},
		mouse:   geom.Vec2{X: float64(size.W) / 2, Y: float64(size.H) / 2},
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(w.events)
				return
			}
			w.events <- ev
		}
	}()
	return w
}

// ShouldClose reports whether Esc, Ctrl-C or q was pressed.
func (w *Window) ShouldClose() bool { return w.closing }

// MousePosition returns the pointer in playfield units.
func (w *Window) MousePosition() geom.Vec2 { return w.mouse }

// KeyPressed reports whether k was pressed since the previous frame.
func (w *Window) KeyPressed(k core.Key) bool { return w.keys[k] }

// MouseButtonPressed reports whether b went down since the previous frame.
func (w *Window) MouseButtonPressed(b core.MouseButton) bool { return w.buttons[b] }

// SetTargetFPS sets the pacing used by EndFrame.
func (w *Window) SetTargetFPS(fps int) { w.pacer.SetFPS(fps) }

// BeginFrame clears the canvas to bg.
func (w *Window) BeginFrame(bg color.RGBA) {
	w.bg = bg
	w.canvas.Clear(bg)
	w.labels = w.labels[:0]
}

// DrawFilledCircle rasterizes a disc onto the canvas.
func (w *Window) DrawFilledCircle(center geom.Vec2, radius float64, c color.RGBA) {
	w.canvas.FillCircle(center, radius, c)
}

// DrawText queues a label at the cell containing (x, y). The size is ignored;
// terminal cells have a fixed glyph size.
func (w *Window) DrawText(s string, x, y, _ int, c color.RGBA) {
	if s == "" {
		return
	}
	cx := x * w.cols / max(w.field.W, 1)
	cy := y * w.rows / max(w.field.H, 1)
	if cx+len(s) > w.cols {
		cx = w.cols - len(s)
	}
	w.labels = append(w.labels, label{s: s, x: max(cx, 0), y: cy, c: c})
}

// EndFrame flushes the canvas and labels, waits for the next frame slot and
// collects the input that arrived meanwhile.
func (w *Window) EndFrame() {
	w.flush()
	w.screen.Show()
	w.pacer.Wait()

	clear(w.keys)
	clear(w.buttons)
	w.drain()
}

// Close restores the terminal. Calls after the first are no-ops.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.screen.Fini()
	return nil
}

func (w *Window) flush() {
	for row := 0; row < w.rows; row++ {
		for col := 0; col < w.cols; col++ {
			top := w.canvas.ColorAt(col, row*2)
			bottom := w.canvas.ColorAt(col, row*2+1)
			w.screen.SetContent(col, row, halfBlock, nil, cellStyle(top, bottom))
		}
	}
	bg := tcellColor(w.bg)
	for _, l := range w.labels {
		style := tcell.StyleDefault.Foreground(tcellColor(l.c)).Background(bg)
		for i, r := range l.s {
			w.screen.SetContent(l.x+i, l.y, r, nil, style)
		}
	}
}

func (w *Window) drain() {
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				w.closing = true
				return
			}
			w.handle(ev)
		default:
			return
		}
	}
}

func (w *Window) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape:
			w.keys[core.KeyEscape] = true
			w.closing = true
		case ev.Key() == tcell.KeyCtrlC:
			w.closing = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			w.keys[core.KeySpace] = true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			w.closing = true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		w.mouse = w.canvas.FromSample(float64(x)+0.5, float64(y*2)+1)
		// tcell reports button state, not transitions.
		down := ev.Buttons()&tcell.ButtonPrimary != 0
		if down && !w.buttonDown {
			w.buttons[core.MouseButtonLeft] = true
		}
		w.buttonDown = down
	case *tcell.EventResize:
		w.cols, w.rows = ev.Size()
		w.canvas.Resize(w.cols, w.rows*2)
		w.screen.Sync()
	}
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
