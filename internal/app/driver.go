package app

import (
	"errors"
	"fmt"
	"strings"

	"dodge/internal/core"
	"dodge/internal/game"
	"dodge/internal/ui"
)

// Title is the window title shared by every backend.
const Title = "Dodge the Virus. Press SPACE to start."

// ErrUnknownBackend is returned by OpenWindow for unregistered names.
var ErrUnknownBackend = errors.New("unknown backend")

// Driver advances a session once per frame and renders it.
type Driver struct {
	session *game.Session
	hud     *ui.HUD
	clock   core.Clock
}

// NewDriver wires a session to a clock.
func NewDriver(session *game.Session, clock core.Clock) *Driver {
	return &Driver{
		session: session,
		hud:     ui.NewHUD(session.Config().Size().W, game.ColorText),
		clock:   clock,
	}
}

// Session returns the driven session.
func (d *Driver) Session() *game.Session { return d.session }

// PollInput reads the per-frame input snapshot: Space starts, the left
// button spawns a ball.
func PollInput(in core.Input) game.Input {
	return game.Input{
		Pointer: in.MousePosition(),
		Start:   in.KeyPressed(core.KeySpace),
		Spawn:   in.MouseButtonPressed(core.MouseButtonLeft),
	}
}

// Step polls input once and ticks the session once.
func (d *Driver) Step(in core.Input) {
	d.session.Tick(PollInput(in), d.clock.Seconds())
}

// Render draws the session and the HUD.
func (d *Driver) Render(r core.Renderer) {
	d.session.Draw(r)
	d.hud.Draw(r, d.session.Status(), d.session.Score())
}

// Run drives w until it reports it should close, then closes it.
func Run(w core.Window, d *Driver, fps int) error {
	w.SetTargetFPS(fps)
	for !w.ShouldClose() {
		d.Step(w)
		w.BeginFrame(game.ColorBackground)
		d.Render(w)
		w.EndFrame()
	}
	return w.Close()
}

// OpenWindow opens the named backend's window for a field of the given size.
func OpenWindow(name string, size core.Size) (core.Window, error) {
	factory, ok := core.Backends()[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBackend, name, strings.Join(core.BackendNames(), ", "))
	}
	w, err := factory(size, Title)
	if err != nil {
		return nil, fmt.Errorf("open %s window: %w", name, err)
	}
	return w, nil
}
