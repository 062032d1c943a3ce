// Package term presents a sand simulation in a terminal. Each character cell
// shows two grid rows using an upper half block, and the mouse pours or erases
// sand under the pointer.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"FallingSand/paint"
	"FallingSand/sand"
)

const halfBlock = '▀'

// Presenter draws simulation frames to a tcell screen and turns terminal
// events into simulation events.
type Presenter struct {
	screen  tcell.Screen
	sim     *sand.Simulation
	palette *paint.Palette
	rustle  *paint.Rustle

	mu      sync.Mutex
	buttons tcell.ButtonMask
	cellX   int
	cellY   int
	debug   bool
	drift   float64

	frame []sand.Colour
}

// NewScreen opens the controlling terminal with mouse reporting enabled.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// GridSize returns the grid dimensions that exactly fill screen.
func GridSize(screen tcell.Screen) (int, int) {
	cols, rows := screen.Size()
	return cols, rows * 2
}

// New creates a presenter. drift is the hue change applied per tick when
// colour cycling is switched on with the 'p' key.
func New(screen tcell.Screen, sim *sand.Simulation, palette *paint.Palette, drift float64) *Presenter {
	return &Presenter{
		screen:  screen,
		sim:     sim,
		palette: palette,
		drift:   drift,
	}
}

// SetRustle attaches an audio source whose loudness follows grain movement.
func (p *Presenter) SetRustle(r *paint.Rustle) { p.rustle = r }

// SetDebug turns the status line on or off.
func (p *Presenter) SetDebug(on bool) {
	p.mu.Lock()
	p.debug = on
	p.mu.Unlock()
}

// HandleEvent applies one terminal event. It returns false when the user asked
// to quit.
func (p *Presenter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				p.sim.SetPaused(!p.sim.Paused())
			case 'c':
				p.sim.Queue(sand.Event{Kind: sand.EventClear})
			case 'd':
				p.mu.Lock()
				p.debug = !p.debug
				p.mu.Unlock()
			case 'p':
				if p.palette.Drift() == 0 {
					p.palette.SetDrift(p.drift)
				} else {
					p.palette.SetDrift(0)
				}
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		p.mu.Lock()
		p.buttons = ev.Buttons()
		p.cellX, p.cellY = x, y*2
		p.mu.Unlock()
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// Pour queues a brush event under the pointer while a button is held. The
// primary button deposits, the others erase.
func (p *Presenter) Pour() {
	p.mu.Lock()
	buttons, x, y := p.buttons, p.cellX, p.cellY
	p.mu.Unlock()
	switch {
	case buttons&tcell.Button1 != 0:
		p.sim.Queue(sand.Event{Kind: sand.EventDeposit, X: x, Y: y, Paint: p.palette.Paint()})
	case buttons&(tcell.Button2|tcell.Button3) != 0:
		p.sim.Queue(sand.Event{Kind: sand.EventErase, X: x, Y: y})
	}
}

// Present is called after every tick: it advances the palette, feeds the
// rustle, draws the frame and queues input for the next tick.
func (p *Presenter) Present(stats sand.TickStats) {
	if !stats.Paused {
		p.palette.Advance()
	}
	if p.rustle != nil {
		p.rustle.SetActivity(stats.Moved())
	}
	p.Draw(stats)
	p.Pour()
}

// Draw paints the last published frame.
func (p *Presenter) Draw(stats sand.TickStats) {
	p.frame = p.sim.Snapshot(p.frame)
	params := p.sim.Params()
	cols, rows := p.screen.Size()
	background := cellColour(paint.Black)
	for ty := 0; ty < rows; ty++ {
		for x := 0; x < cols; x++ {
			top, bottom := background, background
			if x < params.Width {
				top = p.colourAt(x, 2*ty, params, background)
				bottom = p.colourAt(x, 2*ty+1, params, background)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}

	p.mu.Lock()
	debug := p.debug
	p.mu.Unlock()
	if debug {
		p.drawStatus(stats, cols)
	}
	p.screen.Show()
}

func (p *Presenter) colourAt(x, y int, params sand.Params, background tcell.Color) tcell.Color {
	if y >= params.Height {
		return background
	}
	c := p.frame[y*params.Width+x]
	if c == sand.Empty {
		return background
	}
	return cellColour(c)
}

func (p *Presenter) drawStatus(stats sand.TickStats, cols int) {
	state := ""
	if stats.Paused {
		state = "  [paused]"
	}
	msg := fmt.Sprintf(" tick %d  grains %d  fell %d  slid %d  %.2fms%s ",
		stats.Tick, stats.Grains, stats.Fell, stats.Slid, stats.Duration.Seconds()*1000, state)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(msg) {
		if i >= cols {
			break
		}
		p.screen.SetContent(i, 0, r, nil, style)
	}
}

// Run polls terminal events on a separate goroutine and ticks the simulation
// until the user quits or ctx is done. Quitting is not an error.
func (p *Presenter) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			if !p.HandleEvent(ev) {
				cancel()
				return
			}
		}
	}()

	err := p.sim.Run(ctx, p.Present)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func cellColour(c sand.Colour) tcell.Color {
	r, g, b, _ := paint.Unpack(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
