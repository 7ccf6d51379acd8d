package termview

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
)

// View renders the flock in a terminal, one arrow glyph per agent.
// Like the windowed host it only consumes the read-only render view;
// the core never sees tcell.
type View struct {
	screen tcell.Screen
	flock  *flock.Flock
	cfg    *flock.Config
	fps    int
}

// New initializes a tcell screen around an existing flock.
func New(f *flock.Flock, cfg *flock.Config, fps int) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if fps <= 0 {
		fps = 30
	}
	return &View{screen: screen, flock: f, cfg: cfg, fps: fps}, nil
}

// Run drives the frame loop: one tick plus one draw per frame until
// q, ESC or Ctrl+C.
func (v *View) Run() error {
	defer v.screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-ticker.C:
			v.flock.Tick(v.cfg)
			v.draw()
		}
	}
}

func (v *View) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for _, s := range v.flock.RenderStates() {
		cx, cy := cellFor(s.Pos.X, s.Pos.Y, v.cfg.WorldWidth, v.cfg.WorldHeight, w, h-1)
		v.screen.SetContent(cx, cy+1, headingGlyph(s.Heading), nil, style)
	}

	status := fmt.Sprintf(" boids: %d | %d fps target | q to quit ", len(v.flock.Agents), v.fps)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, 0, r, nil, statusStyle)
	}

	v.screen.Show()
}

// cellFor maps a world coordinate into a terminal cell, clamping to
// the screen rectangle (positions can sit exactly on the far edge
// right after a wrap).
func cellFor(x, y, worldW, worldH float64, cols, rows int) (int, int) {
	cx := int(x / worldW * float64(cols))
	cy := int(y / worldH * float64(rows))
	if cx >= cols {
		cx = cols - 1
	}
	if cx < 0 {
		cx = 0
	}
	if cy >= rows {
		cy = rows - 1
	}
	if cy < 0 {
		cy = 0
	}
	return cx, cy
}

// headingGlyph picks the arrow for the nearest compass octant.
// Terminal rows grow downward, matching the world's Y axis.
func headingGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4)))
	switch ((octant % 8) + 8) % 8 {
	case 0:
		return '→'
	case 1:
		return '↘'
	case 2:
		return '↓'
	case 3:
		return '↙'
	case 4:
		return '←'
	case 5:
		return '↖'
	case 6:
		return '↑'
	default:
		return '↗'
	}
}
