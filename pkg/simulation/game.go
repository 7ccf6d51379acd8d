package simulation

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game is the windowed host loop: it owns frame pacing, reads the UI
// panel into the configuration, advances the flock by one tick per
// frame and renders the read-only view the core exports. The core
// itself never sees ebiten.
type Game struct {
	flock *flock.Flock
	cfg   *flock.Config

	panel *ui.Panel

	widgetMaxSpeed         *ui.Slider
	widgetMaxForce         *ui.Slider
	widgetNeighborRadius   *ui.Slider
	widgetSeparationRadius *ui.Slider
	widgetCohesion         *ui.Slider
	widgetAlignment        *ui.Slider
	widgetSeparation       *ui.Slider
	widgetShowRadii        *ui.Checkbox
	widgetPaused           *ui.Checkbox

	// Timing instrumentation: rolling averages in ms.
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64
	drawAvg            float64
}

// NewGame builds the flock from cfg and rng and wires the tuning
// panel. cfg stays owned by the game and is handed to every tick with
// the current slider values.
func NewGame(cfg *flock.Config, rng *rand.Rand) *Game {
	g := &Game{
		flock: flock.New(cfg, rng),
		cfg:   cfg,
		panel: ui.NewPanel(10, 10, 240, cfg.WorldHeight-20),
	}

	g.panel.AddSection("Physics")
	g.widgetMaxSpeed = g.panel.AddSlider("Max Speed", 0.5, 8, cfg.MaxSpeed)
	g.widgetMaxForce = g.panel.AddSlider("Max Force", 0.01, 0.5, cfg.MaxForce)
	g.panel.EndSection()

	g.panel.AddSection("Interaction Radii")
	g.widgetNeighborRadius = g.panel.AddSlider("Neighbor Radius", 10, 300, cfg.NeighborRadius)
	g.widgetSeparationRadius = g.panel.AddSlider("Separation Radius", 5, 100, cfg.SeparationRadius)
	g.panel.EndSection()

	g.panel.AddSection("Rule Weights")
	g.widgetCohesion = g.panel.AddSlider("Cohesion", 0, 2, cfg.CohesionWeight)
	g.widgetAlignment = g.panel.AddSlider("Alignment", 0, 2, cfg.AlignmentWeight)
	g.widgetSeparation = g.panel.AddSlider("Separation", 0, 2, cfg.SeparationWeight)
	g.panel.EndSection()

	g.panel.AddSection("Visualization")
	g.widgetShowRadii = g.panel.AddCheckbox("Show Radii", false)
	g.widgetPaused = g.panel.AddCheckbox("Pause", false)
	g.panel.EndSection()

	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	// Fold the slider values back into the config before ticking; the
	// config is immutable within a tick, sliders only take effect
	// between ticks.
	g.cfg.MaxSpeed = g.widgetMaxSpeed.Value
	g.cfg.MaxForce = g.widgetMaxForce.Value
	g.cfg.NeighborRadius = g.widgetNeighborRadius.Value
	g.cfg.SeparationRadius = g.widgetSeparationRadius.Value
	g.cfg.CohesionWeight = g.widgetCohesion.Value
	g.cfg.AlignmentWeight = g.widgetAlignment.Value
	g.cfg.SeparationWeight = g.widgetSeparation.Value

	if !g.widgetPaused.Value {
		g.flock.Tick(g.cfg)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	states := g.flock.RenderStates()
	for _, s := range states {
		if g.widgetShowRadii.Value {
			vector.StrokeCircle(screen,
				float32(s.Pos.X), float32(s.Pos.Y),
				float32(g.cfg.NeighborRadius),
				1, color.RGBA{R: 40, G: 60, B: 90, A: 60}, true)
			vector.StrokeCircle(screen,
				float32(s.Pos.X), float32(s.Pos.Y),
				float32(g.cfg.SeparationRadius),
				1, color.RGBA{R: 120, G: 50, B: 50, A: 90}, true)
		}
		drawBoid(screen, s)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("Boids: %d\nFPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		len(states),
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

// drawBoid renders one agent as a small triangle pointing along its
// heading.
func drawBoid(screen *ebiten.Image, s flock.RenderState) {
	tipX := s.Pos.X + math.Cos(s.Heading)*6
	tipY := s.Pos.Y + math.Sin(s.Heading)*6
	rightX := s.Pos.X + math.Cos(s.Heading+2.5)*5
	rightY := s.Pos.Y + math.Sin(s.Heading+2.5)*5
	leftX := s.Pos.X + math.Cos(s.Heading-2.5)*5
	leftY := s.Pos.Y + math.Sin(s.Heading-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}
	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}
