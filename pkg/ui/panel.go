package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the contract the panel needs from its children.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	setY(y float64)
}

// section groups consecutive widgets under a header.
type section struct {
	title      string
	startIndex int
	endIndex   int // exclusive
}

// Panel manages a vertical, scrollable stack of labeled widgets.
type Panel struct {
	X, Y          float64
	Width, Height float64

	widgets      []Widget
	labels       []string
	sections     []section
	scrollOffset float64

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given screen rectangle.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X: x, Y: y,
		Width: width, Height: height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a new header; widgets added until EndSection belong
// to it.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, section{title: title, startIndex: len(p.widgets)})
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].endIndex = len(p.widgets)
	}
}

// AddSlider appends a slider widget and returns it for value reads.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, s)
	p.labels = append(p.labels, label)
	return s
}

// AddCheckbox appends a checkbox widget and returns it for value reads.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.widgets = append(p.widgets, c)
	p.labels = append(p.labels, label)
	return c
}

// Update handles scrolling and forwards input to the widgets.
func (p *Panel) Update() {
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.scrollOffset -= dy * 20

		maxScroll := p.contentHeight() - p.Height + 40
		if maxScroll < 0 {
			maxScroll = 0
		}
		if p.scrollOffset < 0 {
			p.scrollOffset = 0
		}
		if p.scrollOffset > maxScroll {
			p.scrollOffset = maxScroll
		}
	}

	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel frame, section headers, labels and widgets,
// skipping rows scrolled out of view.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Configuration", int(p.X+10), int(p.Y+5))

	currentY := p.Y + 30 - p.scrollOffset
	widgetIdx := 0

	for sectionIdx, sec := range p.sections {
		if currentY >= p.Y-25 && currentY <= p.Y+p.Height {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, sec.title, int(p.X+10), int(currentY+5))
		}
		currentY += 25

		for widgetIdx < sec.endIndex && widgetIdx < len(p.widgets) {
			w := p.widgets[widgetIdx]

			if currentY >= p.Y-30 && currentY <= p.Y+p.Height {
				ebitenutil.DebugPrintAt(screen, p.labels[widgetIdx], int(p.X+10), int(currentY))
				w.setY(currentY + 15)
				w.Draw(screen)
			}

			currentY += w.Height()
			widgetIdx++
		}

		if sectionIdx < len(p.sections)-1 {
			widgetIdx = p.sections[sectionIdx+1].startIndex
		}
	}
}

func (p *Panel) contentHeight() float64 {
	height := 30.0
	height += float64(len(p.sections)) * 25
	for _, w := range p.widgets {
		height += w.Height()
	}
	return height
}
