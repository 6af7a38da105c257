package areatracker

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// Notice, if set, is drawn over the map until it has faded.
	Notice *Notice
}

// Run opens a window sized to the canvas plus its margin and drives s until
// the window is closed. Mouse movement selects regions, a left button
// release clicks, and losing focus counts as the cursor leaving the canvas.
func Run(s *Session, cfg RunConfig) error {
	g := newGame(s, cfg)
	w, h := g.Layout(0, 0)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(g)
}

// game adapts a Session to ebiten.Game.
type game struct {
	s   *Session
	cfg RunConfig

	canvas   *ebiten.Image
	uploaded uint64

	focused      bool
	inside       bool
	lastX, lastY int

	noticeImg *ebiten.Image
	fps       *fpsWidget
}

func newGame(s *Session, cfg RunConfig) *game {
	g := &game{s: s, cfg: cfg, focused: true}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g
}

func (g *game) Update() error {
	dt := float32(1) / float32(ebiten.TPS())
	if !g.s.Update() {
		g.processInput()
	}
	if g.cfg.Notice != nil {
		g.cfg.Notice.Update(dt)
	}
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

func (g *game) processInput() {
	if !ebiten.IsFocused() {
		if g.focused {
			g.focused = false
			g.inside = false
			g.s.Leave()
		}
		return
	}
	g.focused = true

	cx, cy := ebiten.CursorPosition()
	o := g.s.Origin()
	x, y := cx-o.X, cy-o.Y
	if g.s.Config().Contains(x, y) {
		if !g.inside || x != g.lastX || y != g.lastY {
			g.inside = true
			g.lastX, g.lastY = x, y
			g.s.Move(x, y)
		}
	} else if g.inside {
		g.inside = false
		g.s.Leave()
	}

	// Clicks off the canvas still count: they cancel a pending link.
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.s.Click(x, y)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.s.Present()
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	if v := g.s.Version(); v != g.uploaded {
		g.canvas.WritePixels(img.Pix)
		g.uploaded = v
	}

	screen.Fill(g.s.Config().BackgroundColor)
	o := g.s.Origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(o.X), float64(o.Y))
	screen.DrawImage(g.canvas, op)

	g.drawNotice(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) drawNotice(screen *ebiten.Image) {
	n := g.cfg.Notice
	if n == nil || n.Done() {
		return
	}
	if g.noticeImg == nil {
		lines := strings.Count(n.Text, "\n") + 1
		g.noticeImg = ebiten.NewImage(screen.Bounds().Dx(), lines*16+8)
		g.noticeImg.Fill(noticeBackground)
		ebitenutil.DebugPrintAt(g.noticeImg, n.Text, 4, 4)
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(n.Alpha())
	screen.DrawImage(g.noticeImg, op)
}

func (g *game) Layout(_, _ int) (int, int) {
	c := g.s.Config()
	return c.Width + 2*c.Margin, c.Height + 2*c.Margin
}
