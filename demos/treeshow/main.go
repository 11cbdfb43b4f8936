// treeshow drives the full garland choreography with an Ebitengine renderer:
// a spiral tree of needles and ornaments, falling snow, a photo ring, and a
// crowning star, projected in 3D and steered by the mouse standing in for a
// hand tracker.
//
// Keys: T tree, S scatter, F focus, O add a photo via the system file dialog.
// Hold the left mouse button to steer the formation with the cursor.
package main

import (
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/phanxgames/garland"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	// constrainedWidth marks narrow viewports at startup.
	constrainedWidth = 900
)

// drawable is one projected particle ready for the painter's sort.
type drawable struct {
	p      *garland.Particle
	sx, sy float64
	depth  float64
	scale  float64
}

type game struct {
	choreo *garland.Choreographer
	ready  bool

	drawBuf []drawable

	width, height int
}

func newGame(cfg garland.Config) *game {
	g := &game{width: windowWidth, height: windowHeight}
	g.choreo = garland.New(cfg, windowWidth, windowHeight)
	g.choreo.OnReady = func() {
		g.ready = true
		log.Info("formation ready", "particles", g.choreo.Pool().Size())
	}
	return g
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.setMode(garland.ModeTree)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.setMode(garland.ModeScatter)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.setMode(garland.ModeFocus)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.addPhotoFromDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	// The cursor stands in for the hand tracker while the button is held;
	// releasing it drops back to idle rotation.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.choreo.SetHandSignal(garland.HandSignal{
			X: float64(mx) / float64(g.width),
			Y: float64(my) / float64(g.height),
		})
	}

	g.choreo.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) setMode(m garland.Mode) {
	log.Info("mode change", "mode", m)
	g.choreo.SetMode(m)
}

// addPhotoFromDialog opens the system file picker, decodes the chosen image,
// and hands it to the choreography. Cancel is not an error; decode failures
// are logged and the choreography keeps running without a new particle.
func (g *game) addPhotoFromDialog() {
	filename, err := zenity.SelectFile(
		zenity.Title("Add Photo"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Error("file dialog", "err", err)
		}
		return
	}

	f, err := os.Open(filename)
	if err != nil {
		log.Error("open photo", "path", filename, "err", err)
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Error("decode photo", "path", filename, "err", err)
		return
	}

	g.choreo.AddPhoto(ebiten.NewImageFromImage(img))
	log.Info("photo added", "path", filename)
}

// typeColor returns the flat tint for non-photo particles.
func typeColor(t garland.ParticleType) color.RGBA {
	switch t {
	case garland.TypeNeedle:
		return color.RGBA{0x1e, 0x8a, 0x3e, 0xff}
	case garland.TypeShape:
		return color.RGBA{0xd9, 0x3a, 0x3a, 0xff}
	case garland.TypeDust:
		return color.RGBA{0xe8, 0xef, 0xf7, 0xff}
	case garland.TypeStar:
		return color.RGBA{0xff, 0xd4, 0x4d, 0xff}
	default:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x05, 0x08, 0x12, 0xff})
	if !g.ready {
		return
	}

	rig := g.choreo.Rig()
	group := g.choreo.Group()

	g.drawBuf = g.drawBuf[:0]
	g.choreo.Pool().Each(func(p *garland.Particle) {
		sx, sy, depth, ok := rig.Project(p.Transform.Position, group)
		if !ok {
			return
		}
		// Perspective shrink: on-screen size falls off with camera depth.
		size := p.Transform.Scale.X * float64(g.height) / depth
		g.drawBuf = append(g.drawBuf, drawable{p: p, sx: sx, sy: sy, depth: depth, scale: size})
	})

	// Painter's order: far to near.
	sort.Slice(g.drawBuf, func(i, j int) bool {
		return g.drawBuf[i].depth > g.drawBuf[j].depth
	})

	for _, d := range g.drawBuf {
		if d.p.Type == garland.TypePhoto {
			g.drawPhoto(screen, d)
			continue
		}
		r := float32(d.scale * 2)
		if r < 0.5 {
			r = 0.5
		}
		vector.DrawFilledCircle(screen, float32(d.sx), float32(d.sy), r, typeColor(d.p.Type), true)
	}
}

// drawPhoto renders a framed photo plane: a light border quad with the
// decoded image centered on it, scaled with depth.
func (g *game) drawPhoto(screen *ebiten.Image, d drawable) {
	img, ok := d.p.Photo.(*ebiten.Image)
	if !ok || img == nil {
		return
	}

	b := img.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	// Normalize the longer edge to ~12 world units before depth scaling.
	norm := 12.0 / max(w, h)
	sw := w * norm * d.scale * 2
	sh := h * norm * d.scale * 2

	frame := float32(2 + d.scale)
	vector.DrawFilledRect(screen,
		float32(d.sx-sw/2)-frame, float32(d.sy-sh/2)-frame,
		float32(sw)+2*frame, float32(sh)+2*frame,
		color.RGBA{0xf2, 0xe9, 0xd8, 0xff}, true)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(sw/w, sh/h)
	op.GeoM.Translate(d.sx-sw/2, d.sy-sh/2)
	screen.DrawImage(img, &op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.choreo.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	constrained := windowWidth < constrainedWidth
	cfg := garland.DefaultConfig(constrained)

	if len(os.Args) > 1 {
		loaded, err := garland.LoadConfig(os.Args[1], constrained)
		if err != nil {
			log.Fatal("config", "err", err)
		}
		cfg = loaded
		log.Info("config loaded", "path", os.Args[1])
	}

	log.Info("starting", "needles", cfg.Needles, "shapes", cfg.Shapes,
		"dust", cfg.Dust, "constrained", cfg.Constrained)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Garland - T: tree, S: scatter, F: focus, O: add photo")

	if err := ebiten.RunGame(newGame(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run", "err", err)
	}
}
