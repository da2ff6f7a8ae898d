package hud

import (
	"fmt"
	"time"

	"liquids/internal/animation"
	"liquids/internal/graphics"
	"liquids/internal/graphics/renderables/ui"
	renderer "liquids/internal/graphics/renderer"
	"liquids/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 24
	textScale  = 0.7
	lineStep   = 18
)

// StatusFunc supplies lines owned by the application, e.g. animation angle.
type StatusFunc func() []string

// HUD is the debug overlay. It draws nothing while hidden.
type HUD struct {
	shaderDir    string
	fontAtlas    *graphics.FontAtlasInfo
	fontRenderer *graphics.FontRenderer
	panel        *ui.UI
	visible      bool
	status       StatusFunc

	width, height int

	fps   fpsCounter
	stats frameStats
}

// NewHUD creates the overlay, loading the font program from shaderDir.
func NewHUD(shaderDir string, visible bool, status StatusFunc) *HUD {
	return &HUD{
		shaderDir: shaderDir,
		visible:   visible,
		status:    status,
		panel:     ui.NewUI(shaderDir),
		fps:       fpsCounter{now: time.Now},
	}
}

func (h *HUD) Name() string { return "hud" }

// Init bakes the font atlas and compiles the text and panel programs.
func (h *HUD) Init() error {
	if err := h.panel.Init(); err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	atlas, err := graphics.BuildFontAtlas(fontPixels)
	if err != nil {
		h.panel.Dispose()
		return fmt.Errorf("hud: %w", err)
	}
	fr, err := graphics.NewFontRenderer(atlas, h.shaderDir, h.width, h.height)
	if err != nil {
		atlas.Delete()
		h.panel.Dispose()
		return fmt.Errorf("hud: %w", err)
	}
	h.fontAtlas = atlas
	h.fontRenderer = fr
	return nil
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

func (h *HUD) IsVisible() bool { return h.visible }

// Render draws the inspector text in the top-left corner.
func (h *HUD) Render(ctx renderer.RenderContext) {
	h.fps.tick()
	if !h.visible || h.fontRenderer == nil {
		return
	}
	lines := h.Lines(ctx)
	w, hgt := h.panelSize(lines)
	h.panel.DrawFilledRect(0, 0, w, hgt, mgl32.Vec3{0, 0, 0}, 0.55)
	h.fontRenderer.RenderLines(lines, 10, 30, lineStep, textScale, mgl32.Vec3{1, 1, 1})
}

// panelSize returns the backdrop size covering lines drawn at the overlay origin.
func (h *HUD) panelSize(lines []string) (float32, float32) {
	var widest float32
	for _, line := range lines {
		w, _ := h.fontRenderer.Measure(line, textScale)
		widest = max(widest, w)
	}
	return widest + 20, float32(len(lines))*lineStep + 20
}

// Lines returns the overlay text for ctx.
func (h *HUD) Lines(ctx renderer.RenderContext) []string {
	lines := make([]string, 0, 24)
	lines = append(lines,
		fmt.Sprintf("FPS: %d | dt: %.2fms", h.fps.current, ctx.DT),
		fmt.Sprintf("Frame(update): %s | Frame(render): %s (%s avg, %s max)",
			profiling.FormatMs(h.stats.update),
			profiling.FormatMs(h.stats.render),
			profiling.FormatMs(h.stats.avg),
			profiling.FormatMs(h.stats.max)),
		fmt.Sprintf("Frame size: %dx%d", ctx.Width, ctx.Height),
	)

	if h.status != nil {
		lines = append(lines, h.status()...)
	}

	sc := ctx.Scene
	if sc != nil {
		lines = append(lines, "Scene: "+sc.State().String())
		for _, c := range sc.Cameras() {
			yaw, pitch := c.Rotation()
			lines = append(lines, fmt.Sprintf("Camera %s: pos %s target %s yaw %.1f pitch %.1f",
				c.Name, vec(c.Position), vec(c.Target()), mgl32.RadToDeg(float32(yaw)), mgl32.RadToDeg(float32(pitch))))
		}
		if m := sc.LiquidsMaterial; m != nil {
			if p, ok := m.Vector3(animation.LightUniform); ok {
				lines = append(lines, "Light: "+vec(p))
			}
		}
		for _, mesh := range sc.DrawList() {
			mat := mesh.Material()
			lines = append(lines, fmt.Sprintf("  %s -> %s(%s) at %s", mesh.Name(), mat.Name(), mat.Path(), vec(mesh.Position)))
		}
	}

	lines = append(lines, "Draw(meshes): "+profiling.FormatMs(profiling.SumWithPrefix("renderer.meshes.")))
	if top := profiling.TopN(5); top != "" {
		lines = append(lines, "Top: "+top)
	}
	return lines
}

func (h *HUD) Dispose() {
	h.panel.Dispose()
	if h.fontRenderer != nil {
		h.fontRenderer.Delete()
		h.fontRenderer = nil
	}
	if h.fontAtlas != nil {
		h.fontAtlas.Delete()
		h.fontAtlas = nil
	}
}

func (h *HUD) SetViewport(width, height int) {
	h.width, h.height = width, height
	h.panel.SetViewport(width, height)
	if h.fontRenderer != nil {
		h.fontRenderer.SetViewport(width, height)
	}
}

func vec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
