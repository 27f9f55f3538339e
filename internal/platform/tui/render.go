package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dandaka/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// kindGlyphs is the fill rune for each entity kind.
var kindGlyphs = map[core.EntityKind]rune{
	core.KindPlayer:     '@',
	core.KindMinion:     'm',
	core.KindBoss:       'B',
	core.KindDeer:       'D',
	core.KindNPC:        'J',
	core.KindProjectile: '-',
	core.KindParticle:   '*',
	core.KindStatue:     'Ψ',
}

const hudRows = 1

// viewport maps world units onto terminal cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	shake  core.Vec
}

func newViewport(s *core.Screen, f core.Frame) viewport {
	v := viewport{top: hudRows, shake: f.Shake}
	if f.WorldW > 0 {
		v.sx = float64(s.Width()) / f.WorldW
	}
	if f.WorldH > 0 {
		v.sy = float64(s.Height()-hudRows) / f.WorldH
	}
	return v
}

// point returns the cell containing world position p.
func (v viewport) point(p core.Vec) (x, y int) {
	x = int(math.Floor((p.X + v.shake.X) * v.sx))
	y = v.top + int(math.Floor((p.Y+v.shake.Y)*v.sy))
	return x, y
}

// rect returns the cells covered by r, at least one cell in each direction.
func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.point(core.Vec{X: r.X, Y: r.Y})
	x1 := int(math.Ceil((r.Right() + v.shake.X) * v.sx))
	y1 := v.top + int(math.Ceil((r.Bottom()+v.shake.Y)*v.sy))
	return x, y, core.Max(1, x1-x), core.Max(1, y1-y)
}

// DrawFrame projects a simulation frame onto the screen. blinkOn selects the
// visible half of the blink cycle for invulnerable entities.
func DrawFrame(s *core.Screen, f core.Frame, blinkOn bool) {
	s.Clear()
	v := newViewport(s, f)

	for _, p := range f.Platforms {
		x, y, w, h := v.rect(p)
		s.DrawRect(x, y, w, h, '▒', core.ColorGray)
	}

	for _, b := range f.Bolts {
		x0, y0 := v.point(b.From)
		x1, y1 := v.point(b.To)
		if b.Active {
			s.DrawLine(x0, y0, x1, y1, '#', core.ColorBrightYellow)
		} else {
			s.DrawLine(x0, y0, x1, y1, '.', core.ColorGray)
		}
	}

	for _, e := range f.Entities {
		drawEntity(s, v, e, blinkOn)
	}

	for _, l := range f.Labels {
		x, y := v.point(l.Pos)
		x -= len([]rune(l.Text)) / 2
		s.DrawTextColored(x, y, l.Text, l.Color)
	}

	drawHUD(s, f.HUD)
	drawOverlay(s, f)
}

func drawEntity(s *core.Screen, v viewport, e core.EntityView, blinkOn bool) {
	if e.Blink && !blinkOn {
		return
	}
	glyph, ok := kindGlyphs[e.Kind]
	if !ok {
		glyph = '?'
	}

	switch e.Kind {
	case core.KindParticle:
		// Fading debris
		if e.Life < 0.25 {
			return
		}
		if e.Life < 0.5 {
			glyph = '.'
		}
		x, y := v.point(e.Rect.Center())
		s.SetColored(x, y, glyph, e.Color)
		return
	case core.KindProjectile:
		if e.Facing < 0 {
			glyph = '<'
		} else {
			glyph = '>'
		}
	}

	x, y, w, h := v.rect(e.Rect)
	s.DrawRect(x, y, w, h, glyph, e.Color)
}

// healthBar renders frac of width as filled blocks.
func healthBar(frac float64, width int) string {
	n := int(math.Round(core.ClampF(frac, 0, 1) * float64(width)))
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

func drawHUD(s *core.Screen, h core.HUD) {
	s.DrawHLine(0, 0, s.Width(), ' ', core.ColorDefault)

	frac := 0.0
	if h.MaxHealth > 0 {
		frac = float64(h.Health) / float64(h.MaxHealth)
	}
	hpColor := core.ColorBrightGreen
	if frac <= 0.3 {
		hpColor = core.ColorBrightRed
	}
	hp := fmt.Sprintf("HP %s %3d", healthBar(frac, 10), h.Health)
	s.DrawTextColored(0, 0, hp, hpColor)

	x := len([]rune(hp)) + 2
	stats := fmt.Sprintf("Score %d  Kills %d/%d  Ch %d", h.Score, h.Kills, h.KillTarget, h.Chapter)
	s.DrawTextColored(x, 0, stats, core.ColorWhite)
	x += len(stats) + 2

	if h.DashReady {
		s.DrawTextColored(x, 0, "DASH", core.ColorBrightCyan)
	} else {
		s.DrawTextColored(x, 0, "dash", core.ColorGray)
	}

	if h.BossVisible {
		boss := fmt.Sprintf("BOSS %s P%d", healthBar(h.BossHealth, 12), h.BossPhase)
		color := core.ColorMagenta
		if h.BossPhase == 2 {
			color = core.ColorBrightMagenta
		}
		s.DrawTextColored(s.Width()-len([]rune(boss)), 0, boss, color)
	}
}

func drawOverlay(s *core.Screen, f core.Frame) {
	switch f.Mode {
	case core.ModeTitle:
		drawPanel(s, "DANDAKA", "An exile in the forest. Demons in the trees. "+
			"Move with A/D or arrows, jump with W or space, shoot with Z, dash with X.",
			"Enter to begin, Q to quit", core.ColorBrightYellow)
	case core.ModeInterlude:
		if f.Interlude != nil {
			drawPanel(s, f.Interlude.Title, f.Interlude.Text, "Enter to continue", core.ColorBrightCyan)
		}
	case core.ModeGameOver:
		drawPanel(s, "YOU HAVE FALLEN",
			fmt.Sprintf("Score %d. Chapter %d.", f.HUD.Score, f.HUD.Chapter),
			"R to restart, Q to quit", core.ColorBrightRed)
	case core.ModeVictory:
		drawPanel(s, "VICTORY",
			fmt.Sprintf("The search goes on. Score %d.", f.HUD.Score),
			"R to play again, Q to quit", core.ColorBrightGreen)
	case core.ModePlaying:
		if f.Paused {
			drawPanel(s, "PAUSED", "", "P to resume", core.ColorWhite)
		}
	}
}

// drawPanel draws a bordered, centered text box. The body is word-wrapped to
// the panel width.
func drawPanel(s *core.Screen, title, body, footer string, c core.Color) {
	w := core.Min(s.Width()-4, 64)
	if w < 12 {
		return
	}
	inner := w - 4

	var lines []string
	if body != "" {
		wrapped := lipgloss.NewStyle().Width(inner).Render(body)
		lines = strings.Split(wrapped, "\n")
	}
	maxBody := core.Max(0, s.Height()-8)
	if len(lines) > maxBody {
		lines = lines[:maxBody]
	}

	h := len(lines) + 6
	x := (s.Width() - w) / 2
	y := core.Max(0, (s.Height()-h)/2)

	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	s.DrawTextColored(x+(w-len([]rune(title)))/2, y+1, title, c)
	for i, line := range lines {
		s.DrawText(x+2, y+3+i, strings.TrimRight(line, " "))
	}
	s.DrawTextColored(x+(w-len([]rune(footer)))/2, y+h-2, footer, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
