package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2 // Terminal columns per field cell
	panelGap   = 2 // Columns between the field box and the side panel
	panelWidth = 12
)

// kindColors maps each shape to its classic terminal color.
var kindColors = [KindCount]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boxW := g.field.Width()*cellWidth + 2
	boxH := g.field.Height() + 2
	totalW := boxW + panelGap + panelWidth

	boxX := core.Max(0, (g.screenW-totalW)/2)
	boxY := 1

	g.renderHUD(dst, boxX, boxW)
	g.renderField(dst, boxX, boxY, boxW, boxH)
	g.renderPanel(dst, boxX+boxW+panelGap, boxY)
	g.renderOverlays(dst, boxX, boxY, boxW, boxH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title above the field box.
func (g *Game) renderHUD(dst *core.Screen, boxX, boxW int) {
	title := "BLOCKFALL"
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, 0, title)
}

// renderField draws the well border, the locked stack, and the active piece.
func (g *Game) renderField(dst *core.Screen, boxX, boxY, boxW, boxH int) {
	dst.DrawBoxColored(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, core.ColorGray)

	// Locked cells
	for y := 0; y < g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			cell := g.field.At(x, y)
			if cell == CellEmpty {
				continue
			}
			g.drawCell(dst, boxX, boxY, x, y, kindColors[cell.Kind()])
		}
	}

	// Active piece
	if g.active == nil {
		return
	}
	for r := range g.active.Cells {
		for c := range g.active.Cells[r] {
			if g.active.Cells[r][c] == 0 {
				continue
			}
			g.drawCell(dst, boxX, boxY, g.active.X+c, g.active.Y+r, kindColors[g.active.Kind])
		}
	}
}

// drawCell paints one field cell as a two-column block inside the border.
func (g *Game) drawCell(dst *core.Screen, boxX, boxY, x, y int, color core.Color) {
	if y < 0 || y >= g.field.Height() {
		return
	}
	px := boxX + 1 + x*cellWidth
	py := boxY + 1 + y
	dst.SetCell(px, py, '█', color)
	dst.SetCell(px+1, py, '█', color)
}

// renderPanel draws the queue preview, the score block, and the per-kind
// piece tally to the right of the field.
func (g *Game) renderPanel(dst *core.Screen, panelX, panelY int) {
	y := panelY
	dst.DrawText(panelX, y, "NEXT")
	y++

	previews := core.Min(len(g.queue), 3)
	for i := 0; i < previews; i++ {
		g.drawPreview(dst, panelX, y, g.queue[i])
		y += 3
	}
	y++

	dst.DrawText(panelX, y, fmt.Sprintf("SCORE %d", g.score))
	y++
	dst.DrawText(panelX, y, fmt.Sprintf("LINES %d", g.lines))
	y++
	dst.DrawText(panelX, y, fmt.Sprintf("LEVEL %d", g.level))
	y += 2

	dst.DrawText(panelX, y, "PIECES")
	y++
	for k := 0; k < KindCount; k += 2 {
		line := fmt.Sprintf("%s %-3d", Kind(k), g.kindCounts[k])
		if k+1 < KindCount {
			line += fmt.Sprintf(" %s %-3d", Kind(k+1), g.kindCounts[k+1])
		}
		dst.DrawText(panelX, y, line)
		y++
	}
}

// drawPreview draws a small copy of the spawn shape for the given kind.
func (g *Game) drawPreview(dst *core.Screen, x, y int, k Kind) {
	shape := spawnShapes[k]
	for r := range shape {
		for c := range shape[r] {
			if shape[r][c] == 0 {
				continue
			}
			dst.SetCell(x+c*cellWidth, y+r, '█', kindColors[k])
			dst.SetCell(x+c*cellWidth+1, y+r, '█', kindColors[k])
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boxX, boxY, boxW, boxH int) {
	centerX := boxX + boxW/2
	centerY := boxY + boxH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	// Draw border
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	// Draw text
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→: Move | ↓: Soft drop | Space: Drop | ↑/Z: Rotate | P: Pause | R: Restart | Q: Quit"
}
