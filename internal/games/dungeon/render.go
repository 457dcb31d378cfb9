package dungeon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crawler/internal/core"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/level"
	"github.com/vovakirdan/tui-crawler/internal/games/dungeon/physics"
)

// cellsPerTile is how many terminal columns one map tile takes.
// Terminal cells are about twice as tall as wide.
const cellsPerTile = 2

// Glyphs for two-cell sprites.
var (
	glyphWall        = [2]rune{'█', '█'}
	glyphFloor       = [2]rune{'·', ' '}
	glyphDoorClosed  = [2]rune{'▒', '▒'}
	glyphDoorOpen    = [2]rune{'░', '░'}
	glyphChestClosed = [2]rune{'[', ']'}
	glyphChestOpen   = [2]rune{'[', '_'}
	glyphLizard      = [2]rune{'L', '~'}
	glyphWizard      = [2]rune{'W', '*'}
	glyphDead        = [2]rune{'x', '_'}
)

// playerGlyph returns the player's sprite for a facing.
func playerGlyph(f Facing) [2]rune {
	switch f {
	case FaceUp:
		return [2]rune{'@', '^'}
	case FaceLeft:
		return [2]rune{'<', '@'}
	case FaceRight:
		return [2]rune{'@', '>'}
	default:
		return [2]rune{'@', 'v'}
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.viewW, g.viewH+2))
		return
	}

	g.hud.Draw(dst, g.offX, g.offY-1, g.viewW, g.currentRoom, len(g.enemies))

	view := g.camera.View()
	g.renderTiles(dst, view)
	g.renderEnvironment(dst, view)
	g.renderEnemies(dst, view)
	g.renderPlayer(dst, view)
	g.renderProjectiles(dst, view)

	help := "←↑↓→ move  space act  click walk  p pause  q quit"
	dst.DrawTextColored(g.offX, g.offY+g.viewH, help, core.ColorDarkGray)

	switch {
	case g.gameOver && g.outcome == core.OutcomeWon:
		g.renderOverlay(dst, "Dungeon cleared!", fmt.Sprintf("Coins: %s  R to play again", g.hud.Coins))
	case g.gameOver:
		g.renderOverlay(dst, "You died", fmt.Sprintf("Coins: %s  R to restart", g.hud.Coins))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderTiles(dst *core.Screen, view physics.Box) {
	for row := 0; row < g.viewH; row++ {
		ty := int(math.Floor(view.Y + float64(row) + 0.5))
		for col := 0; col < g.viewW; col++ {
			wx := view.X + (float64(col)+0.5)/cellsPerTile
			tx := int(math.Floor(wx))
			half := int(math.Floor(wx*cellsPerTile)) - tx*cellsPerTile

			switch g.lvl.TileAt(tx, ty) {
			case level.TileWall:
				dst.SetColored(g.offX+col, g.offY+row, glyphWall[half], core.ColorGray)
			case level.TileFloor:
				dst.SetColored(g.offX+col, g.offY+row, glyphFloor[half], core.ColorDarkGray)
			}
		}
	}
}

func (g *Game) renderEnvironment(dst *core.Screen, view physics.Box) {
	for _, d := range g.doors {
		glyph, color := glyphDoorClosed, core.ColorYellow
		if d.IsOpen() {
			glyph, color = glyphDoorOpen, core.ColorDarkGray
		} else if d == g.player.ActiveDoor {
			color = core.ColorBrightWhite
		}
		g.drawTile(dst, view, d.Tile, glyph, color)
	}

	for _, c := range g.chests {
		glyph, color := glyphChestClosed, core.ColorBrightYellow
		if c.IsOpen() {
			glyph, color = glyphChestOpen, core.ColorDarkGray
		} else if c == g.player.ActiveChest {
			color = core.ColorBrightWhite
		}
		g.drawTile(dst, view, c.Tile, glyph, color)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, view physics.Box) {
	for _, e := range g.enemies {
		color := core.ColorGreen
		switch e.Kind {
		case KindWizard:
			color = core.ColorMagenta
			if e.Firing() {
				color = core.ColorBrightMagenta
			}
		case KindBoss:
			color = core.ColorOrange
		}
		if e.Tinted {
			color = core.ColorBrightRed
		}
		if !e.Alive() {
			color = core.ColorGray
			if e.Fade(g.tune.dyingMs) > 0.5 {
				color = core.ColorDarkGray
			}
		}

		if e.Kind == KindBoss {
			g.fillBox(dst, view, e.Body.Bounds(), 'Z', color)
			continue
		}
		glyph := glyphLizard
		if e.Kind == KindWizard {
			glyph = glyphWizard
		}
		g.drawSprite(dst, view, e.Pos(), glyph, color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, view physics.Box) {
	p := g.player
	switch {
	case p.Dead():
		g.drawSprite(dst, view, p.Pos(), glyphDead, core.ColorGray)
	case p.Tinted:
		g.drawSprite(dst, view, p.Pos(), playerGlyph(p.Facing), core.ColorBrightRed)
	default:
		g.drawSprite(dst, view, p.Pos(), playerGlyph(p.Facing), core.ColorBrightWhite)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, view physics.Box) {
	for _, em := range g.emitters {
		for _, pt := range em.Particles() {
			r, color := '*', core.ColorBrightYellow
			if pt.Age > pt.Life/2 {
				r, color = '.', core.ColorOrange
			}
			g.drawPoint(dst, view, pt.Pos, r, color)
		}
	}

	for _, fb := range g.fireballs {
		if fb.Active {
			g.drawPoint(dst, view, fb.Body.Pos, 'o', core.ColorBrightRed)
		}
	}

	if g.knife.Active {
		g.drawPoint(dst, view, g.knife.Body.Pos, knifeRune(g.knife.Body.Vel), core.ColorBrightWhite)
	}
}

// knifeRune picks a blade glyph for the knife's heading. The heading is
// folded onto a half turn and split into 45° sectors; y grows downward.
func knifeRune(v physics.Vec) rune {
	a := math.Mod(v.Angle()+math.Pi, math.Pi)
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}

// toCell converts a world point to a viewport cell.
func toCell(view physics.Box, p physics.Vec) (int, int) {
	col := int(math.Floor((p.X - view.X) * cellsPerTile))
	row := int(math.Floor(p.Y - view.Y))
	return col, row
}

func (g *Game) setCell(dst *core.Screen, col, row int, r rune, color core.Color) {
	if col < 0 || row < 0 || col >= g.viewW || row >= g.viewH {
		return
	}
	dst.SetColored(g.offX+col, g.offY+row, r, color)
}

// drawTile draws a two-cell glyph over a map tile.
func (g *Game) drawTile(dst *core.Screen, view physics.Box, t level.Point, glyph [2]rune, color core.Color) {
	col, row := toCell(view, physics.V(float64(t.X), float64(t.Y)+0.5))
	g.setCell(dst, col, row, glyph[0], color)
	g.setCell(dst, col+1, row, glyph[1], color)
}

// drawSprite draws a two-cell glyph centered on a world point.
func (g *Game) drawSprite(dst *core.Screen, view physics.Box, p physics.Vec, glyph [2]rune, color core.Color) {
	col, row := toCell(view, p.Sub(physics.V(0.5/cellsPerTile, 0)))
	g.setCell(dst, col, row, glyph[0], color)
	g.setCell(dst, col+1, row, glyph[1], color)
}

// drawPoint draws a single cell at a world point.
func (g *Game) drawPoint(dst *core.Screen, view physics.Box, p physics.Vec, r rune, color core.Color) {
	col, row := toCell(view, p)
	g.setCell(dst, col, row, r, color)
}

// fillBox fills every cell whose center lies inside the box.
func (g *Game) fillBox(dst *core.Screen, view physics.Box, b physics.Box, r rune, color core.Color) {
	c0, r0 := toCell(view, physics.V(b.X, b.Y))
	c1, r1 := toCell(view, physics.V(b.Right(), b.Bottom()))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := view.X + (float64(col)+0.5)/cellsPerTile
			cy := view.Y + float64(row) + 0.5
			if b.Contains(physics.V(cx, cy)) {
				g.setCell(dst, col, row, r, color)
			}
		}
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(width-len([]rune(line1)))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextColored(box.X+(width-len([]rune(line2)))/2, box.Y+3, line2, core.ColorGray)
}
