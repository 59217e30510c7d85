package playing

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/sidescroll/internal/application/state"
	"github.com/younwookim/sidescroll/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorSpike    = color.RGBA{200, 50, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorNeutral  = color.RGBA{110, 140, 220, 255}
	colorSpell    = color.RGBA{255, 200, 100, 255}
	colorPickup   = color.RGBA{255, 215, 0, 255}
	colorCorpse   = color.RGBA{90, 90, 90, 255}
	colorFlinch   = color.RGBA{255, 255, 255, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorCooling  = color.RGBA{90, 90, 120, 255}
	colorReady    = color.RGBA{180, 180, 255, 255}
)

const lineHeight = 12

// camera centers the player and clamps to the stage bounds
func (p *Playing) camera() (int, int) {
	stageW, stageH := p.sess.Stage.Bounds()
	camX, camY := 0, 0
	if pl, ok := p.sess.World.Player(); ok {
		r := pl.Rect()
		camX = r.X + r.W/2 - p.screenW/2
		camY = r.Y + r.H/2 - p.screenH/2
	}
	camX = max(0, min(camX, stageW-p.screenW))
	camY = max(0, min(camY, stageH-p.screenH))
	return camX, camY
}

// Draw implements scene.Scene
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	for _, e := range p.sess.World.Registry.Entities() {
		p.drawEntity(screen, e, camX, camY)
	}
	p.drawBroadcasts(screen)
	p.drawUI(screen)

	switch p.machine.Current() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	m := p.sess.Stage
	size := m.TileSize
	startX, startY := camX/size, camY/size
	endX, endY := (camX+p.screenW)/size+1, (camY+p.screenH)/size+1

	for ty := startY; ty <= endY && ty < m.Height; ty++ {
		for tx := startX; tx <= endX && tx < m.Width; tx++ {
			var c color.Color
			switch m.GetTile(tx, ty).Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileSpike:
				c = colorSpike
			default:
				continue
			}
			x := float64(tx*size - camX)
			y := float64(ty*size - camY)
			ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), c)
		}
	}
}

func (p *Playing) entityColor(e *entity.Entity) color.Color {
	switch {
	case !e.Alive:
		return colorCorpse
	case e.Flinch > 0:
		return colorFlinch
	case e.Spell != nil:
		return colorSpell
	case e.Loot != nil:
		return colorPickup
	case e.Name == p.sess.World.PlayerName:
		return colorPlayer
	case e.Faction == "":
		return colorNeutral
	default:
		return colorEnemy
	}
}

func (p *Playing) drawEntity(screen *ebiten.Image, e *entity.Entity, camX, camY int) {
	r := e.Rect()
	x := float64(r.X - camX)
	y := float64(r.Y - camY)
	if x+float64(r.W) < 0 || y+float64(r.H) < 0 || x > float64(p.screenW) || y > float64(p.screenH) {
		return
	}
	ebitenutil.DrawRect(screen, x, y, float64(r.W), float64(r.H), p.entityColor(e))

	// facing marker
	eyeX := x + float64(r.W) - 3
	if e.Facing == entity.FacingLeft {
		eyeX = x + 1
	}
	ebitenutil.DrawRect(screen, eyeX, y+2, 2, 2, colorBG)

	top := int(y) - 6
	if e.Alive && e.Combatant() && e.MaxHealth > 0 && e.Name != p.sess.World.PlayerName {
		ratio := e.Health / e.MaxHealth
		ebitenutil.DrawRect(screen, x, float64(top), float64(r.W), 3, colorHealthBG)
		ebitenutil.DrawRect(screen, x, float64(top), float64(r.W)*ratio, 3, colorHealthFG)
	}

	for i, m := range e.Messages {
		ebitenutil.DebugPrintAt(screen, m.Text, int(x), top-lineHeight*(i+1))
	}

	if e.Talking && e.Dialogue != nil {
		line := e.Dialogue.Current(p.sess.World.Progression.Form)
		ebitenutil.DebugPrintAt(screen, line, int(x)-len(line)*3+r.W/2, top-lineHeight*(len(e.Messages)+1))
	}
}

func (p *Playing) drawBroadcasts(screen *ebiten.Image) {
	for i, b := range p.sess.World.Broadcasts {
		ebitenutil.DebugPrintAt(screen, b.Text, p.screenW/2-len(b.Text)*3, 20+i*lineHeight)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	if pl, ok := p.sess.World.Player(); ok && pl.MaxHealth > 0 {
		ebitenutil.DrawRect(screen, barX, barY, barW*pl.Health/pl.MaxHealth, barH, colorHealthFG)
	}

	prog := p.sess.World.Progression
	for i := 0; i < entity.SocketCount; i++ {
		c := colorReady
		if prog.Cooling(i) {
			c = colorCooling
		}
		sx := barX + barW + 10 + float64(i)*14
		ebitenutil.DrawRect(screen, sx, barY, 10, barH, c)
	}
	ebitenutil.DebugPrintAt(screen, p.statusLine(), 10, p.screenH-35)

	ebitenutil.DebugPrint(screen, "Arrows/WASD: Move | 1-5: Cast | Enter: Talk | Space: Form | ESC: Pause")
}

// statusLine summarizes the progression for the HUD
func (p *Playing) statusLine() string {
	prog := p.sess.World.Progression
	var sockets []string
	for i := 0; i < entity.SocketCount; i++ {
		if s := prog.Socket(i); s != "" {
			sockets = append(sockets, fmt.Sprintf("%d:%s", i+1, s))
		}
	}
	form := "primary"
	if prog.Form == entity.FormAlternate {
		form = "alternate"
	}
	return fmt.Sprintf("Exp: %d  Form: %s  %s", prog.Exp, form, strings.Join(sockets, " "))
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nESC: resume\nR: restart"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("GAME OVER\n\nExperience: %d\n\nPress R to restart", p.sess.World.Progression.Exp)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
