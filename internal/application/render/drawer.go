package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/redemption/internal/domain/entity"
	"github.com/younwookim/redemption/internal/infrastructure/asset"
)

// Colors for rendering
var (
	ColorBG        = color.RGBA{26, 26, 46, 255}
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorSpike     = color.RGBA{200, 50, 50, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorEnemyHit  = colornames.White
	colorStatusBar = color.RGBA{60, 60, 60, 255}
	colorHealth    = colornames.Red
	colorHitbox    = colornames.Magenta
	colorAttackBox = colornames.Red
)

// Drawer draws the level, the player and the HUD.
// Without an atlas the player is drawn as a placeholder box.
type Drawer struct {
	sprite    SpriteLayout
	statusBar StatusBarLayout

	atlas     *asset.Atlas
	statusImg *ebiten.Image

	// Debug draws the hitbox and the attack box
	Debug bool
}

// NewDrawer creates a drawer for the given layouts
func NewDrawer(sprite SpriteLayout, statusBar StatusBarLayout) *Drawer {
	return &Drawer{sprite: sprite, statusBar: statusBar}
}

// SetAtlas sets the player sprite atlas
func (d *Drawer) SetAtlas(a *asset.Atlas) {
	d.atlas = a
}

// SetStatusBarImage sets the status bar background
func (d *Drawer) SetStatusBarImage(img *ebiten.Image) {
	d.statusImg = img
}

// DrawStage draws the visible non-empty tiles
func (d *Drawer) DrawStage(screen *ebiten.Image, stage *entity.Stage, lvlOffset int) {
	ts := stage.TileSize
	screenW := screen.Bounds().Dx()
	startTX := lvlOffset / ts
	endTX := (lvlOffset+screenW)/ts + 1

	for ty := 0; ty < stage.Height; ty++ {
		for tx := startTX; tx <= endTX && tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, ty)
			var c color.Color
			switch tile.Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileSpike:
				c = colorSpike
			default:
				continue
			}
			x := float64(tx*ts - lvlOffset)
			y := float64(ty * ts)
			ebitenutil.DrawRect(screen, x, y, float64(ts), float64(ts), c)
		}
	}
}

// DrawPlayer draws the current animation frame, mirrored when facing left
func (d *Drawer) DrawPlayer(screen *ebiten.Image, p *entity.Player, lvlOffset int) {
	sd := PlayerSprite(p, d.sprite, lvlOffset)

	if frame := d.frame(sd); frame != nil {
		fw, fh := d.atlas.FrameSize()
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(float64(sd.W)/float64(fw), float64(sd.H)/float64(fh))
		op.GeoM.Translate(float64(sd.X), float64(sd.Y))
		screen.DrawImage(frame, op)
	} else {
		fillRect(screen, sd.Bounds(), colorPlayer)
	}

	if d.Debug {
		strokeRect(screen, p.Hitbox, lvlOffset, colorHitbox)
		strokeRect(screen, p.AttackBox, lvlOffset, colorAttackBox)
	}
}

func (d *Drawer) frame(sd SpriteDraw) *ebiten.Image {
	if d.atlas == nil {
		return nil
	}
	return d.atlas.Frame(sd.Row, sd.Frame)
}

// DrawEnemies draws the living enemies with a small health bar above them
func (d *Drawer) DrawEnemies(screen *ebiten.Image, enemies []*entity.Enemy, lvlOffset int) {
	for _, enemy := range enemies {
		if !enemy.Active {
			continue
		}

		c := colorEnemy
		if enemy.HitTimer > 0 {
			c = colorEnemyHit
		}
		hb := enemy.Hitbox
		ebitenutil.DrawRect(screen, hb.X-float64(lvlOffset), hb.Y, hb.W, hb.H, c)

		barW := int(hb.W)
		fill := HealthWidth(enemy.Health, enemy.MaxHealth, barW)
		ebitenutil.DrawRect(screen, hb.X-float64(lvlOffset), hb.Y-6, float64(fill), 3, colorHealth)

		if d.Debug {
			strokeRect(screen, hb, lvlOffset, colorHitbox)
		}
	}
}

// DrawHUD draws the status bar and the health fill
func (d *Drawer) DrawHUD(screen *ebiten.Image, p *entity.Player) {
	hud := StatusBar(d.statusBar, p)

	if d.statusImg != nil {
		b := d.statusImg.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(hud.Bar.Dx())/float64(b.Dx()), float64(hud.Bar.Dy())/float64(b.Dy()))
		op.GeoM.Translate(float64(hud.Bar.Min.X), float64(hud.Bar.Min.Y))
		screen.DrawImage(d.statusImg, op)
	} else {
		fillRect(screen, hud.Bar, colorStatusBar)
	}
	fillRect(screen, hud.Health, colorHealth)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

func strokeRect(screen *ebiten.Image, r entity.Rect, lvlOffset int, c color.Color) {
	vector.StrokeRect(screen, float32(r.X)-float32(lvlOffset), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}
