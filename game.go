package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tmaran/gridshade/levels"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tileSize   = 48
)

// Game is the ebiten shell: it samples input, ticks the session, sequences
// levels on the exit signal, and draws the session's render view. All game
// rules live below it in the session and its systems.
type Game struct {
	levels  []levels.Level
	idx     int
	session *Session

	input   *Input
	paused  bool
	cleared bool
	debug   bool

	watcher *levels.Watcher

	pauseUI   *ebitenui.UI
	clearedUI *ebitenui.UI

	tileImgs map[int]*ebiten.Image
}

func NewGame(lvls []levels.Level, start int, debug bool, watcher *levels.Watcher) *Game {
	g := &Game{
		levels:   lvls,
		idx:      start,
		input:    NewInput(),
		debug:    debug,
		watcher:  watcher,
		tileImgs: map[int]*ebiten.Image{},
	}
	g.pauseUI = newPauseUI(g)
	g.clearedUI = newClearedUI(g)
	g.session = NewSession(lvls[start])
	return g
}

func (g *Game) Update() error {
	g.input.Update()
	g.pollReload()

	if g.cleared {
		g.clearedUI.Update()
		return nil
	}
	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.input.RestartPressed {
		g.session = NewSession(g.levels[g.idx])
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	switch g.session.Step(dt, g.input.Dir) {
	case ExitVictory:
		g.idx++
		if g.idx >= len(g.levels) {
			g.cleared = true
		} else {
			g.session = NewSession(g.levels[g.idx])
		}
	case ExitGameover:
		g.session = NewSession(g.levels[g.idx])
	}
	return nil
}

// pollReload swaps in a fresh level set from the watcher, if any, and
// restarts the current level under the new data.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case lvls := <-g.watcher.Events:
		g.levels = lvls
		if g.idx >= len(lvls) {
			g.idx = len(lvls) - 1
		}
		g.cleared = false
		g.session = NewSession(g.levels[g.idx])
		log.Printf("levels reloaded: %d level(s)", len(lvls))
	case err := <-g.watcher.Errors:
		log.Printf("level reload failed: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xbf, G: 0xbf, B: 0xbf, A: 0xff})

	cam := g.session.Midpoint()
	for _, it := range g.session.View() {
		// Tile Y grows upward, screen Y grows downward. Positions are
		// rounded to the pixel grid so slides don't shimmer.
		px := math.Round((it.X-cam.X)*tileSize) + baseWidth/2 - tileSize/2
		py := math.Round((cam.Y-it.Y)*tileSize) + baseHeight/2 - tileSize/2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(px, py)
		screen.DrawImage(g.tileImage(it.Tile), op)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)  FPS %.1f",
			g.session.Name(), g.idx+1, len(g.levels), ebiten.ActualFPS()))
	}

	if g.cleared {
		g.clearedUI.Draw(screen)
	} else if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// tileImage returns the flat-colored square for a visual-tile index,
// building it on first use. Stand-in art until a real atlas lands.
func (g *Game) tileImage(tile int) *ebiten.Image {
	if img, ok := g.tileImgs[tile]; ok {
		return img
	}
	img := ebiten.NewImage(tileSize, tileSize)
	img.Fill(tileColor(tile))
	g.tileImgs[tile] = img
	return img
}

func tileColor(tile int) color.NRGBA {
	switch tile {
	case tilePlayer:
		return color.NRGBA{R: 0x2e, G: 0x6f, B: 0xd8, A: 0xff}
	case tileHazard:
		return color.NRGBA{R: 0xd8, G: 0x2e, B: 0x2e, A: 0xff}
	case tileBlock:
		return color.NRGBA{R: 0x8a, G: 0x5a, B: 0x2b, A: 0xff}
	case tileDoor:
		return color.NRGBA{R: 0x2e, G: 0xd8, B: 0x6f, A: 0xff}
	case tileWall:
		return color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	case tileWall + 1:
		return color.NRGBA{R: 0x5f, G: 0x5f, B: 0x6e, A: 0xff}
	case tileWall + 2:
		return color.NRGBA{R: 0x3c, G: 0x46, B: 0x50, A: 0xff}
	case tileWall + 3:
		return color.NRGBA{R: 0x6e, G: 0x60, B: 0x50, A: 0xff}
	case tileButton:
		return color.NRGBA{R: 0xb0, G: 0x9a, B: 0x2e, A: 0xff}
	case tileButton + 1:
		return color.NRGBA{R: 0xe8, G: 0xd4, B: 0x4a, A: 0xff}
	case tileGateClosed:
		return color.NRGBA{R: 0x70, G: 0x3a, B: 0x8c, A: 0xff}
	case tileGateOpen:
		return color.NRGBA{R: 0xc9, G: 0xa8, B: 0xdd, A: 0xff}
	default:
		return color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	}
}
