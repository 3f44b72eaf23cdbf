package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tmaran/gridshade/common"
)

// Input samples the keyboard once per frame. Dir is the 4-directional
// input vector in tile space (Y grows upward), zero when no direction is
// held; when several are held the most recently pressed one wins.
type Input struct {
	Dir            common.Vec2
	PausePressed   bool
	RestartPressed bool
}

func NewInput() *Input {
	return &Input{}
}

type dirKey struct {
	keys []ebiten.Key
	dir  common.Vec2
}

var dirKeys = []dirKey{
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, dir: common.Vec2{X: 0, Y: 1}},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, dir: common.Vec2{X: 0, Y: -1}},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, dir: common.Vec2{X: -1, Y: 0}},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, dir: common.Vec2{X: 1, Y: 0}},
}

// Update polls the keyboard.
func (i *Input) Update() {
	i.Dir = common.Vec2{}
	best := -1
	for _, dk := range dirKeys {
		for _, k := range dk.keys {
			if !ebiten.IsKeyPressed(k) {
				continue
			}
			if d := inpututil.KeyPressDuration(k); best == -1 || d < best {
				best = d
				i.Dir = dk.dir
			}
		}
	}

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
}
