package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sidescroll/internal/application/system"
)

// Keyboard reports key state for the current tick
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}

	keysAbility = []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
	}
)

func anyPressed(kb Keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.Pressed(k) {
			return true
		}
	}
	return false
}

// pollInput samples the keyboard into an input snapshot.
// Enter and Space are edges, everything else is held.
func pollInput(kb Keyboard) system.InputSnapshot {
	in := system.InputSnapshot{
		Left:  anyPressed(kb, keysLeft),
		Right: anyPressed(kb, keysRight),
		Up:    anyPressed(kb, keysUp),
		Down:  anyPressed(kb, keysDown),
		Enter: kb.JustPressed(ebiten.KeyEnter),
		Space: kb.JustPressed(ebiten.KeySpace),
	}
	for i, k := range keysAbility {
		in.Abilities[i] = kb.Pressed(k)
	}
	return in
}
