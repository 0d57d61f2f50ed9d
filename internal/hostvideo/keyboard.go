//go:build !headless

package hostvideo

import (
	"github.com/hajimehoshi/ebiten/v2"

	"snesgo/internal/input"
)

// pollKeyboard reads ebiten's keyboard state into the SNES controller bit
// layout (see internal/input) using a fixed default binding; the key
// bindings in app.Config.Input are not applied here or anywhere else.
func pollKeyboard() uint16 {
	var buttons uint16
	set := func(pressed bool, b input.Button) {
		if pressed {
			buttons |= uint16(b)
		}
	}
	set(ebiten.IsKeyPressed(ebiten.KeyArrowUp), input.ButtonUp)
	set(ebiten.IsKeyPressed(ebiten.KeyArrowDown), input.ButtonDown)
	set(ebiten.IsKeyPressed(ebiten.KeyArrowLeft), input.ButtonLeft)
	set(ebiten.IsKeyPressed(ebiten.KeyArrowRight), input.ButtonRight)
	set(ebiten.IsKeyPressed(ebiten.KeyX), input.ButtonA)
	set(ebiten.IsKeyPressed(ebiten.KeyZ), input.ButtonB)
	set(ebiten.IsKeyPressed(ebiten.KeyS), input.ButtonX)
	set(ebiten.IsKeyPressed(ebiten.KeyA), input.ButtonY)
	set(ebiten.IsKeyPressed(ebiten.KeyQ), input.ButtonL)
	set(ebiten.IsKeyPressed(ebiten.KeyW), input.ButtonR)
	set(ebiten.IsKeyPressed(ebiten.KeyEnter), input.ButtonStart)
	set(ebiten.IsKeyPressed(ebiten.KeyShiftRight), input.ButtonSelect)
	return buttons
}
