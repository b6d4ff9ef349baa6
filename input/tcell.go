package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridworld/vmath"
)

// Keyboard look step in device units per keypress; the camera rig
// multiplies by its own sensitivity
const keyLookStep = 10.0

// MapEvent translates one tcell event into an intent
// Returns false for events the simulation has no use for (resize is
// handled by the frontend directly)
func MapEvent(ev tcell.Event) (Intent, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return mapKey(e)
	case *tcell.EventMouse:
		return mapMouse(e)
	}
	return Intent{}, false
}

func mapKey(e *tcell.EventKey) (Intent, bool) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}, true
	case tcell.KeyTab:
		return Intent{Type: IntentToggleCamera}, true
	case tcell.KeyUp:
		return Intent{Type: IntentLook, LookDY: -keyLookStep}, true
	case tcell.KeyDown:
		return Intent{Type: IntentLook, LookDY: keyLookStep}, true
	case tcell.KeyLeft:
		return Intent{Type: IntentLook, LookDX: -keyLookStep}, true
	case tcell.KeyRight:
		return Intent{Type: IntentLook, LookDX: keyLookStep}, true
	case tcell.KeyRune:
		return mapRune(e.Rune())
	}
	return Intent{}, false
}

func mapRune(r rune) (Intent, bool) {
	switch r {
	case 'w':
		return Intent{Type: IntentMove, Move: vmath.Vec3{Z: 1}}, true
	case 's':
		return Intent{Type: IntentMove, Move: vmath.Vec3{Z: -1}}, true
	case 'a':
		return Intent{Type: IntentMove, Move: vmath.Vec3{X: -1}}, true
	case 'd':
		return Intent{Type: IntentMove, Move: vmath.Vec3{X: 1}}, true
	case 'e':
		return Intent{Type: IntentMove, Move: vmath.Vec3{Y: 1}}, true
	case 'c':
		return Intent{Type: IntentMove, Move: vmath.Vec3{Y: -1}}, true
	case ' ':
		return Intent{Type: IntentMove}, true // stop
	case '+', '=':
		return Intent{Type: IntentScroll, Scroll: -1}, true
	case '-', '_':
		return Intent{Type: IntentScroll, Scroll: 1}, true
	case 'p', 'P':
		return Intent{Type: IntentToggleParticles}, true
	case 'r', 'R':
		return Intent{Type: IntentReset}, true
	case 'q', 'Q':
		return Intent{Type: IntentQuit}, true
	}
	return Intent{}, false
}

func mapMouse(e *tcell.EventMouse) (Intent, bool) {
	switch {
	case e.Buttons()&tcell.WheelUp != 0:
		return Intent{Type: IntentScroll, Scroll: -1}, true
	case e.Buttons()&tcell.WheelDown != 0:
		return Intent{Type: IntentScroll, Scroll: 1}, true
	}
	return Intent{}, false
}
