package input

import "github.com/gdamore/tcell/v2"

// macOS virtual key codes (HIToolbox kVK_*) for an ANSI layout.
const (
	vkA            = 0x00
	vkS            = 0x01
	vkD            = 0x02
	vkF            = 0x03
	vkH            = 0x04
	vkG            = 0x05
	vkZ            = 0x06
	vkX            = 0x07
	vkC            = 0x08
	vkV            = 0x09
	vkB            = 0x0B
	vkQ            = 0x0C
	vkW            = 0x0D
	vkE            = 0x0E
	vkR            = 0x0F
	vkY            = 0x10
	vkT            = 0x11
	vk1            = 0x12
	vk2            = 0x13
	vk3            = 0x14
	vk4            = 0x15
	vk6            = 0x16
	vk5            = 0x17
	vkEqual        = 0x18
	vk9            = 0x19
	vk7            = 0x1A
	vkMinus        = 0x1B
	vk8            = 0x1C
	vk0            = 0x1D
	vkRightBracket = 0x1E
	vkO            = 0x1F
	vkU            = 0x20
	vkLeftBracket  = 0x21
	vkI            = 0x22
	vkP            = 0x23
	vkReturn       = 0x24
	vkL            = 0x25
	vkJ            = 0x26
	vkQuote        = 0x27
	vkK            = 0x28
	vkSemicolon    = 0x29
	vkBackslash    = 0x2A
	vkComma        = 0x2B
	vkSlash        = 0x2C
	vkN            = 0x2D
	vkM            = 0x2E
	vkPeriod       = 0x2F
	vkTab          = 0x30
	vkSpace        = 0x31
	vkGrave        = 0x32
	vkDelete       = 0x33
	vkEscape       = 0x35
	vkF5           = 0x60
	vkF6           = 0x61
	vkF7           = 0x62
	vkF3           = 0x63
	vkF8           = 0x64
	vkF9           = 0x65
	vkF11          = 0x67
	vkF10          = 0x6D
	vkF12          = 0x6F
	vkHome         = 0x73
	vkPageUp       = 0x74
	vkForwardDel   = 0x75
	vkF4           = 0x76
	vkEnd          = 0x77
	vkF2           = 0x78
	vkPageDown     = 0x79
	vkF1           = 0x7A
	vkLeftArrow    = 0x7B
	vkRightArrow   = 0x7C
	vkDownArrow    = 0x7D
	vkUpArrow      = 0x7E
)

var runeKeys = map[int64]rune{
	vkA: 'a', vkB: 'b', vkC: 'c', vkD: 'd', vkE: 'e', vkF: 'f', vkG: 'g',
	vkH: 'h', vkI: 'i', vkJ: 'j', vkK: 'k', vkL: 'l', vkM: 'm', vkN: 'n',
	vkO: 'o', vkP: 'p', vkQ: 'q', vkR: 'r', vkS: 's', vkT: 't', vkU: 'u',
	vkV: 'v', vkW: 'w', vkX: 'x', vkY: 'y', vkZ: 'z',

	vk0: '0', vk1: '1', vk2: '2', vk3: '3', vk4: '4',
	vk5: '5', vk6: '6', vk7: '7', vk8: '8', vk9: '9',

	vkEqual: '=', vkMinus: '-', vkLeftBracket: '[', vkRightBracket: ']',
	vkQuote: '\'', vkSemicolon: ';', vkBackslash: '\\', vkComma: ',',
	vkSlash: '/', vkPeriod: '.', vkGrave: '`', vkSpace: ' ',
}

var namedKeys = map[int64]tcell.Key{
	vkReturn:     tcell.KeyEnter,
	vkTab:        tcell.KeyTab,
	vkDelete:     tcell.KeyBackspace2,
	vkEscape:     tcell.KeyEscape,
	vkForwardDel: tcell.KeyDelete,
	vkHome:       tcell.KeyHome,
	vkEnd:        tcell.KeyEnd,
	vkPageUp:     tcell.KeyPgUp,
	vkPageDown:   tcell.KeyPgDn,
	vkLeftArrow:  tcell.KeyLeft,
	vkRightArrow: tcell.KeyRight,
	vkDownArrow:  tcell.KeyDown,
	vkUpArrow:    tcell.KeyUp,
	vkF1:         tcell.KeyF1,
	vkF2:         tcell.KeyF2,
	vkF3:         tcell.KeyF3,
	vkF4:         tcell.KeyF4,
	vkF5:         tcell.KeyF5,
	vkF6:         tcell.KeyF6,
	vkF7:         tcell.KeyF7,
	vkF8:         tcell.KeyF8,
	vkF9:         tcell.KeyF9,
	vkF10:        tcell.KeyF10,
	vkF11:        tcell.KeyF11,
	vkF12:        tcell.KeyF12,
}

// Resolve maps a raw virtual key code to a key event. Codes outside the
// table resolve to tcell.KeyNUL.
func Resolve(code int64) *tcell.EventKey {
	if r, ok := runeKeys[code]; ok {
		return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
	}
	if k, ok := namedKeys[code]; ok {
		return tcell.NewEventKey(k, 0, tcell.ModNone)
	}
	return tcell.NewEventKey(tcell.KeyNUL, 0, tcell.ModNone)
}

// Recognized reports whether ev came from a code in the table.
func Recognized(ev *tcell.EventKey) bool {
	return ev != nil && ev.Key() != tcell.KeyNUL
}

// KeyName returns a printable label for logs.
func KeyName(ev *tcell.EventKey) string {
	if !Recognized(ev) {
		return "unrecognized"
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	}
	return ev.Name()
}
