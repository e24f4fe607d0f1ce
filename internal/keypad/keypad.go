// Package keypad implements the 16 key hexadecimal CHIP-8 keypad.
//
// The original COSMAC VIP keypad layout:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package keypad

// Keys is the number of keys on the keypad.
const Keys = 16

// Layout lists the key values of the keypad in row major order, it maps the
// keypad onto the 4x4 block of a keyboard starting at the 1 key.
var Layout = [Keys]uint8{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// Keypad holds the pressed state of every key. It additionally latches the
// most recent key that transitioned from released to pressed, which is what
// the key wait instruction consumes.
type Keypad struct {
	pressed [Keys]bool

	latched    uint8
	hasLatched bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// Set updates the state of a single key, only the low nibble of the index
// is used.
func (k *Keypad) Set(index uint8, pressed bool) {
	index &= 0x0F
	if pressed && !k.pressed[index] {
		k.latched = index
		k.hasLatched = true
	}
	k.pressed[index] = pressed
}

// Pressed returns whether the key with the low nibble of index is held down.
func (k *Keypad) Pressed(index uint8) bool {
	return k.pressed[index&0x0F]
}

// Arm discards any previously latched key press so that only presses that
// happen afterwards are reported by TakePress.
func (k *Keypad) Arm() {
	k.hasLatched = false
}

// TakePress returns and consumes the latched key press.
func (k *Keypad) TakePress() (uint8, bool) {
	if !k.hasLatched {
		return 0, false
	}
	k.hasLatched = false
	return k.latched, true
}

// Reset releases all keys and drops the latched press.
func (k *Keypad) Reset() {
	*k = Keypad{}
}
