package options

import (
	"fmt"
	"strings"
)

// ShiftSource selects the register that SHR and SHL read their operand from.
type ShiftSource uint8

const (
	// ShiftVx shifts Vx in place, as CHIP-48 and SUPER-CHIP do.
	ShiftVx ShiftSource = iota
	// ShiftVy shifts Vy into Vx, as the original COSMAC VIP interpreter does.
	ShiftVy
)

// EdgeMode selects what happens to sprite pixels that cross the display edge.
type EdgeMode uint8

const (
	// EdgeWrap draws crossing pixels at the opposite edge.
	EdgeWrap EdgeMode = iota
	// EdgeClip drops crossing pixels.
	EdgeClip
)

// JumpRegister selects the register that BNNN adds to the jump address.
type JumpRegister uint8

const (
	// JumpV0 adds V0, as the original COSMAC VIP interpreter does.
	JumpV0 JumpRegister = iota
	// JumpVx adds Vx where x is the high nibble of the address, as CHIP-48 does.
	JumpVx
)

// Quirks configures the behavior of instructions whose semantics differ
// between historical CHIP-8 interpreters.
type Quirks struct {
	LoadOffset         uint16       // address the program image is loaded to and started at
	Shift              ShiftSource  // operand source of SHR and SHL
	StoreLoadIncrement bool         // Fx55 and Fx65 leave I incremented by x+1
	Draw               EdgeMode     // sprite behavior at the display edge
	AddIOverflow       bool         // Fx1E sets VF when I exceeds the address space
	Jump               JumpRegister // register added by BNNN
}

// DefaultQuirks returns the behavior of most modern interpreters.
func DefaultQuirks() Quirks {
	return Quirks{
		LoadOffset: 0x200,
		Shift:      ShiftVx,
		Draw:       EdgeWrap,
		Jump:       JumpV0,
	}
}

func (s ShiftSource) String() string {
	if s == ShiftVy {
		return "vy"
	}
	return "vx"
}

// ParseShiftSource parses "vx" or "vy".
func ParseShiftSource(s string) (ShiftSource, error) {
	switch strings.ToLower(s) {
	case "vx":
		return ShiftVx, nil
	case "vy":
		return ShiftVy, nil
	default:
		return 0, fmt.Errorf("unsupported shift source '%s', valid options: vx, vy", s)
	}
}

func (e EdgeMode) String() string {
	if e == EdgeClip {
		return "clip"
	}
	return "wrap"
}

// ParseEdgeMode parses "wrap" or "clip".
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(s) {
	case "wrap":
		return EdgeWrap, nil
	case "clip":
		return EdgeClip, nil
	default:
		return 0, fmt.Errorf("unsupported draw mode '%s', valid options: wrap, clip", s)
	}
}

func (j JumpRegister) String() string {
	if j == JumpVx {
		return "vx"
	}
	return "v0"
}

// ParseJumpRegister parses "v0" or "vx".
func ParseJumpRegister(s string) (JumpRegister, error) {
	switch strings.ToLower(s) {
	case "v0":
		return JumpV0, nil
	case "vx":
		return JumpVx, nil
	default:
		return 0, fmt.Errorf("unsupported jump register '%s', valid options: v0, vx", s)
	}
}

// ParseSwitch parses "on" or "off".
func ParseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported switch value '%s', valid options: on, off", s)
	}
}

// String returns a compact description of all quirk settings.
func (q Quirks) String() string {
	return fmt.Sprintf("offset=0x%03X shift=%s increment=%s draw=%s addi-overflow=%s jump=%s",
		q.LoadOffset, q.Shift, onOff(q.StoreLoadIncrement), q.Draw, onOff(q.AddIOverflow), q.Jump)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
