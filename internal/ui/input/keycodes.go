// Package input routes keyboard events from the host dispatcher and the
// content surface to popup actions.
package input

import (
	"fmt"
	"strings"
)

// Key is a normalized key identity shared by both input sources.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	default:
		return "Other"
	}
}

// Modifier is a normalized modifier bitmask.
type Modifier uint

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Chord is a decoded key press.
type Chord struct {
	Key  Key
	Mods Modifier
}

func (c Chord) String() string {
	prefix := ""
	if c.Mods&ModCtrl != 0 {
		prefix += "Ctrl+"
	}
	if c.Mods&ModAlt != 0 {
		prefix += "Alt+"
	}
	if c.Mods&ModShift != 0 {
		prefix += "Shift+"
	}
	if c.Mods&ModMeta != 0 {
		prefix += "Meta+"
	}
	return fmt.Sprintf("%s%s", prefix, c.Key)
}

// GDK keyvals and modifier masks as delivered by the host key controller.
const (
	HostKeyEscape   uint = 0xff1b
	HostKeyReturn   uint = 0xff0d
	HostKeyKPEnter  uint = 0xff8d
	HostKeyISOEnter uint = 0xfe34

	HostShiftMask   uint = 1 << 0
	HostLockMask    uint = 1 << 1
	HostControlMask uint = 1 << 2
	HostAltMask     uint = 1 << 3
	HostSuperMask   uint = 1 << 26
	HostHyperMask   uint = 1 << 27
	HostMetaMask    uint = 1 << 28
)

// DOM keyCode values and the modifier bits the content bridge packs.
const (
	ContentKeyEnter  uint = 13
	ContentKeyEscape uint = 27

	ContentShiftBit uint = 1 << 0
	ContentCtrlBit  uint = 1 << 1
	ContentAltBit   uint = 1 << 2
	ContentMetaBit  uint = 1 << 3
)

// DecodeHost normalizes a GDK keyval and modifier state. Lock-style bits
// (Caps Lock, Num Lock) and pointer button bits are dropped.
func DecodeHost(keyval, state uint) Chord {
	var key Key
	switch keyval {
	case HostKeyEscape:
		key = KeyEscape
	case HostKeyReturn, HostKeyKPEnter, HostKeyISOEnter:
		key = KeyEnter
	default:
		key = KeyOther
	}

	var mods Modifier
	if state&HostShiftMask != 0 {
		mods |= ModShift
	}
	if state&HostControlMask != 0 {
		mods |= ModCtrl
	}
	if state&HostAltMask != 0 {
		mods |= ModAlt
	}
	if state&(HostSuperMask|HostHyperMask|HostMetaMask) != 0 {
		mods |= ModMeta
	}
	return Chord{Key: key, Mods: mods}
}

// DecodeContent normalizes a DOM keyCode and the content bridge modifier bits.
func DecodeContent(keyCode, modifiers uint) Chord {
	var key Key
	switch keyCode {
	case ContentKeyEscape:
		key = KeyEscape
	case ContentKeyEnter:
		key = KeyEnter
	default:
		key = KeyOther
	}

	var mods Modifier
	if modifiers&ContentShiftBit != 0 {
		mods |= ModShift
	}
	if modifiers&ContentCtrlBit != 0 {
		mods |= ModCtrl
	}
	if modifiers&ContentAltBit != 0 {
		mods |= ModAlt
	}
	if modifiers&ContentMetaBit != 0 {
		mods |= ModMeta
	}
	return Chord{Key: key, Mods: mods}
}

// EncodeHost is the inverse of DecodeHost for simulated hosts.
// KeyOther encodes to the GDK "a" keyval.
func EncodeHost(c Chord) (keyval, state uint) {
	switch c.Key {
	case KeyEscape:
		keyval = HostKeyEscape
	case KeyEnter:
		keyval = HostKeyReturn
	default:
		keyval = 0x61
	}
	if c.Mods&ModShift != 0 {
		state |= HostShiftMask
	}
	if c.Mods&ModCtrl != 0 {
		state |= HostControlMask
	}
	if c.Mods&ModAlt != 0 {
		state |= HostAltMask
	}
	if c.Mods&ModMeta != 0 {
		state |= HostMetaMask
	}
	return keyval, state
}

// EncodeContent is the inverse of DecodeContent. KeyOther encodes to "A" (65).
func EncodeContent(c Chord) (keyCode, modifiers uint) {
	switch c.Key {
	case KeyEscape:
		keyCode = ContentKeyEscape
	case KeyEnter:
		keyCode = ContentKeyEnter
	default:
		keyCode = 65
	}
	if c.Mods&ModShift != 0 {
		modifiers |= ContentShiftBit
	}
	if c.Mods&ModCtrl != 0 {
		modifiers |= ContentCtrlBit
	}
	if c.Mods&ModAlt != 0 {
		modifiers |= ContentAltBit
	}
	if c.Mods&ModMeta != 0 {
		modifiers |= ContentMetaBit
	}
	return keyCode, modifiers
}

// ParseChord parses names like "Escape", "alt+enter" or "Ctrl+Shift+A".
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	var c Chord
	for i, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if i < len(parts)-1 {
			switch name {
			case "shift":
				c.Mods |= ModShift
			case "ctrl", "control":
				c.Mods |= ModCtrl
			case "alt":
				c.Mods |= ModAlt
			case "meta", "super", "cmd":
				c.Mods |= ModMeta
			default:
				return Chord{}, fmt.Errorf("unknown modifier %q in %q", part, s)
			}
			continue
		}
		switch name {
		case "escape", "esc":
			c.Key = KeyEscape
		case "enter", "return":
			c.Key = KeyEnter
		case "":
			return Chord{}, fmt.Errorf("missing key in %q", s)
		default:
			c.Key = KeyOther
		}
	}
	return c, nil
}
