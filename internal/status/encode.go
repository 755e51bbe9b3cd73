// internal/status/encode.go
package status

import (
	"fmt"
	"strings"
)

// Encode converts a Snapshot into a full device status block.
// Layout is protocol-locked. No IO.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsInError] = s.SecondsInError

	b := []byte(s.DeviceName)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}
	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		regs[SlotDeviceNameStart+i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return regs
}

// Decode is the inverse of Encode. regs must hold a whole block.
func Decode(regs []uint16) (Snapshot, error) {
	if len(regs) < SlotsPerDevice {
		return Snapshot{}, fmt.Errorf("status: short block: got %d registers, want %d", len(regs), SlotsPerDevice)
	}

	s := Snapshot{
		Health:         regs[SlotHealthCode],
		LastErrorCode:  regs[SlotLastErrorCode],
		SecondsInError: regs[SlotSecondsInError],
	}

	name := make([]byte, 0, DeviceNameMaxChars)
	for i := 0; i < SlotDeviceNameSlots; i++ {
		r := regs[SlotDeviceNameStart+i]
		name = append(name, byte(r>>8), byte(r))
	}
	// zero padded; non-printable bytes are replaced like the writer does
	for i := range name {
		if name[i] != 0 && (name[i] < 0x20 || name[i] > 0x7E) {
			name[i] = '?'
		}
	}
	s.DeviceName = strings.TrimRight(string(name), "\x00")

	return s, nil
}
