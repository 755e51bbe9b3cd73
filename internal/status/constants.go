// internal/status/constants.go
package status

// Device Status Block layout, as published by a modbus-replicator status
// memory. The watcher only ever reads it.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per device block.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

const (
	SlotHealthCode     = 0
	SlotLastErrorCode  = 1
	SlotSecondsInError = 2
)

// ---- DEVICE NAME ----

// Device name lives at the end of the block: 8 registers, 2 ASCII bytes each.
const (
	SlotDeviceNameStart = 11
	SlotDeviceNameSlots = 8
	DeviceNameMaxChars  = 16
)

// ---- HEALTH CODES ----

const (
	HealthUnknown  uint16 = 0 // boot state, nothing polled yet
	HealthOK       uint16 = 1
	HealthError    uint16 = 2
	HealthStale    uint16 = 3
	HealthDisabled uint16 = 4
)
