// internal/status/snapshot.go
package status

// Snapshot is one decoded device status block.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16
	DeviceName     string
}
