// internal/config/config.go
package config

type Config struct {
	Anybar AnybarConfig `yaml:"anybar"`
}

type AnybarConfig struct {
	// Port of the AnyBar instance. Missing => 1738 after Normalize.
	Port *int `yaml:"port"`

	Sequence *SequenceConfig `yaml:"sequence"`
	Watch    *WatchConfig    `yaml:"watch"`
}

// ---- SEQUENCE ----

type SequenceConfig struct {
	Loops     int          `yaml:"loops"` // 0 = until cancelled
	QuitAtEnd bool         `yaml:"quit_at_end"`
	Steps     []StepConfig `yaml:"steps"`
}

type StepConfig struct {
	Color  string `yaml:"color"`
	HoldMs int    `yaml:"hold_ms"`
}

// ---- WATCH ----

// WatchConfig points at one device status block in Modbus memory.
type WatchConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`

	// Palette overrides, health name -> color name.
	Palette map[string]string `yaml:"palette"`
}
