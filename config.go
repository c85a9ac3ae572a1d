package seatalloc

import (
	"fmt"
	"time"
)

// EnergyConfig controls device counting and per-device consumption rates
// used by the zone energy optimizer.
//
// Device counts per occupied zone are derived from the occupant count:
// one monitor and one desktop per occupant, one router per zone, one light
// circuit per SeatsPerLightCircuit occupants (rounded up) and one AC vent
// per SeatsPerACVent occupants (rounded up). Derived counts never exceed
// what the zone's capacity would require.
type EnergyConfig struct {
	// SeatsPerLightCircuit is how many seats one light circuit covers.
	SeatsPerLightCircuit int `yaml:"seatsPerLightCircuit"`

	// SeatsPerACVent is how many seats one AC vent covers.
	SeatsPerACVent int `yaml:"seatsPerAcVent"`

	// LightWatts is the draw of one light circuit.
	LightWatts float64 `yaml:"lightWatts"`

	// RouterWatts is the draw of the zone router.
	RouterWatts float64 `yaml:"routerWatts"`

	// MonitorWatts is the draw of one monitor.
	MonitorWatts float64 `yaml:"monitorWatts"`

	// DesktopWatts is the draw of one desktop.
	DesktopWatts float64 `yaml:"desktopWatts"`

	// VentWatts is the draw of one AC vent.
	VentWatts float64 `yaml:"ventWatts"`
}

// Config is the configuration for the Engine.
//
// All duration fields accept standard Go duration strings like "500ms", "2s"
// when loaded from YAML.
type Config struct {
	// BatchSize is how many access events are collected before the batch is
	// ordered and processed. A partial batch is processed when the source
	// ends mid-batch.
	// Default: 2.
	BatchSize int `yaml:"batchSize"`

	// ZoneDepartmentCap is the maximum number of distinct departments a
	// single zone may host. Zones at the cap are excluded from a foreign
	// department's candidate set.
	// Default: 2.
	ZoneDepartmentCap int `yaml:"zoneDepartmentCap"`

	// NotifyTimeout bounds each assignment notification delivery. Notifier
	// failures are logged and reported through OnError; they never undo an
	// assignment.
	// Default: 500ms.
	NotifyTimeout time.Duration `yaml:"notifyTimeout"`

	// DispatchTimeout bounds each device command delivery. Dispatch
	// failures are logged and reported through OnError; the power-state
	// model remains authoritative.
	// Default: 2s.
	DispatchTimeout time.Duration `yaml:"dispatchTimeout"`

	// Energy controls device counting and consumption rates.
	Energy EnergyConfig `yaml:"energy"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		BatchSize:         2,
		ZoneDepartmentCap: 2,
		NotifyTimeout:     500 * time.Millisecond,
		DispatchTimeout:   2 * time.Second,
		Energy: EnergyConfig{
			SeatsPerLightCircuit: 10,
			SeatsPerACVent:       20,
			LightWatts:           100,
			RouterWatts:          20,
			MonitorWatts:         30,
			DesktopWatts:         150,
			VentWatts:            200,
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaults.BatchSize
	}
	if cfg.ZoneDepartmentCap == 0 {
		cfg.ZoneDepartmentCap = defaults.ZoneDepartmentCap
	}
	if cfg.NotifyTimeout == 0 {
		cfg.NotifyTimeout = defaults.NotifyTimeout
	}
	if cfg.DispatchTimeout == 0 {
		cfg.DispatchTimeout = defaults.DispatchTimeout
	}
	if cfg.Energy.SeatsPerLightCircuit == 0 {
		cfg.Energy.SeatsPerLightCircuit = defaults.Energy.SeatsPerLightCircuit
	}
	if cfg.Energy.SeatsPerACVent == 0 {
		cfg.Energy.SeatsPerACVent = defaults.Energy.SeatsPerACVent
	}
	if cfg.Energy.LightWatts == 0 {
		cfg.Energy.LightWatts = defaults.Energy.LightWatts
	}
	if cfg.Energy.RouterWatts == 0 {
		cfg.Energy.RouterWatts = defaults.Energy.RouterWatts
	}
	if cfg.Energy.MonitorWatts == 0 {
		cfg.Energy.MonitorWatts = defaults.Energy.MonitorWatts
	}
	if cfg.Energy.DesktopWatts == 0 {
		cfg.Energy.DesktopWatts = defaults.Energy.DesktopWatts
	}
	if cfg.Energy.VentWatts == 0 {
		cfg.Energy.VentWatts = defaults.Energy.VentWatts
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - BatchSize >= 1 (batches must make progress)
//   - ZoneDepartmentCap >= 1 (a zone must be able to host its first department)
//   - NotifyTimeout > 0 and DispatchTimeout > 0 (side effects must be bounded)
//   - Energy coverage values >= 1 and watt rates >= 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.BatchSize < 1 {
		return fmt.Errorf("BatchSize must be >= 1, got %d", cfg.BatchSize)
	}

	if cfg.ZoneDepartmentCap < 1 {
		return fmt.Errorf("ZoneDepartmentCap must be >= 1, got %d", cfg.ZoneDepartmentCap)
	}

	if cfg.NotifyTimeout <= 0 {
		return fmt.Errorf("NotifyTimeout must be > 0, got %v", cfg.NotifyTimeout)
	}

	if cfg.DispatchTimeout <= 0 {
		return fmt.Errorf("DispatchTimeout must be > 0, got %v", cfg.DispatchTimeout)
	}

	if cfg.Energy.SeatsPerLightCircuit < 1 {
		return fmt.Errorf("Energy.SeatsPerLightCircuit must be >= 1, got %d", cfg.Energy.SeatsPerLightCircuit)
	}

	if cfg.Energy.SeatsPerACVent < 1 {
		return fmt.Errorf("Energy.SeatsPerACVent must be >= 1, got %d", cfg.Energy.SeatsPerACVent)
	}

	for _, rate := range []struct {
		name  string
		watts float64
	}{
		{"LightWatts", cfg.Energy.LightWatts},
		{"RouterWatts", cfg.Energy.RouterWatts},
		{"MonitorWatts", cfg.Energy.MonitorWatts},
		{"DesktopWatts", cfg.Energy.DesktopWatts},
		{"VentWatts", cfg.Energy.VentWatts},
	} {
		if rate.watts < 0 {
			return fmt.Errorf("Energy.%s must be >= 0, got %v", rate.name, rate.watts)
		}
	}

	return nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Side-effect timeouts are much shorter than production defaults so tests
// that exercise failing notifiers or dispatchers stay fast. Use
// DefaultConfig() for production deployments.
//
// Returns:
//   - Config: Configuration with fast timings for tests
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.NotifyTimeout = 50 * time.Millisecond
	cfg.DispatchTimeout = 100 * time.Millisecond

	return cfg
}
