package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine-only preferences (window size, debug overlays,
// solver tuning). Persisted across runs; scene content lives in scene files.
type EnginePrefs struct {
	WindowWidth      int32   `json:"window_width"`
	WindowHeight     int32   `json:"window_height"`
	ShowFPS          bool    `json:"show_fps"`
	ShowContacts     bool    `json:"show_contacts"`
	SolverIterations int     `json:"solver_iterations"`
	CorrectionSlop   float32 `json:"correction_slop"`
	CorrectionFactor float32 `json:"correction_factor"`
}

// Default returns default engine preferences: an 800x600 window, overlays
// off, 4 solver iterations and the stock positional-correction tuning.
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:      800,
		WindowHeight:     600,
		ShowFPS:          false,
		ShowContacts:     false,
		SolverIterations: 4,
		CorrectionSlop:   0.01,
		CorrectionFactor: 0.4,
	}
}

// Load reads engine preferences from config/engine.json. If the file is
// missing or invalid, returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p EnginePrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.SolverIterations < 1 {
		p.SolverIterations = Default().SolverIterations
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config
// directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
