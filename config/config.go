package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the crop tool. Fields may be loaded
// from a JSON file and are persisted back when the user confirms a crop.
type Config struct {
	Debug bool `json:"debug"`

	// Output encoding
	JPEGQuality  int    `json:"jpeg_quality"`
	ExportFormat string `json:"export_format"` // jpeg, png or webp
	ExportDir    string `json:"export_dir"`

	// Viewing area the displayed image is fitted into
	ViewWidth  int `json:"view_width"`
	ViewHeight int `json:"view_height"`

	// Page-scale correction override; 0 means autodetect
	DisplayScale float64 `json:"display_scale"`

	// Last confirmed selection, restored on the next session
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		JPEGQuality:  95,
		ExportFormat: "jpeg",
		ExportDir:    "crops",
		ViewWidth:    900,
		ViewHeight:   600,
		DisplayScale: 0,
		SelectionX:   0,
		SelectionY:   0,
		SelectionW:   0,
		SelectionH:   0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		c.JPEGQuality = 95
	}
	switch c.ExportFormat {
	case "jpeg", "png", "webp":
	default:
		c.ExportFormat = "jpeg"
	}
	if c.ExportDir == "" {
		c.ExportDir = "crops"
	}
	if c.ViewWidth < 100 {
		c.ViewWidth = 900
	}
	if c.ViewHeight < 100 {
		c.ViewHeight = 600
	}
	if c.DisplayScale < 0 || c.DisplayScale > 8 {
		c.DisplayScale = 0
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
