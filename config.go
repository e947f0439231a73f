package buddha

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// ParseConfig decodes a JSON configuration bundle. The decoded config is
// validated before it is returned.
//
// Example document:
//
//	{
//	  "viewport": {
//	    "real_min": -2, "real_max": 1,
//	    "imag_min": -1.5, "imag_max": 1.5,
//	    "width_px": 1024, "height_px": 1024
//	  },
//	  "thresholds": [
//	    {"max_iterations": 64,   "weights": {"b": 1}},
//	    {"max_iterations": 256,  "weights": {"r": 1}},
//	    {"max_iterations": 4096, "weights": {"g": 1}}
//	  ],
//	  "sample_count": 100000000,
//	  "random_seed": 42,
//	  "normalization": "log"
//	}
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("buddha: decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("buddha: reading config: %w", err)
	}
	return ParseConfig(data)
}

// MarshalConfig encodes a configuration bundle to indented JSON, the
// inverse of ParseConfig. Useful for writing out the effective
// configuration of a render next to its output.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := sonic.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("buddha: encoding config: %w", err)
	}
	return data, nil
}
