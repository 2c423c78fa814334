// Package config holds the mazed server configuration, read from a
// JSON file at startup.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil
	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	Mode     string `json:"mode"`
	Addr     string `json:"addr"`
	LogFile  string `json:"log_file"`
	TickRate int    `json:"tick_rate"`

	// WriteWait bounds a single websocket frame write.
	WriteWait Duration `json:"write_wait"`
}

func Default() Config {
	return Config{
		Mode:      "development",
		Addr:      ":8080",
		TickRate:  60,
		WriteWait: Duration{10 * time.Second},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":       c.Mode,
		"addr":       c.Addr,
		"log_file":   c.LogFile,
		"tick_rate":  c.TickRate,
		"write_wait": c.WriteWait.Duration.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func Read(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, config)
}
