package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	App struct {
		DataDir      string `json:"dataDir"`
		ReminderHour int    `json:"reminderHour"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`

		Prefs struct {
			Path string `json:"path"`
		} `json:"prefs,omitempty"`
	} `json:"storage,omitempty"`

	Auth struct {
		BaseURL string   `json:"baseUrl"`
		Timeout Duration `json:"timeout"`
	} `json:"auth,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			DataDir:      jsonCfg.App.DataDir,
			ReminderHour: jsonCfg.App.ReminderHour,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
			Prefs: Prefs{
				Path: jsonCfg.Storage.Prefs.Path,
			},
		},
		Auth: Auth{
			BaseURL: jsonCfg.Auth.BaseURL,
			Timeout: time.Duration(jsonCfg.Auth.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
