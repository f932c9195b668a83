package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-data-dir application data directory
//	-db journal database file path
//	-prefs preference file path
//	-auth-url remote auth service base URL
//	-auth-timeout auth request timeout (e.g., "30s", "1m")
//	-reminder-hour local hour for the daily journal reminder (0-23)
//	-c/-config json file path with configs
func ParseFlags() (*Config, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*Config, error) {
	var dataDir string
	var dbPath string
	var prefsPath string
	var authBaseURL string
	var authTimeout time.Duration
	var reminderHour int
	var jsonConfigPath string

	fs := flag.NewFlagSet("moodlog", flag.ContinueOnError)
	fs.StringVar(&dataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&dbPath, "db", "", "Journal database file path")
	fs.StringVar(&prefsPath, "prefs", "", "Preference file path")
	fs.StringVar(&authBaseURL, "auth-url", "", "Remote auth service base URL")
	fs.DurationVar(&authTimeout, "auth-timeout", 0, "Auth request timeout (e.g., 30s, 1m)")
	fs.IntVar(&reminderHour, "reminder-hour", 0, "Daily reminder hour (0-23)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			DataDir:      dataDir,
			ReminderHour: reminderHour,
		},
		Storage: Storage{
			DB: DB{
				Path: dbPath,
			},
			Prefs: Prefs{
				Path: prefsPath,
			},
		},
		Auth: Auth{
			BaseURL: authBaseURL,
			Timeout: authTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
