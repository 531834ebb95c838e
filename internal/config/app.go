package config

import "os"

func Port() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return port
	}
	return ":8080"
}

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the rotating log file path, empty when file logging is
// disabled.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
