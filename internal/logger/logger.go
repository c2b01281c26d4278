package logger

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logger. Development keeps the text
// formatter; any other environment logs JSON.
func Setup(env, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetOutput(os.Stdout)
	log.SetLevel(lvl)

	if env == "development" {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}

	return nil
}
