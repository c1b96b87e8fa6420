package instance

import "os"

// GetID returns the process identifier attached to api logs: the dyno name on
// Heroku-style platforms, the container hostname otherwise.
func GetID() string {
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	if host := os.Getenv("HOSTNAME"); host != "" {
		return host
	}
	return "local"
}
