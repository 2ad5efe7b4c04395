package env

import (
	"os"
)

// PodName is set when running inside a cluster, empty for local cli runs
func PodName() string {
	return os.Getenv("PODNAME")
}

// AppName example: swapctl
func AppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return "xionmarket"
}
