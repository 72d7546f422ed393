package main

import (
	"net/http"
	"os"
)

func main() {
	// Probes the service's own health endpoint on the internal port.
	resp, err := http.Get("http://localhost:8080/health")
	if err != nil || resp.StatusCode != http.StatusOK {
		os.Exit(1) // Docker marks as UNHEALTHY
	}
	os.Exit(0) // Docker marks as HEALTHY
}
