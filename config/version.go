package config

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/Klingon-tech/seedctl/config.Version=1.2.0"
var (
	Version = "0.1.0"
	Commit  = "unknown"
	Date    = "unknown"
)

// Project metadata.
const (
	Name        = "seedctl"
	Description = "Offline Bitcoin wallet generator from dice entropy"
	Repository  = "https://github.com/Klingon-tech/seedctl"
	Maintainer  = "Klingon-tech"
)

// VersionString returns "seedctl <version> (<commit> <date>)".
func VersionString() string {
	return fmt.Sprintf("%s %s (%s %s)", Name, Version, Commit, Date)
}
