package app

import "github.com/katalvlaran/fareroute/config"

// Logger defines the logging operations the application needs.
//
//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}

// NetworkLoader loads a fare network. An empty path selects the built-in sample.
type NetworkLoader interface {
	Load(path string) (*config.Network, error)
}
