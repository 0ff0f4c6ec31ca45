package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr            string
	Async           bool
	ShutdownTimeout time.Duration
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("SHIPNOTE_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "async",
			Usage:       "Acknowledge webhooks before the release delta is resolved",
			Value:       true,
			Destination: &c.Async,
			Sources:     cli.EnvVars("SHIPNOTE_ASYNC"),
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Time to wait for in-flight requests and jobs on shutdown",
			Value:       30 * time.Second,
			Destination: &c.ShutdownTimeout,
			Sources:     cli.EnvVars("SHIPNOTE_SHUTDOWN_TIMEOUT"),
		},
	}
}
