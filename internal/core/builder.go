package core

import (
	"io"

	"cmdsrv/config"
	"cmdsrv/internal/capability"
	"cmdsrv/internal/command"
	"cmdsrv/internal/metrics"
	"cmdsrv/internal/transport"
	"cmdsrv/util"
)

// Build constructs the server from the given configuration.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proc, err := command.NewProcessor(cfg.Root, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Root != "" {
		logger.Verbose("command files confined to %s", cfg.Root)
	} else {
		logger.Verbose("no --root set: clients may name any readable file")
	}

	collector := metrics.New()
	return &ServeMode{
		Listener: &transport.TCPListener{
			Port:    cfg.Port,
			Backlog: cfg.Backlog,
		},
		Timeout: cfg.Timeout,
		Capability: &capability.CommandFile{
			Processor: proc,
			Metrics:   collector,
		},
		Metrics:   collector,
		Logger:    logger,
		Resources: []io.Closer{proc},
	}, nil
}
