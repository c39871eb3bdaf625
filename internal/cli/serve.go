package cli

import (
	"fmt"
	"net/http"

	"github.com/instalens/instalens/internal/server"
)

// Execute implements the go-flags Commander interface for ServeCommand.
func (c *ServeCommand) Execute(args []string) error {
	ds, cfg, err := loadDataset(c.globals)
	if err != nil {
		return err
	}

	host := cfg.Server.Host
	if c.Host != "" {
		host = c.Host
	}
	port := cfg.Server.Port
	if c.Port != 0 {
		port = c.Port
	}

	verbose := c.globals != nil && c.globals.Verbose
	log := newLogger(cfg.Logging.Level, verbose)

	srv := server.New(ds, log)
	addr := fmt.Sprintf("%s:%d", host, port)
	log.Info().Str("addr", addr).Msg("serving dashboard API")

	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
