package server

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
)

// DefaultAddr is the fixed listen address: port 8000 on all interfaces.
const DefaultAddr = ":8000"

// ErrNoRoot is returned by New when neither Root nor Fs is set.
var ErrNoRoot = errors.New("server: no root directory configured")

// Config describes a single static file server.
type Config struct {
	Addr string
	// Root is the served directory. Only used to build Fs when Fs is nil,
	// and for the startup line.
	Root string
	// Fs overrides the filesystem the server reads from. Defaults to a
	// read-only view of Root on disk.
	Fs afero.Fs

	ContentTypes map[string]string

	Out    io.Writer
	Logger *slog.Logger
}

// DefaultConfig returns the config used by the devserve command.
func DefaultConfig(root string) Config {
	return Config{
		Addr:         DefaultAddr,
		Root:         root,
		ContentTypes: DefaultOverrides(),
		Out:          os.Stdout,
		Logger:       slog.Default(),
	}
}

func (c Config) filesystem() (afero.Fs, error) {
	if c.Fs != nil {
		return c.Fs, nil
	}
	if c.Root == "" {
		return nil, ErrNoRoot
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), c.Root)), nil
}
