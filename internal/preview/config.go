package preview

import "time"

// Config holds preview server configuration.
type Config struct {
	Addr            string        `env:"PREVIEW_ADDR" envDefault:":3000"`
	ShutdownTimeout time.Duration `env:"PREVIEW_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
