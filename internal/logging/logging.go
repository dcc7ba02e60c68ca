package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ksaito/order-payment-gateway/internal/env"
)

// New returns the service root logger. Production gets plain JSON lines,
// development gets the console writer.
func New(service string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(out).With().Timestamp().Str("service", service).Logger()
}
