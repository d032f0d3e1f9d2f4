package client

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type loggingClient struct {
	logger zerolog.Logger
	client Client
}

// WithLoggingClient wraps client so that every call is logged
func WithLoggingClient(logger zerolog.Logger, client Client) Client {
	return loggingClient{logger.With().Str("component", "greeting_client").Logger(), client}
}

func (lc loggingClient) Hello(ctx context.Context, name string) (msg string, err error) {
	defer func(begin time.Time) {
		event := lc.logger.Debug()
		if err != nil {
			event = lc.logger.Warn().Err(err)
		}
		event.
			Str("method", "Hello").
			Str("name", name).
			Dur("took", time.Since(begin)).
			Msg("call")
	}(time.Now())

	return lc.client.Hello(ctx, name)
}
