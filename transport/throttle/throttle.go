// Package throttle limits the bandwidth of body messages.
package throttle

import (
	"context"

	"github.com/indigo-web/respond/errors"
	"github.com/indigo-web/respond/transport"
	"golang.org/x/time/rate"
)

// ErrZeroBurst is returned for non-empty bodies if the limiter has finite rate but zero
// burst, therefore can never admit a single byte.
var ErrZeroBurst = errors.New("throttle: limiter burst must be positive")

// Wrap returns a channel delaying body messages so that no more than bytesPerSecond
// bytes are passed to the next channel per second. Non-positive limit disables
// the throttling.
func Wrap(next transport.Channel, bytesPerSecond int) transport.Channel {
	if bytesPerSecond <= 0 {
		return next
	}

	return WrapLimiter(next, rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond))
}

// WrapLimiter is like Wrap, but lets multiple channels share a single limiter, so that
// the limit applies to all of them combined.
func WrapLimiter(next transport.Channel, limiter *rate.Limiter) transport.Channel {
	return transport.ChannelFunc(func(ctx context.Context, msg transport.Message) error {
		if msg.Kind == transport.ResponseBody {
			if err := wait(ctx, limiter, len(msg.Body)); err != nil {
				return err
			}
		}

		return next.Send(ctx, msg)
	})
}

// wait reserves n tokens in portions not exceeding the burst, as WaitN rejects bigger ones.
func wait(ctx context.Context, limiter *rate.Limiter, n int) error {
	if n <= 0 || limiter.Limit() == rate.Inf {
		return nil
	}

	burst := limiter.Burst()
	if burst <= 0 {
		return ErrZeroBurst
	}

	for n > 0 {
		portion := min(n, burst)
		if err := limiter.WaitN(ctx, portion); err != nil {
			return err
		}

		n -= portion
	}

	return nil
}
