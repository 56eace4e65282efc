// Package metered counts messages passing through a channel.
package metered

import (
	"context"
	"strconv"

	"github.com/indigo-web/respond/transport"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a set of collectors shared between all wrapped channels.
type Metrics struct {
	messages *prometheus.CounterVec
	bytes    prometheus.Counter
	errors   *prometheus.CounterVec
	started  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them. A nil registerer leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respond",
			Name:      "messages_total",
			Help:      "Messages successfully sent, by kind.",
		}, []string{"kind"}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "respond",
			Name:      "body_bytes_total",
			Help:      "Body bytes successfully sent.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respond",
			Name:      "send_errors_total",
			Help:      "Messages the underlying channel failed to send, by kind.",
		}, []string{"kind"}),
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "respond",
			Name:      "responses_total",
			Help:      "Responses started, by status code.",
		}, []string{"code"}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.messages, m.bytes, m.errors, m.started} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Wrap returns a channel that records every message into the metrics before passing it
// down to the next channel.
func Wrap(next transport.Channel, m *Metrics) transport.Channel {
	return transport.ChannelFunc(func(ctx context.Context, msg transport.Message) error {
		kind := msg.Kind.String()
		if err := next.Send(ctx, msg); err != nil {
			m.errors.WithLabelValues(kind).Inc()
			return err
		}

		m.messages.WithLabelValues(kind).Inc()
		switch msg.Kind {
		case transport.ResponseStart:
			m.started.WithLabelValues(strconv.Itoa(int(msg.Code))).Inc()
		case transport.ResponseBody:
			m.bytes.Add(float64(len(msg.Body)))
		}

		return nil
	})
}
