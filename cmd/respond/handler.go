package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/indigo-web/respond"
	"github.com/indigo-web/respond/config"
	"github.com/indigo-web/respond/fsys"
	"github.com/indigo-web/respond/http/status"
	"github.com/indigo-web/respond/transport"
	"github.com/indigo-web/respond/transport/metered"
	"github.com/indigo-web/respond/transport/nethttp"
	"github.com/indigo-web/respond/transport/throttle"
)

const indexFile = "index.html"

type handler struct {
	cfg     *config.Config
	root    fs.FS
	files   fsys.FS
	metrics *metered.Metrics
	logger  *slog.Logger
}

func newHandler(cfg *config.Config, root fs.FS, metrics *metered.Metrics, logger *slog.Logger) *handler {
	return &handler{
		cfg:     cfg,
		root:    root,
		files:   fsys.FromFS(root),
		metrics: metrics,
		logger:  logger,
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := h.respond(r)

	var ch transport.Channel = nethttp.New(w)
	ch = throttle.Wrap(ch, h.cfg.Server.BandwidthKBps*1024)
	ch = metered.Wrap(ch, h.metrics)
	ch = transport.NewGuard(ch)

	err := resp.Send(r.Context(), ch)
	attrs := []any{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", int(resp.Code())),
		slog.Duration("duration", time.Since(start)),
	}

	if err != nil {
		h.logger.Warn("response interrupted", append(attrs, slog.Any("error", err))...)
		return
	}

	h.logger.Info("served", attrs...)
}

// respond picks the response for the request. It never fails: problems are reported by
// plain text error responses.
func (h *handler) respond(r *http.Request) respond.Sender {
	if r.Method != http.MethodGet {
		return h.plain(status.MethodNotAllowed)
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(h.root, name)
	if err == nil && info.IsDir() {
		name = path.Join(name, indexFile)
		info, err = fs.Stat(h.root, name)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist), err == nil && info.IsDir():
		return h.plain(status.NotFound)
	case err != nil:
		h.logger.Error("stat failed", slog.String("name", name), slog.Any("error", err))
		return h.plain(status.InternalServerError)
	}

	opts := []respond.Option{
		respond.WithConfig(h.cfg),
		respond.WithFS(h.files),
		respond.WithStat(fsys.StatOf(info)),
	}
	if r.URL.Query().Has("download") {
		opts = append(opts, respond.WithFilename(path.Base(name)))
	}

	file, err := respond.NewFile(name, opts...)
	if err != nil {
		return h.plain(status.BadRequest)
	}

	return file
}

func (h *handler) plain(code status.Code) respond.Sender {
	resp, err := respond.PlainText(respond.Text(status.Text(code)), respond.WithCode(code))
	if err != nil {
		// status texts are always ASCII
		panic(err)
	}

	return resp
}
