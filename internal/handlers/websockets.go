package handlers

import (
	"context"
	"strconv"
	"time"

	"ilo_monitor/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamIdleTimeout  = time.Minute
	streamPingEvery    = streamIdleTimeout * 9 / 10
	streamReadLimit    = 4 << 10

	streamDefaultEvery = time.Second
	streamMaxEvery     = 10 * time.Second

	wsTypeState = "state"
	wsTypeError = "error"
)

// wsEnvelope is the only message shape the stream writes.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// A nil CheckOrigin makes gorilla reject cross-origin browser upgrades;
// clients that send no Origin header (CLIs, scripts) are accepted.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// stateStream pushes server snapshots to one websocket client.
type stateStream struct {
	h     *Handler
	conn  *websocket.Conn
	every time.Duration
	log   *logger.Logger
}

// @Summary      Snapshot stream
// @Description  WebSocket. Writes {"type":"state","data":ServerState} immediately and then every interval (default 1s, max 10s).
// @Tags         monitor
// @Param        interval     query  string  false  "Go duration, e.g. 2s"
// @Param        interval_ms  query  int     false  "Milliseconds"
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	every := streamInterval(c.Query("interval"), c.Query("interval_ms"))
	log := h.log
	if log == nil {
		log = logger.Nop()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnw("ws_upgrade_failed", "remote", c.ClientIP(), "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	s := &stateStream{h: h, conn: conn, every: every, log: log}
	s.run(c.Request.Context())
}

// streamInterval picks the push period from ?interval (a Go duration) or,
// failing that, ?interval_ms. Out-of-range or malformed values fall back
// to the default.
func streamInterval(dur, ms string) time.Duration {
	inRange := func(d time.Duration) bool { return d > 0 && d <= streamMaxEvery }

	if d, err := time.ParseDuration(dur); err == nil && inRange(d) {
		return d
	}
	if n, err := strconv.Atoi(ms); err == nil && inRange(time.Duration(n)*time.Millisecond) {
		return time.Duration(n) * time.Millisecond
	}
	return streamDefaultEvery
}

func (s *stateStream) run(ctx context.Context) {
	s.conn.SetReadLimit(streamReadLimit)
	s.extendRead()
	s.conn.SetPongHandler(func(string) error { s.extendRead(); return nil })

	gone := s.drain()

	if err := s.push(ctx); err != nil {
		s.log.Infow("ws_initial_push_failed", "err", err)
		return
	}

	push := time.NewTicker(s.every)
	defer push.Stop()
	ping := time.NewTicker(streamPingEvery)
	defer ping.Stop()

	for {
		var err error
		select {
		case <-gone:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			err = s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteTimeout))
		case <-push.C:
			err = s.push(ctx)
		}
		if err != nil {
			s.log.Infow("ws_write_failed", "err", err)
			return
		}
	}
}

func (s *stateStream) extendRead() {
	_ = s.conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
}

// drain reads until the client goes away so control frames get processed.
// The returned channel closes on the first read error.
func (s *stateStream) drain() <-chan struct{} {
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := s.conn.NextReader(); err != nil {
				s.log.Debugw("ws_client_gone", "err", err)
				return
			}
		}
	}()
	return gone
}

// push writes the latest snapshot. When it cannot be loaded the client gets
// an error envelope and a close frame, and the error is returned.
func (s *stateStream) push(ctx context.Context) error {
	st, err := s.h.services.Monitoring.GetState(ctx)
	_ = s.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	if err == nil {
		return s.conn.WriteJSON(wsEnvelope{Type: wsTypeState, Data: st})
	}

	s.log.Errorw("ws_get_state_failed", "err", err)
	_ = s.conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errGetState})
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseInternalServerErr, errGetState),
		time.Now().Add(streamWriteTimeout))
	return err
}
