package mcp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	SSEKeepAliveIntervalS = 30
	SSEContentType        = "text/event-stream; charset=utf-8"
)

// ConnectionEvent is the first event emitted on the event stream. The
// stream is a degraded substitute for duplex transport, so the event
// steers clients to the synchronous POST endpoint.
//
//	data: {"type":"connection","status":"connected","note":"Use POST /messages for requests"}
type ConnectionEvent struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

func NewConnectionEvent() ConnectionEvent {
	return ConnectionEvent{
		Type:   "connection",
		Status: "connected",
		Note:   "Use POST /messages for requests",
	}
}

type SSEWriter struct {
	c *gin.Context
}

func NewSSEWriter(c *gin.Context) *SSEWriter {
	c.Writer.Header().Set("Content-Type", SSEContentType)
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	return &SSEWriter{c: c}
}

// WriteData emits a bare data event.
func (w *SSEWriter) WriteData(data string) error {
	if _, err := w.c.Writer.WriteString(fmt.Sprintf("data: %s\n\n", data)); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}

// WriteJSON marshals v and emits it as a data event.
func (w *SSEWriter) WriteJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteData(string(b))
}

// KeepAlive blocks, emitting comment lines on a fixed interval until the
// client disconnects. A failed write produces one JSON-RPC error event,
// then the stream ends.
func (w *SSEWriter) KeepAlive() {
	for {
		select {
		case <-time.After(time.Second * SSEKeepAliveIntervalS):
			if err := w.writeKeepAlive(); err != nil {
				w.WriteJSON(NewErrorResponse(nil, ErrInternalError.Code, err))
				return
			}
		case <-w.c.Request.Context().Done():
			return
		}
	}
}

// writeKeepAlive
// : keepalive
func (w *SSEWriter) writeKeepAlive() error {
	if _, err := w.c.Writer.WriteString(": keepalive\n\n"); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}
