package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jacsander/google-ads-mcp-server/internal/mcp"
)

// handleJSONRPC serves the sessionless JSON-RPC endpoints. The root path
// and /messages behave identically; /messages exists for clients that
// learned the path from the event stream.
func (s *Service) handleJSONRPC(c *gin.Context) {
	var req mcp.Request

	// Last line of defense. The dispatcher contains its own failures, so
	// this only fires on transport-level surprises. The id is echoed when
	// parsing got far enough to recover it.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("request handling panic")
			var id interface{}
			if req.HasID() {
				id = req.ID
			}
			c.JSON(http.StatusInternalServerError, mcp.NewErrorResponseData(id, mcp.ErrInternalError.Code, fmt.Errorf("%v", r), mcp.M{
				"error_type":    fmt.Sprintf("%T", r),
				"error_details": fmt.Sprint(r),
			}))
		}
	}()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, mcp.NewErrorResponseData(nil, mcp.ErrInternalError.Code, err, mcp.M{
			"error_type":    fmt.Sprintf("%T", err),
			"error_details": err.Error(),
		}))
		return
	}

	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, mcp.NewErrorResponse(nil, mcp.ErrParseError.Code, errors.New(mcp.ErrParseError.Message)))
		return
	}

	resp := s.mcp.Dispatch(c.Request.Context(), &req)
	if resp == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleSSE serves a one-way event stream: a connection notice, then
// keep-alive comments until the client goes away. Requests themselves
// travel over POST.
func (s *Service) handleSSE(c *gin.Context) {
	w := mcp.NewSSEWriter(c)
	if err := w.WriteJSON(mcp.NewConnectionEvent()); err != nil {
		log.Debug().Err(err).Msg("sse client gone before the first event")
		return
	}
	w.KeepAlive()
}
