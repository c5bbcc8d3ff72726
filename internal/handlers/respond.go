package handlers

import (
	"context"
	"errors"
	"net/http"

	"ilo_monitor/internal/ribcl"
	"ilo_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK   = "ok"
	statusSent = "sent"

	errUnreachable   = "controller unreachable"
	errUndetermined  = "unable to determine controller state"
	errRejected      = "controller rejected the command"
	errTimedOut      = "controller request timed out"
	errControllerGen = "controller request failed"
	errGetState      = "failed to load state"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// controllerStatus maps a service or ribcl error onto an HTTP status and a
// message safe to show to the caller.
func controllerStatus(err error) (int, string) {
	var (
		te *ribcl.TransportError
		ce *ribcl.ControllerError
	)
	switch {
	case errors.Is(err, service.ErrUnknownAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errTimedOut
	case errors.As(err, &te):
		return http.StatusBadGateway, errUnreachable
	case errors.As(err, &ce):
		return http.StatusBadGateway, errRejected + ": " + ce.Message
	case errors.Is(err, ribcl.ErrNoFragment),
		errors.Is(err, ribcl.ErrElementMissing),
		errors.Is(err, service.ErrUIDUnreadable):
		return http.StatusBadGateway, errUndetermined
	default:
		return http.StatusInternalServerError, errControllerGen
	}
}

func (h *Handler) controllerError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code, msg := controllerStatus(err)
	h.logAndJSONError(c, code, msg, logKey, err, kv...)
}
