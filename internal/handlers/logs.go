package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"ilo_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	errBadTime       = errors.New("use RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'")
	errInvertedRange = errors.New("'from' must be <= 'to'")
)

// queryLayouts are tried in order; the last one has no time of day.
var queryLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// @Summary      Audit log
// @Description  Filter logs by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive (23:59:59.999999999Z).
// @Tags         logs
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2026-10-01)
// @Param        to    query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). Date-only treated as end of day."  example(2026-10-31)
// @Param        type  query   string  false  "Event type"  Enums(COMMAND,POWER_CHANGE,UID_CHANGE,ERROR)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	filter, err := logFilterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load logs", "logs_list_failed", err,
			"type", filter.Type)
	}
}

// logFilterFromQuery reads from, to and type. A date-only 'to' covers the
// whole day.
func logFilterFromQuery(c *gin.Context) (service.LogFilter, error) {
	f := service.LogFilter{Type: strings.ToUpper(strings.TrimSpace(c.Query("type")))}

	if raw := c.Query("from"); raw != "" {
		from, _, err := parseQueryTime(raw)
		if err != nil {
			return f, errors.New("invalid 'from' time: " + err.Error())
		}
		f.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, dateOnly, err := parseQueryTime(raw)
		if err != nil {
			return f, errors.New("invalid 'to' time: " + err.Error())
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		f.To = to
	}

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return f, errInvertedRange
	}
	return f, nil
}

// parseQueryTime returns s in UTC and whether it carried only a date.
func parseQueryTime(s string) (time.Time, bool, error) {
	for i, layout := range queryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), i == len(queryLayouts)-1, nil
		}
	}
	return time.Time{}, false, errBadTime
}
