package handlers

import (
	"net/http"
	"strconv"

	"ilo_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Host power status
// @Description  One GET_HOST_POWER_STATUS round trip. State is ON, OFF or UNKNOWN.
// @Tags         power
// @Produce      json
// @Success      200  {object}  service.PowerStatus
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/power/status [get]
// @Security     BearerAuth
func (h *Handler) powerStatus(c *gin.Context) {
	st, err := h.services.Power.Status(c.Request.Context())
	if err != nil {
		h.controllerError(c, "power_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Power action
// @Description  wait=true polls until the host reaches ON or OFF; ignored for actions without a single end state.
// @Tags         power
// @Produce      json
// @Param        action  path      string  true   "Action"  Enums(on,off,press,reset,warmboot,coldboot,forceoff)
// @Param        wait    query     bool    false  "Poll until the target state is reached"
// @Success      200     {object}  service.PowerResult
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      502     {object}  map[string]string
// @Router       /api/v1/power/{action} [post]
// @Security     BearerAuth
func (h *Handler) powerAction(c *gin.Context) {
	action, err := service.ParsePowerAction(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wait := false
	if qs := c.Query("wait"); qs != "" {
		if wait, err = strconv.ParseBool(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'wait'; use true or false"})
			return
		}
	}

	res, err := h.services.Power.Execute(c.Request.Context(), service.PowerRequest{
		Action: action,
		Wait:   wait,
		UserID: currentUser(c),
	})
	if err != nil {
		h.controllerError(c, "power_action_failed", err, "action", action)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Reset the management controller
// @Description  Restarts iLO itself. The host keeps running.
// @Tags         ilo
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/ilo/reset [post]
// @Security     BearerAuth
func (h *Handler) resetController(c *gin.Context) {
	if err := h.services.Power.ResetController(c.Request.Context(), currentUser(c)); err != nil {
		h.controllerError(c, "ilo_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSent})
}

// @Summary      Latest monitor snapshot
// @Tags         monitor
// @Produce      json
// @Success      200  {object}  models.ServerState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
