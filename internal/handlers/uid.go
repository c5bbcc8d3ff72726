package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      UID LED status
// @Tags         uid
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/uid [get]
// @Security     BearerAuth
func (h *Handler) uidStatus(c *gin.Context) {
	st, err := h.services.Light.UIDStatus(c.Request.Context())
	if err != nil {
		h.controllerError(c, "uid_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"uid": st})
}

// @Summary      Toggle the UID LED
// @Description  Flips the LED and polls until the controller reports the new state. Refused when the current state cannot be read.
// @Tags         uid
// @Produce      json
// @Success      200  {object}  service.UIDResult
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/uid/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleUID(c *gin.Context) {
	res, err := h.services.Light.ToggleUID(c.Request.Context(), currentUser(c))
	if err != nil {
		h.controllerError(c, "uid_toggle_failed", err, "initial", res.Initial)
		return
	}
	c.JSON(http.StatusOK, res)
}
