package handlers

import (
	"net/http"

	"ilo_monitor/internal/ribcl"

	"github.com/gin-gonic/gin"
)

// @Summary      Controller firmware
// @Tags         ilo
// @Produce      json
// @Success      200  {object}  ribcl.Firmware
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/ilo/firmware [get]
// @Security     BearerAuth
func (h *Handler) getFirmware(c *gin.Context) {
	fw, err := h.services.Inventory.Firmware(c.Request.Context())
	if err != nil {
		h.controllerError(c, "firmware_failed", err)
		return
	}
	c.JSON(http.StatusOK, fw)
}

// @Summary      Controller network settings
// @Tags         ilo
// @Produce      json
// @Success      200  {object}  ribcl.NetworkSettings
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/ilo/network [get]
// @Security     BearerAuth
func (h *Handler) getNetwork(c *gin.Context) {
	n, err := h.services.Inventory.Network(c.Request.Context())
	if err != nil {
		h.controllerError(c, "network_failed", err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// withHealth reads embedded health once and hands it to write; the section
// endpoints below share it.
func (h *Handler) withHealth(c *gin.Context, logKey string, write func(*ribcl.Health) any) {
	hl, err := h.services.Inventory.Health(c.Request.Context())
	if err != nil {
		h.controllerError(c, logKey, err)
		return
	}
	c.JSON(http.StatusOK, write(hl))
}

// @Summary      Embedded health
// @Tags         server
// @Produce      json
// @Success      200  {object}  ribcl.Health
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/server/health [get]
// @Security     BearerAuth
func (h *Handler) getHealth(c *gin.Context) {
	h.withHealth(c, "health_failed", func(hl *ribcl.Health) any { return hl })
}

// @Summary      Temperature sensors
// @Tags         server
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, temperatures"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/server/temperatures [get]
// @Security     BearerAuth
func (h *Handler) getTemperatures(c *gin.Context) {
	h.withHealth(c, "temperatures_failed", func(hl *ribcl.Health) any {
		return gin.H{"status": hl.Summary.Temperature, "temperatures": hl.Temperatures}
	})
}

// @Summary      Fans
// @Tags         server
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, fans"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/server/fans [get]
// @Security     BearerAuth
func (h *Handler) getFans(c *gin.Context) {
	h.withHealth(c, "fans_failed", func(hl *ribcl.Health) any {
		return gin.H{"status": hl.Summary.Fans, "fans": hl.Fans}
	})
}

// @Summary      Power supplies and VRMs
// @Tags         server
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, power_supplies, vrms"
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/server/power-supplies [get]
// @Security     BearerAuth
func (h *Handler) getPowerSupplies(c *gin.Context) {
	h.withHealth(c, "power_supplies_failed", func(hl *ribcl.Health) any {
		return gin.H{"status": hl.Summary.PowerSupplies, "power_supplies": hl.PowerSupplies, "vrms": hl.VRMs}
	})
}

// @Summary      Server name
// @Tags         server
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/server/name [get]
// @Security     BearerAuth
func (h *Handler) getServerName(c *gin.Context) {
	name, err := h.services.Inventory.ServerName(c.Request.Context())
	if err != nil {
		h.controllerError(c, "server_name_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name})
}

// @Summary      Controller event log
// @Description  Today's entries if any, else entries with an unset clock, else everything; at most 10 records plus the bucket total.
// @Tags         ilo
// @Produce      json
// @Success      200  {object}  ribcl.LogResult
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/eventlog [get]
// @Security     BearerAuth
func (h *Handler) getEventLog(c *gin.Context) {
	res, err := h.services.ControllerLog.Events(c.Request.Context())
	if err != nil {
		h.controllerError(c, "eventlog_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
