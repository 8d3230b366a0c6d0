package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maybourshan/ci-cd-stocks-service/internal/services"
)

// GainsHandler handles capital gains requests.
type GainsHandler struct {
	gainsService services.GainsServicer
}

// NewGainsHandler creates a new GainsHandler.
func NewGainsHandler(gainsService services.GainsServicer) *GainsHandler {
	return &GainsHandler{gainsService: gainsService}
}

// GetCapitalGains handles computing capital gains.
// @Summary     Capital gains
// @Description Gain of every holding inside the exclusive share bounds. Failed prices count as zero.
// @Tags        gains
// @Produce     json
// @Param       numsharesgt query int false "Only holdings with more shares than this"
// @Param       numshareslt query int false "Only holdings with fewer shares than this"
// @Success     200 {object} services.CapitalGains "Capital gains"
// @Router      /capital-gains [get]
func (h *GainsHandler) GetCapitalGains(c *gin.Context) {
	filter := services.GainsFilter{
		SharesGreaterThan: queryInt(c, "numsharesgt"),
		SharesLessThan:    queryInt(c, "numshareslt"),
	}

	gains, err := h.gainsService.ComputeGains(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gains)
}

// queryInt returns the integer value of a query parameter, or nil when it is
// absent or not an integer.
func queryInt(c *gin.Context, key string) *int64 {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
