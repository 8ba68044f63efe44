package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sarabun/internal/service"
)

// NumberHandler exposes a read-only view of the document number sequences.
type NumberHandler struct {
	allocator service.AllocatorService
}

// NewNumberHandler creates a new NumberHandler.
func NewNumberHandler(allocator service.AllocatorService) *NumberHandler {
	return &NumberHandler{allocator: allocator}
}

// Peek handles GET /api/v1/numbers/peek
// @Summary Peek at a number series
// @Description Last issued number for a (prefix, year) series without allocating. Display only.
// @Tags numbers
// @Produce json
// @Param prefix query string true "Document series prefix"
// @Param year query int true "Buddhist Era year"
// @Success 200 {object} APIResponse "Current series position"
// @Failure 400 {object} APIResponse "Missing prefix or year"
// @Security BearerAuth
// @Router /numbers/peek [get]
func (h *NumberHandler) Peek(c *gin.Context) {
	prefix := c.Query("prefix")
	year, _ := strconv.Atoi(c.Query("year"))

	number, err := h.allocator.Peek(c.Request.Context(), prefix, year)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: gin.H{
		"prefix":      number.Prefix,
		"year":        number.Year,
		"last_number": number.Number,
		"formatted":   number.String(),
	}})
}
