package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/utils"
)

type FilterStateHandler struct {
	filterService *services.FilterService
}

func NewFilterStateHandler(filterService *services.FilterService) *FilterStateHandler {
	return &FilterStateHandler{
		filterService: filterService,
	}
}

// GET /v1/filters
func (h *FilterStateHandler) GetFilters(c *gin.Context) {
	sessionKey, ok := sessionKey(c)
	if !ok {
		utils.BadRequestResponse(c, "missing session identity", nil)
		return
	}

	utils.SuccessResponse(c, h.filterService.GetState(sessionKey))
}

// PUT /v1/filters
func (h *FilterStateHandler) SaveFilters(c *gin.Context) {
	sessionKey, ok := sessionKey(c)
	if !ok {
		utils.BadRequestResponse(c, "missing session identity", nil)
		return
	}

	var criteria catalog.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.BadRequestResponse(c, "invalid filter criteria", err.Error())
		return
	}

	state, err := h.filterService.SaveState(sessionKey, criteria)
	if err != nil {
		utils.InternalErrorResponse(c, "failed to save filters")
		return
	}

	utils.SuccessResponse(c, state)
}

// DELETE /v1/filters
func (h *FilterStateHandler) ResetFilters(c *gin.Context) {
	sessionKey, ok := sessionKey(c)
	if !ok {
		utils.BadRequestResponse(c, "missing session identity", nil)
		return
	}

	if err := h.filterService.ResetState(sessionKey); err != nil {
		utils.InternalErrorResponse(c, "failed to reset filters")
		return
	}

	utils.SuccessMessageResponse(c, "filters reset", nil)
}

// sessionKey identifies the filter-state owner: the authenticated user
// when present, otherwise the anonymous session id sent by the client.
func sessionKey(c *gin.Context) (string, bool) {
	if userID, ok := utils.GetUserIDFromContext(c); ok {
		return "user:" + userID, true
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return "session:" + sessionID, true
	}
	return "", false
}
