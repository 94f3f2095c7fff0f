package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/utils"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// GET /v1/tags/popular?limit=&refresh=
func (h *TagHandler) GetPopularTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "16"))
	if limit < 1 || limit > utils.MaxPerPage {
		limit = 16
	}
	forceRefresh, _ := strconv.ParseBool(c.Query("refresh"))

	tags := h.tagService.GetPopularTags(c.Request.Context(), limit, forceRefresh)
	utils.SuccessResponse(c, gin.H{
		"tags": tags,
	})
}

// POST /v1/tags/invalidate
//
// Callable after any mutation that changes the tag distribution, such
// as creating a listing.
func (h *TagHandler) InvalidateTags(c *gin.Context) {
	h.tagService.Invalidate()
	utils.SuccessMessageResponse(c, "tag cache invalidated", nil)
}
