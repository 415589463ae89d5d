package api

import (
	"net/http"

	resdto "studio-search/internal/handler/dto/response"
	"studio-search/internal/handler/httperr"
	"studio-search/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StudioHandler struct {
	directory queries.DirectoryQueries
}

func NewStudioHandler(directory queries.DirectoryQueries) *StudioHandler {
	return &StudioHandler{directory: directory}
}

// @Summary List studios by area
// @Description Studios grouped by area in display order; unlisted areas are grouped last
// @Tags studios
// @Produce json
// @Success 200 {object} resdto.AreaDirectoryResponse
// @Failure 502 {object} httperr.Response
// @Router /api/studios/areas [get]
func (h *StudioHandler) ListByArea(c *gin.Context) {
	view, err := h.directory.ListByArea(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromDirectoryView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
