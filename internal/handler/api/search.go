package api

import (
	"log/slog"
	"net/http"

	reqdto "studio-search/internal/handler/dto/request"
	resdto "studio-search/internal/handler/dto/response"
	"studio-search/internal/handler/httperr"
	"studio-search/internal/pkg/config"
	"studio-search/internal/pkg/cookie"
	"studio-search/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	search     queries.SearchQueries
	conditions queries.ConditionQueries
	cookieCfg  config.CookieConfig
}

func NewSearchHandler(search queries.SearchQueries, conditions queries.ConditionQueries, cfg config.Config) *SearchHandler {
	return &SearchHandler{
		search:     search,
		conditions: conditions,
		cookieCfg:  cfg.Cookie,
	}
}

// @Summary Search studios
// @Description Price every room for the requested slot and return the ones within budget, cheapest first
// @Tags search
// @Produce json
// @Param date query string false "YYYY-MM-DD (required in day mode)"
// @Param startTime query string false "HH:MM (required in day mode)"
// @Param endTime query string false "HH:MM (required in day mode)"
// @Param price query integer false "budget in yen; omitted or empty means unlimited, 0 means a zero budget that matches only free rooms"
// @Param people query integer true "number of people"
// @Param mode query string false "day or night" Enums(day, night)
// @Param areas query string false "comma-separated area tags"
// @Param usage query number false "floor area per person (㎡)"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	view, err := h.search.Search(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	// a failed cookie write must not fail the search itself
	if err := cookie.SetConditions(c, h.cookieCfg, h.conditions.FromQuery(view.Query)); err != nil {
		slog.Warn("検索条件を保存できませんでした", "error", err.Error())
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Get saved search conditions
// @Description Returns the conditions of the last successful search, or the form defaults
// @Tags search
// @Produce json
// @Success 200 {object} resdto.ConditionsResponse
// @Router /api/search/conditions [get]
func (h *SearchHandler) GetConditions(c *gin.Context) {
	var saved queries.Conditions
	ok := true
	if err := cookie.GetConditions(c, h.cookieCfg, &saved); err != nil {
		if !cookie.IsNotSaved(err) {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		saved = h.conditions.Defaults()
		ok = false
	}

	res, err := resdto.FromConditions(saved, ok)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Clear saved search conditions
// @Tags search
// @Success 204
// @Router /api/search/conditions [delete]
func (h *SearchHandler) DeleteConditions(c *gin.Context) {
	cookie.ClearConditions(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
