package httperr

import (
	"errors"
	"net/http"

	"studio-search/internal/domain/search"
	"studio-search/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Code string

const (
	CodeInvalidRequest     Code = "INVALID_REQUEST"
	CodeInvalidQuery       Code = "INVALID_QUERY"
	CodeNotFound           Code = "NOT_FOUND"
	CodeCatalogUnavailable Code = "CATALOG_UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

const (
	msgCatalogUnavailable = "スタジオデータの読み込みに失敗しました"
	msgInternal           = "Internal server error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, code Code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

func Internal() Response {
	return New(http.StatusInternalServerError, CodeInternal, msgInternal, nil)
}

// AbortWithError keeps err on the gin context so the request log can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, New(status, codeFor(status), msg, detail), err)
}

// AbortWithUsecaseError picks the status from the error chain:
// invalid search conditions are 400, an unreachable catalog is 502, anything else 500.
func AbortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, search.ErrInvalidQuery):
		abort(c, New(http.StatusBadRequest, CodeInvalidQuery, "Invalid search conditions", err.Error()), err)
	case errs.Is(err, errs.ErrCatalogUnavailable):
		abort(c, New(http.StatusBadGateway, CodeCatalogUnavailable, msgCatalogUnavailable, nil), err)
	default:
		abort(c, Internal(), err)
	}
}

func abort(c *gin.Context, resp Response, err error) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func codeFor(status int) Code {
	switch {
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusBadGateway:
		return CodeCatalogUnavailable
	case status >= 400 && status < 500:
		return CodeInvalidRequest
	default:
		return CodeInternal
	}
}
