package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raids-lab/orbit/pkg/apierr"
)

// Response is the envelope of every JSON reply. Declared generic so that
// swag can expand the data schema per endpoint.
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode) {
	c.JSON(httpCode, Response[any]{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK)
}

// Created replies 201, used by the create endpoints.
func Created(c *gin.Context, data any) {
	wrapResponse(c, http.StatusCreated, "", data, OK)
}

// NoContent replies 204 with an empty body, used by the delete endpoints.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error replies 500. Prefer HTTPError or WrapServiceError when the failure
// has a more precise status.
func Error(c *gin.Context, msg string, code ErrorCode) {
	wrapResponse(c, http.StatusInternalServerError, msg, nil, code)
}

func BadRequestError(c *gin.Context, msg string) {
	wrapResponse(c, http.StatusBadRequest, msg, nil, InvalidRequest)
}

func HTTPError(c *gin.Context, httpCode int, msg string, code ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, code)
}

// WrapServiceError maps a classified service error onto its HTTP status.
// The message travels to the client unchanged, so services must not put
// internals into classified errors.
func WrapServiceError(c *gin.Context, err error) {
	switch apierr.KindOf(err) {
	case apierr.KindInvalid:
		HTTPError(c, http.StatusBadRequest, err.Error(), InvalidRequest)
	case apierr.KindUnauthenticated:
		HTTPError(c, http.StatusUnauthorized, err.Error(), TokenInvalid)
	case apierr.KindForbidden:
		HTTPError(c, http.StatusForbidden, err.Error(), UserNotAllowed)
	case apierr.KindNotFound:
		HTTPError(c, http.StatusNotFound, err.Error(), ResourceNotFound)
	case apierr.KindConflict:
		HTTPError(c, http.StatusConflict, err.Error(), ResourceConflict)
	default:
		HTTPError(c, http.StatusInternalServerError, err.Error(), ServiceError)
	}
}
