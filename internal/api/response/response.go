package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps a resource payload under its domain key, e.g.
// {"review": {...}} or {"comments": [...]}.
type Envelope map[string]interface{}

// ErrorResponse is the wire shape for every failure
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// OK returns a 200 response with the payload wrapped under key
func OK(c echo.Context, key string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{key: data})
}

// Created returns a 201 response with the payload wrapped under key
func Created(c echo.Context, key string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{key: data})
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Msg: msg})
}

// NotFound returns a 404 Not Found response
func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Msg: msg})
}

// InternalError returns a 500 Internal Server Error response
func InternalError(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: msg})
}
