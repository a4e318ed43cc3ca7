package handlers

import (
	"errors"
	"log"
	"net/http"

	"trivia-api/internal/services"
	"trivia-api/internal/validation"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Resource Not Found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusInternalServerError: "Internal Server Error",
}

func newErrorResponse(status int) ErrorResponse {
	msg, ok := errorMessages[status]
	if !ok {
		msg = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: msg}
}

// StatusFor maps an error to the HTTP status of its envelope.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, validation.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("request %s: %s %s: %v", c.GetString(RequestIDKey), c.Request.Method, c.Request.URL.Path, err)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, newErrorResponse(status))
}

func NoRoute(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, newErrorResponse(http.StatusNotFound))
}

func NoMethod(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, newErrorResponse(http.StatusMethodNotAllowed))
}

// Recovery turns a panic into the 500 envelope.
func Recovery(c *gin.Context, recovered any) {
	log.Printf("request %s: panic: %v", c.GetString(RequestIDKey), recovered)
	c.AbortWithStatusJSON(http.StatusInternalServerError, newErrorResponse(http.StatusInternalServerError))
}
