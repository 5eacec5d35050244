package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard response shape for every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   interface{} `json:"error"`
}

// JSON writes an enveloped success response with the given status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{Success: true, Data: data, Error: nil})
}

// OK writes a 200 OK enveloped response.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created writes a 201 Created enveloped response.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent writes an empty 204 response. Deletes have no envelope.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
