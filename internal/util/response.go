package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of a successful API reply.
type Response map[string]interface{}

// OK writes data with status 200.
func OK(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with status 201.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, data)
}

// Error writes an error reply as {"error": msg}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"error": msg,
	})
}
