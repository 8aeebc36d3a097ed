package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-portal/internal/view"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

const htmlContentType = "text/html; charset=utf-8"

// Fragment writes rendered view nodes as an HTML fragment response. Nil
// nodes are skipped so optional flashes can be passed straight through.
func Fragment(c *gin.Context, status int, nodes ...*view.Node) {
	var b strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		b.WriteString(string(n.HTML()))
	}
	c.Data(status, htmlContentType, []byte(b.String()))
}

// HTML writes pre-rendered markup, optionally followed by fragment nodes.
func HTML(c *gin.Context, status int, markup template.HTML, nodes ...*view.Node) {
	var b strings.Builder
	b.WriteString(string(markup))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		b.WriteString(string(n.HTML()))
	}
	c.Data(status, htmlContentType, []byte(b.String()))
}

// HealthCheck reports portal liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"status": "healthy",
		},
	})
}
