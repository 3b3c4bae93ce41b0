package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// successEnvelope mirrors the error envelope in pkg/apperrors; list
// payloads go under results, single objects under data.
type successEnvelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Results int         `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, successEnvelope{Status: "success", Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successEnvelope{Status: "success", Data: data})
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, successEnvelope{Status: "success", Results: count, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, successEnvelope{Status: "success", Message: message})
}
