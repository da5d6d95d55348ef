package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shazam37/ai-underwriting/internal/apperr"
)

func respondError(c *gin.Context, err error) {
	log.Printf("request failed: %v", err)
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}
