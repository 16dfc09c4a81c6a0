package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"ecocycle/models"
	"ecocycle/services"
	"ecocycle/structs"

	"github.com/gin-gonic/gin"
)

// Photo uploads larger than this are rejected before hitting the vision API.
const maxImageBytes = 8 << 20

// ClassifyScan accepts a photo upload, runs the vision model, and returns
// the full evaluation for the detected object.
func ClassifyScan(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image upload", "message": err.Error()})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	ctx, cancel := context.WithTimeout(c, 30*time.Second)
	defer cancel()

	detection, err := services.ClassifyImage(ctx, imageData, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Classification failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Classification failed"})
		return
	}

	condition := c.PostForm("condition")
	ageMonths := 0
	if age := c.PostForm("ageMonths"); age != "" {
		if parsed, err := parseInt(age); err == nil && parsed >= 0 {
			ageMonths = parsed
		}
	}

	scan := services.EvaluateScan(*detection, condition, ageMonths)
	services.SaveScan(scan, userEmail)

	c.JSON(http.StatusOK, scan)
}

// EvaluateScan prices and scores an object the client already classified
// (on-device detection path).
func EvaluateScan(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	var req structs.EvaluateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	detection := models.Detection{
		ObjectClass: req.ObjectClass,
		Confidence:  req.Confidence,
		BoundingBox: req.BoundingBox,
	}

	scan := services.EvaluateScan(detection, req.Condition, req.AgeMonths)
	services.SaveScan(scan, userEmail)

	c.JSON(http.StatusOK, scan)
}

// GetScanHistory returns the player's recent scans.
func GetScanHistory(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := parseInt(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	scans, err := services.RecentScans(ctx, userEmail, limit)
	if err != nil {
		log.Printf("Failed to fetch scan history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scan history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans, "total": len(scans)})
}

// currentUserEmail pulls the authenticated identity set by the auth
// middleware, writing the 401 itself when absent.
func currentUserEmail(c *gin.Context) string {
	email, exists := c.Get("userEmail")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return ""
	}
	return email.(string)
}
