package handlers

import (
	"github.com/atelierhq/atelier/backend/internal/models"
	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler provides enhanced health check endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of all subsystems.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	// Database check
	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	// Mail queue mode
	mailQueue := services.GetMailQueue()
	queueMode := "sync"
	if mailQueue != nil && mailQueue.IsAsync() {
		queueMode = "async (Redis)"
	}

	// Contact submissions awaiting follow-up
	var newContacts int64
	models.GetDB().Model(&models.ContactSubmission{}).
		Where("status = ?", models.ContactStatusNew).
		Count(&newContacts)

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "atelier",
		"components": gin.H{
			"database":     dbStatus,
			"queue_mode":   queueMode,
			"new_contacts": newContacts,
		},
	})
}
