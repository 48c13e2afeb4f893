package handlers

import (
	"errors"
	"strconv"

	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(db *gorm.DB) *TeamHandler {
	return &TeamHandler{
		teamService: services.NewTeamService(db),
	}
}

// List returns all team members in display order
// GET /api/team
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.teamService.List()
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, members)
}

// Create creates a team member
// POST /api/team
func (h *TeamHandler) Create(c *gin.Context) {
	var req services.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Create(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, member)
}

// Update applies a partial update to a team member
// PUT /api/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	var req services.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "team member not found")
			return
		}
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, member)
}

// Delete deletes a team member
// DELETE /api/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid team member id")
		return
	}

	if err := h.teamService.Delete(uint(id)); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "team member deleted successfully"})
}
