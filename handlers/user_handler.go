package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"deoghar-kitab/helper"
	"deoghar-kitab/models"
	"deoghar-kitab/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

// GetUsers handles GET /api/users (admin).
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.GetUsers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /api/users/:id. Callers may edit their own
// record; only admins may edit others or change the account type.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	callerID, callerRole := callerIdentity(c)
	if callerID != id && callerRole != models.RoleAdmin {
		h.Helper.SendForbidden(c, "insufficient permissions")
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(id, req, callerRole)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id (admin).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// RequestSeller handles PUT /api/users/:id/request-seller. Users may only
// open a request on their own record.
func (h *UserHandler) RequestSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	callerID, _ := callerIdentity(c)
	if callerID != id {
		h.Helper.SendForbidden(c, "insufficient permissions")
		return
	}

	var req models.SellerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			h.Helper.SendValidationError(c, verr)
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.userService.RequestSeller(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller request submitted", "user": user})
}

// ApproveSeller handles PUT /api/users/:id/approve-seller (admin).
func (h *UserHandler) ApproveSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.ApproveSeller(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller request approved", "user": user})
}

// RejectSeller handles PUT /api/users/:id/reject-seller (admin).
func (h *UserHandler) RejectSeller(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.RejectSeller(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller request rejected", "user": user})
}

// CancelSellerRequest handles PUT /api/users/:id/cancel-seller-request.
// Same transition as reject, restricted to the requesting user.
func (h *UserHandler) CancelSellerRequest(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	callerID, _ := callerIdentity(c)
	if callerID != id {
		h.Helper.SendForbidden(c, "insufficient permissions")
		return
	}

	user, err := h.userService.CancelSellerRequest(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller request cancelled", "user": user})
}

// GetPendingSellers handles GET /api/users/pending-sellers (admin).
func (h *UserHandler) GetPendingSellers(c *gin.Context) {
	pending, err := h.userService.GetPendingSellers()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

func (h *UserHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID")
		return 0, false
	}
	return uint(id), true
}

func callerIdentity(c *gin.Context) (uint, models.UserRole) {
	var id uint
	var role models.UserRole
	if v, ok := c.Get("user_id"); ok {
		id, _ = v.(uint)
	}
	if v, ok := c.Get("role"); ok {
		role, _ = v.(models.UserRole)
	}
	return id, role
}
