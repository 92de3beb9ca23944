package server

import (
	"encoding/json"

	"tutegram/internal/models"
	"tutegram/internal/service"
	"tutegram/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// updateAllowedFields are the only top-level keys PATCH /user/update accepts.
var updateAllowedFields = map[string]struct{}{
	"firstName": {},
	"lastName":  {},
	"userName":  {},
	"age":       {},
	"gender":    {},
	"location":  {},
	"bio":       {},
	"interests": {},
}

// GetMyProfile handles GET /api/v1/user/profile
// @Summary Get own profile
// @Tags user
// @Produce json
// @Success 200 {object} object{data=models.PublicUser}
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetPublicByID(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": user,
	})
}

// GetUserByID handles GET /api/v1/user/get/:userId
// @Summary Get a user by ID
// @Tags user
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{data=models.PublicUser}
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/get/{userId} [get]
func (s *Server) GetUserByID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetPublicByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": user,
	})
}

// GetAllUsers handles GET /api/v1/user/getall
// @Summary List every other user
// @Tags user
// @Produce json
// @Success 200 {object} object{data=[]models.PublicUser}
// @Security ApiKeyAuth
// @Router /user/getall [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListOthers(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": users,
	})
}

// UpdateProfile handles PATCH /api/v1/user/update
// @Summary Update profile fields
// @Tags user
// @Accept json
// @Produce json
// @Param request body validation.UpdateInput true "Profile fields"
// @Success 200 {object} object{message=string,data=models.PublicUser}
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/update [patch]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var raw map[string]any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if errs := validation.CheckAllowedFields(raw, updateAllowedFields); len(errs) > 0 {
		return models.RespondWithError(c,
			models.NewFieldValidationError("Invalid edit request", errs))
	}

	var req validation.UpdateInput
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if errs := validation.ValidateUpdate(req); len(errs) > 0 {
		return models.RespondWithError(c,
			models.NewFieldValidationError("Validation failed", errs))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:    currentUserID(c),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Age:       req.Age,
		Gender:    req.Gender,
		Location:  req.Location,
		Bio:       req.Bio,
		Interests: req.Interests,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": user.FirstName + ", your profile updated successfully",
		"data":    user,
	})
}

// DeleteAccount handles DELETE /api/v1/user/delete
// @Summary Delete own account
// @Tags user
// @Produce json
// @Success 200 {object} object{message=string}
// @Security ApiKeyAuth
// @Router /user/delete [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return models.RespondWithError(c, err)
	}

	s.clearAuthCookies(c)

	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// ChangeUsername handles PATCH /api/v1/user/username-change
// @Summary Change username
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{userName=string} true "New username"
// @Success 200 {object} object{message=string,data=models.PublicUser}
// @Failure 409 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/username-change [patch]
func (s *Server) ChangeUsername(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"userName"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.Username != "" {
		if err := validation.ValidateUsername(req.Username); err != nil {
			return models.RespondWithError(c,
				models.NewValidationError(err.Error()))
		}
	}

	user, err := s.userService.ChangeUsername(c.Context(), currentUserID(c), req.Username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "UserName changed successfully",
		"data":    user,
	})
}

// ChangePassword handles PATCH /api/v1/user/change-password
// @Summary Change password
// @Tags user
// @Accept json
// @Produce json
// @Param request body object{currentPassword=string,newPassword=string} true "Passwords"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/change-password [patch]
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}
	if req.NewPassword != "" {
		if err := validation.ValidatePassword(req.NewPassword); err != nil {
			return models.RespondWithError(c,
				models.NewValidationError(err.Error()))
		}
	}

	if err := s.userService.ChangePassword(c.Context(), currentUserID(c),
		req.CurrentPassword, req.NewPassword); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}

// GetConnectionRequests handles GET /api/v1/user/all-connection-requests
// @Summary Incoming pending connection requests
// @Tags user
// @Produce json
// @Success 200 {object} object{message=string,data=[]models.ConnectionRequest}
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/all-connection-requests [get]
func (s *Server) GetConnectionRequests(c *fiber.Ctx) error {
	requests, err := s.connService.PendingRequests(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Connection requests fetched successfully",
		"data":    requests,
	})
}

// GetConnections handles GET /api/v1/user/all-connections
// @Summary Accepted connections
// @Tags user
// @Produce json
// @Success 200 {object} object{message=string,data=[]models.PublicUser}
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/all-connections [get]
func (s *Server) GetConnections(c *fiber.Ctx) error {
	connections, err := s.connService.AcceptedConnections(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Connections fetched successfully",
		"data":    connections,
	})
}

// GetFeed handles GET /api/v1/user/feed
// @Summary Paginated discovery feed
// @Description Users with no connection record shared with the caller
// @Tags user
// @Produce json
// @Param search query string false "Substring match on first/last/username"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 50)"
// @Success 200 {object} object{success=bool,data=[]models.PublicUser}
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	feed, err := s.userService.Feed(c.Context(), currentUserID(c), search, page, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feed.Users,
		"pagination": fiber.Map{
			"page":  feed.Page,
			"limit": feed.Limit,
			"total": feed.Total,
		},
	})
}
