package server

import (
	"tutegram/internal/featureflags"
	"tutegram/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendConnection handles POST /api/v1/connection/send/:status/:userId
// @Summary Send a connection request
// @Description Create an interested or ignored record toward another user
// @Tags connection
// @Produce json
// @Param status path string true "interested or ignored"
// @Param userId path int true "Receiver user ID"
// @Success 200 {object} object{message=string,data=models.Connection}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /connection/send/{status}/{userId} [post]
func (s *Server) SendConnection(c *fiber.Ctx) error {
	status := models.ConnectionStatus(c.Params("status"))
	receiverID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	conn, message, err := s.connService.Send(c.Context(), currentUserID(c), receiverID, status)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": message,
		"data":    conn,
	})
}

// ReviewConnection handles POST /api/v1/connection/review/:status/:connectionId
// @Summary Review a pending connection request
// @Description Accept or reject a request received by the caller
// @Tags connection
// @Produce json
// @Param status path string true "accepted or rejected"
// @Param connectionId path int true "Connection ID"
// @Success 200 {object} object{message=string,data=models.Connection}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /connection/review/{status}/{connectionId} [post]
func (s *Server) ReviewConnection(c *fiber.Ctx) error {
	status := models.ConnectionStatus(c.Params("status"))
	connectionID, err := s.parseID(c, "connectionId")
	if err != nil {
		return nil
	}

	conn, message, err := s.connService.Review(c.Context(), currentUserID(c), connectionID, status)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": message,
		"data":    conn,
	})
}

// GetRecommendations handles GET /api/v1/connection/recommendations
// @Summary Connection recommendations
// @Description Candidates ranked by accepted-connection counts, optionally re-ranked by shared interests
// @Tags connection
// @Produce json
// @Param byInterests query bool false "Re-rank by shared interests"
// @Success 200 {object} object{data=[]models.PublicUser}
// @Security ApiKeyAuth
// @Router /connection/recommendations [get]
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	userID := currentUserID(c)

	byInterests := c.QueryBool("byInterests", false) &&
		s.featureFlags.Enabled(featureflags.FlagInterestRanking, userID)

	users, err := s.connService.Recommendations(c.Context(), userID, byInterests)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": users,
	})
}
