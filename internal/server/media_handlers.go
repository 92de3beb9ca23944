package server

import (
	"io"

	"tutegram/internal/models"
	"tutegram/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadProfilePic handles POST /api/v1/user/upload-profile-pic/:pic
// @Summary Upload a profile or cover picture
// @Description Accepts a multipart image, normalizes it and updates the matching URL
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param pic path string true "profilePic or coverPic"
// @Param profilePic formData file true "Image file"
// @Success 200 {object} object{message=string,data=models.PublicUser}
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/upload-profile-pic/{pic} [post]
func (s *Server) UploadProfilePic(c *fiber.Ctx) error {
	kind := c.Params("pic")
	if kind != service.PictureKindProfile && kind != service.PictureKindCover {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid picture type"))
	}

	fileHeader, err := c.FormFile("profilePic")
	if err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("No file uploaded"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	userID := currentUserID(c)
	url, err := s.mediaService.StorePicture(c.Context(), userID, content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	user, err := s.userService.SetPicture(c.Context(), userID, kind, url)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Picture uploaded successfully",
		"data":    user,
	})
}
