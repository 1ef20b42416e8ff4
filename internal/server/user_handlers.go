package server

import (
	"mooduck/internal/models"
	"mooduck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Get current user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
// @Summary Update current user profile
// @Description Update email, display name, bio, or password. Omitted fields keep their values, an explicit null name clears it.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{email=string,name=string,bio=string,password=string} true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /users/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Email    *string `json:"email"`
		Name     *string `json:"name"`
		Bio      *string `json:"bio"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Email:    req.Email,
		Name:     req.Name,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// DeleteMyAccount handles DELETE /api/users/me
// @Summary Delete current user account
// @Tags users
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Router /users/me [delete]
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	if err := s.userService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return respondAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAllUsers handles GET /api/users
// @Summary List users
// @Description Page through users, optionally filtered by a username or display name search.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Username or name substring"
// @Success 200 {object} object{page=int,limit=int,items=[]models.User}
// @Router /users [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	p := parsePageParams(c)
	users, err := s.userService.ListUsers(c.Context(), c.Query("search"), p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, users))
}

// GetUserProfile handles GET /api/users/:id
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(user)
}

// GetUserMoodboards handles GET /api/users/:id/moodboards
// @Summary List a user's moodboards
// @Description Other users see public boards only. Requesting your own boards includes private ones, never the chaotic board.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Moodboard}
// @Router /users/{id}/moodboards [get]
func (s *Server) GetUserMoodboards(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	p := parsePageParams(c)
	boards, err := s.boardService.ListByAuthor(c.Context(), id, currentUserID(c), p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, boards))
}
