package server

import (
	"github.com/gofiber/fiber/v2"
)

// LikeMoodboard handles POST /api/moodboards/:id/like
// @Summary Like a moodboard
// @Description Liking a board you already liked is an error. Chaotic and foreign private boards cannot be liked.
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/like [post]
func (s *Server) LikeMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if likeErr := s.reactionService.Like(c.Context(), currentUserID(c), id); likeErr != nil {
		return respondAppError(c, likeErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnlikeMoodboard handles DELETE /api/moodboards/:id/like
// @Summary Remove a like
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/like [delete]
func (s *Server) UnlikeMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unlikeErr := s.reactionService.Unlike(c.Context(), currentUserID(c), id); unlikeErr != nil {
		return respondAppError(c, unlikeErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FavoriteMoodboard handles POST /api/moodboards/:id/fav
// @Summary Add a moodboard to favorites
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/fav [post]
func (s *Server) FavoriteMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if favErr := s.reactionService.Favorite(c.Context(), currentUserID(c), id); favErr != nil {
		return respondAppError(c, favErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfavoriteMoodboard handles DELETE /api/moodboards/:id/fav
// @Summary Remove a moodboard from favorites
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/fav [delete]
func (s *Server) UnfavoriteMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unfavErr := s.reactionService.Unfavorite(c.Context(), currentUserID(c), id); unfavErr != nil {
		return respondAppError(c, unfavErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFavorites handles GET /api/favorites
// @Summary List favorited moodboards
// @Description Most recently favorited first.
// @Tags reactions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Moodboard}
// @Router /favorites [get]
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	p := parsePageParams(c)
	boards, err := s.reactionService.ListFavorites(c.Context(), currentUserID(c), p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, boards))
}

// Subscribe handles POST /api/users/:id/subscribe
// @Summary Subscribe to a user
// @Description Subscribing to yourself or twice to the same user is an error.
// @Tags subscriptions
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/subscribe [post]
func (s *Server) Subscribe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if subErr := s.reactionService.Subscribe(c.Context(), currentUserID(c), id); subErr != nil {
		return respondAppError(c, subErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unsubscribe handles DELETE /api/users/:id/subscribe
// @Summary Unsubscribe from a user
// @Tags subscriptions
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/subscribe [delete]
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unsubErr := s.reactionService.Unsubscribe(c.Context(), currentUserID(c), id); unsubErr != nil {
		return respondAppError(c, unsubErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSubscriptions handles GET /api/subscriptions
// @Summary List users you subscribe to
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.User}
// @Router /subscriptions [get]
func (s *Server) GetSubscriptions(c *fiber.Ctx) error {
	p := parsePageParams(c)
	users, err := s.reactionService.ListSubscriptions(c.Context(), currentUserID(c), p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, users))
}

// GetSubscribers handles GET /api/users/:id/subscribers
// @Summary List a user's subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.User}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id}/subscribers [get]
func (s *Server) GetSubscribers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if _, err := s.userService.GetUser(c.Context(), id); err != nil {
		return respondAppError(c, err)
	}
	p := parsePageParams(c)
	users, err := s.reactionService.ListSubscribers(c.Context(), id, p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, users))
}

// GetSubscriptionFeed handles GET /api/subscriptions/feed
// @Summary Moodboard feed from subscriptions
// @Description Public boards by the users you subscribe to, newest first.
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Moodboard}
// @Router /subscriptions/feed [get]
func (s *Server) GetSubscriptionFeed(c *fiber.Ctx) error {
	p := parsePageParams(c)
	boards, err := s.boardService.SubscriptionFeed(c.Context(), currentUserID(c), p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, boards))
}
