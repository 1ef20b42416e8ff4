package server

import (
	"mooduck/internal/models"
	"mooduck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/moodboards/:id/comments
// @Summary Comment on a moodboard
// @Description Leave a comment, optionally answering another comment on the same board.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param request body object{text=string,answering_to=int} true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text        string `json:"text"`
		AnsweringTo *uint  `json:"answering_to"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Create(c.Context(), service.CreateCommentInput{
		MoodboardID: boardID,
		AuthorID:    currentUserID(c),
		Text:        req.Text,
		AnsweringTo: req.AnsweringTo,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/moodboards/:id/comments
// @Summary List a moodboard's comments
// @Tags comments
// @Produce json
// @Param id path int true "Moodboard ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Comment}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	p := parsePageParams(c)
	comments, err := s.commentService.List(c.Context(), boardID, viewerID, p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, comments))
}

// GetComment handles GET /api/moodboards/:id/comments/:commentId
// @Summary Get a single comment
// @Tags comments
// @Produce json
// @Param id path int true "Moodboard ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/comments/{commentId} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	comment, err := s.commentService.Get(c.Context(), boardID, commentID, viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(comment)
}

// UpdateComment handles PATCH /api/moodboards/:id/comments/:commentId
// @Summary Edit a comment
// @Description Only the comment's author can edit it.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param commentId path int true "Comment ID"
// @Param request body object{text=string} true "New text"
// @Success 200 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/comments/{commentId} [patch]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Update(c.Context(), boardID, commentID, currentUserID(c), req.Text)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/moodboards/:id/comments/:commentId
// @Summary Delete a comment
// @Description Only the comment's author can delete it.
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param commentId path int true "Comment ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if delErr := s.commentService.Delete(c.Context(), boardID, commentID, currentUserID(c)); delErr != nil {
		return respondAppError(c, delErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
