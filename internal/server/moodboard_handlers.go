package server

import (
	"mooduck/internal/models"
	"mooduck/internal/repository"
	"mooduck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateMoodboard handles POST /api/moodboards
// @Summary Create a moodboard
// @Description Create a board with an optional base64 cover, inline new items, and existing item ids to attach.
// @Tags moodboards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{name=string,description=string,cover=string,is_private=bool,items=[]service.NewItemInput,existing_items=[]int} true "Moodboard"
// @Success 201 {object} models.Moodboard
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards [post]
func (s *Server) CreateMoodboard(c *fiber.Ctx) error {
	var req struct {
		Name          string                 `json:"name"`
		Description   string                 `json:"description"`
		Cover         string                 `json:"cover"`
		IsPrivate     bool                   `json:"is_private"`
		Items         []service.NewItemInput `json:"items"`
		ExistingItems []uint                 `json:"existing_items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	board, err := s.boardService.Create(c.Context(), service.CreateMoodboardInput{
		AuthorID:      currentUserID(c),
		Name:          req.Name,
		Description:   req.Description,
		Cover:         req.Cover,
		IsPrivate:     req.IsPrivate,
		Items:         req.Items,
		ExistingItems: req.ExistingItems,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newMoodboardView(*board))
}

// GetMoodboards handles GET /api/moodboards
// @Summary List public moodboards
// @Description Page through public boards with optional search, sort (created_at or likes), and a recency window in days.
// @Tags moodboards
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or description substring"
// @Param sort query string false "created_at or likes"
// @Param period query int false "Only boards created in the last N days"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Moodboard}
// @Router /moodboards [get]
func (s *Server) GetMoodboards(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	p := parsePageParams(c)

	filter := repository.MoodboardFilter{
		Search:     c.Query("search"),
		Sort:       c.Query("sort", "created_at"),
		PeriodDays: c.QueryInt("period"),
	}
	if filter.Sort != "likes" && filter.Sort != "created_at" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid sort: must be created_at or likes"))
	}

	boards, err := s.boardService.List(c.Context(), filter, viewerID, p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, boards))
}

// GetRandomMoodboard handles GET /api/moodboards/random
// @Summary Get a random public moodboard
// @Tags moodboards
// @Produce json
// @Success 200 {object} models.Moodboard
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/random [get]
func (s *Server) GetRandomMoodboard(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)
	board, err := s.boardService.Random(c.Context(), viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(board)
}

// GetMoodboard handles GET /api/moodboards/:id
// @Summary Get a moodboard
// @Description Full board view with author, items, and comments. Private boards are visible to their author only.
// @Tags moodboards
// @Produce json
// @Param id path int true "Moodboard ID"
// @Success 200 {object} models.Moodboard
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id} [get]
func (s *Server) GetMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	board, err := s.boardService.Get(c.Context(), id, viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newMoodboardView(*board))
}

// UpdateMoodboard handles PATCH /api/moodboards/:id
// @Summary Update a moodboard
// @Description Merge the provided fields. Chaotic boards cannot be edited.
// @Tags moodboards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param request body object{name=string,description=string,cover=string,is_private=bool} true "Fields to change"
// @Success 200 {object} models.Moodboard
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id} [patch]
func (s *Server) UpdateMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Cover       *string `json:"cover"`
		IsPrivate   *bool   `json:"is_private"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	board, err := s.boardService.Update(c.Context(), service.UpdateMoodboardInput{
		ID:          id,
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		Cover:       req.Cover,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newMoodboardView(*board))
}

// DeleteMoodboard handles DELETE /api/moodboards/:id
// @Summary Delete a moodboard
// @Description Chaotic boards cannot be deleted.
// @Tags moodboards
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id} [delete]
func (s *Server) DeleteMoodboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.boardService.Delete(c.Context(), id, currentUserID(c)); delErr != nil {
		return respondAppError(c, delErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetChaoticMoodboard handles GET /api/chaotic
// @Summary Get the caller's chaotic moodboard
// @Tags chaotic
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Moodboard
// @Failure 404 {object} models.ErrorResponse
// @Router /chaotic [get]
func (s *Server) GetChaoticMoodboard(c *fiber.Ctx) error {
	board, err := s.boardService.GetChaotic(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newMoodboardView(*board))
}

// AddChaoticItems handles POST /api/chaotic/items
// @Summary Add items to the chaotic moodboard
// @Tags chaotic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{items=[]service.NewItemInput,existing_items=[]int} true "Items to add"
// @Success 201 {array} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /chaotic/items [post]
func (s *Server) AddChaoticItems(c *fiber.Ctx) error {
	board, err := s.boardRepo.GetChaotic(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return s.addItems(c, board.ID)
}

// RemoveChaoticItem handles DELETE /api/chaotic/items/:itemId
// @Summary Remove an item from the chaotic moodboard
// @Tags chaotic
// @Security BearerAuth
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /chaotic/items/{itemId} [delete]
func (s *Server) RemoveChaoticItem(c *fiber.Ctx) error {
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}

	userID := currentUserID(c)
	board, err := s.boardRepo.GetChaotic(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}

	if rmErr := s.itemService.RemoveItem(c.Context(), board.ID, itemID, userID); rmErr != nil {
		return respondAppError(c, rmErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
