package server

import (
	"mooduck/internal/models"
	"mooduck/internal/repository"
	"mooduck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetItems handles GET /api/items
// @Summary List public items
// @Tags items
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or description substring"
// @Param item_type query string false "Item kind filter"
// @Success 200 {object} object{page=int,limit=int,items=[]models.Item}
// @Failure 400 {object} models.ErrorResponse
// @Router /items [get]
func (s *Server) GetItems(c *fiber.Ctx) error {
	p := parsePageParams(c)

	filter := repository.ItemFilter{Search: c.Query("search")}
	if raw := c.Query("item_type"); raw != "" {
		itemType := models.ItemType(raw)
		if !itemType.Valid() {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid item type: "+raw))
		}
		filter.ItemType = itemType
	}

	items, err := s.itemService.List(c.Context(), filter, p.Lookahead(), p.Offset())
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(buildPage(c, p, newItemViews(items)))
}

// GetRandomItem handles GET /api/items/random
// @Summary Get a random public item
// @Tags items
// @Produce json
// @Param item_type query string false "Item kind filter"
// @Success 200 {object} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/random [get]
func (s *Server) GetRandomItem(c *fiber.Ctx) error {
	item, err := s.itemService.Random(c.Context(), models.ItemType(c.Query("item_type")))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newItemView(*item))
}

// GetItem handles GET /api/items/:id
// @Summary Get an item
// @Description Private items are visible to their author only.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Item
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [get]
func (s *Server) GetItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	item, err := s.itemService.Get(c.Context(), id, viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newItemView(*item))
}

// AddMoodboardItems handles POST /api/moodboards/:id/items
// @Summary Add items to a moodboard
// @Description Create new items on the board and attach existing ones by id. Already attached ids are skipped; a request that adds nothing is rejected.
// @Tags moodboards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param request body object{items=[]service.NewItemInput,existing_items=[]int} true "Items to add"
// @Success 201 {array} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/items [post]
func (s *Server) AddMoodboardItems(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	return s.addItems(c, boardID)
}

// addItems is the shared body of AddMoodboardItems and AddChaoticItems.
func (s *Server) addItems(c *fiber.Ctx, boardID uint) error {
	var req struct {
		Items         []service.NewItemInput `json:"items"`
		ExistingItems []uint                 `json:"existing_items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	added, err := s.itemService.AddItems(c.Context(), service.AddItemsInput{
		MoodboardID:   boardID,
		UserID:        currentUserID(c),
		Items:         req.Items,
		ExistingItems: req.ExistingItems,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(newItemViews(added))
}

// GetMoodboardItems handles GET /api/moodboards/:id/items
// @Summary List a moodboard's items
// @Tags moodboards
// @Produce json
// @Param id path int true "Moodboard ID"
// @Success 200 {array} models.Item
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/items [get]
func (s *Server) GetMoodboardItems(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	items, err := s.itemService.ListBoardItems(c.Context(), boardID, viewerID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newItemViews(items))
}

// RemoveMoodboardItem handles DELETE /api/moodboards/:id/items/:itemId
// @Summary Detach an item from a moodboard
// @Description Removes the board-item link. The item itself survives.
// @Tags moodboards
// @Security BearerAuth
// @Param id path int true "Moodboard ID"
// @Param itemId path int true "Item ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /moodboards/{id}/items/{itemId} [delete]
func (s *Server) RemoveMoodboardItem(c *fiber.Ctx) error {
	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	itemID, err := s.parseID(c, "itemId")
	if err != nil {
		return nil
	}

	if rmErr := s.itemService.RemoveItem(c.Context(), boardID, itemID, currentUserID(c)); rmErr != nil {
		return respondAppError(c, rmErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateItem handles PATCH /api/items/:id
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body object{name=string,description=string,item_type=string,link=string,media=[]string,is_private=bool} true "Fields to change"
// @Success 200 {object} models.Item
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [patch]
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		ItemType    *models.ItemType `json:"item_type"`
		Link        *string          `json:"link"`
		Media       *[]string        `json:"media"`
		IsPrivate   *bool            `json:"is_private"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	item, err := s.itemService.Update(c.Context(), service.UpdateItemInput{
		ID:          id,
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		ItemType:    req.ItemType,
		Link:        req.Link,
		Media:       req.Media,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(newItemView(*item))
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete an item
// @Description Deletes the item and detaches it from every board it appears on.
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /items/{id} [delete]
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if delErr := s.itemService.Delete(c.Context(), id, currentUserID(c)); delErr != nil {
		return respondAppError(c, delErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
