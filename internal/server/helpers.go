package server

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"mooduck/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPageLimit = 30
	maxPageLimit     = 100
)

// PageParams holds parsed 1-based page/limit query parameters.
type PageParams struct {
	Page  int
	Limit int
}

// Offset is the row offset of the first item on the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Lookahead is the fetch size: one extra row beyond the page signals that a
// next page exists.
func (p PageParams) Lookahead() int {
	return p.Limit + 1
}

// parsePageParams extracts page and limit query parameters.
func parsePageParams(c *fiber.Ctx) PageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return PageParams{Page: page, Limit: limit}
}

// Page is a paginated response envelope. PrevPage and NextPage carry ready
// to follow URLs, or null at either end of the window.
type Page[T any] struct {
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
	PrevPage *string `json:"prev_page"`
	NextPage *string `json:"next_page"`
	Amount   int     `json:"amount"`
	Items    []T     `json:"items"`
}

// buildPage trims the lookahead row and computes the navigation URLs.
// rows must have been fetched with p.Lookahead() as the limit.
func buildPage[T any](c *fiber.Ctx, p PageParams, rows []T) Page[T] {
	hasNext := len(rows) > p.Limit
	if hasNext {
		rows = rows[:p.Limit]
	}

	page := Page[T]{
		Page:   p.Page,
		Limit:  p.Limit,
		Amount: len(rows),
		Items:  rows,
	}
	if page.Items == nil {
		page.Items = []T{}
	}

	if p.Page > 1 {
		prev := pageURL(c, p.Page-1, p.Limit)
		page.PrevPage = &prev
	}
	if hasNext {
		next := pageURL(c, p.Page+1, p.Limit)
		page.NextPage = &next
	}
	return page
}

// pageURL rebuilds the request URL with page/limit swapped out and every
// other query parameter preserved.
func pageURL(c *fiber.Ctx, page, limit int) string {
	params := []string{
		fmt.Sprintf("page=%d", page),
		fmt.Sprintf("limit=%d", limit),
	}
	for key, values := range c.Queries() {
		if key == "page" || key == "limit" {
			continue
		}
		params = append(params, key+"="+values)
	}
	return c.Path() + "?" + strings.Join(params, "&")
}

// respondAppError maps application error codes onto HTTP statuses and writes
// the standard error envelope. Unknown errors come back as 500.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "CONFLICT":
			status = fiber.StatusConflict
		}
	}
	return models.RespondWithError(c, status, err)
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "itemId" -> "item ID", "commentId" -> "comment ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// currentUserID returns the authenticated user ID set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// itemView is the external shape of an item: the media column is exposed as
// a URL list, not the stored space-separated string.
type itemView struct {
	models.Item
	Media []string `json:"media"`
}

func newItemView(item models.Item) itemView {
	return itemView{Item: item, Media: item.MediaURLs()}
}

func newItemViews(items []models.Item) []itemView {
	views := make([]itemView, len(items))
	for i := range items {
		views[i] = newItemView(items[i])
	}
	return views
}

// moodboardView is the external shape of a board: its items go through
// itemView so their media columns render as lists.
type moodboardView struct {
	models.Moodboard
	Items []itemView `json:"items"`
}

func newMoodboardView(board models.Moodboard) moodboardView {
	return moodboardView{Moodboard: board, Items: newItemViews(board.Items)}
}
