package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"mooduck/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// pageTestApp serves a synthetic collection of `total` integers through the
// standard pagination helpers.
func pageTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/things", func(c *fiber.Ctx) error {
		total, _ := strconv.Atoi(c.Query("total"))
		p := parsePageParams(c)

		rows := make([]int, 0, p.Lookahead())
		for i := p.Offset(); i < total && len(rows) < p.Lookahead(); i++ {
			rows = append(rows, i)
		}
		return c.JSON(buildPage(c, p, rows))
	})
	return app
}

type intPage struct {
	Page     int     `json:"page"`
	Limit    int     `json:"limit"`
	PrevPage *string `json:"prev_page"`
	NextPage *string `json:"next_page"`
	Amount   int     `json:"amount"`
	Items    []int   `json:"items"`
}

func getPage(t *testing.T, app *fiber.App, url string) intPage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page intPage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}

func TestBuildPage_MiddlePage(t *testing.T) {
	app := pageTestApp()
	page := getPage(t, app, "/things?total=25&page=2&limit=10")

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 10, page.Amount)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, page.Items)
	if assert.NotNil(t, page.PrevPage) {
		assert.Contains(t, *page.PrevPage, "page=1")
		assert.Contains(t, *page.PrevPage, "limit=10")
	}
	if assert.NotNil(t, page.NextPage) {
		assert.Contains(t, *page.NextPage, "page=3")
	}
}

func TestBuildPage_FirstPageHasNoPrev(t *testing.T) {
	app := pageTestApp()
	page := getPage(t, app, "/things?total=25&page=1&limit=10")

	assert.Nil(t, page.PrevPage)
	assert.NotNil(t, page.NextPage)
	assert.Equal(t, 10, page.Amount)
}

func TestBuildPage_LastPageHasNoNext(t *testing.T) {
	app := pageTestApp()
	page := getPage(t, app, "/things?total=25&page=3&limit=10")

	assert.NotNil(t, page.PrevPage)
	assert.Nil(t, page.NextPage)
	assert.Equal(t, 5, page.Amount)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, page.Items)
}

func TestBuildPage_ExactBoundaryHasNoNext(t *testing.T) {
	// 20 rows at limit 10: page 2 is full but nothing follows it
	app := pageTestApp()
	page := getPage(t, app, "/things?total=20&page=2&limit=10")

	assert.Equal(t, 10, page.Amount)
	assert.Nil(t, page.NextPage)
}

func TestBuildPage_EmptyResult(t *testing.T) {
	app := pageTestApp()
	page := getPage(t, app, "/things?total=0&page=1&limit=10")

	assert.Equal(t, 0, page.Amount)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.PrevPage)
	assert.Nil(t, page.NextPage)
}

func TestBuildPage_PreservesOtherQueryParams(t *testing.T) {
	app := pageTestApp()
	page := getPage(t, app, "/things?total=25&page=2&limit=10&search=ducks")

	if assert.NotNil(t, page.NextPage) {
		assert.Contains(t, *page.NextPage, "search=ducks")
		assert.Contains(t, *page.NextPage, "total=25")
	}
}

func TestParsePageParams_Defaults(t *testing.T) {
	app := fiber.New()
	var got PageParams
	app.Get("/", func(c *fiber.Ctx) error {
		got = parsePageParams(c)
		return c.SendStatus(http.StatusOK)
	})

	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/", 1, defaultPageLimit},
		{"/?page=0&limit=0", 1, defaultPageLimit},
		{"/?page=-3&limit=-5", 1, defaultPageLimit},
		{"/?page=4&limit=20", 4, 20},
		{"/?limit=100000", 1, maxPageLimit},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.url, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, tc.wantPage, got.Page, tc.url)
		assert.Equal(t, tc.wantLimit, got.Limit, tc.url)
	}
}

func TestPageParams_OffsetAndLookahead(t *testing.T) {
	p := PageParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 21, p.Lookahead())
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "item ID", humanizeParam("itemId"))
	assert.Equal(t, "comment ID", humanizeParam("commentId"))
	assert.Equal(t, "weird", humanizeParam("weird"))
}

func TestParseID_Invalid(t *testing.T) {
	app := fiber.New()
	s := &Server{}
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		if _, err := s.parseID(c, "id"); err != nil {
			return nil
		}
		return c.SendStatus(http.StatusOK)
	})

	for _, bad := range []string{"abc", "0", "-4"} {
		req := httptest.NewRequest(http.MethodGet, "/things/"+bad, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
	}

	req := httptest.NewRequest(http.MethodGet, "/things/12", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestItemView_MediaRendersAsList(t *testing.T) {
	item := models.Item{ID: 3, Name: "dusk", ItemType: models.ItemTypeImage}
	item.SetMediaURLs([]string{"/media/a.png", "/media/b.png"})

	raw, err := json.Marshal(newItemView(item))
	assert.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"media":["/media/a.png","/media/b.png"]`)
	assert.False(t, strings.Contains(body, `"media":"/media`), "media must not render as the raw column")
}

func TestItemView_EmptyMedia(t *testing.T) {
	item := models.Item{ID: 3, Name: "dusk", ItemType: models.ItemTypeState}

	raw, err := json.Marshal(newItemView(item))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"media":[]`)
}

func TestMoodboardView_WrapsItems(t *testing.T) {
	board := models.Moodboard{ID: 9, Name: "autumn"}
	withMedia := models.Item{ID: 1, Name: "leaves", ItemType: models.ItemTypeImage}
	withMedia.SetMediaURLs([]string{"/media/leaves.png"})
	board.Items = []models.Item{withMedia}

	raw, err := json.Marshal(newMoodboardView(board))
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"media":["/media/leaves.png"]`)
}
