package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func pagingContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPagingURLKeepsFilters(t *testing.T) {
	c := pagingContext(t, "http://example.com/api/books?category=Fiction&search=premchand&page=1&limit=12")
	h := &HTTPHelper{}

	url := h.GetPagingURL(c, 2, 12)
	require.Contains(t, url, "category=Fiction")
	require.Contains(t, url, "search=premchand")
	require.Contains(t, url, "page=2")
	require.Contains(t, url, "limit=12")
}

func TestGeneratePagingLinks(t *testing.T) {
	c := pagingContext(t, "http://example.com/api/books?condition=Good&page=2&limit=10")
	h := &HTTPHelper{}

	paging := h.GeneratePaging(c, 10, 2, 35)
	require.EqualValues(t, 4, paging["total_pages"])

	links := paging["links"].(map[string]interface{})
	require.Contains(t, links["previous"], "page=1")
	require.Contains(t, links["previous"], "condition=Good")
	require.Contains(t, links["next"], "page=3")
	require.Contains(t, links["next"], "condition=Good")
}

func TestUnderscore(t *testing.T) {
	require.Equal(t, "seller_name", Underscore("SellerName"))
	require.Equal(t, "bio", Underscore("Bio"))
}
