package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Query{Page: 1, Limit: 100}, Parse("", ""))
	assert.Equal(t, Query{Page: 3, Limit: 50}, Parse("3", "50"))
	assert.Equal(t, Query{Page: 1, Limit: 100}, Parse("-2", "75"))
	assert.Equal(t, Query{Page: 1, Limit: 200}, Parse("abc", "200"))
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/dashboard/posts?page=4&limit=150", nil)
	assert.Equal(t, Query{Page: 4, Limit: 150}, FromContext(c))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 5, Clamp(9, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 1, Clamp(4, 0))
}

func TestRowNumber(t *testing.T) {
	assert.Equal(t, 1, RowNumber(1, 100, 0))
	assert.Equal(t, 151, RowNumber(2, 150, 0))
	assert.Equal(t, 110, RowNumber(2, 100, 9))
}

func numbers(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, 0)
			continue
		}
		out = append(out, it.Number)
	}
	return out
}

func TestWindow(t *testing.T) {
	assert.Nil(t, Window(1, 0))
	assert.Equal(t, []int{1}, numbers(Window(1, 1)))
	assert.Equal(t, []int{1, 2, 3, 0, 10}, numbers(Window(1, 10)))
	assert.Equal(t, []int{1, 0, 4, 5, 6, 7, 8, 0, 10}, numbers(Window(6, 10)))
	assert.Equal(t, []int{1, 0, 8, 9, 10}, numbers(Window(10, 10)))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers(Window(3, 5)))

	for _, it := range Window(6, 10) {
		assert.Equal(t, it.Number == 6, it.Current)
	}
}
