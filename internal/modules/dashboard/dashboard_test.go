package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient/apitest"
	"github.com/dailyexamresult/admin/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() { gin.SetMode(gin.TestMode) }

func TestNewOverviewZeroOnNil(t *testing.T) {
	o := NewOverview(nil)
	require.Len(t, o.Cards, 4)
	for _, c := range o.Cards {
		assert.Zero(t, c.Value)
	}
	assert.Empty(t, o.Recent)
}

func TestNewOverviewKeepsTopFiveCategories(t *testing.T) {
	s := &models.DashboardStats{Overview: models.StatsOverview{TotalPosts: 42, TotalCategories: 7}}
	for i := 0; i < 7; i++ {
		s.PostsByCategory = append(s.PostsByCategory, models.CategoryCount{Category: string(rune('A' + i)), Count: int64(i)})
	}
	o := NewOverview(s)
	assert.Len(t, o.ByCategory, 5)
	assert.Equal(t, int64(42), o.Cards[0].Value)
	assert.Equal(t, int64(7), o.Cards[3].Value)
}

func render(t *testing.T, backend *apitest.Server) *httptest.ResponseRecorder {
	t.Helper()
	tmpl, err := web.Templates(layout.Funcs())
	require.NoError(t, err)
	storage := auth.NewMemoryStorage()

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(func(c *gin.Context) {
		auth.Bind(c, auth.NewStore(storage, "sid"))
		c.Next()
	})
	NewHandler(backend.Client(), zap.NewNop()).RegisterRoutes(r.Group("/dashboard"), func(c *gin.Context) { c.Next() })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	return w
}

func TestOverviewRendersStats(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodGet, "/admin/dashboard/stats", http.StatusOK, models.DashboardStats{
		Overview:        models.StatsOverview{TotalPosts: 128, ActivePosts: 100},
		PostsByStatus:   map[string]int64{"published": 100, "draft": 28},
		PostsByCategory: []models.CategoryCount{{Category: "Latest Jobs", Count: 90}},
		RecentPosts:     []models.Post{{ID: "p1", Title: "SSC GD Result", Status: "published"}},
	})

	w := render(t, backend)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "128")
	assert.Contains(t, body, "Latest Jobs")
	assert.Contains(t, body, "SSC GD Result")
	assert.Contains(t, body, `class="nav-item active">Overview`)
}

func TestOverviewFailureShowsZeros(t *testing.T) {
	backend := apitest.New(t)
	backend.Fail(http.MethodGet, "/admin/dashboard/stats", http.StatusInternalServerError, "down")

	w := render(t, backend)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No posts yet")
	assert.Contains(t, w.Body.String(), "No data available")
}
