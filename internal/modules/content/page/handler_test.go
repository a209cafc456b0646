package page

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
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

var testPages = []models.Page{
	{ID: "about", Title: "About Us", Slug: "about-us"},
	{ID: "privacy", Title: "Privacy Policy", Slug: "privacy-policy"},
}

func newRouter(t *testing.T, backend *apitest.Server) *gin.Engine {
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
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFilter(t *testing.T) {
	assert.Len(t, Filter(testPages, ""), 2)
	assert.Len(t, Filter(testPages, "PRIVACY"), 1)
	assert.Len(t, Filter(testPages, "about-us"), 1)
	assert.Empty(t, Filter(testPages, "contact"))
}

func TestListFiltersPages(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodGet, "/admin/pages", http.StatusOK, testPages)
	r := newRouter(t, backend)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/dashboard/pages?q=about", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h3>About Us</h3>")
	assert.Contains(t, body, `href="/dashboard/pages/about/edit"`)
	assert.NotContains(t, body, "<h3>Privacy Policy</h3>")
	assert.NotContains(t, body, `href="/dashboard/pages/privacy/edit"`)
}

func TestListEmpty(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodGet, "/admin/pages", http.StatusOK, []models.Page{})
	r := newRouter(t, backend)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/pages", nil)
	req.Header.Set("HX-Request", "true")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No pages found")
}

func TestEditPutsOnlyEditableFields(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodGet, "/admin/pages/about", http.StatusOK, models.Page{
		ID: "about", Title: "About Us", Content: "<p>Hello</p>", MetaTitle: "About",
	})
	backend.Reply(http.MethodPut, "/admin/pages/about", http.StatusOK, nil)
	r := newRouter(t, backend)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/dashboard/pages/about/edit", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edit: About Us")
	assert.Contains(t, w.Body.String(), "&lt;p&gt;Hello&lt;/p&gt;")

	form := url.Values{"title": {"About Us"}, "content": {"<p>Updated</p>"}, "metaTitle": {"About"}, "metaDescription": {"Who we are"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/pages/about/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = serve(r, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, listPath, w.Header().Get("Location"))

	var body map[string]any
	reqs := backend.Requests()
	require.NoError(t, json.Unmarshal(reqs[len(reqs)-1].Body, &body))
	assert.Equal(t, map[string]any{
		"content":         "<p>Updated</p>",
		"metaTitle":       "About",
		"metaDescription": "Who we are",
	}, body)
}

func TestEditSaveFailureKeepsInput(t *testing.T) {
	backend := apitest.New(t)
	backend.Fail(http.MethodPut, "/admin/pages/about", http.StatusInternalServerError, "")
	r := newRouter(t, backend)

	form := url.Values{"title": {"About Us"}, "metaTitle": {"Kept"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/pages/about/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), saveFailed)
	assert.Contains(t, w.Body.String(), `value="Kept"`)
}
