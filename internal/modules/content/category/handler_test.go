package category

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
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

// memoryBackend keeps categories across requests like the real API.
type memoryBackend struct {
	mu   sync.Mutex
	cats []models.Category
}

func (b *memoryBackend) install(s *apitest.Server) {
	s.Handle(http.MethodGet, "/admin/categories", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		apitest.Envelope(w, http.StatusOK, append([]models.Category{}, b.cats...))
	})
	s.Handle(http.MethodPost, "/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			apitest.JSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, c := range b.cats {
			if c.Slug == p.Slug {
				apitest.JSON(w, http.StatusConflict, map[string]any{"success": false, "message": "Category slug already exists"})
				return
			}
		}
		cat := models.Category{ID: "c" + p.Slug, Name: p.Name, Slug: p.Slug, IsActive: p.IsActive}
		b.cats = append(b.cats, cat)
		apitest.Envelope(w, http.StatusCreated, cat)
	})
}

type harness struct {
	router  *gin.Engine
	backend *apitest.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{backend: apitest.New(t)}

	tmpl, err := web.Templates(layout.Funcs())
	require.NoError(t, err)
	storage := auth.NewMemoryStorage()

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(func(c *gin.Context) {
		auth.Bind(c, auth.NewStore(storage, "sid"))
		c.Next()
	})
	NewHandler(h.backend.Client(), zap.NewNop()).RegisterRoutes(r.Group("/dashboard"), func(c *gin.Context) { c.Next() })
	h.router = r
	return h
}

func (h *harness) do(method, path string, form url.Values, header ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryEndToEnd(t *testing.T) {
	h := newHarness(t)
	(&memoryBackend{}).install(h.backend)

	w := h.do(http.MethodPost, "/dashboard/categories/create", url.Values{
		"name":     {"Latest Jobs"},
		"slug":     {""},
		"isActive": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, listPath, w.Header().Get("Location"))

	w = h.do(http.MethodGet, listPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Latest Jobs")
	assert.Contains(t, w.Body.String(), "latest-jobs")
	assert.Contains(t, w.Body.String(), "Active")
}

func TestCreateCategoryShowsConflict(t *testing.T) {
	h := newHarness(t)
	b := &memoryBackend{cats: []models.Category{{ID: "c1", Name: "Result", Slug: "result"}}}
	b.install(h.backend)

	w := h.do(http.MethodPost, "/dashboard/categories/create", url.Values{"name": {"Result"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category slug already exists")
}

func TestCreateCategoryValidation(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/dashboard/categories/create", url.Values{"name": {""}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Name is required")
	assert.Zero(t, h.backend.Count(http.MethodPost, "/admin/categories"))
}

func TestListFiltersFragment(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/admin/categories", http.StatusOK, []models.Category{
		{ID: "1", Name: "Latest Jobs", Slug: "latest-jobs"},
		{ID: "2", Name: "Admit Card", Slug: "admit-card"},
	})

	w := h.do(http.MethodGet, listPath+"?q=admit", nil, "HX-Request", "true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admit Card")
	assert.NotContains(t, w.Body.String(), "Latest Jobs")
	assert.NotContains(t, w.Body.String(), "<html")
}

func TestListLoadFailure(t *testing.T) {
	h := newHarness(t)
	h.backend.Fail(http.MethodGet, "/admin/categories", http.StatusInternalServerError, "boom")

	w := h.do(http.MethodGet, listPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), loadFailed)
	assert.Contains(t, w.Body.String(), "No categories found")
}

func TestEditSendsOriginalSlug(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodGet, "/admin/categories/c1", http.StatusOK, models.Category{ID: "c1", Name: "Result", Slug: "result", IsActive: true})
	h.backend.Reply(http.MethodPut, "/admin/categories/c1", http.StatusOK, models.Category{ID: "c1"})

	w := h.do(http.MethodGet, "/dashboard/categories/c1/edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Update Category")
	assert.NotContains(t, w.Body.String(), "data-slug-from")

	w = h.do(http.MethodPost, "/dashboard/categories/c1/edit", url.Values{
		"name": {"Results"}, "slug": {"result"}, "isActive": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	reqs := h.backend.Requests()
	last := reqs[len(reqs)-1]
	require.Equal(t, http.MethodPut, last.Method)
	var p Payload
	require.NoError(t, json.Unmarshal(last.Body, &p))
	assert.Equal(t, "result", p.Slug)
	assert.Equal(t, "Results", p.Name)
}

func TestDeleteCategoryNeedsConfirmation(t *testing.T) {
	h := newHarness(t)
	h.backend.Reply(http.MethodDelete, "/admin/categories/c1", http.StatusOK, nil)

	w := h.do(http.MethodPost, "/dashboard/categories/c1/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, listPath+"/c1/delete", w.Header().Get("Location"))
	assert.Zero(t, h.backend.Count(http.MethodDelete, "/admin/categories/c1"))

	w = h.do(http.MethodPost, "/dashboard/categories/c1/delete", url.Values{"confirm": {"yes"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, 1, h.backend.Count(http.MethodDelete, "/admin/categories/c1"))
}
