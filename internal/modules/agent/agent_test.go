package agent

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func init() { gin.SetMode(gin.TestMode) }

var testModels = []string{"gemini-2.5-flash", "gemini-2.0-flash"}

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
	NewHandler(backend.Client(), Options{Models: testModels, MaxBytes: 5 << 20}, zap.NewNop()).
		RegisterRoutes(r.Group("/dashboard"), func(c *gin.Context) { c.Next() })
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sheetRequest(t *testing.T, filename string, body []byte, model string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("model", model))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/dashboard/posts/agent-create/bulk", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestTemplateWorkbook(t *testing.T) {
	body, err := Template()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Template"}, f.GetSheetList())

	rows, err := f.GetRows("Template")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Job Title", rows[0][0])

	titles, err := Titles(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, sampleTitles, titles)
}

func TestTitlesRequiresHeader(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, err = Titles(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)
}

func TestTemplateDownloadMakesNoBackendCall(t *testing.T) {
	backend := apitest.New(t)
	r := newRouter(t, backend)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/dashboard/posts/agent-create/template.xlsx", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Agent_v2_Template.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
	assert.Empty(t, backend.Requests())
}

func TestCreateByTitleRedirectsToEdit(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodPost, "/admin/ai/create-by-title", http.StatusOK, models.AgentDraft{PostID: "p42"})
	r := newRouter(t, backend)

	w := serve(r, postForm("/dashboard/posts/agent-create", url.Values{"title": {"SSC GD 2026"}, "model": {"unknown-model"}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/posts/p42/edit?agent=success", w.Header().Get("Location"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(backend.Requests()[0].Body, &body))
	assert.Equal(t, "SSC GD 2026", body["title"])
	assert.Equal(t, "gemini-2.5-flash", body["model"])
}

func TestCreateByTitleRejectsEmptyLocally(t *testing.T) {
	backend := apitest.New(t)
	r := newRouter(t, backend)

	w := serve(r, postForm("/dashboard/posts/agent-create", url.Values{"title": {"   "}}))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), emptyTitle)
	assert.Empty(t, backend.Requests())
}

func TestCreateByTitleShowsBackendMessage(t *testing.T) {
	backend := apitest.New(t)
	backend.Fail(http.MethodPost, "/admin/ai/create-by-title", http.StatusBadGateway, "Model quota exceeded")
	r := newRouter(t, backend)

	w := serve(r, postForm("/dashboard/posts/agent-create", url.Values{"title": {"X"}}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Model quota exceeded")
	assert.Contains(t, w.Body.String(), `value="X"`)
}

func TestProcessRedirectsToEdit(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodPost, "/admin/ai/process", http.StatusOK, models.AgentDraft{PostID: "p7"})
	r := newRouter(t, backend)

	w := serve(r, postForm("/dashboard/posts/agent", url.Values{"rawText": {"Recruitment notice ..."}}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/posts/p7/edit?agent=success", w.Header().Get("Location"))
}

func TestProcessFailureFallbackMessage(t *testing.T) {
	backend := apitest.New(t)
	backend.Fail(http.MethodPost, "/admin/ai/process", http.StatusInternalServerError, "")
	r := newRouter(t, backend)

	w := serve(r, postForm("/dashboard/posts/agent", url.Values{"rawText": {"text"}}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), processFailed)
}

func TestBulkRendersPerRowResults(t *testing.T) {
	backend := apitest.New(t)
	backend.Reply(http.MethodPost, "/admin/ai/bulk-create", http.StatusOK, models.BulkResult{
		Total: 3, Success: 2, Failed: 1,
		Details: []models.BulkDetail{
			{Row: 2, Title: "UP Police", Status: models.BulkStatusSuccess, PostID: "a1"},
			{Row: 3, Title: "RRB Technician", Status: models.BulkStatusFailed, Error: "No sources found"},
			{Row: 4, Title: "SSC GD", Status: models.BulkStatusSuccess, PostID: "a3"},
		},
	})
	r := newRouter(t, backend)
	sheet, err := Template()
	require.NoError(t, err)

	w := serve(r, sheetRequest(t, "jobs.xlsx", sheet, "gemini-2.0-flash"))
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "No sources found")
	assert.Contains(t, page, `href="/dashboard/posts/a1/edit"`)
	assert.Contains(t, page, `href="/dashboard/posts/a3/edit"`)
	assert.Equal(t, 2, strings.Count(page, "Edit Draft"))

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Contains(t, string(reqs[0].Body), "gemini-2.0-flash")
	assert.Contains(t, string(reqs[0].Body), `filename="jobs.xlsx"`)
}

func TestBulkWholeRequestFailure(t *testing.T) {
	backend := apitest.New(t)
	backend.Fail(http.MethodPost, "/admin/ai/bulk-create", http.StatusInternalServerError, "crashed")
	r := newRouter(t, backend)
	sheet, err := Template()
	require.NoError(t, err)

	w := serve(r, sheetRequest(t, "jobs.xlsx", sheet, ""))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), bulkFailed)
}

func TestBulkRejectsBadFilesLocally(t *testing.T) {
	backend := apitest.New(t)
	r := newRouter(t, backend)

	w := serve(r, sheetRequest(t, "jobs.csv", []byte("Job Title\nA\n"), ""))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Job Title"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	w = serve(r, sheetRequest(t, "empty.xlsx", buf.Bytes(), ""))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), noTitles)

	assert.Empty(t, backend.Requests())
}

func TestBulkRejectsOversizedUpload(t *testing.T) {
	backend := apitest.New(t)
	r := newRouter(t, backend)

	cases := map[string]struct {
		size    int
		chunked bool
	}{
		"declared length over cap": {size: 7 << 20},
		"streamed body over cap":   {size: 7 << 20, chunked: true},
		"file over limit":          {size: 5<<20 + 512<<10},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := sheetRequest(t, "jobs.xlsx", bytes.Repeat([]byte("x"), tc.size), "")
			if tc.chunked {
				req.ContentLength = -1
			}
			w := serve(r, req)
			assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
			assert.Contains(t, w.Body.String(), "Spreadsheet exceeds 5MB limit")
		})
	}
	assert.Empty(t, backend.Requests())
}

func TestBulkDetailEditPath(t *testing.T) {
	assert.Empty(t, models.BulkDetail{Status: models.BulkStatusFailed}.EditPath())
	assert.Equal(t, "/dashboard/posts/x/edit", models.BulkDetail{PostID: "x"}.EditPath())
}
