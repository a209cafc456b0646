package agent

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/dailyexamresult/admin/internal/pkg/form"
	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	createFailed  = "Failed to create Draft"
	processFailed = "Failed to process text. Please try again."
	bulkFailed    = "Bulk upload failed"
	emptyTitle    = "Please enter a job title"
	emptyText     = "Please paste some text to process"
	noTitles      = "The spreadsheet has no job titles"
	badSheet      = "Upload an Excel file (.xlsx or .xls)"
)

// Options configure the agent views.
type Options struct {
	Models       []string
	DefaultModel string
	MaxBytes     int64
}

type createView struct {
	Title   string
	Model   string
	Models  []string
	Message string
	Bulk    *models.BulkResult
}

type processView struct {
	RawText string
	Message string
}

type Handler struct {
	api  *apiclient.Client
	opts Options
	log  *zap.Logger
}

func NewHandler(api *apiclient.Client, opts Options, log *zap.Logger) *Handler {
	if opts.DefaultModel == "" && len(opts.Models) > 0 {
		opts.DefaultModel = opts.Models[0]
	}
	return &Handler{api: api, opts: opts, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/posts", authMW)
	g.GET("/agent", h.processForm)
	g.POST("/agent", h.process)
	g.GET("/agent-create", h.createForm)
	g.POST("/agent-create", h.create)
	g.POST("/agent-create/bulk", h.bulk)
	g.GET("/agent-create/template.xlsx", h.template)
}

func (h *Handler) service(c *gin.Context) *Service {
	return NewService(auth.Client(c, h.api))
}

// model resolves the submitted model against the configured list.
func (h *Handler) model(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" && (len(h.opts.Models) == 0 || slices.Contains(h.opts.Models, raw)) {
		return raw
	}
	return h.opts.DefaultModel
}

func (h *Handler) newCreateView() *createView {
	return &createView{Model: h.opts.DefaultModel, Models: h.opts.Models}
}

func editPath(postID string) string {
	return "/dashboard/posts/" + url.PathEscape(postID) + "/edit?agent=success"
}

func (h *Handler) processForm(c *gin.Context) {
	layout.Render(c, http.StatusOK, "agent/process", "Create with Agent", &processView{})
}

func (h *Handler) process(c *gin.Context) {
	v := &processView{RawText: c.PostForm("rawText")}
	id, err := h.service(c).Process(c.Request.Context(), v.RawText)
	if err != nil {
		status := http.StatusOK
		v.Message = apiclient.Message(err, processFailed)
		if errors.Is(err, ErrEmptyText) {
			status, v.Message = http.StatusUnprocessableEntity, emptyText
		} else {
			h.log.Error("agent process", zap.Error(err))
		}
		layout.Render(c, status, "agent/process", "Create with Agent", v)
		return
	}
	response.SeeOther(c, editPath(id))
}

func (h *Handler) createForm(c *gin.Context) {
	layout.Render(c, http.StatusOK, "agent/create", "Create Post by Title", h.newCreateView())
}

func (h *Handler) create(c *gin.Context) {
	v := h.newCreateView()
	v.Title = c.PostForm("title")
	v.Model = h.model(c.PostForm("model"))

	id, err := h.service(c).CreateByTitle(c.Request.Context(), v.Title, v.Model)
	if err != nil {
		status := http.StatusOK
		v.Message = apiclient.Message(err, createFailed)
		if errors.Is(err, ErrEmptyTitle) {
			status, v.Message = http.StatusUnprocessableEntity, emptyTitle
		} else {
			h.log.Error("agent create by title", zap.String("model", v.Model), zap.Error(err))
		}
		layout.Render(c, status, "agent/create", "Create Post by Title", v)
		return
	}
	response.SeeOther(c, editPath(id))
}

func (h *Handler) bulk(c *gin.Context) {
	v := h.newCreateView()
	render := func(status int, msg string) {
		v.Message = msg
		layout.Render(c, status, "agent/create", "Create Post by Title", v)
	}

	// The body cap must be in place before anything parses the form.
	fh, err := form.File(c, "file", h.opts.MaxBytes)
	if err != nil {
		if errors.Is(err, form.ErrTooLarge) {
			render(http.StatusRequestEntityTooLarge, sheetTooLarge(h.opts.MaxBytes))
			return
		}
		render(http.StatusBadRequest, badSheet)
		return
	}
	v.Model = h.model(c.PostForm("model"))
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		render(http.StatusUnprocessableEntity, badSheet)
		return
	}
	if h.opts.MaxBytes > 0 && fh.Size > h.opts.MaxBytes {
		render(http.StatusRequestEntityTooLarge, sheetTooLarge(h.opts.MaxBytes))
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	// Legacy .xls workbooks are left to the backend to parse.
	if ext == ".xlsx" {
		titles, err := Titles(f)
		if err != nil {
			h.log.Warn("read bulk sheet", zap.String("filename", fh.Filename), zap.Error(err))
			render(http.StatusUnprocessableEntity, badSheet)
			return
		}
		if len(titles) == 0 {
			render(http.StatusUnprocessableEntity, noTitles)
			return
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			response.InternalError(c, err)
			return
		}
	}

	res, err := h.service(c).Bulk(c.Request.Context(), Sheet{Filename: fh.Filename, Body: f}, v.Model)
	if err != nil {
		h.log.Error("agent bulk create", zap.String("filename", fh.Filename), zap.Error(err))
		render(http.StatusOK, bulkFailed)
		return
	}
	v.Bulk = res
	layout.Render(c, http.StatusOK, "agent/create", "Create Post by Title", v)
}

func sheetTooLarge(maxBytes int64) string {
	return "Spreadsheet exceeds " + form.Size(maxBytes) + " limit"
}

func (h *Handler) template(c *gin.Context) {
	body, err := Template()
	if err != nil {
		h.log.Error("build agent template", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Attachment(c, TemplateFilename, xlsxContentType, body)
}
