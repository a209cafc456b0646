package page

import (
	"net/http"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	listPath   = "/dashboard/pages"
	loadFailed = "Failed to load pages"
	saveFailed = "Failed to save page"
)

type listView struct {
	Query string
	Pages []models.Page
}

// editForm carries the page title for display; only the Update fields are sent.
type editForm struct {
	ID    string
	Title string
	Update
	Message string
}

type Handler struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewHandler(api *apiclient.Client, log *zap.Logger) *Handler {
	return &Handler{api: api, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	pages := rg.Group("/pages", authMW)
	pages.GET("", h.list)
	pages.GET("/:id/edit", h.editForm)
	pages.POST("/:id/edit", h.update)
}

func (h *Handler) service(c *gin.Context) *Service {
	return NewService(auth.Client(c, h.api))
}

func (h *Handler) list(c *gin.Context) {
	q := c.Query("q")
	v := layout.NewView(c, "Static Pages", nil)

	pages, err := h.service(c).List(c.Request.Context())
	if err != nil {
		h.log.Error("list pages", zap.Error(err))
		v.Error = loadFailed
	}
	v.Data = listView{Query: q, Pages: Filter(pages, q)}

	name := "pages/list"
	if layout.IsFragment(c) {
		name = "pages/cards"
	}
	layout.RenderView(c, http.StatusOK, name, v)
}

func (h *Handler) editForm(c *gin.Context) {
	p, err := h.service(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("load page", zap.String("id", c.Param("id")), zap.Error(err))
		status := http.StatusBadGateway
		if apiclient.IsNotFound(err) {
			status = http.StatusNotFound
		}
		v := layout.NewView(c, "Edit Page", nil)
		v.Error = apiclient.Message(err, loadFailed)
		layout.RenderView(c, status, "error", v)
		return
	}
	f := &editForm{
		ID:    p.ID,
		Title: p.Title,
		Update: Update{
			Content:         p.Content,
			MetaTitle:       p.MetaTitle,
			MetaDescription: p.MetaDescription,
		},
	}
	layout.Render(c, http.StatusOK, "pages/form", "Edit: "+p.Title, f)
}

func (h *Handler) update(c *gin.Context) {
	f := &editForm{
		ID:    c.Param("id"),
		Title: c.PostForm("title"),
		Update: Update{
			Content:         c.PostForm("content"),
			MetaTitle:       c.PostForm("metaTitle"),
			MetaDescription: c.PostForm("metaDescription"),
		},
	}
	if err := h.service(c).Update(c.Request.Context(), f.ID, f.Update); err != nil {
		h.log.Error("save page", zap.String("id", f.ID), zap.Error(err))
		f.Message = apiclient.Message(err, saveFailed)
		layout.Render(c, http.StatusOK, "pages/form", "Edit: "+f.Title, f)
		return
	}
	response.SeeOther(c, listPath)
}
