package category

import (
	"net/http"
	"net/url"

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
	listPath     = "/dashboard/categories"
	loadFailed   = "Failed to load categories"
	deleteFailed = "Failed to delete category"
)

type listView struct {
	Query      string
	Categories []models.Category
	Total      int
}

type Handler struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewHandler(api *apiclient.Client, log *zap.Logger) *Handler {
	return &Handler{api: api, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	cats := rg.Group("/categories", authMW)
	cats.GET("", h.list)
	cats.GET("/create", h.newForm)
	cats.POST("/create", h.create)
	cats.GET("/:id/edit", h.editForm)
	cats.POST("/:id/edit", h.update)
	cats.GET("/:id/delete", h.confirmDelete)
	cats.POST("/:id/delete", h.delete)
}

func (h *Handler) service(c *gin.Context) *Service {
	return NewService(auth.Client(c, h.api))
}

func (h *Handler) list(c *gin.Context) {
	h.renderList(c, "")
}

func (h *Handler) renderList(c *gin.Context, errMsg string) {
	q := c.Query("q")
	v := layout.NewView(c, "Categories", nil)
	v.Error = errMsg

	cats, err := h.service(c).List(c.Request.Context())
	if err != nil {
		h.log.Error("list categories", zap.Error(err))
		if v.Error == "" {
			v.Error = loadFailed
		}
	}
	filtered := Filter(cats, q)
	v.Data = listView{Query: q, Categories: filtered, Total: len(cats)}

	name := "categories/list"
	if layout.IsFragment(c) {
		name = "categories/rows"
	}
	layout.RenderView(c, http.StatusOK, name, v)
}

func (h *Handler) newForm(c *gin.Context) {
	layout.Render(c, http.StatusOK, "categories/form", "Create Category", NewCreateForm())
}

func (h *Handler) create(c *gin.Context) {
	f := NewCreateForm()
	f.Apply(bindValues(c))
	h.save(c, f)
}

func (h *Handler) editForm(c *gin.Context) {
	cat, err := h.service(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("load category", zap.String("id", c.Param("id")), zap.Error(err))
		status := http.StatusBadGateway
		if apiclient.IsNotFound(err) {
			status = http.StatusNotFound
		}
		v := layout.NewView(c, "Edit Category", nil)
		v.Error = apiclient.Message(err, loadFailed)
		layout.RenderView(c, status, "error", v)
		return
	}
	layout.Render(c, http.StatusOK, "categories/form", "Edit Category", NewEditForm(cat))
}

func (h *Handler) update(c *gin.Context) {
	f := &Form{ID: c.Param("id"), Edit: true}
	f.Apply(bindValues(c))
	h.save(c, f)
}

func (h *Handler) save(c *gin.Context, f *Form) {
	title := "Create Category"
	if f.Edit {
		title = "Edit Category"
	}
	if err := f.Validate(); err != nil {
		layout.Render(c, http.StatusUnprocessableEntity, "categories/form", title, f)
		return
	}

	ctx := c.Request.Context()
	var err error
	if f.Edit {
		_, err = h.service(c).Update(ctx, f.ID, f.Payload())
	} else {
		_, err = h.service(c).Create(ctx, f.Payload())
	}
	if err != nil {
		h.log.Error("save category", zap.String("id", f.ID), zap.Error(err))
		f.Message = apiclient.Message(err, saveFailed)
		layout.Render(c, http.StatusOK, "categories/form", title, f)
		return
	}
	response.SeeOther(c, listPath)
}

func (h *Handler) confirmDelete(c *gin.Context) {
	layout.Render(c, http.StatusOK, "confirm", "Delete Category", layout.Confirm{
		Message: "Are you sure you want to delete this category?",
		Action:  listPath + "/" + url.PathEscape(c.Param("id")) + "/delete",
		Cancel:  listPath,
	})
}

func (h *Handler) delete(c *gin.Context) {
	if !form.Confirmed(c.PostForm("confirm")) {
		response.SeeOther(c, listPath+"/"+url.PathEscape(c.Param("id"))+"/delete")
		return
	}
	if err := h.service(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error("delete category", zap.String("id", c.Param("id")), zap.Error(err))
		h.renderList(c, apiclient.Message(err, deleteFailed))
		return
	}
	response.SeeOther(c, listPath)
}

func bindValues(c *gin.Context) Values {
	return Values{
		Name:               c.PostForm("name"),
		Slug:               c.PostForm("slug"),
		Description:        c.PostForm("description"),
		DisplayOrder:       c.PostForm("displayOrder"),
		IsActive:           c.PostForm("isActive"),
		PrimaryActionLabel: c.PostForm("primaryActionLabel"),
	}
}
