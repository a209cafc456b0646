package post

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/dailyexamresult/admin/internal/pkg/form"
	"github.com/dailyexamresult/admin/internal/pkg/pagination"
	"github.com/dailyexamresult/admin/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	listPath      = "/dashboard/posts"
	agentBanner   = "Draft created by the agent. Review the details below and publish when ready."
	postNotFound  = "Post not found"
	postLoadError = "Failed to load post"
)

type listView struct {
	Snapshot
	Categories   []models.Category
	Statuses     []string
	LimitOptions []int
}

// PageURL links to page p under the current filters.
func (v listView) PageURL(p int) string {
	s := v.State
	s.Page = p
	return listPath + "?" + s.Values().Encode()
}

type Handler struct {
	api      *apiclient.Client
	registry *Registry
	log      *zap.Logger
}

func NewHandler(api *apiclient.Client, registry *Registry, log *zap.Logger) *Handler {
	return &Handler{api: api, registry: registry, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/posts", authMW)
	posts.GET("", h.list)
	posts.GET("/search", h.search)
	posts.GET("/create", h.newForm)
	posts.POST("/create", h.create)
	posts.GET("/:id/edit", h.editForm)
	posts.POST("/:id/edit", h.update)
	posts.GET("/:id/delete", h.confirmDelete)
	posts.POST("/:id/delete", h.delete)
	posts.GET("/:id/preview", h.preview)
}

func (h *Handler) service(c *gin.Context) *Service {
	return NewService(auth.Client(c, h.api))
}

func (h *Handler) controller(c *gin.Context) *Controller {
	store := auth.FromContext(c)
	return h.registry.Get(store.SessionID(), store.GetToken(c.Request.Context()))
}

// stateFromQuery reads the list parameters; absent ones keep cur.
func stateFromQuery(c *gin.Context, cur ListState) ListState {
	want := cur
	if v, ok := c.GetQuery("page"); ok {
		want.Page = form.Int(v, pagination.DefaultPage)
	}
	if v, ok := c.GetQuery("limit"); ok {
		want.Limit = form.Int(v, pagination.DefaultLimit)
	}
	if v, ok := c.GetQuery("status"); ok {
		want.Status = v
	}
	if v, ok := c.GetQuery("category"); ok {
		want.Category = v
	}
	if v, ok := c.GetQuery("search"); ok {
		want.Search = v
	}
	return want
}

func (h *Handler) list(c *gin.Context) {
	ctrl := h.controller(c)
	ctx := c.Request.Context()

	var (
		snap Snapshot
		cats []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if c.Request.URL.RawQuery == "" && ctrl.Snapshot().Phase != PhaseIdle {
			snap = ctrl.Refresh(gctx)
			return nil
		}
		snap = ctrl.Navigate(gctx, stateFromQuery(c, ctrl.Snapshot().State))
		return nil
	})
	g.Go(func() error {
		var err error
		cats, err = h.service(c).Categories(gctx)
		if err != nil {
			h.log.Warn("load category filter", zap.Error(err))
		}
		return nil
	})
	_ = g.Wait()

	h.renderList(c, snap, cats, "")
}

func (h *Handler) renderList(c *gin.Context, snap Snapshot, cats []models.Category, errMsg string) {
	data := listView{
		Snapshot:     snap,
		Categories:   cats,
		Statuses:     models.Statuses,
		LimitOptions: pagination.LimitOptions,
	}
	if layout.IsFragment(c) {
		response.HTML(c, http.StatusOK, "posts/results", data)
		return
	}
	v := layout.NewView(c, "Posts", data)
	v.Error = errMsg
	layout.RenderView(c, http.StatusOK, "posts/list", v)
}

// search is the live search endpoint. Each keystroke request waits for the
// debounced fetch; requests overtaken by newer input return 204.
func (h *Handler) search(c *gin.Context) {
	ctrl := h.controller(c)
	ticket := ctrl.SetSearch(c.Query("q"))
	snap, ok := ctrl.Await(c.Request.Context(), ticket)
	if !ok {
		response.NoContent(c)
		return
	}
	response.HTML(c, http.StatusOK, "posts/results", listView{
		Snapshot:     snap,
		Statuses:     models.Statuses,
		LimitOptions: pagination.LimitOptions,
	})
}

func (h *Handler) newForm(c *gin.Context) {
	f := NewCreateForm()
	h.loadCategories(c, f)
	layout.Render(c, http.StatusOK, "posts/form", "Create Post", f)
}

func (h *Handler) create(c *gin.Context) {
	f := NewCreateForm()
	h.submit(c, f)
}

func (h *Handler) editForm(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	svc := h.service(c)

	var (
		p    *models.Post
		cats []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = svc.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		if cats, err = svc.Categories(gctx); err != nil {
			h.log.Warn("load post categories", zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		h.postError(c, err)
		return
	}

	f := NewEditForm(p)
	if len(cats) > 0 {
		f.Categories = cats
	}
	if c.Query("agent") == "success" {
		f.Banner = agentBanner
	}
	layout.Render(c, http.StatusOK, "posts/form", "Edit Post", f)
}

func (h *Handler) update(c *gin.Context) {
	f := &Form{ID: c.Param("id"), Edit: true, Errors: form.ValidationErrors{}}
	h.submit(c, f)
}

// submit handles row edits and saves. Add and remove actions re-render the
// form without calling the backend.
func (h *Handler) submit(c *gin.Context, f *Form) {
	if err := c.Request.ParseForm(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	f.Apply(c.Request.PostForm)
	h.loadCategories(c, f)

	title := "Create Post"
	if f.Edit {
		title = "Edit Post"
	}

	switch verb, list, idx := form.Action(c.PostForm("action")); verb {
	case "add":
		f.AddRow(list)
		layout.Render(c, http.StatusOK, "posts/form", title, f)
		return
	case "remove":
		f.RemoveRow(list, idx)
		layout.Render(c, http.StatusOK, "posts/form", title, f)
		return
	case "refresh":
		layout.Render(c, http.StatusOK, "posts/form", title, f)
		return
	}

	if err := f.Validate(); err != nil {
		layout.Render(c, http.StatusUnprocessableEntity, "posts/form", title, f)
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
		h.log.Error("save post", zap.String("id", f.ID), zap.Error(err))
		f.Message = apiclient.Message(err, saveFailed)
		layout.Render(c, http.StatusOK, "posts/form", title, f)
		return
	}
	response.SeeOther(c, listPath)
}

func (h *Handler) loadCategories(c *gin.Context, f *Form) {
	cats, err := h.service(c).Categories(c.Request.Context())
	if err != nil {
		h.log.Warn("load post categories", zap.Error(err))
		return
	}
	f.Categories = cats
}

func (h *Handler) confirmDelete(c *gin.Context) {
	layout.Render(c, http.StatusOK, "confirm", "Delete Post", layout.Confirm{
		Message: "Are you sure you want to delete this post?",
		Action:  listPath + "/" + url.PathEscape(c.Param("id")) + "/delete",
		Cancel:  listPath,
	})
}

func (h *Handler) delete(c *gin.Context) {
	ctrl := h.controller(c)
	snap, err := ctrl.Delete(c.Request.Context(), c.Param("id"), form.Confirmed(c.PostForm("confirm")))
	switch {
	case errors.Is(err, ErrNotConfirmed):
		response.SeeOther(c, listPath+"/"+url.PathEscape(c.Param("id"))+"/delete")
		return
	case err != nil:
		h.renderList(c, snap, nil, apiclient.Message(err, deleteFailed))
		return
	}
	cats, err := h.service(c).Categories(c.Request.Context())
	if err != nil {
		h.log.Warn("load category filter", zap.Error(err))
	}
	h.renderList(c, snap, cats, "")
}

func (h *Handler) preview(c *gin.Context) {
	p, err := h.service(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.postError(c, err)
		return
	}
	layout.Render(c, http.StatusOK, "posts/preview", "Preview: "+p.Title, NewPreview(p))
}

func (h *Handler) postError(c *gin.Context, err error) {
	h.log.Error("load post", zap.String("id", c.Param("id")), zap.Error(err))
	status, msg := http.StatusBadGateway, postLoadError
	if apiclient.IsNotFound(err) {
		status, msg = http.StatusNotFound, postNotFound
	}
	v := layout.NewView(c, "Post", nil)
	v.Error = msg
	layout.RenderView(c, status, "error", v)
}

// PageLabel formats the summary line under the table.
func (v listView) PageLabel() string {
	return "Page " + strconv.Itoa(v.State.Page) + " of " + strconv.Itoa(max(v.Pages, 1))
}
