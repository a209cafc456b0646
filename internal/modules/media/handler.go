package media

import (
	"errors"
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
	listPath     = "/dashboard/media"
	loadFailed   = "Failed to load media"
	uploadFailed = "Upload failed"
	deleteFailed = "Failed to delete file"
	uploaded     = "File uploaded"
)

type listView struct {
	Files []models.MediaFile
}

type Handler struct {
	api      *apiclient.Client
	checker  Checker
	maxBytes int64
	log      *zap.Logger
}

func NewHandler(api *apiclient.Client, maxBytes int64, log *zap.Logger) *Handler {
	return &Handler{api: api, checker: NewChecker(maxBytes), maxBytes: maxBytes, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	m := rg.Group("/media", authMW)
	m.GET("", h.list)
	m.POST("/upload", h.upload)
	m.GET("/:id/delete", h.confirmDelete)
	m.POST("/:id/delete", h.delete)
}

func (h *Handler) service(c *gin.Context) *Service {
	return NewService(auth.Client(c, h.api), h.checker)
}

func (h *Handler) list(c *gin.Context) {
	h.render(c, http.StatusOK, c.Query("flash"), "")
}

func (h *Handler) render(c *gin.Context, status int, flash, errMsg string) {
	v := layout.NewView(c, "Media Library", nil)
	v.Flash = flash
	v.Error = errMsg
	files, err := h.service(c).List(c.Request.Context())
	if err != nil {
		h.log.Error("list media", zap.Error(err))
		if v.Error == "" {
			v.Error = loadFailed
		}
	}
	v.Data = listView{Files: files}
	layout.RenderView(c, status, "media/list", v)
}

func (h *Handler) upload(c *gin.Context) {
	fh, err := form.File(c, "file", h.maxBytes)
	if err != nil {
		if errors.Is(err, form.ErrTooLarge) {
			h.tooLarge(c)
			return
		}
		h.render(c, http.StatusBadRequest, "", "Choose a file to upload")
		return
	}

	ctype := ContentType(fh.Filename, fh.Header.Get("Content-Type"))
	if err := h.checker.Check(fh.Size, ctype); err != nil {
		h.render(c, http.StatusUnprocessableEntity, "", err.Error())
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	_, err = h.service(c).Upload(c.Request.Context(), Upload{
		Filename:    fh.Filename,
		ContentType: ctype,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		h.log.Error("upload media", zap.String("filename", fh.Filename), zap.Error(err))
		h.render(c, http.StatusOK, "", apiclient.Message(err, uploadFailed))
		return
	}
	response.SeeOther(c, listPath+"?flash="+url.QueryEscape(uploaded))
}

func (h *Handler) tooLarge(c *gin.Context) {
	h.render(c, http.StatusRequestEntityTooLarge, "", h.checker.Check(h.maxBytes+1, "").Error())
}

func (h *Handler) confirmDelete(c *gin.Context) {
	layout.Render(c, http.StatusOK, "confirm", "Delete File", layout.Confirm{
		Message: "Are you sure you want to delete this file?",
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
		h.log.Error("delete media", zap.String("id", c.Param("id")), zap.Error(err))
		h.render(c, http.StatusOK, "", apiclient.Message(err, deleteFailed))
		return
	}
	response.SeeOther(c, listPath)
}
