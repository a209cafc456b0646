package dashboard

import (
	"context"
	"net/http"

	"github.com/dailyexamresult/admin/internal/models"
	"github.com/dailyexamresult/admin/internal/modules/auth"
	"github.com/dailyexamresult/admin/internal/modules/layout"
	"github.com/dailyexamresult/admin/internal/pkg/apiclient"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const topCategories = 5

// Card is one overview tile.
type Card struct {
	Title string
	Value int64
	Tone  string
}

// Overview is the dashboard page data. A failed stats call yields zeros.
type Overview struct {
	Cards      []Card
	ByStatus   map[string]int64
	ByCategory []models.CategoryCount
	Recent     []models.Post
}

func NewOverview(s *models.DashboardStats) Overview {
	if s == nil {
		s = &models.DashboardStats{}
	}
	o := Overview{
		Cards: []Card{
			{Title: "Total Posts", Value: s.Overview.TotalPosts, Tone: "blue"},
			{Title: "Active Posts", Value: s.Overview.ActivePosts, Tone: "green"},
			{Title: "Expired Posts", Value: s.Overview.ExpiredPosts, Tone: "orange"},
			{Title: "Categories", Value: s.Overview.TotalCategories, Tone: "purple"},
		},
		ByStatus:   s.PostsByStatus,
		ByCategory: s.PostsByCategory,
		Recent:     s.RecentPosts,
	}
	if len(o.ByCategory) > topCategories {
		o.ByCategory = o.ByCategory[:topCategories]
	}
	return o
}

func Stats(ctx context.Context, api *apiclient.Client) (*models.DashboardStats, error) {
	var s models.DashboardStats
	if err := api.Get(ctx, "/admin/dashboard/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

type Handler struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewHandler(api *apiclient.Client, log *zap.Logger) *Handler {
	return &Handler{api: api, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", authMW, h.overview)
}

func (h *Handler) overview(c *gin.Context) {
	s, err := Stats(c.Request.Context(), auth.Client(c, h.api))
	if err != nil {
		h.log.Warn("load dashboard stats", zap.Error(err))
	}
	layout.Render(c, http.StatusOK, "dashboard", "Dashboard Overview", NewOverview(s))
}
