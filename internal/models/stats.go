package models

// DashboardStats is the body of GET /admin/dashboard/stats.
type DashboardStats struct {
	Overview        StatsOverview    `json:"overview"`
	PostsByStatus   map[string]int64 `json:"postsByStatus"`
	PostsByCategory []CategoryCount  `json:"postsByCategory"`
	RecentPosts     []Post           `json:"recentPosts"`
}

type StatsOverview struct {
	TotalPosts      int64 `json:"totalPosts"`
	ActivePosts     int64 `json:"activePosts"`
	ExpiredPosts    int64 `json:"expiredPosts"`
	TotalCategories int64 `json:"totalCategories"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
