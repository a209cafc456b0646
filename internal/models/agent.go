package models

// AgentDraft is returned by the single-post agent endpoints.
type AgentDraft struct {
	PostID string `json:"postId"`
}

// Bulk row statuses reported by the backend.
const (
	BulkStatusSuccess = "Success"
	BulkStatusFailed  = "Failed"
)

// BulkResult summarizes one spreadsheet submitted to the bulk agent.
type BulkResult struct {
	Total   int          `json:"total"`
	Success int          `json:"success"`
	Failed  int          `json:"failed"`
	Details []BulkDetail `json:"details"`
}

// BulkDetail is the outcome of one spreadsheet row.
type BulkDetail struct {
	Row    int    `json:"row"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Error  string `json:"error"`
	PostID string `json:"postId"`
}

// Succeeded reports whether the row produced a draft.
func (d BulkDetail) Succeeded() bool {
	return d.Status == BulkStatusSuccess
}

// EditPath is the console path of the created draft, or "" when the row failed.
func (d BulkDetail) EditPath() string {
	if d.PostID == "" {
		return ""
	}
	return "/dashboard/posts/" + d.PostID + "/edit"
}
