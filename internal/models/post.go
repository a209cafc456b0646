package models

import "time"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Statuses lists every post status in display order.
var Statuses = []string{StatusDraft, StatusPublished, StatusArchived}

// Post is a job, admit-card or result notification.
type Post struct {
	ID               string      `json:"_id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	ShortDescription string      `json:"shortDescription"`
	FullDescription  string      `json:"fullDescription"`
	Category         CategoryRef `json:"category"`
	Organization     string      `json:"organization"`
	PostDate         string      `json:"postDate"`
	LastDate         string      `json:"lastDate"`
	Status           string      `json:"status"`

	ImportantDates []ImportantDate `json:"importantDates"`
	Links          Links           `json:"links"`

	// Older documents carry the links at the top level.
	PrimaryActionLink string `json:"primaryActionLink,omitempty"`
	NotificationPdf   string `json:"notificationPdf,omitempty"`

	AgeLimit                 string               `json:"ageLimit"`
	Fees                     string               `json:"fees"`
	TotalPosts               Text                 `json:"totalPosts"`
	EducationalQualification string               `json:"educationalQualification"`
	CategoryWiseVacancy      []CategoryVacancy    `json:"categoryWiseVacancy"`
	PostWiseVacancy          []PostVacancy        `json:"postWiseVacancy"`
	PhysicalStandardTest     PhysicalStandardTest `json:"physicalStandardTest"`
	PhysicalEfficiencyTest   []PhysicalEfficiency `json:"physicalEfficiencyTest"`
	AvailabilityNote         string               `json:"availabilityNote"`

	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ActionLink returns the primary external link wherever the document keeps it.
func (p *Post) ActionLink() string {
	if p.Links.ApplyLink != "" {
		return p.Links.ApplyLink
	}
	return p.PrimaryActionLink
}

// NotificationLink returns the notification PDF link wherever the document keeps it.
func (p *Post) NotificationLink() string {
	if p.Links.NotificationPdf != "" {
		return p.Links.NotificationPdf
	}
	return p.NotificationPdf
}

// ImportantDate is one labelled date row. Rows are independent; the client
// does not order them.
type ImportantDate struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

type Links struct {
	ApplyLink       string `json:"applyLink"`
	NotificationPdf string `json:"notificationPdf"`
	SyllabusPdf     string `json:"syllabusPdf"`
}

type CategoryVacancy struct {
	Category string `json:"category"`
	Posts    Text   `json:"posts"`
}

type PostVacancy struct {
	PostName    string `json:"postName"`
	TotalPosts  Text   `json:"totalPosts"`
	Eligibility string `json:"eligibility"`
}

// PhysicalStandardTest holds PST rows split by sex.
type PhysicalStandardTest struct {
	Male   []PhysicalStandard `json:"male"`
	Female []PhysicalStandard `json:"female"`
}

type PhysicalStandard struct {
	Category string `json:"category"`
	Height   string `json:"height"`
	Chest    string `json:"chest"`
	Weight   string `json:"weight"`
}

// PhysicalEfficiency is one PET event with its qualifying standard per sex.
type PhysicalEfficiency struct {
	Event  string `json:"event"`
	Male   string `json:"male"`
	Female string `json:"female"`
}

// PostList is one page of the admin posts listing.
type PostList struct {
	Posts      []Post         `json:"posts"`
	Pagination PostPagination `json:"pagination"`
}

type PostPagination struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}
