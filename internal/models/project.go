package models

import "time"

// Status is a closed set of project moderation states
type Status string

// Status constants
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Project represents a submitted portfolio project.
//
// UserName is a snapshot of the owner's name taken at submission time; it is
// not rewritten when the user later renames. UserId may dangle after the
// owning user is deleted, and readers must tolerate that.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	Image        string    `json:"image"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	Status       Status    `json:"status"`
	Likes        int       `json:"likes"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProjectUpdate carries a partial project update. Nil fields are left
// unchanged. Counters and CreatedAt are deliberately absent: likes and views
// only move through the increment operations, CreatedAt never mutates.
type ProjectUpdate struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	GithubURL    *string   `json:"githubUrl,omitempty"`
	LiveURL      *string   `json:"liveUrl,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Status       *Status   `json:"status,omitempty"`
}

// ProjectFilter selects a subset of projects. Every set field is an exact
// match except Search, which is a case-insensitive substring match against
// title, description, or any technology entry. Active fields combine with
// AND; the zero filter matches everything.
type ProjectFilter struct {
	Status   Status
	UserID   string
	Category string
	Search   string
}

// CreateProjectRequest is the payload for project submission
type CreateProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Image        string   `json:"image"`
}

// Analytics holds the derived summary counts over the current collections
type Analytics struct {
	TotalProjects    int `json:"totalProjects"`
	ApprovedProjects int `json:"approvedProjects"`
	PendingProjects  int `json:"pendingProjects"`
	RejectedProjects int `json:"rejectedProjects"`
	TotalUsers       int `json:"totalUsers"`
	TotalViews       int `json:"totalViews"`
	TotalLikes       int `json:"totalLikes"`
}
