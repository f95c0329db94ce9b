package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/farvue/cms/internal/domain/client"
)

// ServiceType names the service line a project belongs to.
type ServiceType string

const (
	ServiceVideoEditing   ServiceType = "video-editing"
	ServiceShortForm      ServiceType = "short-form"
	ServiceDesign         ServiceType = "design"
	ServiceWebDevelopment ServiceType = "web-development"
	ServiceAIAutomation   ServiceType = "ai-automation"
)

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceVideoEditing, ServiceShortForm, ServiceDesign, ServiceWebDevelopment, ServiceAIAutomation:
		return true
	}
	return false
}

// Priority is a project's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// StaffUser is an internal team member assignable to projects. Distinct from
// the public team.Member: staff carry accounts and emails, the public roster
// carries bios and social links.
type StaffUser struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Avatar   string   `json:"avatar"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	IsActive bool     `json:"isActive"`
}

// DeliverableType classifies an uploaded deliverable.
type DeliverableType string

const (
	DeliverableVideo     DeliverableType = "video"
	DeliverableImage     DeliverableType = "image"
	DeliverableThumbnail DeliverableType = "thumbnail"
	DeliverableDocument  DeliverableType = "document"
)

// Deliverable is one uploaded asset attached to a project or revision.
type Deliverable struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         DeliverableType `json:"type"`
	URL          string          `json:"url"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	FileSize     int64           `json:"fileSize"`
	UploadedAt   time.Time       `json:"uploadedAt"`
	UploadedBy   string          `json:"uploadedBy"`
}

// RevisionStatus is the review state of one revision round.
type RevisionStatus string

const (
	RevisionPending  RevisionStatus = "pending"
	RevisionInReview RevisionStatus = "in-review"
	RevisionApproved RevisionStatus = "approved"
	RevisionRejected RevisionStatus = "rejected"
)

// Revision is one round of client feedback on a project.
type Revision struct {
	ID           string         `json:"id"`
	Version      int            `json:"version"`
	Description  string         `json:"description"`
	Status       RevisionStatus `json:"status"`
	ClientNotes  string         `json:"clientNotes"`
	CreatedAt    time.Time      `json:"createdAt"`
	CreatedBy    string         `json:"createdBy"`
	Deliverables []Deliverable  `json:"deliverables"`
}

// Project is one client engagement tracked through the admin dashboard.
// Start, due, and completed dates are date-only strings (2006-01-02);
// CreatedAt and UpdatedAt are full timestamps.
type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Client         client.Client `json:"client"`
	AssignedTeam   []StaffUser   `json:"assignedTeam"`
	ServiceType    ServiceType   `json:"serviceType"`
	Status         Status        `json:"status"`
	Priority       Priority      `json:"priority"`
	Budget         float64       `json:"budget"`
	EstimatedHours float64       `json:"estimatedHours"`
	ActualHours    float64       `json:"actualHours"`
	StartDate      string        `json:"startDate"`
	DueDate        string        `json:"dueDate"`
	CompletedDate  string        `json:"completedDate,omitempty"`
	Progress       int           `json:"progress"`
	Tags           []string      `json:"tags"`
	Deliverables   []Deliverable `json:"deliverables"`
	Revisions      []Revision    `json:"revisions"`
	ClientNotes    string        `json:"clientNotes"`
	InternalNotes  string        `json:"internalNotes"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	CreatedBy      string        `json:"createdBy"`
}

// Validate checks the fields a stored record must carry.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("project %q: %w", p.Title, ErrInvalidRecord)
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project %s: missing title: %w", p.ID, ErrInvalidRecord)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("project %s: unknown status %q: %w", p.ID, p.Status, ErrInvalidRecord)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("project %s: unknown priority %q: %w", p.ID, p.Priority, ErrInvalidRecord)
	}
	if p.Progress < 0 || p.Progress > 100 {
		return fmt.Errorf("project %s: progress %d out of range: %w", p.ID, p.Progress, ErrInvalidRecord)
	}
	return nil
}

// Stats aggregates the project list for the dashboard.
type Stats struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	OverdueProjects   int     `json:"overdueProjects"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
