package team

import (
	"fmt"
	"strings"
	"time"
)

// SocialLinks holds a member's optional per-platform profile URLs.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Member is one person on the public team section.
type Member struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Role      string      `json:"role"`
	Image     string      `json:"image"`
	Bio       string      `json:"bio"`
	Skills    []string    `json:"skills"`
	Social    SocialLinks `json:"social"`
	Order     int         `json:"order"`
	IsVisible bool        `json:"isVisible"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Validate checks the fields a stored record must carry.
func (m *Member) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("team member %q: %w", m.Name, ErrInvalidRecord)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("team member %s: missing name: %w", m.ID, ErrInvalidRecord)
	}
	return nil
}

// Settings configures the team section of the public site.
type Settings struct {
	SectionLabel string `json:"sectionLabel"`
	Heading      string `json:"heading"`
	Description  string `json:"description"`
	ButtonText   string `json:"buttonText"`
	ButtonURL    string `json:"buttonUrl"`
	ShowStats    bool   `json:"showStats"`
	IsVisible    bool   `json:"isVisible"`
}

// Stats counts members for the dashboard.
type Stats struct {
	TotalMembers   int `json:"totalMembers"`
	VisibleMembers int `json:"visibleMembers"`
	HiddenMembers  int `json:"hiddenMembers"`
}

// ExportBundle is the JSON document produced by Export and consumed by
// Import: members and section settings together.
type ExportBundle struct {
	Members  []Member  `json:"members"`
	Settings *Settings `json:"settings,omitempty"`
}
