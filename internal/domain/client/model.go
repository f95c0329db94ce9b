package client

import (
	"fmt"
	"strings"
)

// Status is a client's engagement status.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusPending:
		return true
	}
	return false
}

// CommunicationPreference is how a client prefers to be reached.
type CommunicationPreference string

const (
	PreferEmail CommunicationPreference = "email"
	PreferSlack CommunicationPreference = "slack"
	PreferPhone CommunicationPreference = "phone"
)

// SocialHandles holds a client's optional per-platform handles.
type SocialHandles struct {
	Instagram string `json:"instagram,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Preferences captures a client's platform and style preferences.
type Preferences struct {
	Platforms               []string                `json:"platforms"`
	StyleReferences         []string                `json:"styleReferences"`
	CommunicationPreference CommunicationPreference `json:"communicationPreference"`
}

// Client is an agency client record.
type Client struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Company       string        `json:"company"`
	Avatar        string        `json:"avatar,omitempty"`
	Phone         string        `json:"phone,omitempty"`
	SocialHandles SocialHandles `json:"socialHandles"`
	Preferences   Preferences   `json:"preferences"`
	TotalProjects int           `json:"totalProjects"`
	TotalRevenue  float64       `json:"totalRevenue"`
	Status        Status        `json:"status"`
	JoinedDate    string        `json:"joinedDate"`
}

// Validate checks the fields a stored record must carry.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("client %q: %w", c.Name, ErrInvalidRecord)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client %s: missing name: %w", c.ID, ErrInvalidRecord)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("client %s: unknown status %q: %w", c.ID, c.Status, ErrInvalidRecord)
	}
	return nil
}

// Stats aggregates the client list for the dashboard.
type Stats struct {
	TotalClients  int     `json:"totalClients"`
	ActiveClients int     `json:"activeClients"`
	TotalProjects int     `json:"totalProjects"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
