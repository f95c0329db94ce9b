package service

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a service offering.
type Category string

const (
	CategoryEditing     Category = "editing"
	CategoryDesign      Category = "design"
	CategoryDevelopment Category = "development"
	CategoryAutomation  Category = "automation"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryEditing, CategoryDesign, CategoryDevelopment, CategoryAutomation:
		return true
	}
	return false
}

// Pricing holds the tier prices for a service, in whole dollars.
type Pricing struct {
	Starter float64  `json:"starter"`
	Pro     float64  `json:"pro"`
	Custom  *float64 `json:"custom,omitempty"`
}

// Service is one offering shown on the public site and managed through the
// admin surface.
type Service struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       Category  `json:"category"`
	Pricing        Pricing   `json:"pricing"`
	Features       []string  `json:"features"`
	IsVisible      bool      `json:"isVisible"`
	Demand         int       `json:"demand"`
	CompletionRate int       `json:"completionRate"`
	AverageRating  float64   `json:"averageRating"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	IconURL        string    `json:"iconUrl,omitempty"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	SubServices    []string  `json:"subServices,omitempty"`
}

// Validate checks the fields a stored record must carry. Stored data passes
// through here on every load; a hand-edited store file fails loudly instead
// of crashing a consumer later.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("service %q: %w", s.Name, ErrInvalidRecord)
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("service %s: missing name: %w", s.ID, ErrInvalidRecord)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("service %s: unknown category %q: %w", s.ID, s.Category, ErrInvalidRecord)
	}
	if s.Pricing.Starter < 0 || s.Pricing.Pro < 0 || (s.Pricing.Custom != nil && *s.Pricing.Custom < 0) {
		return fmt.Errorf("service %s: negative price: %w", s.ID, ErrInvalidRecord)
	}
	return nil
}

// Stats aggregates the catalog for the admin dashboard.
type Stats struct {
	TotalServices   int      `json:"totalServices"`
	VisibleServices int      `json:"visibleServices"`
	HiddenServices  int      `json:"hiddenServices"`
	AverageDemand   int      `json:"averageDemand"`
	TotalRevenue    float64  `json:"totalRevenue"`
	TopPerforming   *Service `json:"topPerformingService,omitempty"`
}
