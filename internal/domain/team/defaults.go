package team

import "time"

// Store slots for the team section.
const (
	StorageKey         = "farvue_cms_team"
	SettingsStorageKey = "farvue_cms_team_settings"
)

var (
	seedCreated = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUpdated = time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
)

// DefaultSettings returns the built-in team section copy.
func DefaultSettings() Settings {
	return Settings{
		SectionLabel: "DUO",
		Heading:      "Meet the incredible duo.",
		Description:  "We pride ourselves of being the best of the best and we encapsulates that.",
		ButtonText:   "Book a 30-min call →",
		ButtonURL:    "https://calendly.com/farvuemedia",
		ShowStats:    true,
		IsVisible:    true,
	}
}

// Defaults returns the built-in team roster used when the store holds no
// members yet.
func Defaults() []Member {
	return []Member{
		{
			ID:    "1",
			Name:  "Rehmanmesud",
			Role:  "Founder & Lead Strategist",
			Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop&crop=face&auto=format",
			Bio:   "Founder of FARVUE Media. With a deep passion for storytelling and over 3 years of creative leadership, Rehman helps creators scale with strategy-backed, high-retention video content.",
			Skills: []string{
				"Creative Direction", "Content Strategy", "After Effects", "Premiere Pro",
			},
			Social: SocialLinks{
				LinkedIn:  "https://linkedin.com/in/rehmanmesud",
				Twitter:   "https://twitter.com/rehmanmesud",
				Instagram: "https://instagram.com/rehmanmesud",
			},
			Order:     1,
			IsVisible: true,
			CreatedAt: seedCreated,
			UpdatedAt: seedUpdated,
		},
		{
			ID:    "2",
			Name:  "Fazal Mesud",
			Role:  "Co-Founder & Design Head",
			Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=300&h=300&fit=crop&crop=face&auto=format",
			Bio:   "Co-founder of FARVUE Media. Fazal blends creativity and psychology to craft thumbnails and visuals that stop the scroll and elevate creator brands.",
			Skills: []string{
				"Photoshop", "Illustrator", "Figma", "Visual Branding",
			},
			Social: SocialLinks{
				LinkedIn:  "https://linkedin.com/in/fazalmesud",
				Twitter:   "https://twitter.com/fazalmesud",
				Instagram: "https://instagram.com/fazalmesud",
			},
			Order:     2,
			IsVisible: true,
			CreatedAt: seedCreated,
			UpdatedAt: seedUpdated,
		},
	}
}
