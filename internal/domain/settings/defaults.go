package settings

// StorageKey is the store slot holding the site settings document.
const StorageKey = "farvue_cms_settings"

// Defaults returns the built-in site settings used when none are stored.
func Defaults() Settings {
	return Settings{
		Branding: Branding{
			SiteName:     "Farvue Media",
			Tagline:      "Content that converts",
			PrimaryColor: "#6366f1",
			AccentColor:  "#f59e0b",
		},
		SEO: SEO{
			MetaTitle:       "Farvue Media | Video Editing & Content Agency",
			MetaDescription: "Full-service media agency for video editing, short-form content, design, web development, and AI automation.",
			Keywords:        []string{"video editing", "short-form content", "thumbnail design", "media agency"},
		},
		Integrations: Integrations{
			ContactEmail: "hello@farvue.media",
		},
		Notifications: Notifications{
			EmailOnInquiry:    true,
			EmailOnProjectDue: true,
		},
	}
}
