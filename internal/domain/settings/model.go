package settings

// Branding holds the public site identity.
type Branding struct {
	SiteName   string `json:"siteName"`
	Tagline    string `json:"tagline"`
	LogoURL    string `json:"logoUrl,omitempty"`
	FaviconURL string `json:"faviconUrl,omitempty"`
	// Hex colors, including the leading #.
	PrimaryColor string `json:"primaryColor"`
	AccentColor  string `json:"accentColor"`
}

// SEO holds page metadata defaults.
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	OGImageURL      string   `json:"ogImageUrl,omitempty"`
}

// Integrations holds third-party service hooks. Empty values mean the
// integration is off.
type Integrations struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId,omitempty"`
	CalendlyURL       string `json:"calendlyUrl,omitempty"`
	ContactEmail      string `json:"contactEmail"`
	WhatsAppNumber    string `json:"whatsappNumber,omitempty"`
}

// Notifications controls which admin alerts are sent.
type Notifications struct {
	EmailOnInquiry    bool `json:"emailOnInquiry"`
	EmailOnProjectDue bool `json:"emailOnProjectDue"`
	WeeklyDigest      bool `json:"weeklyDigest"`
}

// Settings is the whole site configuration document.
type Settings struct {
	Branding      Branding      `json:"branding"`
	SEO           SEO           `json:"seo"`
	Integrations  Integrations  `json:"integrations"`
	Notifications Notifications `json:"notifications"`
	// MaintenanceMode hides the public site behind a holding page.
	MaintenanceMode bool `json:"maintenanceMode"`
}
