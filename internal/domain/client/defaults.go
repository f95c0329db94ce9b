package client

// StorageKey is the store slot holding the client list.
const StorageKey = "farvue_cms_clients"

// Defaults returns the built-in client list used when the store holds no
// clients yet.
func Defaults() []Client {
	return []Client{
		{
			ID:      "1",
			Name:    "TechReviewer Pro",
			Email:   "contact@techreviewerpro.com",
			Company: "TechReviewer Channel",
			Avatar:  "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=150&h=150&fit=crop&auto=format",
			Phone:   "+1 (555) 123-4567",
			SocialHandles: SocialHandles{
				YouTube:   "@techreviewerpro",
				Instagram: "@techreviewerpro",
				LinkedIn:  "techreviewerpro",
			},
			Preferences: Preferences{
				Platforms:               []string{"YouTube", "Instagram"},
				StyleReferences:         []string{"Tech", "Modern", "Clean"},
				CommunicationPreference: PreferEmail,
			},
			TotalProjects: 12,
			TotalRevenue:  25400,
			Status:        StatusActive,
			JoinedDate:    "2024-01-15",
		},
		{
			ID:      "2",
			Name:    "FitnessPro Influencer",
			Email:   "hello@fitnesspro.com",
			Company: "FitnessPro",
			Avatar:  "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=150&h=150&fit=crop&crop=face&auto=format",
			SocialHandles: SocialHandles{
				Instagram: "@fitnesspro",
				TikTok:    "@fitnesspro",
				YouTube:   "@fitnesspro",
			},
			Preferences: Preferences{
				Platforms:               []string{"Instagram", "TikTok"},
				StyleReferences:         []string{"Fitness", "Energetic", "Bold"},
				CommunicationPreference: PreferSlack,
			},
			TotalProjects: 8,
			TotalRevenue:  18200,
			Status:        StatusActive,
			JoinedDate:    "2024-02-20",
		},
	}
}
