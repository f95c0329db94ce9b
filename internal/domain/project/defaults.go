package project

import (
	"time"

	"github.com/farvue/cms/internal/domain/client"
)

// StorageKey is the store slot holding the project list.
const StorageKey = "farvue_cms_projects"

// DefaultStaff returns the built-in internal team assignable to projects.
func DefaultStaff() []StaffUser {
	return []StaffUser{
		{
			ID:       "1",
			Name:     "Rehmanmesud",
			Email:    "rehman@farvue.media",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face&auto=format",
			Role:     "Admin",
			Skills:   []string{"Creative Direction", "Content Strategy", "After Effects", "Premiere Pro"},
			IsActive: true,
		},
		{
			ID:       "2",
			Name:     "Fazal Mesud",
			Email:    "fazal@farvue.media",
			Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face&auto=format",
			Role:     "Designer",
			Skills:   []string{"Photoshop", "Illustrator", "Figma", "Visual Branding"},
			IsActive: true,
		},
		{
			ID:       "3",
			Name:     "Sarah Johnson",
			Email:    "sarah@farvue.media",
			Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b977?w=150&h=150&fit=crop&crop=face&auto=format",
			Role:     "Editor",
			Skills:   []string{"Video Editing", "Motion Graphics", "Sound Design", "Color Grading"},
			IsActive: true,
		},
		{
			ID:       "4",
			Name:     "Michael Chen",
			Email:    "michael@farvue.media",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face&auto=format",
			Role:     "Editor",
			Skills:   []string{"React", "Next.js", "Node.js", "UI/UX Design"},
			IsActive: true,
		},
	}
}

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func defaultDeliverables() []Deliverable {
	return []Deliverable{
		{
			ID:           "d1",
			Name:         "Final_Video_V3.mp4",
			Type:         DeliverableVideo,
			URL:          "https://example.com/video1.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=400&h=225&fit=crop&auto=format",
			FileSize:     125000000,
			UploadedAt:   ts(2025, 1, 8, 10, 30),
			UploadedBy:   "1",
		},
		{
			ID:           "d2",
			Name:         "Thumbnail_Options.zip",
			Type:         DeliverableImage,
			URL:          "https://example.com/thumbnails.zip",
			ThumbnailURL: "https://images.unsplash.com/photo-1611605698335-8b1569810432?w=400&h=225&fit=crop&auto=format",
			FileSize:     5000000,
			UploadedAt:   ts(2025, 1, 7, 14, 20),
			UploadedBy:   "2",
		},
	}
}

func defaultRevisions() []Revision {
	deliverables := defaultDeliverables()
	return []Revision{
		{
			ID:           "r1",
			Version:      1,
			Description:  "Initial draft with basic editing and color correction",
			Status:       RevisionApproved,
			ClientNotes:  "Great start! Can we add more motion graphics in the intro?",
			CreatedAt:    ts(2025, 1, 5, 9, 0),
			CreatedBy:    "3",
			Deliverables: deliverables[:1],
		},
		{
			ID:           "r2",
			Version:      2,
			Description:  "Added motion graphics and improved transitions",
			Status:       RevisionInReview,
			ClientNotes:  "Much better! Just need to adjust the audio levels in the middle section.",
			CreatedAt:    ts(2025, 1, 8, 15, 30),
			CreatedBy:    "3",
			Deliverables: deliverables,
		},
	}
}

// Defaults returns the built-in project list used when the store holds no
// projects yet.
func Defaults() []Project {
	staff := DefaultStaff()
	clients := client.Defaults()

	return []Project{
		{
			ID:             "1",
			Title:          "High-Retention YouTube Video Editing - Tech Reviews Q1",
			Description:    "Complete video editing package with advanced motion graphics, color grading, and viral-style cuts for tech review content. Focus on retention optimization and subscriber growth.",
			Client:         clients[0],
			AssignedTeam:   []StaffUser{staff[0], staff[2]},
			ServiceType:    ServiceVideoEditing,
			Status:         StatusInProgress,
			Priority:       PriorityHigh,
			Budget:         3500,
			EstimatedHours: 45,
			ActualHours:    32,
			StartDate:      "2025-01-01",
			DueDate:        "2025-01-15",
			Progress:       75,
			Tags:           []string{"YouTube", "Tech Reviews", "Long Form", "Motion Graphics", "High Priority"},
			Deliverables:   defaultDeliverables(),
			Revisions:      defaultRevisions(),
			ClientNotes:    "Need to maintain consistent branding across all videos. Focus on the first 15 seconds for hook optimization.",
			InternalNotes:  "Client prefers quick cuts and modern transitions. Has specific color palette requirements.",
			CreatedAt:      ts(2024, 12, 28, 8, 0),
			UpdatedAt:      ts(2025, 1, 8, 16, 45),
			CreatedBy:      "1",
		},
		{
			ID:             "2",
			Title:          "Instagram Reels Content Package - Fitness Series",
			Description:    "Monthly package of 25 Instagram reels with trending effects, quick cuts, and engaging visuals for fitness content targeting millennial audience.",
			Client:         clients[1],
			AssignedTeam:   []StaffUser{staff[1], staff[3]},
			ServiceType:    ServiceShortForm,
			Status:         StatusInReview,
			Priority:       PriorityMedium,
			Budget:         2200,
			EstimatedHours: 30,
			ActualHours:    28,
			StartDate:      "2025-01-05",
			DueDate:        "2025-01-20",
			Progress:       90,
			Tags:           []string{"Instagram", "Reels", "Fitness", "Trending", "Social Media"},
			ClientNotes:    "Love the energy! Can we test some different music options for better engagement?",
			InternalNotes:  "Client is very responsive and easy to work with. Prefers bold, energetic style.",
			CreatedAt:      ts(2025, 1, 2, 10, 15),
			UpdatedAt:      ts(2025, 1, 8, 11, 20),
			CreatedBy:      "1",
		},
		{
			ID:          "3",
			Title:       "Brand Thumbnail Design System - Business Channel",
			Description: "Comprehensive thumbnail design system with consistent branding, high CTR optimization, and A/B testing variations for business content.",
			Client: client.Client{
				ID:      "3",
				Name:    "Business Growth Channel",
				Email:   "team@businessgrowth.com",
				Company: "Business Growth Media",
				SocialHandles: client.SocialHandles{
					YouTube:  "@businessgrowth",
					LinkedIn: "businessgrowth",
				},
				Preferences: client.Preferences{
					Platforms:               []string{"YouTube", "LinkedIn"},
					StyleReferences:         []string{"Professional", "Clean", "Corporate"},
					CommunicationPreference: client.PreferEmail,
				},
				TotalProjects: 5,
				TotalRevenue:  8900,
				Status:        client.StatusActive,
				JoinedDate:    "2024-11-10",
			},
			AssignedTeam:   []StaffUser{staff[1]},
			ServiceType:    ServiceDesign,
			Status:         StatusCompleted,
			Priority:       PriorityLow,
			Budget:         1500,
			EstimatedHours: 20,
			ActualHours:    18,
			StartDate:      "2024-12-20",
			DueDate:        "2025-01-10",
			CompletedDate:  "2025-01-09",
			Progress:       100,
			Tags:           []string{"Thumbnails", "Branding", "CTR Optimization", "Business", "YouTube"},
			ClientNotes:    "Exactly what we needed! The CTR improved by 35% with the new designs.",
			InternalNotes:  "Client was very specific about brand guidelines. Project completed ahead of schedule.",
			CreatedAt:      ts(2024, 12, 18, 14, 30),
			UpdatedAt:      ts(2025, 1, 9, 17, 0),
			CreatedBy:      "1",
		},
		{
			ID:          "4",
			Title:       "E-commerce Website Development - Fashion Startup",
			Description: "Custom Shopify store development with modern design, mobile optimization, conversion-focused landing pages, and payment gateway integration.",
			Client: client.Client{
				ID:      "4",
				Name:    "Fashion Forward Startup",
				Email:   "dev@fashionforward.com",
				Company: "Fashion Forward",
				SocialHandles: client.SocialHandles{
					Instagram: "@fashionforward",
					TikTok:    "@fashionfwd",
				},
				Preferences: client.Preferences{
					Platforms:               []string{"Instagram", "TikTok", "Web"},
					StyleReferences:         []string{"Modern", "Minimal", "Fashion"},
					CommunicationPreference: client.PreferSlack,
				},
				TotalProjects: 2,
				TotalRevenue:  12000,
				Status:        client.StatusActive,
				JoinedDate:    "2024-12-01",
			},
			AssignedTeam:   []StaffUser{staff[3], staff[0]},
			ServiceType:    ServiceWebDevelopment,
			Status:         StatusInProgress,
			Priority:       PriorityHigh,
			Budget:         6500,
			EstimatedHours: 80,
			ActualHours:    35,
			StartDate:      "2024-12-15",
			DueDate:        "2025-01-25",
			Progress:       45,
			Tags:           []string{"Shopify", "E-commerce", "Fashion", "Mobile Optimization", "Conversion"},
			ClientNotes:    "Need to ensure mobile experience is perfect. Primary audience is mobile users aged 18-35.",
			InternalNotes:  "Complex project with custom functionality requirements. Regular check-ins scheduled.",
			CreatedAt:      ts(2024, 12, 12, 9, 0),
			UpdatedAt:      ts(2025, 1, 8, 13, 15),
			CreatedBy:      "1",
		},
		{
			ID:          "5",
			Title:       "AI Chatbot Integration - SaaS Platform",
			Description: "GPT-powered customer support chatbot with CRM integration, automated lead routing, and advanced conversation analytics.",
			Client: client.Client{
				ID:      "5",
				Name:    "SaaS Solutions Inc",
				Email:   "tech@saassolutions.com",
				Company: "SaaS Solutions",
				SocialHandles: client.SocialHandles{
					LinkedIn: "saassolutions",
				},
				Preferences: client.Preferences{
					Platforms:               []string{"Web", "Slack"},
					StyleReferences:         []string{"Technical", "Professional"},
					CommunicationPreference: client.PreferEmail,
				},
				TotalProjects: 3,
				TotalRevenue:  15600,
				Status:        client.StatusActive,
				JoinedDate:    "2024-10-05",
			},
			AssignedTeam:   []StaffUser{staff[3]},
			ServiceType:    ServiceAIAutomation,
			Status:         StatusNotStarted,
			Priority:       PriorityMedium,
			Budget:         4200,
			EstimatedHours: 60,
			StartDate:      "2025-01-15",
			DueDate:        "2025-02-15",
			Progress:       5,
			Tags:           []string{"AI", "Chatbot", "SaaS", "CRM Integration", "Automation"},
			ClientNotes:    "Integration needs to be seamless with existing Salesforce setup. Security is paramount.",
			InternalNotes:  "Complex technical requirements. Need to schedule discovery call before starting.",
			CreatedAt:      ts(2025, 1, 2, 16, 20),
			UpdatedAt:      ts(2025, 1, 8, 9, 30),
			CreatedBy:      "1",
		},
	}
}
