package service

import "time"

// StorageKey is the store slot holding the service catalog.
const StorageKey = "farvue_cms_services"

var (
	seedCreated = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedUpdated = time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
)

func price(v float64) *float64 { return &v }

// Defaults returns the built-in catalog used when the store holds no
// services yet. A fresh slice is returned on every call so callers can
// mutate their copy freely.
func Defaults() []Service {
	return []Service{
		{
			ID:          "1",
			Name:        "Video Editing",
			Description: "High-impact video content designed to convert and retain viewers with professional editing techniques.",
			Category:    CategoryEditing,
			Pricing:     Pricing{Starter: 500, Pro: 1200, Custom: price(2500)},
			Features: []string{
				"Iman Gadzhi-Style Edits (fast cuts, kinetic text, captions)",
				"Short-Form Reels/TikToks",
				"YouTube Video Editing",
				"Testimonial & Case Study Videos",
				"Repurposed Content (long-form to short-form)",
				"Color Grading & Audio Enhancement",
				"Motion Graphics & Transitions",
				"Retention Optimization",
			},
			IsVisible:      true,
			Demand:         85,
			CompletionRate: 96,
			AverageRating:  4.8,
			CreatedAt:      seedCreated,
			UpdatedAt:      seedUpdated,
			IconURL:        "https://images.unsplash.com/photo-1492691527719-9d1e07e534b4?w=400&h=400&fit=crop&auto=format",
			ImageURL:       "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=800&h=600&fit=crop&auto=format",
			SubServices: []string{
				"Iman Gadzhi-Style Edits",
				"Short-Form Reels/TikToks",
				"YouTube Video Editing",
				"Testimonial Videos",
				"Repurposed Content",
			},
		},
		{
			ID:          "2",
			Name:        "Graphic Design",
			Description: "Visual storytelling that sticks with professional branding and design solutions.",
			Category:    CategoryDesign,
			Pricing:     Pricing{Starter: 300, Pro: 800, Custom: price(1800)},
			Features: []string{
				"Album Artwork & Cover Design",
				"Branding & Brand Identity (logo, color, typography)",
				"Social Media Designs (carousels, banners, ads)",
				"Merch Design & Print-Ready Files",
				"Style Guides & Creative Direction",
				"Thumbnail Design & CTR Optimization",
				"Business Card & Stationery Design",
				"Web Graphics & UI Elements",
			},
			IsVisible:      true,
			Demand:         78,
			CompletionRate: 94,
			AverageRating:  4.7,
			CreatedAt:      seedCreated,
			UpdatedAt:      seedUpdated,
			IconURL:        "https://images.unsplash.com/photo-1541701494587-cb58502866ab?w=400&h=400&fit=crop&auto=format",
			ImageURL:       "https://images.unsplash.com/photo-1626785774573-4b799315345d?w=800&h=600&fit=crop&auto=format",
			SubServices: []string{
				"Album Artwork & Cover Design",
				"Branding & Brand Identity",
				"Social Media Designs",
				"Merch Design",
				"Style Guides",
			},
		},
		{
			ID:          "3",
			Name:        "AI Automation",
			Description: "Let machines handle what drains your time with smart automation solutions.",
			Category:    CategoryAutomation,
			Pricing:     Pricing{Starter: 800, Pro: 2000, Custom: price(5000)},
			Features: []string{
				"AI Workflow Automation (Zapier, Make, N8N)",
				"AI Chatbots (GPT-powered sales/support bots)",
				"AI Voice Agents (phone-based reps)",
				"CRM Assistants & Lead Routing Tools",
				"Smart Review Triggers & Auto-Email Systems",
				"AI-Powered Email Nurturing Systems",
				"Process Automation & Integration",
				"Custom AI Solutions",
			},
			IsVisible:      true,
			Demand:         92,
			CompletionRate: 89,
			AverageRating:  4.9,
			CreatedAt:      seedCreated,
			UpdatedAt:      seedUpdated,
			IconURL:        "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=400&h=400&fit=crop&auto=format",
			ImageURL:       "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800&h=600&fit=crop&auto=format",
			SubServices: []string{
				"AI Workflow Automation",
				"AI Chatbots",
				"AI Voice Agents",
				"CRM Assistants",
				"Email Automation",
			},
		},
		{
			ID:          "4",
			Name:        "Website Development & Design",
			Description: "Web experiences that convert, load fast, and reflect your brand perfectly.",
			Category:    CategoryDevelopment,
			Pricing:     Pricing{Starter: 1200, Pro: 3500, Custom: price(8000)},
			Features: []string{
				"Shopify Stores (product-focused & conversion optimized)",
				"Wix Builds (rapid prototyping & launch)",
				"E-Commerce Sites (WooCommerce, Shopify)",
				"Webflow Sites (CMS + high-design)",
				"WordPress Builds (custom themes & plugins)",
				"Custom-Coded Websites (React, Next.js)",
				"Mobile Optimization & Performance",
				"SEO Integration & Analytics",
			},
			IsVisible:      true,
			Demand:         73,
			CompletionRate: 91,
			AverageRating:  4.6,
			CreatedAt:      seedCreated,
			UpdatedAt:      seedUpdated,
			IconURL:        "https://images.unsplash.com/photo-1547658719-da2b51169166?w=400&h=400&fit=crop&auto=format",
			ImageURL:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800&h=600&fit=crop&auto=format",
			SubServices: []string{
				"Shopify Stores",
				"E-Commerce Sites",
				"Webflow Sites",
				"WordPress Builds",
				"Custom-Coded Websites",
			},
		},
	}
}
