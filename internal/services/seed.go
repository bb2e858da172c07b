package services

import (
	"context"
	"fmt"
	"time"

	"github.com/powerfolio/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed credentials for the default admin account
const (
	SeedAdminEmail    = "admin@powerfolio.com"
	SeedAdminPassword = "admin123"
)

// Seed loads the startup fixture: one admin user and three approved sample
// projects. It is a no-op when users already exist, so restarting a process
// that shares a store (tests) does not duplicate rows.
func Seed(ctx context.Context, userRepo UserRepository, projectRepo ProjectRepository) error {
	existing, err := userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.User{
		ID:           "1",
		Name:         "Admin User",
		Email:        SeedAdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	now := time.Now()
	samples := []models.Project{
		{
			ID:           "1",
			Title:        "AI-Powered Chat Application",
			Description:  "A real-time chat application with AI-powered message suggestions and sentiment analysis.",
			Category:     "Web Development",
			Technologies: []string{"React", "Node.js", "Socket.io", "OpenAI"},
			GithubURL:    "https://github.com/example/ai-chat",
			LiveURL:      "https://ai-chat-demo.com",
			Image:        "https://images.unsplash.com/photo-1587560699334-cc4ff634909a?w=800",
			UserID:       admin.ID,
			UserName:     admin.Name,
			Status:       models.StatusApproved,
			Likes:        45,
			Views:        230,
			CreatedAt:    now.AddDate(0, 0, -5),
		},
		{
			ID:           "2",
			Title:        "E-Commerce Dashboard",
			Description:  "Modern dashboard for managing e-commerce operations with real-time analytics and inventory management.",
			Category:     "Full Stack",
			Technologies: []string{"React", "MongoDB", "Express", "Chart.js"},
			GithubURL:    "https://github.com/example/ecommerce-dashboard",
			LiveURL:      "https://ecommerce-dashboard.com",
			Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			UserID:       admin.ID,
			UserName:     admin.Name,
			Status:       models.StatusApproved,
			Likes:        67,
			Views:        412,
			CreatedAt:    now.AddDate(0, 0, -3),
		},
		{
			ID:           "3",
			Title:        "Mobile Fitness Tracker",
			Description:  "Cross-platform mobile app for tracking workouts, nutrition, and health metrics with social features.",
			Category:     "Mobile Development",
			Technologies: []string{"React Native", "Firebase", "Redux", "TensorFlow"},
			GithubURL:    "https://github.com/example/fitness-tracker",
			Image:        "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=800",
			UserID:       admin.ID,
			UserName:     admin.Name,
			Status:       models.StatusApproved,
			Likes:        89,
			Views:        567,
			CreatedAt:    now.AddDate(0, 0, -7),
		},
	}
	for i := range samples {
		if err := projectRepo.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", samples[i].Title, err)
		}
	}
	return nil
}
