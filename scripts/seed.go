package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/benchmap/internal/adapters/database"
	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/infrastructure/auth"
	"github.com/zatekoja/benchmap/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/benchmap/internal/infrastructure/observability"
	"github.com/zatekoja/benchmap/pkg/config"
)

type seedUser struct {
	id      string
	name    string
	country string
}

type seedBench struct {
	owner       int
	title       string
	description string
	lat, lng    float64
	category    string
	ratings     services.RatingsInput
}

var users = []seedUser{
	{id: "8d6c1b1e-3f53-4a8e-9d55-0c4f1f7a0001", name: "Alina Petrova", country: "RU"},
	{id: "8d6c1b1e-3f53-4a8e-9d55-0c4f1f7a0002", name: "Jonas Berg", country: "SE"},
	{id: "8d6c1b1e-3f53-4a8e-9d55-0c4f1f7a0003", name: "Maya Cohen", country: "IL"},
}

var benches = []seedBench{
	{0, "Sunset over the Neva", "Granite steps right by the water, best after 9pm in June.", 59.9398, 30.3146, "city", services.RatingsInput{Accessibility: 5, Crowd: 2, View: 5, Vibe: 4}},
	{0, "Pine ridge lookout", "Short climb from the parking lot, the bench faces the lake.", 60.1812, 29.7043, "forest", services.RatingsInput{Accessibility: 3, Crowd: 5, View: 4, Vibe: 5}},
	{1, "Harbour wall", "Windy but worth it. Ferries pass every twenty minutes.", 59.3251, 18.0711, "city", services.RatingsInput{Accessibility: 4, Crowd: 2, View: 4, Vibe: 3}},
	{1, "Kebnekaise trail rest", "Last bench before the glacier section.", 67.9000, 18.5167, "mountain", services.RatingsInput{Accessibility: 1, Crowd: 5, View: 5, Vibe: 5}},
	{2, "Gordon beach boardwalk", "Shade until noon, then bring a hat.", 32.0853, 34.7680, "beach", services.RatingsInput{Accessibility: 5, Crowd: 1, View: 4, Vibe: 4}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger("benchmap-seed", cfg.App.Env, cfg.App.LogLevel)

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to DB")
	}
	defer pgClient.Close()

	if _, err := pgClient.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply migrations")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				notifications,
				bench_comments,
				bench_reviews,
				benches,
				profiles
			CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to reset tables")
		}
	}

	benchAdapter := database.NewBenchAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	commentAdapter := database.NewCommentAdapter(pgClient)
	notificationAdapter := database.NewNotificationAdapter(pgClient)
	profileAdapter := database.NewProfileAdapter(pgClient)

	notificationService := services.NewNotificationService(benchAdapter, commentAdapter, notificationAdapter, profileAdapter, nil)
	profileService := services.NewProfileService(profileAdapter, benchAdapter)
	benchService := services.NewBenchService(benchAdapter, reviewAdapter, profileAdapter, nil)
	reviewService := services.NewReviewService(reviewAdapter, notificationService, nil)
	commentService := services.NewCommentService(commentAdapter, profileAdapter, notificationService, nil)

	// 1. Profiles
	for _, u := range users {
		name, country := u.name, u.country
		if _, err := profileService.Upsert(ctx, u.id, services.ProfileInput{FullName: &name, Country: &country}); err != nil {
			log.Error().Err(err).Str("user_id", u.id).Msg("Failed to create profile")
		}
	}

	// 2. Benches
	benchIDs := make([]string, 0, len(benches))
	for _, b := range benches {
		description, lat, lng, ratings := b.description, b.lat, b.lng, b.ratings
		created, err := benchService.Create(ctx, users[b.owner].id, services.CreateBenchInput{
			Title:       b.title,
			Description: &description,
			Lat:         &lat,
			Lng:         &lng,
			Category:    b.category,
			Ratings:     &ratings,
		})
		if err != nil {
			log.Error().Err(err).Str("title", b.title).Msg("Failed to create bench")
			continue
		}
		benchIDs = append(benchIDs, created.ID)
	}

	// 3. Reviews from everyone except the owner
	for i, benchID := range benchIDs {
		for j, u := range users {
			if j == benches[i].owner {
				continue
			}
			if _, err := reviewService.Upsert(ctx, u.id, benchID, float64(3+(i+j)%3)); err != nil {
				log.Error().Err(err).Str("bench_id", benchID).Msg("Failed to create review")
			}
		}
	}

	// 4. A short thread on the first bench
	if len(benchIDs) > 0 {
		if err := seedThread(ctx, commentService, benchIDs[0]); err != nil {
			log.Error().Err(err).Msg("Failed to create comments")
		}
	}

	log.Info().Int("benches", len(benchIDs)).Int("users", len(users)).Msg("Seeding complete")

	// Development tokens let the seeded users call the API directly
	if cfg.Auth.JWTSecret != "" && cfg.IsDevelopment() {
		verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience)
		for _, u := range users {
			token, err := verifier.Issue(u.id, 24*time.Hour)
			if err != nil {
				log.Error().Err(err).Msg("Failed to issue development token")
				continue
			}
			fmt.Printf("%s\t%s\n", u.name, token)
		}
	}
}

// seedThread posts a root comment with a reply chain, exercising both
// notification paths
func seedThread(ctx context.Context, comments *services.CommentService, benchID string) error {
	bodies := []struct {
		author int
		body   string
	}{
		{1, "Is it still there after the embankment works?"},
		{0, "Yes, checked last week."},
		{2, "Thanks, heading there tonight."},
	}

	var parentID *string
	for _, b := range bodies {
		created, err := comments.Create(ctx, users[b.author].id, benchID, services.CreateCommentInput{Body: b.body, ParentID: parentID})
		if err != nil {
			return err
		}
		id := created.ID
		parentID = &id
	}
	return nil
}
