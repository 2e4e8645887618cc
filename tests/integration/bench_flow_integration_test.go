//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/benchmap/internal/adapters/database"
	"github.com/zatekoja/benchmap/internal/adapters/events"
	"github.com/zatekoja/benchmap/internal/application/services"
	"github.com/zatekoja/benchmap/internal/domain/entities"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

type benchFlow struct {
	benches       *services.BenchService
	reviews       *services.ReviewService
	comments      *services.CommentService
	notifications *services.NotificationService
	profiles      *services.ProfileService
}

func newBenchFlow(t *testing.T) *benchFlow {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("Skipping integration test: TEST_DB_HOST not set")
	}

	client := newTestPostgresClient(t)
	t.Cleanup(func() { _ = client.Close() })
	truncateAll(t, client)

	benchRepo := database.NewBenchAdapter(client)
	reviewRepo := database.NewReviewAdapter(client)
	commentRepo := database.NewCommentAdapter(client)
	notificationRepo := database.NewNotificationAdapter(client)
	profileRepo := database.NewProfileAdapter(client)

	bus := events.NewLocalEventBus()
	t.Cleanup(func() { _ = bus.Close() })

	notifications := services.NewNotificationService(benchRepo, commentRepo, notificationRepo, profileRepo, nil)
	return &benchFlow{
		benches:       services.NewBenchService(benchRepo, reviewRepo, profileRepo, bus),
		reviews:       services.NewReviewService(reviewRepo, notifications, bus),
		comments:      services.NewCommentService(commentRepo, profileRepo, notifications, bus),
		notifications: notifications,
		profiles:      services.NewProfileService(profileRepo, benchRepo),
	}
}

func TestBenchLifecycleIntegration(t *testing.T) {
	flow := newBenchFlow(t)
	ctx := context.Background()

	owner, reviewer := "user-owner", "user-reviewer"
	ownerName, reviewerName := "Ada Owner", "Rui Reviewer"
	_, err := flow.profiles.Upsert(ctx, owner, services.ProfileInput{FullName: &ownerName})
	require.NoError(t, err)
	_, err = flow.profiles.Upsert(ctx, reviewer, services.ProfileInput{FullName: &reviewerName})
	require.NoError(t, err)

	lat, lng := 52.52, 13.405
	bench, err := flow.benches.Create(ctx, owner, services.CreateBenchInput{
		Title:    "Spree bench",
		Lat:      &lat,
		Lng:      &lng,
		Category: "park",
		Ratings:  &services.RatingsInput{Accessibility: 4, Crowd: 2, View: 5, Vibe: 4},
	})
	require.NoError(t, err)
	require.NotNil(t, bench.CreatedByName)
	assert.Equal(t, ownerName, *bench.CreatedByName)

	t.Run("review upsert keeps one row per user", func(t *testing.T) {
		_, err := flow.reviews.Upsert(ctx, reviewer, bench.ID, 2)
		require.NoError(t, err)
		rating, err := flow.reviews.Upsert(ctx, reviewer, bench.ID, 4.6)
		require.NoError(t, err)
		assert.Equal(t, 5, rating)

		got, err := flow.benches.Get(ctx, bench.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CommunityRating)
		assert.InDelta(t, 5.0, *got.CommunityRating, 1e-9)
	})

	t.Run("min rating filter", func(t *testing.T) {
		minRating := 4.5
		listed, err := flow.benches.List(ctx, services.ListFilter{MinCommunityRating: &minRating})
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, bench.ID, listed[0].ID)
	})

	t.Run("reply notifies owner and parent author", func(t *testing.T) {
		root, err := flow.comments.Create(ctx, owner, bench.ID, services.CreateCommentInput{Body: "Best sunset spot"})
		require.NoError(t, err)

		parentID := root.ID
		_, err = flow.comments.Create(ctx, reviewer, bench.ID, services.CreateCommentInput{Body: "Agreed", ParentID: &parentID})
		require.NoError(t, err)

		threads, err := flow.comments.Threads(ctx, bench.ID)
		require.NoError(t, err)
		require.Len(t, threads, 1)
		assert.Len(t, threads[0].Replies, 1)

		inbox, err := flow.notifications.List(ctx, owner)
		require.NoError(t, err)

		var commentNotes int
		for _, n := range inbox {
			if n.Type == entities.NotificationComment {
				commentNotes++
				require.NotNil(t, n.FromUserName)
				assert.Equal(t, reviewerName, *n.FromUserName)
			}
		}
		assert.Equal(t, 1, commentNotes, "owner is also the parent author and gets a single row")

		require.NoError(t, flow.notifications.MarkRead(ctx, owner, inbox[0].ID))
		err = flow.notifications.MarkRead(ctx, reviewer, inbox[0].ID)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})

	t.Run("public profile counts benches", func(t *testing.T) {
		public, err := flow.profiles.GetPublic(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, 1, public.BenchCount)
	})

	t.Run("delete cascades", func(t *testing.T) {
		err := flow.benches.Delete(ctx, reviewer, bench.ID)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))

		require.NoError(t, flow.benches.Delete(ctx, owner, bench.ID))

		_, err = flow.benches.Get(ctx, bench.ID)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

		comments, err := flow.comments.List(ctx, bench.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)

		inbox, err := flow.notifications.List(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, inbox)
	})
}
