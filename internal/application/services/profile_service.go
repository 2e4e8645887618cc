package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/repositories"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
	"golang.org/x/text/language"
)

const maxFullNameLength = 100

// ProfileInput is the editable part of a profile
type ProfileInput struct {
	FullName    *string `json:"full_name"`
	Country     *string `json:"country"`
	DateOfBirth *string `json:"date_of_birth"`
}

// ProfileService handles user profiles
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	benchRepo   repositories.BenchRepository
	now         func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository, benchRepo repositories.BenchRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		benchRepo:   benchRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the actor's own profile in the same shape others see it
func (s *ProfileService) Get(ctx context.Context, actorID string) (*entities.PublicProfile, error) {
	if actorID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	return s.GetPublic(ctx, actorID)
}

// GetPublic returns any user's profile with the number of benches they added
func (s *ProfileService) GetPublic(ctx context.Context, userID string) (*entities.PublicProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := s.benchRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entities.PublicProfile{Profile: *profile, BenchCount: count}, nil
}

// Upsert validates and saves the actor's profile. Empty strings clear a field.
// Names already copied onto benches are not rewritten.
func (s *ProfileService) Upsert(ctx context.Context, actorID string, input ProfileInput) (*entities.Profile, error) {
	if actorID == "" {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	fullName := trimmedOrNil(input.FullName)
	if fullName != nil && utf8.RuneCountInString(*fullName) > maxFullNameLength {
		return nil, apperrors.NewValidationError("full_name must be at most 100 characters")
	}

	country, err := normalizeCountry(trimmedOrNil(input.Country))
	if err != nil {
		return nil, err
	}

	now := s.now()
	dateOfBirth, err := normalizeDateOfBirth(trimmedOrNil(input.DateOfBirth), now)
	if err != nil {
		return nil, err
	}

	profile := &entities.Profile{
		UserID:      actorID,
		FullName:    fullName,
		Country:     country,
		DateOfBirth: dateOfBirth,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// normalizeCountry accepts ISO 3166-1 codes and returns the alpha-2 form
func normalizeCountry(code *string) (*string, error) {
	if code == nil {
		return nil, nil
	}

	region, err := language.ParseRegion(*code)
	if err != nil || !region.IsCountry() {
		return nil, apperrors.NewValidationError("country must be an ISO 3166-1 country code")
	}

	canonical := region.String()
	return &canonical, nil
}

func normalizeDateOfBirth(raw *string, now time.Time) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, *raw)
	if err != nil {
		return nil, apperrors.NewValidationError("date_of_birth must be formatted as YYYY-MM-DD")
	}
	if date.After(now) {
		return nil, apperrors.NewValidationError("date_of_birth cannot be in the future")
	}

	formatted := date.Format(time.DateOnly)
	return &formatted, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
