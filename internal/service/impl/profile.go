package impl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

func (s srv) GetOrCreateProfile(ctx context.Context, id service.Identity) (*entities.Profile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	p, err := s.s.GetProfile(ctx, id.UserID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	// concurrent creation keeps the first profile, so it's re-read after insert
	if err := s.s.CreateProfile(ctx, entities.NewDefaultProfile(id.UserID, s.timestamp())); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if p, err = s.s.GetProfile(ctx, id.UserID); err != nil {
		return nil, fmt.Errorf("failed to get created profile: %w", err)
	}

	return p, nil
}

func validateTags(name string, known, values []string) ([]string, error) {
	values = entities.UniqueTags(values)
	if unknown := entities.UnknownTags(known, values); len(unknown) > 0 {
		return nil, validationError("unknown %s: %s", name, strings.Join(unknown, ", "))
	}
	return values, nil
}

func validateBirthdate(birthdate time.Time, now time.Time) error {
	if entities.Age(birthdate, now) < entities.MinimalAge {
		return validationError("you must be at least %d years old", entities.MinimalAge)
	}
	return nil
}

func (s srv) UpdateProfile(ctx context.Context, id service.Identity, patch service.ProfilePatch) (*entities.Profile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	now := s.timestamp()

	if patch.FullName != nil && strings.TrimSpace(*patch.FullName) == "" {
		return nil, validationError("full name must not be empty")
	}

	if patch.Birthdate != nil {
		if err := validateBirthdate(*patch.Birthdate, now); err != nil {
			return nil, err
		}
	}

	var err error
	if patch.Interests != nil {
		if patch.Interests, err = validateTags("interests", entities.Interests, patch.Interests); err != nil {
			return nil, err
		}
	}
	if patch.Languages != nil {
		if patch.Languages, err = validateTags("languages", entities.Languages, patch.Languages); err != nil {
			return nil, err
		}
	}

	p, err := s.s.GetProfile(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	applyPatch(p, patch)
	p.UpdatedAt = now

	if err := s.s.UpdateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return p, nil
}

func applyPatch(p *entities.Profile, patch service.ProfilePatch) {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}

	setString(&p.FullName, patch.FullName)
	setString(&p.Gender, patch.Gender)
	setString(&p.Bio, patch.Bio)
	setString(&p.Location, patch.Location)
	setString(&p.Occupation, patch.Occupation)
	setString(&p.Education, patch.Education)
	setString(&p.Height, patch.Height)

	if patch.Birthdate != nil {
		b := *patch.Birthdate
		p.Birthdate = &b
	}
	if patch.Interests != nil {
		p.Interests = patch.Interests
	}
	if patch.Languages != nil {
		p.Languages = patch.Languages
	}
	if patch.LookingFor != nil {
		p.LookingFor = entities.UniqueTags(patch.LookingFor)
	}
}

// sniffLen is the number of leading bytes http.DetectContentType considers.
const sniffLen = 512

func (s srv) UploadAvatar(ctx context.Context, id service.Identity, filename, contentType string, body io.Reader) (*entities.Profile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, validationError("avatar must be an image")
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		return nil, validationError("avatar file name must have an extension")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read avatar: %w", err)
	}
	head = head[:n]

	// declared content type is not trusted
	detected := http.DetectContentType(head)
	if !strings.HasPrefix(detected, "image/") {
		return nil, validationError("avatar must be an image, got %s", detected)
	}

	key := id.UserID + ext

	url, err := s.b.Put(ctx, key, detected, io.MultiReader(bytes.NewReader(head), body))
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.s.SetAvatar(ctx, id.UserID, url, s.timestamp()); err != nil {
		log.WithError(err).WithField("key", key).Error("avatar is uploaded but profile is not updated")
		return nil, fmt.Errorf("failed to set avatar: %w", err)
	}

	p, err := s.s.GetProfile(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func validateOnboarding(form *service.OnboardingForm, now time.Time) error {
	form.FullName = strings.TrimSpace(form.FullName)
	if form.FullName == "" {
		return validationError("full name is required")
	}

	if form.Birthdate == nil {
		return validationError("birthdate is required")
	}
	if err := validateBirthdate(*form.Birthdate, now); err != nil {
		return err
	}

	form.Gender = strings.TrimSpace(form.Gender)
	if form.Gender == "" {
		return validationError("gender is required")
	}

	var err error
	if form.Interests, err = validateTags("interests", entities.Interests, form.Interests); err != nil {
		return err
	}
	if len(form.Interests) == 0 {
		return validationError("select at least one interest")
	}

	if form.Languages, err = validateTags("languages", entities.Languages, form.Languages); err != nil {
		return err
	}
	if len(form.Languages) == 0 {
		return validationError("select at least one language")
	}

	return nil
}

func (s srv) CompleteOnboarding(ctx context.Context, id service.Identity, form service.OnboardingForm) (*entities.Profile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	now := s.timestamp()

	if err := validateOnboarding(&form, now); err != nil {
		return nil, err
	}

	var out *entities.Profile

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetProfile(ctx, id.UserID)
		switch {
		case err == nil:
		case errors.Is(err, storage.ErrNotFound):
			p = entities.NewDefaultProfile(id.UserID, now)
		default:
			return fmt.Errorf("failed to get profile: %w", err)
		}

		birthdate := *form.Birthdate

		p.FullName = form.FullName
		p.Birthdate = &birthdate
		p.Gender = form.Gender
		p.Bio = strings.TrimSpace(form.Bio)
		p.Interests = form.Interests
		p.Languages = form.Languages
		p.Occupation = strings.TrimSpace(form.Occupation)
		p.Education = strings.TrimSpace(form.Education)
		p.LookingFor = entities.UniqueTags(form.LookingFor)
		p.Height = strings.TrimSpace(form.Height)
		if l := strings.TrimSpace(form.Location); l != "" {
			p.Location = l
		}
		p.UpdatedAt = now

		if err := tx.SetProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to set profile: %w", err)
		}

		if out, err = tx.GetProfile(ctx, id.UserID); err != nil {
			return fmt.Errorf("failed to get stored profile: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}
