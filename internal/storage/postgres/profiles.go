package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
)

const profileColumns = `
	p.id, p.full_name, p.birthdate, p.gender, p.bio, p.interests, p.location, p.avatar_url,
	p.occupation, p.education, p.looking_for, p.height, p.languages, p.verified, p.created_at, p.updated_at
`

type profileDTO struct {
	ID         string         `db:"id"`
	FullName   string         `db:"full_name"`
	Birthdate  *time.Time     `db:"birthdate"`
	Gender     string         `db:"gender"`
	Bio        string         `db:"bio"`
	Interests  pq.StringArray `db:"interests"`
	Location   string         `db:"location"`
	AvatarURL  string         `db:"avatar_url"`
	Occupation string         `db:"occupation"`
	Education  string         `db:"education"`
	LookingFor pq.StringArray `db:"looking_for"`
	Height     string         `db:"height"`
	Languages  pq.StringArray `db:"languages"`
	Verified   bool           `db:"verified"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

type userDTO struct {
	ID           string     `db:"id"`
	FullName     string     `db:"full_name"`
	Email        string     `db:"email"`
	CreatedAt    time.Time  `db:"created_at"`
	LastSignInAt *time.Time `db:"last_sign_in_at"`
	Banned       bool       `db:"banned"`
	Verified     bool       `db:"verified"`
}

func toProfileDTO(p *entities.Profile) profileDTO {
	return profileDTO{
		ID:         p.ID,
		FullName:   p.FullName,
		Birthdate:  p.Birthdate,
		Gender:     p.Gender,
		Bio:        p.Bio,
		Interests:  stringArray(p.Interests),
		Location:   p.Location,
		AvatarURL:  p.AvatarURL,
		Occupation: p.Occupation,
		Education:  p.Education,
		LookingFor: stringArray(p.LookingFor),
		Height:     p.Height,
		Languages:  stringArray(p.Languages),
		Verified:   p.Verified,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func (p profileDTO) toEntity() *entities.Profile {
	return &entities.Profile{
		ID:         p.ID,
		FullName:   p.FullName,
		Birthdate:  p.Birthdate,
		Gender:     p.Gender,
		Bio:        p.Bio,
		Interests:  []string(stringArray(p.Interests)),
		Location:   p.Location,
		AvatarURL:  p.AvatarURL,
		Occupation: p.Occupation,
		Education:  p.Education,
		LookingFor: []string(stringArray(p.LookingFor)),
		Height:     p.Height,
		Languages:  []string(stringArray(p.Languages)),
		Verified:   p.Verified,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p,
		fmt.Sprintf(`SELECT %s FROM profiles p WHERE p.id = $1`, profileColumns), id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return p.toEntity(), nil
}

func (s pg) CreateProfile(ctx context.Context, p *entities.Profile) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profiles(id, full_name, birthdate, gender, bio, interests, location, avatar_url,
				occupation, education, looking_for, height, languages, verified, created_at, updated_at)
			VALUES(:id, :full_name, :birthdate, :gender, :bio, :interests, :location, :avatar_url,
				:occupation, :education, :looking_for, :height, :languages, :verified, :created_at, :updated_at)
			ON CONFLICT(id) DO NOTHING
		`, toProfileDTO(p),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

// SetProfile keeps creation time, avatar and verification of the replaced profile.
func (s pg) SetProfile(ctx context.Context, p *entities.Profile) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profiles(id, full_name, birthdate, gender, bio, interests, location, avatar_url,
				occupation, education, looking_for, height, languages, verified, created_at, updated_at)
			VALUES(:id, :full_name, :birthdate, :gender, :bio, :interests, :location, :avatar_url,
				:occupation, :education, :looking_for, :height, :languages, :verified, :created_at, :updated_at)
			ON CONFLICT(id) DO UPDATE SET
			full_name=excluded.full_name, birthdate=excluded.birthdate, gender=excluded.gender, bio=excluded.bio,
			interests=excluded.interests, location=excluded.location, occupation=excluded.occupation,
			education=excluded.education, looking_for=excluded.looking_for, height=excluded.height,
			languages=excluded.languages, updated_at=excluded.updated_at
		`, toProfileDTO(p),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) UpdateProfile(ctx context.Context, p *entities.Profile) error {
	res, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			UPDATE profiles SET
			full_name=:full_name, birthdate=:birthdate, gender=:gender, bio=:bio, interests=:interests,
			location=:location, occupation=:occupation, education=:education, looking_for=:looking_for,
			height=:height, languages=:languages, updated_at=:updated_at
			WHERE id=:id
		`, toProfileDTO(p),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetAvatar(ctx context.Context, id, url string, timestamp time.Time) error {
	return s.execAffected(ctx, `UPDATE profiles SET avatar_url=$2, updated_at=$3 WHERE id=$1`, id, url, timestamp.UTC())
}

func (s pg) SetVerified(ctx context.Context, id string, verified bool) error {
	return s.execAffected(ctx, `UPDATE profiles SET verified=$2 WHERE id=$1`, id, verified)
}

// nolint:gochecknoglobals
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s pg) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	var users []*userDTO

	if err := sqlx.SelectContext(ctx, s.ext, &users, `
			SELECT p.id, p.full_name, a.email, p.created_at, a.last_sign_in_at, a.banned, p.verified
			FROM profiles p
			JOIN accounts a ON a.id = p.id
			WHERE $1::TEXT = '' OR p.full_name ILIKE '%' || $1::TEXT || '%' OR a.email ILIKE '%' || $1::TEXT || '%'
			ORDER BY p.created_at DESC
		`, likeEscaper.Replace(search),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.User, len(users))
	for i, v := range users {
		out[i] = &entities.User{
			ID:           v.ID,
			FullName:     v.FullName,
			Email:        v.Email,
			CreatedAt:    v.CreatedAt,
			LastSignInAt: v.LastSignInAt,
			Banned:       v.Banned,
			Verified:     v.Verified,
		}
	}

	return out, nil
}
