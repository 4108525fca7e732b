package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
	"github.com/sparkdate/spark/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Fixture            string        `long:"fixture" env:"FIXTURE" default:"seed.json" description:"path to fixture"`
	CodeTTL            time.Duration `long:"code_ttl" env:"CODE_TTL" default:"24h" description:"lifetime of imported auth codes"`
	Postgres           string        `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string        `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

type profile struct {
	FullName   string   `json:"fullName"`
	Birthdate  string   `json:"birthdate"`
	Gender     string   `json:"gender"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	Languages  []string `json:"languages"`
	Location   string   `json:"location"`
	Occupation string   `json:"occupation"`
	Education  string   `json:"education"`
	LookingFor []string `json:"lookingFor"`
	Height     string   `json:"height"`
	Verified   bool     `json:"verified"`
}

type account struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	// AuthCode is a sign in code to be used with /v1/auth/callback.
	AuthCode   string               `json:"authCode"`
	Profile    *profile             `json:"profile"`
	Visibility *entities.Visibility `json:"visibility"`
}

type fixture struct {
	Accounts []account `json:"accounts"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed2db"
	parser.LongDescription = "Development fixture to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed2db started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Fixture)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read fixture")
	}

	var f fixture

	if err := json.Unmarshal(b, &f); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal fixture")
	}

	db := mustGetDB()
	s := postgres.New(db)

	t := time.Now().UTC()

	logrus.Info("import accounts")
	for i, v := range f.Accounts {
		if err := s.InTx(context.Background(), func(s storage.Storage) error {
			return importAccount(context.Background(), s, v, t)
		}); err != nil {
			logrus.WithError(err).WithField("email", v.Email).Fatal("failed to put account into db")
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d accounts imported", i+1, len(f.Accounts))
		}
	}

	logrus.Info("done")
}

func importAccount(ctx context.Context, s storage.Storage, a account, t time.Time) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	if err := s.CreateAccount(ctx, &entities.Account{
		ID:        a.ID,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		CreatedAt: t,
	}); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if a.AuthCode != "" {
		if err := s.CreateAuthCode(ctx, a.AuthCode, a.ID, t.Add(opts.CodeTTL)); err != nil {
			return fmt.Errorf("failed to create auth code: %w", err)
		}
	}

	if a.Profile != nil {
		p := entities.NewDefaultProfile(a.ID, t)
		p.FullName = a.Profile.FullName
		p.Gender = a.Profile.Gender
		p.Bio = a.Profile.Bio
		p.Interests = entities.UniqueTags(a.Profile.Interests)
		p.Languages = entities.UniqueTags(a.Profile.Languages)
		p.Occupation = a.Profile.Occupation
		p.Education = a.Profile.Education
		p.LookingFor = entities.UniqueTags(a.Profile.LookingFor)
		p.Height = a.Profile.Height
		if a.Profile.Location != "" {
			p.Location = a.Profile.Location
		}

		if a.Profile.Birthdate != "" {
			b, err := entities.ParseBirthdate(a.Profile.Birthdate)
			if err != nil {
				return fmt.Errorf("failed to parse birthdate: %w", err)
			}
			p.Birthdate = &b
		}

		if err := s.SetProfile(ctx, p); err != nil {
			return fmt.Errorf("failed to set profile: %w", err)
		}

		if a.Profile.Verified {
			if err := s.SetVerified(ctx, a.ID, true); err != nil {
				return fmt.Errorf("failed to set verified: %w", err)
			}
		}
	}

	if a.Visibility != nil {
		st := entities.DefaultSettings(a.ID)
		st.Visibility = *a.Visibility
		st.UpdatedAt = t

		if err := s.SetSettings(ctx, st); err != nil {
			return fmt.Errorf("failed to set settings: %w", err)
		}
	}

	return nil
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
