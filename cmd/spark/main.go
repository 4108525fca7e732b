package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/sparkdate/spark/internal/blob"
	"github.com/sparkdate/spark/internal/blob/s3"
	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/feed"
	"github.com/sparkdate/spark/internal/health"
	"github.com/sparkdate/spark/internal/janitor"
	"github.com/sparkdate/spark/internal/janitor/periodic"
	"github.com/sparkdate/spark/internal/server"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/service/impl"
	"github.com/sparkdate/spark/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	S3Region    string `long:"s3.region" env:"S3_REGION" default:"us-east-1" description:"s3 region"`
	S3Endpoint  string `long:"s3.endpoint" env:"S3_ENDPOINT" description:"s3 compatible endpoint, e.g. minio, empty means aws"`
	S3Bucket    string `long:"s3.bucket" env:"S3_BUCKET" default:"avatars" description:"s3 bucket for avatars"`
	S3PublicURL string `long:"s3.public_url" env:"S3_PUBLIC_URL" required:"true" description:"public base url of the avatars bucket"`

	SessionTTL      time.Duration `long:"session.ttl" env:"SESSION_TTL" default:"720h" description:"lifetime of a session"`
	JanitorInterval time.Duration `long:"janitor.interval" env:"JANITOR_INTERVAL" default:"10m" description:"interval of expired data cleanup"`
	FeedLimit       uint16        `long:"feed.limit" env:"FEED_LIMIT" default:"50" description:"maximal count of candidates fetched at once"`
	FeedSessionTTL  time.Duration `long:"feed.session_ttl" env:"FEED_SESSION_TTL" default:"30m" description:"discovery session lifetime after the last access"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Spark"
	parser.LongDescription = "Spark dating service backend"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Debug(spew.Sdump(opts))

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "spark",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	db := mustGetDB()
	b := mustGetBlob()

	s := postgres.New(db)
	svc := impl.New(s, b, impl.Options{
		SessionTTL: opts.SessionTTL,
		FeedLimit:  opts.FeedLimit,
	})

	sessions := feed.NewSessions(opts.FeedSessionTTL, func(ctx context.Context, userID string) ([]*entities.Candidate, error) {
		return svc.FetchCandidates(ctx, service.Identity{UserID: userID})
	})
	j := periodic.New(s, sessions, opts.JanitorInterval)

	r := chi.NewMux()
	server.SetupRouter(svc, sessions, r, opts.RequestTimeout,
		health.SubjectPinger("postgres", s.Ping),
		health.SubjectPinger("s3", b.Ping),
		j,
	)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	logrus.Infof("listening on %s", srv.Addr)

	if err := serve(context.Background(), &srv, j, sigs, opts.RequestTimeout); err != nil && !errors.Is(err, errTerminated) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

// serve runs the janitor and the server until a signal arrives or any of them fails.
// The server is shut down gracefully in both cases.
func serve(ctx context.Context, srv *http.Server, j janitor.Janitor, sigs <-chan os.Signal, shutdownTimeout time.Duration) error {
	gr, gctx := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return j.Run(gctx)
	})
	gr.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	gr.Go(func() error {
		var reason error

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
			reason = errTerminated
		case <-gctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return reason
	})

	return gr.Wait()
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

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

func mustGetBlob() blob.Storage {
	b, err := s3.New(context.Background(), s3.Options{
		Region:    opts.S3Region,
		Endpoint:  opts.S3Endpoint,
		Bucket:    opts.S3Bucket,
		PublicURL: opts.S3PublicURL,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create s3 client")
	}

	return b
}
