//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM accounts`)
	require.NoError(t, err)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func createUser(t *testing.T, email, name string, interests, languages []string) string {
	id := uuid.New().String()
	ts := now()

	require.NoError(t, s.CreateAccount(ctx, &entities.Account{ID: id, Email: email, CreatedAt: ts}))

	p := entities.NewDefaultProfile(id, ts)
	p.FullName = name
	p.Interests = interests
	p.Languages = languages
	require.NoError(t, s.CreateProfile(ctx, p))

	return id
}

func swipe(t *testing.T, from, to string, action entities.SwipeAction) {
	require.NoError(t, s.CreateSwipe(ctx, &entities.Swipe{
		ID:        uuid.New().String(),
		SwiperID:  from,
		SwipedID:  to,
		Action:    action,
		CreatedAt: now(),
	}))
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}

func TestPg_Account(t *testing.T) {
	defer cleanup(t)

	id := uuid.New().String()
	ts := now()

	require.NoError(t, s.CreateAccount(ctx, &entities.Account{ID: id, Email: "jane@example.com", CreatedAt: ts}))
	require.True(t, errors.Is(
		s.CreateAccount(ctx, &entities.Account{ID: uuid.New().String(), Email: "jane@example.com", CreatedAt: ts}),
		storage.ErrAlreadyExists,
	))

	require.NoError(t, s.SetLastSignIn(ctx, id, ts))
	require.NoError(t, s.SetBanned(ctx, id, true))

	a, err := s.GetAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", a.Email)
	assert.True(t, a.Banned)
	assert.False(t, a.IsAdmin)
	require.NotNil(t, a.LastSignInAt)
	assert.True(t, ts.Equal(*a.LastSignInAt))

	require.NoError(t, s.DeleteAccount(ctx, id))

	_, err = s.GetAccount(ctx, id)
	require.True(t, errors.Is(err, storage.ErrNotFound))
	require.True(t, errors.Is(s.DeleteAccount(ctx, id), storage.ErrNotFound))
	require.True(t, errors.Is(s.SetBanned(ctx, id, false), storage.ErrNotFound))
}

func TestPg_AuthCodes(t *testing.T) {
	defer cleanup(t)

	id := createUser(t, "a@example.com", "A", nil, nil)
	ts := now()

	require.NoError(t, s.CreateAuthCode(ctx, "code", id, ts.Add(time.Minute)))
	require.NoError(t, s.CreateAuthCode(ctx, "expired", id, ts.Add(-time.Minute)))

	owner, err := s.ConsumeAuthCode(ctx, "code", ts)
	require.NoError(t, err)
	assert.Equal(t, id, owner)

	_, err = s.ConsumeAuthCode(ctx, "code", ts)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.ConsumeAuthCode(ctx, "expired", ts)
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Sessions(t *testing.T) {
	defer cleanup(t)

	id := createUser(t, "a@example.com", "A", nil, nil)
	ts := now()

	require.NoError(t, s.CreateSession(ctx, &entities.Session{TokenHash: "h1", UserID: id, CreatedAt: ts, ExpiresAt: ts.Add(time.Hour)}))
	require.NoError(t, s.CreateSession(ctx, &entities.Session{TokenHash: "h2", UserID: id, CreatedAt: ts, ExpiresAt: ts.Add(-time.Hour)}))
	require.NoError(t, s.CreateAuthCode(ctx, "expired", id, ts.Add(-time.Minute)))

	session, err := s.GetSession(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, id, session.UserID)
	assert.True(t, ts.Add(time.Hour).Equal(session.ExpiresAt))

	c, err := s.DeleteExpired(ctx, ts)
	require.NoError(t, err)
	assert.EqualValues(t, 2, c)

	_, err = s.GetSession(ctx, "h2")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.DeleteSession(ctx, "h1"))
	_, err = s.GetSession(ctx, "h1")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.CreateSession(ctx, &entities.Session{TokenHash: "h3", UserID: id, CreatedAt: ts, ExpiresAt: ts.Add(time.Hour)}))
	require.NoError(t, s.DeleteUserSessions(ctx, id))
	_, err = s.GetSession(ctx, "h3")
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Profile(t *testing.T) {
	defer cleanup(t)

	id := uuid.New().String()
	ts := now()
	require.NoError(t, s.CreateAccount(ctx, &entities.Account{ID: id, Email: "jane@example.com", CreatedAt: ts}))

	_, err := s.GetProfile(ctx, id)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.CreateProfile(ctx, entities.NewDefaultProfile(id, ts)))

	// second create keeps the first profile
	second := entities.NewDefaultProfile(id, ts.Add(time.Hour))
	second.FullName = "Other"
	require.NoError(t, s.CreateProfile(ctx, second))

	p, err := s.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, p.FullName)
	assert.Equal(t, entities.DefaultLocation, p.Location)
	assert.Equal(t, []string{}, p.Interests)
	assert.True(t, ts.Equal(p.CreatedAt))

	birthdate := time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC)
	p.FullName = "Jane Doe"
	p.Birthdate = &birthdate
	p.Interests = []string{"Travel", "Music"}
	p.Languages = []string{"English"}
	p.UpdatedAt = ts.Add(time.Minute)
	require.NoError(t, s.UpdateProfile(ctx, p))

	require.NoError(t, s.SetAvatar(ctx, id, "https://cdn/avatar.png", ts.Add(time.Minute)))
	require.NoError(t, s.SetVerified(ctx, id, true))

	// replace keeps avatar and verification
	replaced := *p
	replaced.Bio = "bio"
	replaced.AvatarURL = ""
	replaced.Verified = false
	require.NoError(t, s.SetProfile(ctx, &replaced))

	p, err = s.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.FullName)
	assert.Equal(t, "bio", p.Bio)
	assert.Equal(t, []string{"Travel", "Music"}, p.Interests)
	assert.Equal(t, []string{"English"}, p.Languages)
	assert.Equal(t, "https://cdn/avatar.png", p.AvatarURL)
	assert.True(t, p.Verified)
	require.NotNil(t, p.Birthdate)
	assert.Equal(t, "2000-03-15", p.Birthdate.Format(entities.BirthdateLayout))

	missing := entities.NewDefaultProfile(uuid.New().String(), ts)
	require.True(t, errors.Is(s.UpdateProfile(ctx, missing), storage.ErrNotFound))
	require.True(t, errors.Is(s.SetAvatar(ctx, missing.ID, "url", ts), storage.ErrNotFound))
}

func TestPg_ListUsers(t *testing.T) {
	defer cleanup(t)

	jane := createUser(t, "jane@example.com", "Jane Doe", nil, nil)
	createUser(t, "john@example.com", "John Smith", nil, nil)
	createUser(t, "odd@example.com", "100% Real", nil, nil)

	uu, err := s.ListUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, uu, 3)

	uu, err = s.ListUsers(ctx, "JANE")
	require.NoError(t, err)
	require.Len(t, uu, 1)
	assert.Equal(t, jane, uu[0].ID)
	assert.Equal(t, "jane@example.com", uu[0].Email)

	uu, err = s.ListUsers(ctx, "%")
	require.NoError(t, err)
	require.Len(t, uu, 1)
	assert.Equal(t, "100% Real", uu[0].FullName)
}

func TestPg_SwipesAndCheckMatch(t *testing.T) {
	defer cleanup(t)

	a := createUser(t, "a@example.com", "A", nil, nil)
	b := createUser(t, "b@example.com", "B", nil, nil)
	c := createUser(t, "c@example.com", "C", nil, nil)

	swipe(t, a, b, entities.LikeAction)

	ok, err := s.CheckMatch(ctx, a, b)
	require.NoError(t, err)
	require.False(t, ok)

	swipe(t, b, a, entities.LikeAction)

	ok, err = s.CheckMatch(ctx, a, b)
	require.NoError(t, err)
	require.True(t, ok)

	swipe(t, a, c, entities.LikeAction)
	swipe(t, c, a, entities.DislikeAction)

	ok, err = s.CheckMatch(ctx, a, c)
	require.NoError(t, err)
	require.False(t, ok)

	err = s.CreateSwipe(ctx, &entities.Swipe{
		ID: uuid.New().String(), SwiperID: a, SwipedID: b, Action: entities.DislikeAction, CreatedAt: now(),
	})
	require.True(t, errors.Is(err, storage.ErrAlreadyExists))

	liked, err := s.ListLiked(ctx, a)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.Equal(t, c, liked[0].ID)
	assert.Equal(t, b, liked[1].ID)
}

func TestPg_LockPair(t *testing.T) {
	defer cleanup(t)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		order []int
	)

	started := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
			if err := tx.LockPair(ctx, "a", "b"); err != nil {
				return err
			}
			close(started)
			time.Sleep(300 * time.Millisecond)

			mu.Lock()
			order = append(order, 1)
			mu.Unlock()

			return nil
		}))
	}()

	<-started
	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		// reversed pair takes the same lock
		if err := tx.LockPair(ctx, "b", "a"); err != nil {
			return err
		}

		mu.Lock()
		order = append(order, 2)
		mu.Unlock()

		return nil
	}))

	wg.Wait()
	assert.Equal(t, []int{1, 2}, order)
}

func TestPg_InTx_Rollback(t *testing.T) {
	defer cleanup(t)

	a := createUser(t, "a@example.com", "A", nil, nil)
	b := createUser(t, "b@example.com", "B", nil, nil)

	errTest := errors.New("test")
	require.Equal(t, errTest, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreateSwipe(ctx, &entities.Swipe{
			ID: uuid.New().String(), SwiperID: b, SwipedID: a, Action: entities.LikeAction, CreatedAt: now(),
		}))
		return errTest
	}))

	liked, err := s.ListLiked(ctx, b)
	require.NoError(t, err)
	require.Empty(t, liked)

	require.Equal(t, errBeginCalledWithinTx, s.InTx(ctx, func(tx storage.Storage) error {
		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	}))
}

func TestPg_GetPotentialMatches(t *testing.T) {
	defer cleanup(t)

	me := createUser(t, "me@example.com", "Me", []string{"Travel", "Music", "Art"}, []string{"English", "Spanish"})
	best := createUser(t, "best@example.com", "Best", []string{"Travel", "Music"}, []string{"English"})
	lang := createUser(t, "lang@example.com", "Lang", []string{"Cooking"}, []string{"English", "Spanish"})
	older := createUser(t, "older@example.com", "Older", nil, nil)
	newer := createUser(t, "newer@example.com", "Newer", nil, nil)
	swiped := createUser(t, "swiped@example.com", "Swiped", []string{"Travel", "Music", "Art"}, nil)
	banned := createUser(t, "banned@example.com", "Banned", []string{"Travel"}, nil)
	hidden := createUser(t, "hidden@example.com", "Hidden", []string{"Travel"}, nil)
	matchesOnly := createUser(t, "mo@example.com", "MatchesOnly", []string{"Travel"}, nil)
	empty := createUser(t, "empty@example.com", "", []string{"Travel"}, nil)

	_, err := db.ExecContext(ctx, `UPDATE profiles SET created_at = created_at - INTERVAL '1 hour' WHERE id = $1`, older)
	require.NoError(t, err)

	swipe(t, me, swiped, entities.DislikeAction)
	require.NoError(t, s.SetBanned(ctx, banned, true))

	for id, v := range map[string]entities.Visibility{hidden: entities.HiddenVisibility, matchesOnly: entities.MatchesOnlyVisibility} {
		st := entities.DefaultSettings(id)
		st.Visibility = v
		st.UpdatedAt = now()
		require.NoError(t, s.SetSettings(ctx, st))
	}

	cc, err := s.GetPotentialMatches(ctx, me, 10)
	require.NoError(t, err)

	ids := make([]string, len(cc))
	for i, v := range cc {
		ids[i] = v.ID
	}
	require.Equal(t, []string{best, lang, newer, older}, ids)
	assert.Equal(t, 5, cc[0].MatchScore)
	assert.Equal(t, 2, cc[1].MatchScore)
	assert.Equal(t, 0, cc[2].MatchScore)
	assert.NotContains(t, ids, empty)

	cc, err = s.GetPotentialMatches(ctx, me, 1)
	require.NoError(t, err)
	require.Len(t, cc, 1)
	assert.Equal(t, best, cc[0].ID)
}

func TestPg_Matches(t *testing.T) {
	defer cleanup(t)

	a := createUser(t, "a@example.com", "A", nil, nil)
	b := createUser(t, "b@example.com", "B", nil, nil)
	ts := now()

	_, err := s.GetMatchBetween(ctx, b, a)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	match := &entities.Match{
		ID:            uuid.New().String(),
		UserID:        a,
		MatchedUserID: b,
		Status:        entities.PendingMatchStatus,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	require.NoError(t, s.CreateMatch(ctx, match))

	// pair is unique regardless of direction
	require.True(t, errors.Is(s.CreateMatch(ctx, &entities.Match{
		ID: uuid.New().String(), UserID: b, MatchedUserID: a, Status: entities.PendingMatchStatus, CreatedAt: ts, UpdatedAt: ts,
	}), storage.ErrAlreadyExists))

	got, err := s.GetMatchBetween(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, match.ID, got.ID)
	assert.Equal(t, entities.PendingMatchStatus, got.Status)

	require.NoError(t, s.SetMatchStatus(ctx, match.ID, entities.MatchedMatchStatus, ts.Add(time.Minute)))

	got, err = s.GetMatch(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.MatchedMatchStatus, got.Status)
	assert.True(t, ts.Add(time.Minute).Equal(got.UpdatedAt))

	mm, err := s.ListMatches(ctx, b, entities.MatchedMatchStatus)
	require.NoError(t, err)
	require.Len(t, mm, 1)
	assert.Equal(t, a, mm[0].Profile.ID)
	assert.Equal(t, "A", mm[0].Profile.FullName)

	mm, err = s.ListMatches(ctx, b, entities.PendingMatchStatus)
	require.NoError(t, err)
	require.Empty(t, mm)

	require.NoError(t, s.CreateMessage(ctx, &entities.Message{ID: uuid.New().String(), MatchID: match.ID, SenderID: b, Content: "second", CreatedAt: ts.Add(time.Second)}))
	require.NoError(t, s.CreateMessage(ctx, &entities.Message{ID: uuid.New().String(), MatchID: match.ID, SenderID: a, Content: "first", CreatedAt: ts}))

	msgs, err := s.ListMessages(ctx, match.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "A", msgs[0].Sender.FullName)
	assert.Equal(t, "second", msgs[1].Content)

	oo, err := s.ListMatchOverviews(ctx)
	require.NoError(t, err)
	require.Len(t, oo, 1)
	assert.Equal(t, "A", oo[0].User.FullName)
	assert.Equal(t, "B", oo[0].MatchedUser.FullName)
	assert.Equal(t, 2, oo[0].MessagesCount)

	require.True(t, errors.Is(s.SetMatchStatus(ctx, uuid.New().String(), entities.UnmatchedMatchStatus, ts), storage.ErrNotFound))
}

func TestPg_Reports(t *testing.T) {
	defer cleanup(t)

	a := createUser(t, "a@example.com", "A", nil, nil)
	b := createUser(t, "b@example.com", "B", nil, nil)
	ts := now()

	first := &entities.Report{
		ID: uuid.New().String(), ReporterID: a, ReportedUserID: b, Reason: "spam",
		ContentType: entities.ProfileContentType, Status: entities.PendingReportStatus, CreatedAt: ts,
	}
	second := &entities.Report{
		ID: uuid.New().String(), ReporterID: b, ReportedUserID: a, Reason: "rude", Content: "hey",
		ContentType: entities.MessageContentType, Status: entities.PendingReportStatus, CreatedAt: ts.Add(time.Second),
	}
	require.NoError(t, s.CreateReport(ctx, first))
	require.NoError(t, s.CreateReport(ctx, second))

	require.NoError(t, s.SetReportStatus(ctx, first.ID, entities.ApprovedReportStatus))

	r, err := s.GetReport(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovedReportStatus, r.Status)

	all, err := s.ListReports(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "B", all[0].Reporter.FullName)
	assert.Equal(t, "A", all[0].ReportedUser.FullName)

	pending := entities.PendingReportStatus
	rr, err := s.ListReports(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, rr, 1)
	assert.Equal(t, second.ID, rr[0].ID)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entities.Stats{TotalUsers: 2, ReportedContent: 1}, stats)

	_, err = s.GetReport(ctx, uuid.New().String())
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_GetStats(t *testing.T) {
	defer cleanup(t)

	a := createUser(t, "a@example.com", "A", nil, nil)
	b := createUser(t, "b@example.com", "B", nil, nil)
	c := createUser(t, "c@example.com", "C", nil, nil)
	ts := now()

	matched := &entities.Match{
		ID: uuid.New().String(), UserID: a, MatchedUserID: b, Status: entities.MatchedMatchStatus, CreatedAt: ts, UpdatedAt: ts,
	}
	unmatched := &entities.Match{
		ID: uuid.New().String(), UserID: a, MatchedUserID: c, Status: entities.MatchedMatchStatus, CreatedAt: ts, UpdatedAt: ts,
	}
	require.NoError(t, s.CreateMatch(ctx, matched))
	require.NoError(t, s.CreateMatch(ctx, unmatched))

	require.NoError(t, s.CreateMessage(ctx, &entities.Message{ID: uuid.New().String(), MatchID: matched.ID, SenderID: a, Content: "hi", CreatedAt: ts}))
	require.NoError(t, s.CreateMessage(ctx, &entities.Message{ID: uuid.New().String(), MatchID: matched.ID, SenderID: b, Content: "hello", CreatedAt: ts}))
	require.NoError(t, s.CreateMessage(ctx, &entities.Message{ID: uuid.New().String(), MatchID: unmatched.ID, SenderID: c, Content: "hey", CreatedAt: ts}))

	require.NoError(t, s.SetMatchStatus(ctx, unmatched.ID, entities.UnmatchedMatchStatus, ts))

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entities.Stats{TotalUsers: 3, TotalMatches: 1, ActiveChats: 1}, stats)
}

func TestPg_MalformedID(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetMatch(ctx, "not-a-uuid")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.GetReport(ctx, "not-a-uuid")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	require.True(t, errors.Is(s.SetVerified(ctx, "not-a-uuid", true), storage.ErrNotFound))
}

func TestPg_Settings(t *testing.T) {
	defer cleanup(t)

	id := createUser(t, "a@example.com", "A", nil, nil)

	_, err := s.GetSettings(ctx, id)
	require.True(t, errors.Is(err, storage.ErrNotFound))

	st := entities.DefaultSettings(id)
	st.UpdatedAt = now()
	require.NoError(t, s.SetSettings(ctx, st))

	st.Visibility = entities.HiddenVisibility
	st.MaxDistance = 100
	st.PushNotifications = true
	require.NoError(t, s.SetSettings(ctx, st))

	got, err := s.GetSettings(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.HiddenVisibility, got.Visibility)
	assert.EqualValues(t, 100, got.MaxDistance)
	assert.True(t, got.PushNotifications)
	assert.True(t, got.EmailNotifications)

	st.MaxDistance = 7
	require.Error(t, s.SetSettings(ctx, st))
}
