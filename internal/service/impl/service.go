// Package impl is implementation of service interface.
package impl

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sparkdate/spark/internal/blob"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// Options ...
type Options struct {
	// SessionTTL is a lifetime of a session created on sign in.
	SessionTTL time.Duration
	// FeedLimit is a maximal length of a candidates sequence.
	FeedLimit uint16
}

// service ...
type srv struct {
	s    storage.Storage
	b    blob.Storage
	opts Options

	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, b blob.Storage, opts Options) service.Service {
	return srv{
		s:    s,
		b:    b,
		opts: opts,
		now:  time.Now,
	}
}

func (s srv) timestamp() time.Time {
	return s.now().UTC()
}

func authenticated(id service.Identity) error {
	if id.UserID == "" {
		return service.ErrNotAuthenticated
	}
	return nil
}

// validID reports whether id is a canonical UUID.
func validID(id string) bool {
	if len(id) != 36 {
		return false
	}

	_, err := uuid.Parse(id)
	return err == nil
}

// requireID returns service.ErrNotFound for identifiers which can not reference any entity.
func requireID(what, id string) error {
	if !validID(id) {
		return fmt.Errorf("%w: %s %q", service.ErrNotFound, what, id)
	}
	return nil
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", service.ErrValidation, fmt.Sprintf(format, args...))
}
