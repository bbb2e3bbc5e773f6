package users

import (
	"context"
	"crypto/subtle"

	"github.com/newsdesk/newsdesk-api/internal/activity"
	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/models"
	"github.com/newsdesk/newsdesk-api/pkg/metrics"
)

// Kind is the activity log name for user mutations.
const Kind = "user"

// Input carries user fields from a request. Nil means "not provided".
type Input struct {
	Username *string
	Password *string
	Role     *string
	Email    *string
}

// Service encapsulates user-related business logic over the newsroom document.
// Every user it returns is sanitized.
type Service struct {
	store *service.Service
	log   *activity.Log
}

func NewService(store *service.Service, log *activity.Log) *Service {
	return &Service{store: store, log: log}
}

// Authenticate matches username and password exactly. Unknown users and wrong
// passwords fail with the same error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	doc, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var match *models.User
	for i := range doc.Users {
		if doc.Users[i].Username == username {
			match = &doc.Users[i]
			break
		}
	}

	stored := ""
	if match != nil {
		stored = match.Password
	}
	ok := subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	if match == nil || !ok || username == "" {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		return nil, errs.ErrUnauthorized
	}
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	u := match.Sanitized()
	return &u, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	doc, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return models.SanitizeUsers(doc.Users), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.User, error) {
	doc, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := document.IndexOf(doc.Users, id)
	if i < 0 {
		return nil, errs.ErrNotFound
	}
	u := doc.Users[i].Sanitized()
	return &u, nil
}

// Create adds a user. Username and password are required and the username
// must not be taken.
func (s *Service) Create(ctx context.Context, in Input) (*models.User, error) {
	if in.Username == nil || *in.Username == "" {
		return nil, errs.Validation("username is required")
	}
	if in.Password == nil || *in.Password == "" {
		return nil, errs.Validation("password is required")
	}

	u := models.User{
		Username: *in.Username,
		Password: *in.Password,
		Role:     models.RoleEditor,
	}
	if in.Role != nil && *in.Role != "" {
		u.Role = *in.Role
	}
	if in.Email != nil {
		u.Email = *in.Email
	}

	err := s.store.Update(ctx, func(doc *document.Document) error {
		for _, existing := range doc.Users {
			if existing.Username == u.Username {
				return errs.Validation("username already exists")
			}
		}
		u.ID = document.NextID()
		u.Timestamp = document.Now()
		doc.Users = append(doc.Users, u)
		s.logActivity(doc, u.Username, activity.StatusCreated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := u.Sanitized()
	return &out, nil
}

// Update replaces the provided fields. A missing password keeps the old one.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*models.User, error) {
	var out models.User
	err := s.store.Update(ctx, func(doc *document.Document) error {
		i := document.IndexOf(doc.Users, id)
		if i < 0 {
			return errs.ErrNotFound
		}
		u := doc.Users[i]
		if in.Username != nil {
			u.Username = *in.Username
		}
		if in.Password != nil && *in.Password != "" {
			u.Password = *in.Password
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		doc.Users[i] = u
		out = u.Sanitized()
		s.logActivity(doc, u.Username, activity.StatusUpdated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Update(ctx, func(doc *document.Document) error {
		i := document.IndexOf(doc.Users, id)
		if i < 0 {
			return errs.ErrNotFound
		}
		name := doc.Users[i].Username
		doc.Users = document.RemoveAt(doc.Users, i)
		s.logActivity(doc, name, activity.StatusDeleted)
		return nil
	})
}

func (s *Service) logActivity(doc *document.Document, title, status string) {
	if s.log != nil && s.log.Enabled(Kind) {
		s.log.Append(doc, Kind, title, "", status)
	}
}
