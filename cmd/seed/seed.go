package main

import (
	"context"
	"errors"
	"strings"

	"github.com/newsdesk/newsdesk-api/internal/document"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/internal/errs"
	"github.com/newsdesk/newsdesk-api/internal/models"
)

type options struct {
	Username   string
	Password   string
	Email      string
	Categories []string
}

type report struct {
	UserCreated     bool
	CategoriesAdded []string
}

// errUnchanged aborts the update so an already seeded document is not rewritten.
var errUnchanged = errors.New("nothing to seed")

// seed adds the admin account and any missing categories. Existing users and
// categories (matched case-insensitively by name) are left alone.
func seed(ctx context.Context, store *service.Service, opts options) (report, error) {
	var r report
	if strings.TrimSpace(opts.Username) == "" || opts.Password == "" {
		return r, errs.Validation("username and password are required")
	}

	err := store.Update(ctx, func(doc *document.Document) error {
		r = report{}
		if !hasUser(doc.Users, opts.Username) {
			doc.Users = append(doc.Users, models.User{
				ID:        document.NextID(),
				Username:  opts.Username,
				Password:  opts.Password,
				Role:      models.RoleAdmin,
				Email:     opts.Email,
				Timestamp: document.Now(),
			})
			r.UserCreated = true
		}
		for _, name := range opts.Categories {
			name = strings.TrimSpace(name)
			if name == "" || hasCategory(doc.Categories, name) {
				continue
			}
			doc.Categories = append(doc.Categories, models.Category{
				ID:        document.NextID(),
				Name:      name,
				Timestamp: document.Now(),
			})
			r.CategoriesAdded = append(r.CategoriesAdded, name)
		}
		if !r.UserCreated && len(r.CategoriesAdded) == 0 {
			return errUnchanged
		}
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return r, nil
	}
	return r, err
}

func hasUser(list []models.User, username string) bool {
	for _, u := range list {
		if u.Username == username {
			return true
		}
	}
	return false
}

func hasCategory(list []models.Category, name string) bool {
	for _, c := range list {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
