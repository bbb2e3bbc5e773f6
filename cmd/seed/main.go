// Command seed prepares a newsroom store with an admin account and, optionally,
// a starting set of categories. Running it twice changes nothing.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/newsdesk/newsdesk-api/internal/config"
	"github.com/newsdesk/newsdesk-api/internal/document/repository"
	"github.com/newsdesk/newsdesk-api/internal/document/service"
	"github.com/newsdesk/newsdesk-api/pkg/logger"
)

func main() {
	username := flag.String("username", "admin", "Admin username")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "Admin password (default $SEED_ADMIN_PASSWORD)")
	email := flag.String("email", "", "Admin email")
	categories := flag.String("categories", "", "Comma-separated categories to create, e.g. \"World,Politics,Sports\"")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.SetFormat(cfg.Log.Format)

	repo, cleanup, err := repository.NewFromConfig(cfg)
	if err != nil {
		logger.Fatalf("failed to open store: %v", err)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r, err := seed(ctx, service.New(repo), options{
		Username:   *username,
		Password:   *password,
		Email:      *email,
		Categories: strings.Split(*categories, ","),
	})
	if err != nil {
		cleanup()
		logger.Fatalf("seed failed: %v", err)
	}
	logger.Infof("seed done: store=%s user_created=%v categories_added=%v", cfg.Store.Driver, r.UserCreated, r.CategoriesAdded)
}
