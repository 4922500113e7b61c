// gymctl is the operational companion to the API server: it bootstraps the
// single admin account and seeds the public gallery. Both steps run
// out-of-band, never through the HTTP surface.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"

	gymapi "github.com/ethiofit/gym-api"
	"github.com/ethiofit/gym-api/auth"
	"github.com/ethiofit/gym-api/postgres"
)

var seedImages = []gymapi.GalleryImage{
	{URL: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48", Category: "Gym", Label: "Elite Iron", Span: "md:col-span-2 md:row-span-2"},
	{URL: "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed", Category: "Boxing", Label: "Power Punch", Span: "md:col-span-1 md:row-span-1"},
	{URL: "https://images.unsplash.com/photo-1552196564-97c84853752e", Category: "Yoga", Label: "Zen Flow", Span: "md:col-span-1 md:row-span-2"},
	{URL: "https://images.unsplash.com/photo-1594381898411-846e7d193883", Category: "Boxing", Label: "Speed Work", Span: "md:col-span-2 md:row-span-1"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := struct {
		DB struct {
			User       string `conf:"default:gymapi"`
			Password   string `conf:"default:gymapi,mask"`
			Host       string `conf:"default:localhost"`
			Name       string `conf:"default:gym"`
			DisableTLS bool   `conf:"default:true"`
		}
		Args conf.Args
	}{}

	help, err := conf.Parse("GYM", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	db, err := postgres.Open(postgres.Config{
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Host:       cfg.DB.Host,
		Name:       cfg.DB.Name,
		DisableTLS: cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("updating database schema: %w", err)
	}

	switch cfg.Args.Num(0) {
	case "create-admin":
		return createAdmin(ctx, db, cfg.Args.Num(1), cfg.Args.Num(2), cfg.Args.Num(3))
	case "seed-gallery":
		return seedGallery(ctx, db)
	default:
		return errors.New("usage: gymctl [create-admin <email> <password> [name] | seed-gallery]")
	}
}

func createAdmin(ctx context.Context, db *sql.DB, email, password, name string) error {
	if email == "" || password == "" {
		return errors.New("usage: gymctl create-admin <email> <password> [name]")
	}
	if name == "" {
		name = "Super Admin"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	accounts := postgres.NewAccountService(db)
	err = accounts.Create(ctx, gymapi.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, gymapi.ErrDuplicateAccount) {
			return fmt.Errorf("admin %s already exists", email)
		}
		return fmt.Errorf("creating admin: %w", err)
	}

	fmt.Printf("admin created: %s\n", email)
	return nil
}

func seedGallery(ctx context.Context, db *sql.DB) error {
	images := make([]gymapi.GalleryImage, len(seedImages))
	for i, img := range seedImages {
		img.ID = uuid.NewString()
		if img.Span == "" {
			img.Span = gymapi.DefaultGallerySpan
		}
		images[i] = img
	}

	if err := postgres.NewGalleryService(db).Replace(ctx, images); err != nil {
		return fmt.Errorf("seeding gallery: %w", err)
	}

	fmt.Printf("gallery seeded: %d images\n", len(images))
	return nil
}
