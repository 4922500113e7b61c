package postgres

import (
	"context"
	"database/sql"

	gymapi "github.com/ethiofit/gym-api"
)

type GalleryService struct {
	db *sql.DB
}

func NewGalleryService(db *sql.DB) gymapi.GalleryService {
	return &GalleryService{
		db: db,
	}
}

func (gs GalleryService) List(ctx context.Context) ([]gymapi.GalleryImage, error) {
	const query = `
	SELECT
		id,
		url,
		category,
		label,
		span
	FROM gallery_images`

	rows, err := gs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []gymapi.GalleryImage{}
	for rows.Next() {
		var img gymapi.GalleryImage
		if err := rows.Scan(
			&img.ID,
			&img.URL,
			&img.Category,
			&img.Label,
			&img.Span,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Replace swaps the entire gallery for the given set in one transaction.
// Only the seeding tool calls this.
func (gs GalleryService) Replace(ctx context.Context, images []gymapi.GalleryImage) error {
	tx, err := gs.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM gallery_images`); err != nil {
		tx.Rollback()
		return err
	}

	const query = `
	INSERT INTO gallery_images (
		id, url, category, label, span
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	for _, img := range images {
		if _, err := tx.ExecContext(ctx, query,
			img.ID,
			img.URL,
			img.Category,
			img.Label,
			img.Span,
		); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
