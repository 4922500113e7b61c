package gymapi

import "context"

// DefaultGallerySpan is the grid placement used when a seeded image does not
// specify one. The value is consumed verbatim by the site's gallery layout.
const DefaultGallerySpan = "md:col-span-1 md:row-span-1"

// GalleryImage is a single tile in the public gallery grid.
type GalleryImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Label    string `json:"label"`
	Span     string `json:"span"`
}

// GalleryService reads the gallery at runtime; Replace is only used by the
// seeding tool and swaps the whole set in one transaction.
type GalleryService interface {
	List(ctx context.Context) ([]GalleryImage, error)
	Replace(ctx context.Context, images []GalleryImage) error
}
