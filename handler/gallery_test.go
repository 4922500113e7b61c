package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gymapi "github.com/ethiofit/gym-api"
)

type fakeGalleryService struct {
	listFn func(ctx context.Context) ([]gymapi.GalleryImage, error)
}

func (f *fakeGalleryService) List(ctx context.Context) ([]gymapi.GalleryImage, error) {
	if f.listFn == nil {
		return []gymapi.GalleryImage{}, nil
	}
	return f.listFn(ctx)
}

func (f *fakeGalleryService) Replace(ctx context.Context, images []gymapi.GalleryImage) error {
	return nil
}

func TestListGallery(t *testing.T) {
	svc := &fakeGalleryService{
		listFn: func(ctx context.Context) ([]gymapi.GalleryImage, error) {
			return []gymapi.GalleryImage{
				{ID: "g1", URL: "https://x/1.jpg", Category: "Gym", Label: "Elite Iron", Span: "md:col-span-2 md:row-span-2"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
	resp := httptest.NewRecorder()

	NewGalleryHandler(svc, testLog()).List(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var out listGalleryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !out.Success || len(out.Data) != 1 || out.Data[0].Label != "Elite Iron" {
		t.Fatalf("unexpected response: %+v", out)
	}
}
