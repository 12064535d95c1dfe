package service

import (
	"errors"
	"testing"
	"time"
)

func TestGalleryImagesKeepOrder(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventGalleryService(gdb)

	images := []string{
		"/static/uploads/rally-1.jpg",
		"/static/uploads/rally-2.jpg",
		"/static/uploads/rally-3.jpg",
	}
	gallery, err := svc.Create(EventGalleryInput{
		Title:     "Kano Rally",
		EventDate: time.Date(2027, time.January, 9, 0, 0, 0, 0, time.UTC),
		Images:    images,
		Published: true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	reloaded, err := svc.GetPublishedBySlug("kano-rally")
	if err != nil {
		t.Fatalf("GetPublishedBySlug returned error: %v", err)
	}
	if len(reloaded.Images) != len(images) {
		t.Fatalf("expected %d images, got %d", len(images), len(reloaded.Images))
	}
	for i, url := range images {
		if reloaded.Images[i] != url {
			t.Fatalf("image order lost at %d: %q", i, reloaded.Images[i])
		}
	}

	if gallery.Slug != "kano-rally" {
		t.Fatalf("expected slug 'kano-rally', got %q", gallery.Slug)
	}
}

func TestGalleryUpdateReplacesImages(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventGalleryService(gdb)

	gallery, err := svc.Create(EventGalleryInput{
		Title:  "Launch",
		Images: []string{"/a.jpg", "/b.jpg"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(gallery.ID, EventGalleryInput{
		Title:  "Launch",
		Images: []string{"/c.jpg"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0] != "/c.jpg" {
		t.Fatalf("expected replaced image list, got %v", updated.Images)
	}
}

func TestGalleryTitleRequired(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventGalleryService(gdb)

	if _, err := svc.Create(EventGalleryInput{Images: []string{"/a.jpg"}}); !errors.Is(err, ErrGalleryTitleMissing) {
		t.Fatalf("expected ErrGalleryTitleMissing, got %v", err)
	}
}
