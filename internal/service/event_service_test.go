package service

import (
	"errors"
	"testing"
	"time"
)

func TestCreateEventRequiresDate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventService(gdb)

	if _, err := svc.Create(EventInput{Title: "Lagos Rally"}); !errors.Is(err, ErrEventDateMissing) {
		t.Fatalf("expected ErrEventDateMissing, got %v", err)
	}
}

func TestEventPublishGate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventService(gdb)

	when := time.Date(2027, time.February, 14, 10, 0, 0, 0, time.UTC)
	if _, err := svc.Create(EventInput{Title: "Draft Rally", StartsAt: when}); err != nil {
		t.Fatalf("create draft returned error: %v", err)
	}
	live, err := svc.Create(EventInput{Title: "Abuja Town Hall", StartsAt: when, Location: "Abuja", Published: true})
	if err != nil {
		t.Fatalf("create live returned error: %v", err)
	}

	published, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(published) != 1 || published[0].ID != live.ID {
		t.Fatalf("expected only the live event, got %d events", len(published))
	}

	if _, err := svc.GetPublishedBySlug("draft-rally"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected draft invisible by slug, got %v", err)
	}

	fetched, err := svc.GetPublishedBySlug("abuja-town-hall")
	if err != nil {
		t.Fatalf("GetPublishedBySlug returned error: %v", err)
	}
	if fetched.Location != "Abuja" {
		t.Fatalf("unexpected location %q", fetched.Location)
	}
}

func TestEventSlugConflict(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewEventService(gdb)

	when := time.Now()
	if _, err := svc.Create(EventInput{Title: "Unity March", StartsAt: when}); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}
	if _, err := svc.Create(EventInput{Title: "Unity, March?", StartsAt: when}); !errors.Is(err, ErrSlugConflict) {
		t.Fatalf("expected ErrSlugConflict, got %v", err)
	}
}
