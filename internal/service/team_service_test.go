package service

import (
	"errors"
	"testing"
)

func TestCreateTeamMemberAssignsSort(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTeamService(gdb)

	first, err := svc.Create(TeamMemberInput{Name: "Ada Obi", Role: "Coordinator", Published: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	second, err := svc.Create(TeamMemberInput{Name: "Bello Musa", Role: "Secretary", Published: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if second.Sort <= first.Sort {
		t.Fatalf("expected later member after earlier one, got %d then %d", first.Sort, second.Sort)
	}
	if first.Slug != "ada-obi" {
		t.Fatalf("expected slug derived from name, got %q", first.Slug)
	}
}

func TestTeamPublishGate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTeamService(gdb)

	if _, err := svc.Create(TeamMemberInput{Name: "Hidden Member"}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := svc.Create(TeamMemberInput{Name: "Visible Member", Published: true}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	published, err := svc.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished returned error: %v", err)
	}
	if len(published) != 1 || published[0].Name != "Visible Member" {
		t.Fatalf("expected only the visible member, got %d", len(published))
	}
}

func TestTeamMemberSlugLookupHonoursPublishGate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTeamService(gdb)

	if _, err := svc.Create(TeamMemberInput{Name: "Ada Obi", Role: "Coordinator", Published: true}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := svc.Create(TeamMemberInput{Name: "Bello Musa", Role: "Secretary"}); err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	member, err := svc.GetPublishedBySlug("ada-obi")
	if err != nil {
		t.Fatalf("GetPublishedBySlug returned error: %v", err)
	}
	if member.Name != "Ada Obi" {
		t.Fatalf("expected Ada Obi, got %q", member.Name)
	}

	if _, err := svc.GetPublishedBySlug("bello-musa"); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected unpublished member to be invisible, got %v", err)
	}
	if _, err := svc.GetPublishedBySlug("no-such-member"); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
	}
}

func TestTeamMemberNameRequired(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewTeamService(gdb)

	if _, err := svc.Create(TeamMemberInput{Role: "Coordinator"}); !errors.Is(err, ErrTeamMemberNameMissing) {
		t.Fatalf("expected ErrTeamMemberNameMissing, got %v", err)
	}
}
