package service

import (
	"errors"
	"testing"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
)

func TestBulkUpsertCreatesAndReads(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	err := svc.BulkUpsert([]SettingInput{
		{Key: "site_title", Value: "Transporters for Tinubu", Type: "text"},
		{Key: db.SettingKeyMaintenanceMode, Value: "true", Type: "boolean"},
	})
	if err != nil {
		t.Fatalf("BulkUpsert returned error: %v", err)
	}

	setting, err := svc.Get(db.SettingKeyMaintenanceMode)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if setting.Value != "true" || setting.Type != db.SettingTypeBoolean {
		t.Fatalf("unexpected setting: value=%q type=%q", setting.Value, setting.Type)
	}

	enabled, err := svc.MaintenanceMode()
	if err != nil {
		t.Fatalf("MaintenanceMode returned error: %v", err)
	}
	if !enabled {
		t.Fatal("expected maintenance mode to be enabled")
	}
}

func TestBulkUpsertOverwritesExisting(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	if err := svc.BulkUpsert([]SettingInput{{Key: "site_title", Value: "Old", Type: "text"}}); err != nil {
		t.Fatalf("first upsert returned error: %v", err)
	}
	if err := svc.BulkUpsert([]SettingInput{{Key: "site_title", Value: "New", Type: "text", Description: "shown in header"}}); err != nil {
		t.Fatalf("second upsert returned error: %v", err)
	}

	setting, err := svc.Get("site_title")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if setting.Value != "New" {
		t.Fatalf("expected overwritten value, got %q", setting.Value)
	}
	if setting.Description != "shown in header" {
		t.Fatalf("expected description updated, got %q", setting.Description)
	}

	var count int64
	gdb.Model(&db.Setting{}).Where("key = ?", "site_title").Count(&count)
	if count != 1 {
		t.Fatalf("expected a single row per key, got %d", count)
	}
}

func TestBulkUpsertRejectsInvalidBoolean(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	err := svc.BulkUpsert([]SettingInput{
		{Key: "site_title", Value: "Fine", Type: "text"},
		{Key: db.SettingKeyMaintenanceMode, Value: "yes", Type: "boolean"},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// the whole batch must be rejected, not just the bad key
	if _, err := svc.Get("site_title"); !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected no settings written, got %v", err)
	}
}

func TestBulkUpsertRejectsEmptyKey(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	if err := svc.BulkUpsert([]SettingInput{{Key: "  ", Value: "x"}}); !errors.Is(err, ErrSettingKeyMissing) {
		t.Fatalf("expected ErrSettingKeyMissing, got %v", err)
	}
}

func TestBulkUpsertRejectsUnknownType(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	if err := svc.BulkUpsert([]SettingInput{{Key: "k", Value: "1", Type: "integer"}}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}

func TestMaintenanceModeDefaultsOff(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSettingService(gdb)

	enabled, err := svc.MaintenanceMode()
	if err != nil {
		t.Fatalf("MaintenanceMode returned error: %v", err)
	}
	if enabled {
		t.Fatal("expected maintenance mode off when unset")
	}
}
