package cache

import (
	"testing"

	"github.com/clinivoz/sitescan/models"
)

func TestKeyIsStableAndURLSensitive(t *testing.T) {
	a := Key("https://clinica.example")
	if a != Key("https://clinica.example") {
		t.Error("same URL should map to the same key")
	}
	if a == Key("https://otra.example") {
		t.Error("different URLs should map to different keys")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64 hex chars", len(a))
	}
}

func TestGetSet(t *testing.T) {
	c := New(10)
	resp := &models.ScrapeResponse{ClinicInfo: models.ClinicInfo{Name: "Clínica Uno"}}

	if _, ok := c.Get(Key("u"), 60000); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set(Key("u"), resp)

	got, ok := c.Get(Key("u"), 60000)
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.Name != "Clínica Uno" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestGetRejectsNonPositiveMaxAge(t *testing.T) {
	c := New(10)
	c.Set("k", &models.ScrapeResponse{})

	if _, ok := c.Get("k", 0); ok {
		t.Error("maxAge 0 should never hit")
	}
	if _, ok := c.Get("k", -1); ok {
		t.Error("negative maxAge should never hit")
	}
}

func TestSetEvictsAtCapacity(t *testing.T) {
	c := New(2)
	c.Set("a", &models.ScrapeResponse{})
	c.Set("b", &models.ScrapeResponse{})
	c.Set("c", &models.ScrapeResponse{})

	c.mu.RLock()
	n := len(c.store)
	c.mu.RUnlock()
	if n != 2 {
		t.Errorf("store size = %d, want capacity 2", n)
	}
}
