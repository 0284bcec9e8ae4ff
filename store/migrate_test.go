package store

import (
	"strings"
	"testing"

	"github.com/Sonaa-Moda/sonaa-storefront-backend/models"
)

// The schema default must match the status literal the queries filter
// on, or rows relying on the column default would never surface in
// the storefront.
func TestInitMigrationStatusMatchesModel(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/00001_init.sql")
	if err != nil {
		t.Fatalf("failed to read embedded migration: %v", err)
	}
	sql := string(raw)

	if !strings.Contains(sql, "DEFAULT '"+models.ProductStatusActive+"'") {
		t.Errorf("products.status default does not match %q", models.ProductStatusActive)
	}
	check := "CHECK (status IN ('" + models.ProductStatusActive + "', '" + models.ProductStatusDraft + "'))"
	if !strings.Contains(sql, check) {
		t.Errorf("products.status missing constraint %q", check)
	}
}
