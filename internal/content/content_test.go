package content

import (
	"errors"
	"testing"

	"trivia-night/internal/domain"
)

func TestBuiltinCatalogIsValid(t *testing.T) {
	catalog := Catalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	if len(catalog.Packs) != 7 {
		t.Fatalf("expected 7 packs, got %d", len(catalog.Packs))
	}
	if len(catalog.Bots) != 2 {
		t.Fatalf("expected 2 seed bots, got %d", len(catalog.Bots))
	}
	total := 0
	for _, p := range catalog.Packs {
		total += len(p.Questions)
	}
	if total != 22 {
		t.Fatalf("expected 22 questions, got %d", total)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	a := Catalog()
	a.Packs[0].Questions[0].Text = "changed"
	b := Catalog()
	if b.Packs[0].Questions[0].Text == "changed" {
		t.Fatalf("catalog shares state between calls")
	}
}

func TestValidateRejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Catalog)
	}{
		{"duplicate id", func(c *domain.Catalog) { c.Packs[1].ID = c.Packs[0].ID }},
		{"empty pack", func(c *domain.Catalog) { c.Packs[0].Questions = nil }},
		{"correct index out of range", func(c *domain.Catalog) { c.Packs[0].Questions[0].CorrectAnswerIndex = 4 }},
		{"single option", func(c *domain.Catalog) { c.Packs[0].Questions[0].Options = []string{"only"} }},
		{"nameless bot", func(c *domain.Catalog) { c.Bots[0].Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := Catalog()
			tt.mutate(&catalog)
			if err := catalog.Validate(); !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}
