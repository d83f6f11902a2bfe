package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-night/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	catalog, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
	if _, ok := catalog.Pack("pack-1"); !ok {
		t.Fatalf("expected pack-1 in cached catalog")
	}
}

func TestCatalogRepositoryReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(loader, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetCatalog(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetCatalog(context.Background())

	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryPropagatesLoaderError(t *testing.T) {
	boom := errors.New("boom")
	repo := NewCatalogRepository(failingLoader{err: boom}, time.Minute)
	if _, err := repo.GetCatalog(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

type failingLoader struct{ err error }

func (l failingLoader) LoadCatalog(context.Context) (domain.Catalog, error) {
	return domain.Catalog{}, l.err
}

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		Packs: []domain.Pack{
			{
				ID:    "pack-1",
				Title: "Arithmetic",
				Questions: []domain.Question{
					{Text: "What is 2 + 2?", Options: []string{"3", "4"}, CorrectAnswerIndex: 1, Points: 1000},
				},
			},
		},
		Bots: []domain.BotSeed{{Name: "Salah", Avatar: "🧔‍♂️"}},
	}
}
