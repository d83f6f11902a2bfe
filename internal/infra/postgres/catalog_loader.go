package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"trivia-night/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads packs (JSONB) and seed bots from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var catalog domain.Catalog

	rows, err := l.pool.Query(ctx, `SELECT data FROM packs ORDER BY position, id`)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load packs: %w", err)
	}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			rows.Close()
			return domain.Catalog{}, fmt.Errorf("scan pack: %w", err)
		}
		var pack domain.Pack
		if err := json.Unmarshal(raw, &pack); err != nil {
			rows.Close()
			return domain.Catalog{}, fmt.Errorf("unmarshal pack: %w", err)
		}
		catalog.Packs = append(catalog.Packs, pack)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf("load packs: %w", err)
	}

	botRows, err := l.pool.Query(ctx, `SELECT name, avatar FROM bots ORDER BY position`)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load bots: %w", err)
	}
	defer botRows.Close()
	for botRows.Next() {
		var bot domain.BotSeed
		if err := botRows.Scan(&bot.Name, &bot.Avatar); err != nil {
			return domain.Catalog{}, fmt.Errorf("scan bot: %w", err)
		}
		catalog.Bots = append(catalog.Bots, bot)
	}
	if err := botRows.Err(); err != nil {
		return domain.Catalog{}, fmt.Errorf("load bots: %w", err)
	}

	if len(catalog.Packs) == 0 {
		return domain.Catalog{}, fmt.Errorf("load packs: %w", domain.ErrPackNotFound)
	}
	return catalog, nil
}
