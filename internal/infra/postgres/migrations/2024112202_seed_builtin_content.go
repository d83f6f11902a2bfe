package migrations

import (
	"context"
	"encoding/json"
	"fmt"

	"trivia-night/internal/content"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			catalog := content.Catalog()
			return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
				for i, pack := range catalog.Packs {
					data, err := json.Marshal(pack)
					if err != nil {
						return fmt.Errorf("marshal pack %s: %w", pack.ID, err)
					}
					if _, err := tx.ExecContext(ctx,
						`INSERT INTO packs (id, position, data) VALUES (?, ?, ?::jsonb)
						 ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, data = EXCLUDED.data`,
						pack.ID, i, string(data)); err != nil {
						return fmt.Errorf("insert pack %s: %w", pack.ID, err)
					}
				}
				for i, bot := range catalog.Bots {
					if _, err := tx.ExecContext(ctx,
						`INSERT INTO bots (position, name, avatar) VALUES (?, ?, ?)
						 ON CONFLICT (position) DO UPDATE SET name = EXCLUDED.name, avatar = EXCLUDED.avatar`,
						i, bot.Name, bot.Avatar); err != nil {
						return fmt.Errorf("insert bot %s: %w", bot.Name, err)
					}
				}
				return nil
			})
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DELETE FROM bots; DELETE FROM packs`)
			return err
		},
	)
}
