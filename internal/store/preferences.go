package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type preferenceRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *preferenceRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *preferenceRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now().UTC()
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	q, args := r.builder().
		Select("value").
		From(entsql.Table(preferencesTable)).
		Where(entsql.EQ("key", key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", false, fmt.Errorf("read preference %q: %w", key, err)
		}
		return "", false, nil
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan preference %q: %w", key, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	q, args := r.builder().
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.clock()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("upsert preference %q: %w", key, err)
	}
	return nil
}

func (r *preferenceRepo) List(ctx context.Context) ([]Preference, error) {
	q, args := r.builder().
		Select("key", "value", "updated_at").
		From(entsql.Table(preferencesTable)).
		OrderBy("key").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []Preference
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.Key, &p.Value, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

func (r *preferenceRepo) Reset(ctx context.Context) error {
	q, args := r.builder().Delete(preferencesTable).Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete preferences: %w", err)
	}
	return nil
}
