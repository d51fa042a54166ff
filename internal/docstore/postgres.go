package docstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores documents as JSONB rows. Subscribers are local to the
// process: every successful write re-reads the collection and fans the
// fresh snapshot out, preserving the full-snapshot-replace model.
type Postgres struct {
	db   *pgxpool.Pool
	subs *subscribers
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db, subs: newSubscribers()}
}

func (p *Postgres) Subscribe(collection string, fn func(Snapshot)) (func(), error) {
	snap, err := p.readSnapshot(context.Background(), collection)
	if err != nil {
		return nil, err
	}
	unsubscribe := p.subs.add(collection, fn)
	fn(snap)
	return unsubscribe, nil
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	var raw []byte
	err := p.db.QueryRow(ctx, `
		SELECT fields FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&raw)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Document{}, err
	}
	return Document{ID: id, Fields: fields}, nil
}

func (p *Postgres) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}

	_, err = p.db.Exec(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3)
	`, collection, id, raw)
	if err != nil {
		return "", err
	}

	p.broadcast(ctx, collection)
	return id, nil
}

func (p *Postgres) Set(ctx context.Context, collection, id string, fields map[string]any, merge bool) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	if merge {
		_, err = p.db.Exec(ctx, `
			INSERT INTO documents (collection, id, fields)
			VALUES ($1, $2, $3)
			ON CONFLICT (collection, id)
			DO UPDATE SET fields = documents.fields || EXCLUDED.fields,
			              updated_at = CURRENT_TIMESTAMP
		`, collection, id, raw)
	} else {
		_, err = p.db.Exec(ctx, `
			INSERT INTO documents (collection, id, fields)
			VALUES ($1, $2, $3)
			ON CONFLICT (collection, id)
			DO UPDATE SET fields = EXCLUDED.fields,
			              updated_at = CURRENT_TIMESTAMP
		`, collection, id, raw)
	}
	if err != nil {
		return err
	}

	p.broadcast(ctx, collection)
	return nil
}

func (p *Postgres) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	tag, err := p.db.Exec(ctx, `
		UPDATE documents
		SET fields = fields || $3, updated_at = CURRENT_TIMESTAMP
		WHERE collection = $1 AND id = $2
	`, collection, id, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	p.broadcast(ctx, collection)
	return nil
}

func (p *Postgres) Delete(ctx context.Context, collection, id string) error {
	tag, err := p.db.Exec(ctx, `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
	`, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	p.broadcast(ctx, collection)
	return nil
}

func (p *Postgres) broadcast(ctx context.Context, collection string) {
	snap, err := p.readSnapshot(ctx, collection)
	if err != nil {
		return
	}
	p.subs.notify(collection, snap)
}

func (p *Postgres) readSnapshot(ctx context.Context, collection string) (Snapshot, error) {
	rows, err := p.db.Query(ctx, `
		SELECT id, fields FROM documents
		WHERE collection = $1
		ORDER BY id
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := make(Snapshot, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		fields := make(map[string]any)
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		snap = append(snap, Document{ID: id, Fields: fields})
	}
	return snap, rows.Err()
}
