package database

import (
	"context"
	"fmt"

	"lines-api/models"
)

const eventSelect = `
	SELECT e.id, e.owner_id, u.username, e.created, e.modified, e.title, e.description,
	       e.start_at, e.end_at, e.line_id
	FROM events e
	JOIN users u ON u.id = e.owner_id
`

func scanEvent(s interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	err := s.Scan(&e.ID, &e.OwnerID, &e.OwnerUsername, &e.Created, &e.Modified, &e.Title, &e.Desc,
		&e.Start, &e.End, &e.LineID)
	return e, err
}

func (db *DB) CreateEvent(ctx context.Context, ownerID int64, in models.EventInput) (*models.Event, error) {
	ts := db.Now()
	id, err := db.insert(ctx, `
		INSERT INTO events (owner_id, line_id, created, modified, title, description, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, ownerID, *in.LineID, ts, ts, deref(in.Title), deref(in.Desc), *in.Start, *in.End)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir evento: %w", err)
	}
	return db.GetEvent(ctx, id)
}

func (db *DB) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	e, err := scanEvent(db.queryRow(ctx, eventSelect+" WHERE e.id = ?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

func (db *DB) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := db.query(ctx, eventSelect+" ORDER BY e.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (db *DB) UpdateEvent(ctx context.Context, id int64, in models.EventInput) (*models.Event, error) {
	u := &update{}
	if in.Title != nil {
		u.set("title", *in.Title)
	}
	if in.Desc != nil {
		u.set("description", *in.Desc)
	}
	if in.Start != nil {
		u.set("start_at", *in.Start)
	}
	if in.End != nil {
		u.set("end_at", *in.End)
	}
	if in.LineID != nil {
		u.set("line_id", *in.LineID)
	}
	if err := db.applyUpdate(ctx, "events", id, u); err != nil {
		return nil, err
	}
	return db.GetEvent(ctx, id)
}

func (db *DB) DeleteEvent(ctx context.Context, id int64) error {
	return db.deleteByID(ctx, "events", id)
}
