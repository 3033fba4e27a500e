package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"lines-api/models"
)

const taskSelect = `
	SELECT t.id, t.owner_id, u.username, t.created, t.modified, t.title, t.description, t.due, t.line_id
	FROM tasks t
	JOIN users u ON u.id = t.owner_id
`

func scanTask(s interface{ Scan(...interface{}) error }) (*models.Task, error) {
	t := &models.Task{}
	var due sql.NullTime
	err := s.Scan(&t.ID, &t.OwnerID, &t.OwnerUsername, &t.Created, &t.Modified, &t.Title, &t.Desc, &due, &t.LineID)
	if due.Valid {
		t.Due = &due.Time
	}
	return t, err
}

func (db *DB) CreateTask(ctx context.Context, ownerID int64, in models.TaskInput) (*models.Task, error) {
	ts := db.Now()
	id, err := db.insert(ctx, `
		INSERT INTO tasks (owner_id, line_id, created, modified, title, description, due)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ownerID, *in.LineID, ts, ts, deref(in.Title), deref(in.Desc), nullTime(in.Due))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir tarefa: %w", err)
	}
	return db.GetTask(ctx, id)
}

func (db *DB) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	t, err := scanTask(db.queryRow(ctx, taskSelect+" WHERE t.id = ?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (db *DB) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := db.query(ctx, taskSelect+" ORDER BY t.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (db *DB) UpdateTask(ctx context.Context, id int64, in models.TaskInput) (*models.Task, error) {
	u := &update{}
	if in.Title != nil {
		u.set("title", *in.Title)
	}
	if in.Desc != nil {
		u.set("description", *in.Desc)
	}
	if in.DueSet {
		u.set("due", nullTime(in.Due))
	}
	if in.LineID != nil {
		u.set("line_id", *in.LineID)
	}
	if err := db.applyUpdate(ctx, "tasks", id, u); err != nil {
		return nil, err
	}
	return db.GetTask(ctx, id)
}

func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	return db.deleteByID(ctx, "tasks", id)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
