package database

import (
	"context"
	"fmt"

	"lines-api/models"
)

const lineSelect = `
	SELECT l.id, l.owner_id, u.username, l.created, l.modified, l.title
	FROM lines l
	JOIN users u ON u.id = l.owner_id
`

func scanLine(s interface{ Scan(...interface{}) error }) (*models.Line, error) {
	l := &models.Line{}
	err := s.Scan(&l.ID, &l.OwnerID, &l.OwnerUsername, &l.Created, &l.Modified, &l.Title)
	return l, err
}

func (db *DB) CreateLine(ctx context.Context, ownerID int64, in models.LineInput) (*models.Line, error) {
	ts := db.Now()
	id, err := db.insert(ctx, `
		INSERT INTO lines (owner_id, created, modified, title) VALUES (?, ?, ?, ?)
	`, ownerID, ts, ts, deref(in.Title))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir line: %w", err)
	}
	return db.GetLine(ctx, id)
}

// GetLine busca uma Line com os ids de seus anúncios, eventos e tarefas.
func (db *DB) GetLine(ctx context.Context, id int64) (*models.Line, error) {
	l, err := scanLine(db.queryRow(ctx, lineSelect+" WHERE l.id = ?", id))
	if err != nil {
		return nil, notFound(err)
	}

	children, err := db.lineChildren(ctx, "WHERE line_id = ?", id)
	if err != nil {
		return nil, err
	}
	children.fill(l)
	return l, nil
}

func (db *DB) ListLines(ctx context.Context) ([]models.Line, error) {
	rows, err := db.query(ctx, lineSelect+" ORDER BY l.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.Line{}
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	children, err := db.lineChildren(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range lines {
		children.fill(&lines[i])
	}
	return lines, nil
}

func (db *DB) UpdateLine(ctx context.Context, id int64, in models.LineInput) (*models.Line, error) {
	u := &update{}
	if in.Title != nil {
		u.set("title", *in.Title)
	}
	if err := db.applyUpdate(ctx, "lines", id, u); err != nil {
		return nil, err
	}
	return db.GetLine(ctx, id)
}

// DeleteLine remove a Line; o banco remove os filhos em cascata.
func (db *DB) DeleteLine(ctx context.Context, id int64) error {
	return db.deleteByID(ctx, "lines", id)
}

// IsLineOwner diz se a Line lineID existe e pertence a userID. É a regra que
// restringe o campo "line" dos registros filhos às Lines do requisitante.
func (db *DB) IsLineOwner(ctx context.Context, lineID, userID int64) (bool, error) {
	var exists bool
	err := db.queryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM lines WHERE id = ? AND owner_id = ?)",
		lineID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar dono da line: %w", err)
	}
	return exists, nil
}

type lineChildren struct {
	announcements, events, tasks map[int64][]int64
}

func (db *DB) lineChildren(ctx context.Context, where string, args ...interface{}) (*lineChildren, error) {
	c := &lineChildren{}
	var err error
	if c.announcements, err = db.groupIDs(ctx, "SELECT line_id, id FROM announcements "+where+" ORDER BY id", args...); err != nil {
		return nil, err
	}
	if c.events, err = db.groupIDs(ctx, "SELECT line_id, id FROM events "+where+" ORDER BY id", args...); err != nil {
		return nil, err
	}
	if c.tasks, err = db.groupIDs(ctx, "SELECT line_id, id FROM tasks "+where+" ORDER BY id", args...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *lineChildren) fill(l *models.Line) {
	l.AnnouncementIDs = ids(c.announcements[l.ID])
	l.EventIDs = ids(c.events[l.ID])
	l.TaskIDs = ids(c.tasks[l.ID])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
