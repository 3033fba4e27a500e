package database

import (
	"context"
	"fmt"

	"lines-api/models"
)

const announcementSelect = `
	SELECT a.id, a.owner_id, u.username, a.created, a.modified, a.title, a.description, a.line_id
	FROM announcements a
	JOIN users u ON u.id = a.owner_id
`

func scanAnnouncement(s interface{ Scan(...interface{}) error }) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := s.Scan(&a.ID, &a.OwnerID, &a.OwnerUsername, &a.Created, &a.Modified, &a.Title, &a.Desc, &a.LineID)
	return a, err
}

func (db *DB) CreateAnnouncement(ctx context.Context, ownerID int64, in models.AnnouncementInput) (*models.Announcement, error) {
	ts := db.Now()
	id, err := db.insert(ctx, `
		INSERT INTO announcements (owner_id, line_id, created, modified, title, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ownerID, *in.LineID, ts, ts, deref(in.Title), deref(in.Desc))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir anúncio: %w", err)
	}
	return db.GetAnnouncement(ctx, id)
}

func (db *DB) GetAnnouncement(ctx context.Context, id int64) (*models.Announcement, error) {
	a, err := scanAnnouncement(db.queryRow(ctx, announcementSelect+" WHERE a.id = ?", id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (db *DB) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	rows, err := db.query(ctx, announcementSelect+" ORDER BY a.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, *a)
	}
	return announcements, rows.Err()
}

func (db *DB) UpdateAnnouncement(ctx context.Context, id int64, in models.AnnouncementInput) (*models.Announcement, error) {
	u := &update{}
	if in.Title != nil {
		u.set("title", *in.Title)
	}
	if in.Desc != nil {
		u.set("description", *in.Desc)
	}
	if in.LineID != nil {
		u.set("line_id", *in.LineID)
	}
	if err := db.applyUpdate(ctx, "announcements", id, u); err != nil {
		return nil, err
	}
	return db.GetAnnouncement(ctx, id)
}

func (db *DB) DeleteAnnouncement(ctx context.Context, id int64) error {
	return db.deleteByID(ctx, "announcements", id)
}
