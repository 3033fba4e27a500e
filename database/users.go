package database

import (
	"context"
	"fmt"

	"lines-api/models"
)

const userColumns = "id, uid, username, is_active, date_joined"

// EnsureUser devolve o usuário local da identidade autenticada, criando-o no
// primeiro acesso.
func (db *DB) EnsureUser(ctx context.Context, ident models.Identity) (*models.User, error) {
	_, err := db.exec(ctx, `
		INSERT INTO users (uid, username, is_active, date_joined)
		VALUES (?, ?, TRUE, ?)
		ON CONFLICT (uid) DO NOTHING
	`, ident.UID, ident.Username, db.Now())
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir usuário no DB: %w", err)
	}

	u := &models.User{}
	err = db.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE uid = ?", ident.UID).
		Scan(&u.ID, &u.UID, &u.Username, &u.IsActive, &u.DateJoined)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário no DB: %w", notFound(err))
	}
	return u, nil
}

// GetUser busca um usuário ativo com as Lines que ele possui.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u := &models.User{}
	err := db.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = ? AND is_active = TRUE", id).
		Scan(&u.ID, &u.UID, &u.Username, &u.IsActive, &u.DateJoined)
	if err != nil {
		return nil, notFound(err)
	}

	lines, err := db.groupIDs(ctx, "SELECT owner_id, id FROM lines WHERE owner_id = ? ORDER BY id", id)
	if err != nil {
		return nil, err
	}
	u.LineIDs = ids(lines[id])
	return u, nil
}

// ListUsers devolve todos os usuários ativos, ordenados por id.
func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := db.query(ctx, "SELECT "+userColumns+" FROM users WHERE is_active = TRUE ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.UID, &u.Username, &u.IsActive, &u.DateJoined); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	lines, err := db.groupIDs(ctx, "SELECT owner_id, id FROM lines ORDER BY id")
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].LineIDs = ids(lines[users[i].ID])
	}
	return users, nil
}

// SetUserActive liga ou desliga o acesso de um usuário sem apagar seus dados.
// Não há rota para isso: a desativação é feita por um operador.
func (db *DB) SetUserActive(ctx context.Context, id int64, active bool) error {
	res, err := db.exec(ctx, "UPDATE users SET is_active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
