package database

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lines-api/config"
	"lines-api/utilities"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema_postgres.sql
var postgresSchema string

//go:embed schema_sqlite.sql
var sqliteSchema string

// ErrNotFound é devolvido quando o registro pedido não existe.
var ErrNotFound = errors.New("registro não encontrado")

// DB envolve a conexão e sabe traduzir as queries para o driver em uso.
// As queries são escritas com "?" e reescritas para "$n" no PostgreSQL.
type DB struct {
	*sql.DB
	driver string

	// Now fornece os timestamps created/modified.
	Now func() time.Time
}

// Open conecta ao banco configurado e garante que o schema existe.
func Open(ctx context.Context, cfg config.Database) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return ConnectPostgres(ctx, cfg)
	case config.DriverSQLite:
		return ConnectSQLite(ctx, cfg.SQLitePath)
	}
	return nil, fmt.Errorf("driver de banco de dados desconhecido: %q", cfg.Driver)
}

func ConnectPostgres(ctx context.Context, cfg config.Database) (*DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		utilities.LogError(err, "Erro ao abrir conexão com o banco de dados")
		return nil, err
	}
	db := &DB{DB: conn, driver: config.DriverPostgres, Now: now}
	if err := db.init(ctx, postgresSchema); err != nil {
		conn.Close()
		return nil, err
	}

	utilities.LogInfo("Conectado ao PostgreSQL com sucesso! (%s:%s/%s)", cfg.Host, cfg.Port, cfg.Name)
	return db, nil
}

// ConnectSQLite abre (ou cria) o arquivo em path, com chaves estrangeiras
// ligadas para que o ON DELETE CASCADE funcione.
func ConnectSQLite(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		utilities.LogError(err, "Erro ao abrir arquivo SQLite")
		return nil, err
	}
	db := &DB{DB: conn, driver: config.DriverSQLite, Now: now}
	if err := db.init(ctx, sqliteSchema); err != nil {
		conn.Close()
		return nil, err
	}

	utilities.LogInfo("Conectado ao SQLite com sucesso! (%s)", path)
	return db, nil
}

func (db *DB) init(ctx context.Context, schema string) error {
	if err := db.PingContext(ctx); err != nil {
		utilities.LogError(err, "Erro ao conectar ao banco de dados")
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		utilities.LogError(err, "Erro ao aplicar o schema")
		return fmt.Errorf("erro ao aplicar o schema: %w", err)
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

// rebind troca os "?" pelos placeholders numerados do PostgreSQL.
func (db *DB) rebind(query string) string {
	if db.driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return db.QueryRowContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return db.QueryContext(ctx, db.rebind(query), args...)
}

func (db *DB) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return db.ExecContext(ctx, db.rebind(query), args...)
}

// insert executa um INSERT ... RETURNING id.
func (db *DB) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := db.queryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// deleteByID remove uma linha de table, devolvendo ErrNotFound se nada foi apagado.
func (db *DB) deleteByID(ctx context.Context, table string, id int64) error {
	res, err := db.exec(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir de %s: %w", table, err)
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

// update monta o UPDATE dinâmico com as colunas alteradas; modified é
// sempre atualizado.
type update struct {
	sets []string
	args []interface{}
}

func (u *update) set(column string, value interface{}) {
	u.sets = append(u.sets, column+" = ?")
	u.args = append(u.args, value)
}

func (db *DB) applyUpdate(ctx context.Context, table string, id int64, u *update) error {
	u.set("modified", db.Now())
	query := "UPDATE " + table + " SET " + strings.Join(u.sets, ", ") + " WHERE id = ?"
	res, err := db.exec(ctx, query, append(u.args, id)...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar %s: %w", table, err)
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

// groupIDs lê pares (pai, id) e os agrupa por pai, mantendo a ordem da query.
func (db *DB) groupIDs(ctx context.Context, query string, args ...interface{}) (map[int64][]int64, error) {
	rows, err := db.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := map[int64][]int64{}
	for rows.Next() {
		var parent, id int64
		if err := rows.Scan(&parent, &id); err != nil {
			return nil, err
		}
		grouped[parent] = append(grouped[parent], id)
	}
	return grouped, rows.Err()
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func ids(list []int64) []int64 {
	if list == nil {
		return []int64{}
	}
	return list
}
