package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/slots-tracker/internal/entity/expense"
	"max.ks1230/slots-tracker/internal/entity/record"
	"max.ks1230/slots-tracker/internal/entity/user"
	"max.ks1230/slots-tracker/internal/logger"
)

const (
	dsnTemplate  = "user=%s password=%s host=%s dbname=%s sslmode=disable"
	recordsTable = "records"
	usersTable   = "users"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	doc        JSONB NOT NULL,
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS records_collection_created_idx ON records (collection, created_at);
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);
`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

// Migrate creates the tables when they do not exist yet.
func (s *PostgresStorage) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return errors.Wrap(err, "migrate")
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func listQuery(collection string, filter Filter) sq.SelectBuilder {
	query := psql.Select("id", "doc").
		From(recordsTable).
		Where(sq.Eq{"collection": collection, "active": true}).
		OrderBy("created_at", "id")

	for _, field := range filter.sortedFields() {
		query = query.Where(sq.Expr("doc->>? = ?", field, filter.Fields[field]))
	}
	if !filter.After.IsZero() {
		query = query.Where(sq.Gt{"created_at": filter.After})
	}
	return query
}

func (s *PostgresStorage) List(ctx context.Context, collection string, filter Filter) ([]record.Record, error) {
	rows, err := listQuery(collection, filter).RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := make([]record.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "list records")
		}
		res = append(res, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	return res, nil
}

func (s *PostgresStorage) Get(ctx context.Context, collection, id string) (record.Record, error) {
	query := psql.Select("id", "doc").
		From(recordsTable).
		Where(sq.Eq{"collection": collection, "id": id, "active": true})

	rec, err := scanRecord(query.RunWith(s.db).QueryRowContext(ctx))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get record")
	}
	return rec, nil
}

// Insert stores doc under a new identifier, any identifier in doc is ignored.
func (s *PostgresStorage) Insert(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	id := record.NewObjectID().Oid
	doc = prepare(doc)

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := ensureUniqueName(ctx, tx, collection, id, doc); err != nil {
			return err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		ts := time.Now()
		_, err = psql.Insert(recordsTable).
			Columns("collection", "id", "doc", "active", "created_at", "updated_at").
			Values(collection, id, string(raw), doc.Bool("active", true), ts, ts).
			RunWith(tx).
			ExecContext(ctx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "insert record")
	}
	return record.WithIdentifier(doc, id), nil
}

// Update replaces the document of an active record.
func (s *PostgresStorage) Update(ctx context.Context, collection, id string, doc record.Record) (record.Record, error) {
	doc = prepare(doc)

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := ensureUniqueName(ctx, tx, collection, id, doc); err != nil {
			return err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		res, err := psql.Update(recordsTable).
			Set("doc", string(raw)).
			Set("active", doc.Bool("active", true)).
			Set("updated_at", time.Now()).
			Where(sq.Eq{"collection": collection, "id": id, "active": true}).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}
		return ensureAffected(res)
	})
	if err != nil {
		return nil, errors.Wrap(err, "update record")
	}
	return record.WithIdentifier(doc, id), nil
}

// Deactivate soft deletes a record: it stays in the table but is never listed.
func (s *PostgresStorage) Deactivate(ctx context.Context, collection, id string) error {
	res, err := psql.Update(recordsTable).
		Set("active", false).
		Set("doc", sq.Expr("jsonb_set(doc, '{active}', 'false')")).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"collection": collection, "id": id, "active": true}).
		RunWith(s.db).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "deactivate record")
	}
	return errors.Wrap(ensureAffected(res), "deactivate record")
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (user.Record, error) {
	query := psql.Select("id", "email", "password_hash").
		From(usersTable).
		Where(sq.Eq{"email": email})

	var res user.Record
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.ID, &res.Email, &res.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, ErrNotFound
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	return res, nil
}

func (s *PostgresStorage) SaveUser(ctx context.Context, u user.Record) error {
	query := psql.Insert(usersTable).
		Columns("id", "email", "password_hash").
		Values(u.ID, u.Email, u.PasswordHash).
		Suffix("ON CONFLICT(email) DO UPDATE SET password_hash = ?", u.PasswordHash)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save user")
}

func (s *PostgresStorage) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func uniqueNameQuery(collection, id, name string) sq.SelectBuilder {
	return psql.Select("1").
		From(recordsTable).
		Where(sq.Eq{"collection": collection, "active": true}).
		Where(sq.NotEq{"id": id}).
		Where(sq.Expr("lower(doc->>'name') = lower(?)", name)).
		Limit(1)
}

func ensureUniqueName(ctx context.Context, tx *sql.Tx, collection, id string, doc record.Record) error {
	name := doc.String(nameField)
	if !expense.Named(collection) || name == "" || !doc.Bool("active", true) {
		return nil
	}

	var one int
	err := uniqueNameQuery(collection, id, name).RunWith(tx).QueryRowContext(ctx).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return ErrNotUnique
}

func ensureAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (record.Record, error) {
	var (
		id  string
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return nil, err
	}
	doc, err := record.Decode(raw)
	if err != nil {
		return nil, err
	}
	return record.WithIdentifier(doc, id), nil
}
