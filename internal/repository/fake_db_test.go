package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skill-match/internal/database"
)

type fakeDB struct {
	rows     [][]any
	queryErr error
	scanErr  error

	lastQuery string
	execArgs  [][]any
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	f.lastQuery = query
	f.execArgs = append(f.execArgs, args)
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	f.lastQuery = query
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{rows: f.rows, idx: -1, scanErr: f.scanErr}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}

type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.rows[r.idx]
	if len(row) != len(dest) {
		return fmt.Errorf("scan: want %d columns, got %d", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *[]string:
			if row[i] == nil {
				*p = nil
				continue
			}
			*p = row[i].([]string)
		case *int:
			*p = row[i].(int)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}
