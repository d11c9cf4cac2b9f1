// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQLDrivers maps the driver names accepted by OpenSQL to the
// database/sql driver names registered for them.
var SQLDrivers = map[string]string{
	"sqlite":   "sqlite",
	"sqlite3":  "sqlite",
	"mysql":    "mysql",
	"postgres": "pgx",
	"pgx":      "pgx",
}

// OpenSQL opens a database using one of the drivers in SQLDrivers.
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	name, ok := SQLDrivers[driver]
	if !ok {
		return nil, fmt.Errorf("unknown SQL driver %q", driver)
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}
	return db, nil
}

// QuerySQL runs query on db and returns the result rows as a Dataset
// named name. Column types follow the values the driver returns:
// integers, floats, booleans, and everything else as strings. NULLs
// are missing values.
func QuerySQL(ctx context.Context, db *sql.DB, name, query string, args ...interface{}) (*Dataset, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	vals := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	var cb columnBuilder
	// Declare columns up front so empty results keep their schema.
	for _, col := range cols {
		cb.declare(col)
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		cb.startRow()
		for i, col := range cols {
			cb.set(col, vals[i])
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return New(name, cb.done()), nil
}
