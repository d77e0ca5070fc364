// Package database owns the MySQL connection pool shared by every
// repository. The schema is read-mostly: venue descriptors, event
// pricing and occupancy are written by the back office and the sales
// backend; this service only writes admin block entries.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const (
	maxOpenConns = 20
	maxIdleConns = 10
	connLifetime = 15 * time.Minute
	pingTimeout  = 5 * time.Second
)

// Open connects to MySQL and verifies the connection before returning
// the pool.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime maps DATETIME to time.Time; loc=UTC keeps comparisons
	// consistent with the UTC timestamps the sales backend writes.
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&readTimeout=5s&writeTimeout=5s",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
