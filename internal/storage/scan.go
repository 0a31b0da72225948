// ABOUTME: Shared row-scanning and timestamp helpers for the record tables.
// ABOUTME: Timestamps round-trip as epoch milliseconds.
package storage

import (
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
)

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// readFailed logs an engine failure on a read path. Reads recover to empty
// results so display paths stay available; the failure is still recorded.
func readFailed(op string, err error) {
	log.Warn("storage read failed, returning empty result", "op", op, "err", err)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func notesPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}
