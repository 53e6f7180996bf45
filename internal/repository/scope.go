package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// BootstrapUserID owns the rows created before multi-user support existed;
// those rows have no user_id and are visible only to this tenant.
const BootstrapUserID = 1

func tenantScope(db *gorm.DB, userID int64) *gorm.DB {
	if userID == BootstrapUserID {
		return db.Where("user_id = ? OR user_id IS NULL", userID)
	}
	return db.Where("user_id = ?", userID)
}

// IsUniqueViolation reports whether err comes from a violated unique index,
// for both the postgres and the local sqlite driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed")
}
