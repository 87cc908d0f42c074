package db

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateEntryCode = 1062

	// ErrDuplicateParcelKey is returned when a parcel insert loses against an
	// already persisted row for the same key.
	ErrDuplicateParcelKey = errors.New("parcel key already registered")
)

func MysqlErrCode(err error) int {
	mysqlErr, ok := err.(*mysql.MySQLError)
	if !ok {
		return 0
	}
	return int(mysqlErr.Number)
}

// IsDuplicateEntryErr detects a unique-index violation for both supported
// dialects.
func IsDuplicateEntryErr(err error) bool {
	if MysqlErrCode(err) == ErrDuplicateEntryCode {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
