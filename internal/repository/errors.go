package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the backing table does not exist. Readers treat
	// it as an empty, informational state rather than a failure.
	ErrUnavailable = errors.New("table unavailable")
)

// mysqlNoSuchTable is ER_NO_SUCH_TABLE.
const mysqlNoSuchTable = 1146

// IsMissingTable reports whether err came from querying a table that does
// not exist, on either SQLite or MySQL.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoSuchTable
	}
	return strings.Contains(err.Error(), "no such table")
}

// wrapTableErr wraps err with ErrUnavailable when the table is missing.
func wrapTableErr(op, table string, err error) error {
	if IsMissingTable(err) {
		return fmt.Errorf("%s %s: %w (%v)", op, table, ErrUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", op, table, err)
}
