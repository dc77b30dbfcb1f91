package db

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the API reacts to.
const (
	ErDupEntry         = 1062
	ErRowIsReferenced2 = 1451
)

// NullIfEmpty stores blank optional strings as NULL.
func NullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// NullIfNil dereferences optional values, passing NULL when absent.
func NullIfNil[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func MySQLErrorNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

func IsDuplicateEntry(err error) bool {
	return MySQLErrorNumber(err) == ErDupEntry
}

func IsRowReferenced(err error) bool {
	return MySQLErrorNumber(err) == ErRowIsReferenced2
}

// ErrorDetail prefers the server's own message over the driver's formatted one.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Message != "" {
		return me.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error"
}

func FloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func Int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func TimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
