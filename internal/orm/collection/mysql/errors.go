package mysql

import (
	"errors"
	"fmt"
	"strconv"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// generalError is the SQLSTATE reported when a driver gives no code
const generalError = "HY000"

// FormatError renders err as "DB ERROR: [<code>] <message>". The code is the
// SQLSTATE when the driver reports one, otherwise the driver's error number.
func FormatError(err error) string {
	code, message := errorDetails(err)
	return fmt.Sprintf("DB ERROR: [%s] %s", code, message)
}

func errorDetails(err error) (string, string) {
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		if myErr.SQLState != [5]byte{} {
			return string(myErr.SQLState[:]), myErr.Message
		}
		return strconv.Itoa(int(myErr.Number)), myErr.Message
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.Message
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Message
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return strconv.Itoa(int(liteErr.Code)), liteErr.Error()
	}

	return generalError, err.Error()
}
