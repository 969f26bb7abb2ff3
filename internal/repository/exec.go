package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"

	"customer-tracker/internal/apperrors"
)

// Table and column identifiers interpolated into statements in this package
// are compile-time constants, never caller-supplied. That is the one
// documented exception to parameter binding: SQL cannot bind identifiers,
// and keeping the constants unexported means no dynamic name can reach a
// query. Every value that originates from the operator goes through a
// bound parameter.
const (
	customerTable = "Customers"
	addressTable  = "CustomerAddress"

	shortNameColumn  = "Customer_Short_Name"
	customerIDColumn = "Customer_ID"
)

// StatementRunner executes complete, hard-coded SQL statements and prints
// any result rows to Out as "column : value" pairs with a NULL marker for
// absent values.
//
// Contract: the statement must never be built from unsanitised user input.
// There is no parameter binding here; the only operator-entered statements
// that reach it come through the custom-SQL escape hatch, which is
// documented as unsafe.
type StatementRunner struct {
	DB  *sql.DB
	Out io.Writer
}

// ExecTrusted runs stmt and prints each returned row. When showMessages is
// true the outcome (success or engine error) is reported as well.
func (r *StatementRunner) ExecTrusted(ctx context.Context, stmt string, showMessages bool) error {
	rows, err := r.DB.QueryContext(ctx, stmt)
	if err != nil {
		if showMessages {
			fmt.Fprintf(r.Out, "Error executing statement: %v\n", err)
		}
		return apperrors.Engine("exec trusted statement", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return apperrors.Engine("read result columns", err)
	}

	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return apperrors.Engine("scan result row", err)
		}
		for i, col := range cols {
			fmt.Fprintf(r.Out, "%s : %s\n", col, nullable(values[i]))
		}
		fmt.Fprintln(r.Out)
	}
	if err := rows.Err(); err != nil {
		if showMessages {
			fmt.Fprintf(r.Out, "Error executing statement: %v\n", err)
		}
		return apperrors.Engine("step trusted statement", err)
	}
	if showMessages {
		fmt.Fprintln(r.Out, "Statement executed successfully.")
	}
	return nil
}

func nullable(v sql.NullString) string {
	if !v.Valid {
		return "NULL"
	}
	return v.String
}

// countRows returns SELECT COUNT(column) FROM table. Identifiers come from
// the constants above only.
func countRows(ctx context.Context, db *sql.DB, column, table string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s;", column, table)
	var n int
	if err := db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		log.Printf("Error running SELECT COUNT on %s: %v", table, err)
		return 0, apperrors.Engine("count "+table, err)
	}
	return n, nil
}

// countRowsWhere is countRows with a bound equality filter. whereValue is
// the only input that may originate from the operator and it is always
// passed as a parameter.
func countRowsWhere(ctx context.Context, db *sql.DB, column, table, whereColumn string, whereValue any) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(%s) FROM %s WHERE %s = ?;", column, table, whereColumn)
	var n int
	if err := db.QueryRowContext(ctx, query, whereValue).Scan(&n); err != nil {
		log.Printf("Error running SELECT COUNT on %s: %v", table, err)
		return 0, apperrors.Engine("count "+table, err)
	}
	return n, nil
}
