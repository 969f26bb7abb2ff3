package repository

import (
	"context"
	"database/sql"
	"errors"

	"customer-tracker/internal/apperrors"
	"customer-tracker/internal/model"
)

// CustomerRepositoryInterface defines the methods used by the service layer.
type CustomerRepositoryInterface interface {
	ShortNameCount(ctx context.Context, shortName string) (int, error)
	IDByShortName(ctx context.Context, shortName string) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	Insert(ctx context.Context, in model.NewCustomerInput) error
	UpdateNames(ctx context.Context, id int64, first, last, group sql.NullString) error
	UpdateCredit(ctx context.Context, id int64, creditLimit, outstandingCredit int) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// CustomerRepository is the concrete implementation over the shared handle.
type CustomerRepository struct {
	DB *sql.DB
}

// ShortNameCount returns how many customers carry shortName. The table
// enforces uniqueness, so the answer is 0 or 1; the count form keeps the
// existence check and the duplicate check on one code path.
func (r *CustomerRepository) ShortNameCount(ctx context.Context, shortName string) (int, error) {
	return countRowsWhere(ctx, r.DB, "*", customerTable, shortNameColumn, shortName)
}

// IDByShortName resolves a verified short name to the internal customer ID.
func (r *CustomerRepository) IDByShortName(ctx context.Context, shortName string) (int64, error) {
	query := `SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = ?;`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, shortName).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.Engine("select customer ID", err)
	}
	return id, nil
}

// GetByID fetches one customer row.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
        SELECT Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name,
               Credit_Limit, Outstanding_Credit, Created_On, Updated_On
        FROM Customers
        WHERE Customer_ID = ?
    `
	var c model.Customer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ShortName, &c.FirstName, &c.LastName, &c.GroupName,
		&c.CreditLimit, &c.OutstandingCredit, &c.CreatedOn, &c.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Engine("select customer", err)
	}
	return &c, nil
}

// Insert adds a new customer. The caller has already confirmed the short
// name is unused; the UNIQUE constraint backs that up.
func (r *CustomerRepository) Insert(ctx context.Context, in model.NewCustomerInput) error {
	query := `
        INSERT INTO Customers(Customer_Short_Name, First_Name, Last_Name, Group_Name,
                              Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
        VALUES (?, ?, ?, ?, ?, ?, DATE('now'), DATE('now'));
    `
	_, err := r.DB.ExecContext(ctx, query,
		in.ShortName, in.FirstName, in.LastName, in.GroupName,
		in.CreditLimit, in.OutstandingCredit,
	)
	if err != nil {
		return apperrors.Engine("insert customer", err)
	}
	return nil
}

// UpdateNames replaces the name and group fields and refreshes the updated
// timestamp. NULLs pass straight through the bind-or-null convention.
func (r *CustomerRepository) UpdateNames(ctx context.Context, id int64, first, last, group sql.NullString) error {
	query := `
        UPDATE Customers
        SET First_Name = ?, Last_Name = ?, Group_Name = ?, Updated_On = DATE('now')
        WHERE Customer_ID = ?;
    `
	if _, err := r.DB.ExecContext(ctx, query, first, last, group, id); err != nil {
		return apperrors.Engine("update customer names", err)
	}
	return nil
}

// UpdateCredit replaces the credit fields and refreshes the updated
// timestamp. Name fields are untouched.
func (r *CustomerRepository) UpdateCredit(ctx context.Context, id int64, creditLimit, outstandingCredit int) error {
	query := `
        UPDATE Customers
        SET Credit_Limit = ?, Outstanding_Credit = ?, Updated_On = DATE('now')
        WHERE Customer_ID = ?;
    `
	if _, err := r.DB.ExecContext(ctx, query, creditLimit, outstandingCredit, id); err != nil {
		return apperrors.Engine("update customer credit", err)
	}
	return nil
}

// Delete removes the customer row only. Owned addresses are the caller's
// responsibility; see TrackerService.RemoveCustomer for the cascade order.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM Customers WHERE Customer_ID = ?;`
	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		return apperrors.Engine("delete customer", err)
	}
	return nil
}

// Count returns the number of customer rows.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.DB, "*", customerTable)
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
