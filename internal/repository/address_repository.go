package repository

import (
	"context"
	"database/sql"

	"customer-tracker/internal/apperrors"
	"customer-tracker/internal/model"
)

// AddressRepositoryInterface defines the methods used by the service layer.
type AddressRepositoryInterface interface {
	CountByCustomer(ctx context.Context, customerID int64) (int, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error)
	Insert(ctx context.Context, shortName string, in model.NewAddressInput) error
	Update(ctx context.Context, addressID int64, in model.NewAddressInput) error
	Delete(ctx context.Context, addressID int64) error
	DeleteByCustomer(ctx context.Context, customerID int64) error
	Count(ctx context.Context) (int, error)
}

// AddressRepository is the concrete implementation over the shared handle.
type AddressRepository struct {
	DB *sql.DB
}

// CountByCustomer returns how many addresses belong to customerID.
func (r *AddressRepository) CountByCustomer(ctx context.Context, customerID int64) (int, error) {
	return countRowsWhere(ctx, r.DB, "*", addressTable, customerIDColumn, customerID)
}

// ListByCustomer fetches every address row owned by customerID, in table
// order. The ID set of the result is the whole universe an operator may
// pick from in the single-address flows.
func (r *AddressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	query := `
        SELECT Address_ID, Customer_ID, Address_Type, Contact_Name,
               Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5,
               Created_On, Updated_On
        FROM CustomerAddress
        WHERE Customer_ID = ?
    `
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, apperrors.Engine("select addresses", err)
	}
	defer rows.Close()

	addresses := []model.Address{}
	for rows.Next() {
		var a model.Address
		err := rows.Scan(
			&a.ID, &a.CustomerID, &a.AddressType, &a.ContactName,
			&a.Line1, &a.Line2, &a.Line3, &a.Line4, &a.Line5,
			&a.CreatedOn, &a.UpdatedOn,
		)
		if err != nil {
			return nil, apperrors.Engine("scan address", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Engine("step addresses", err)
	}
	return addresses, nil
}

// Insert adds an address for the customer identified by shortName. The
// owning ID is bound through a nested lookup subquery rather than a
// separately resolved integer, so the insert and the ownership resolution
// happen in one statement.
func (r *AddressRepository) Insert(ctx context.Context, shortName string, in model.NewAddressInput) error {
	query := `
        INSERT INTO CustomerAddress(Customer_ID, Address_Type, Contact_Name,
                                    Address_Line_1, Address_Line_2, Address_Line_3,
                                    Address_Line_4, Address_Line_5, Created_On, Updated_On)
        VALUES ((SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = ?),
                ?, ?, ?, ?, ?, ?, ?, DATE('now'), DATE('now'));
    `
	_, err := r.DB.ExecContext(ctx, query,
		shortName, in.AddressType, in.ContactName,
		in.Line1, in.Line2, in.Line3, in.Line4, in.Line5,
	)
	if err != nil {
		return apperrors.Engine("insert address", err)
	}
	return nil
}

// Update replaces every operator-editable field of one address and
// refreshes the updated timestamp.
func (r *AddressRepository) Update(ctx context.Context, addressID int64, in model.NewAddressInput) error {
	query := `
        UPDATE CustomerAddress
        SET Address_Type = ?, Contact_Name = ?,
            Address_Line_1 = ?, Address_Line_2 = ?, Address_Line_3 = ?,
            Address_Line_4 = ?, Address_Line_5 = ?, Updated_On = DATE('now')
        WHERE Address_ID = ?;
    `
	_, err := r.DB.ExecContext(ctx, query,
		in.AddressType, in.ContactName,
		in.Line1, in.Line2, in.Line3, in.Line4, in.Line5,
		addressID,
	)
	if err != nil {
		return apperrors.Engine("update address", err)
	}
	return nil
}

// Delete removes a single address row.
func (r *AddressRepository) Delete(ctx context.Context, addressID int64) error {
	query := `DELETE FROM CustomerAddress WHERE Address_ID = ?;`
	if _, err := r.DB.ExecContext(ctx, query, addressID); err != nil {
		return apperrors.Engine("delete address", err)
	}
	return nil
}

// DeleteByCustomer removes every address owned by customerID. Runs first
// in the cascading customer delete.
func (r *AddressRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	query := `DELETE FROM CustomerAddress WHERE Customer_ID = ?;`
	if _, err := r.DB.ExecContext(ctx, query, customerID); err != nil {
		return apperrors.Engine("delete customer addresses", err)
	}
	return nil
}

// Count returns the number of address rows.
func (r *AddressRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.DB, "*", addressTable)
}

var _ AddressRepositoryInterface = (*AddressRepository)(nil)
