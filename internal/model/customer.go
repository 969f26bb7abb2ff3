package model

import "database/sql"

// Customer mirrors a row of the Customers table. The short name is the only
// identifier an operator ever types; the numeric ID is assigned by the
// storage layer and stays internal.
type Customer struct {
	ID                int64           `db:"Customer_ID"`
	ShortName         string          `db:"Customer_Short_Name"`
	FirstName         sql.NullString  `db:"First_Name"`
	LastName          sql.NullString  `db:"Last_Name"`
	GroupName         sql.NullString  `db:"Group_Name"`
	CreditLimit       sql.NullFloat64 `db:"Credit_Limit"`
	OutstandingCredit sql.NullFloat64 `db:"Outstanding_Credit"`
	CreatedOn         sql.NullString  `db:"Created_On"`
	UpdatedOn         sql.NullString  `db:"Updated_On"`
}

// NewCustomerInput carries the operator-entered fields for an insert.
// Lengths match the column definitions; the short name must already have
// been confirmed unused before this is validated and bound.
type NewCustomerInput struct {
	ShortName         string         `validate:"required,max=20"`
	FirstName         sql.NullString `validate:"omitempty,max=20"`
	LastName          sql.NullString `validate:"omitempty,max=20"`
	GroupName         sql.NullString `validate:"omitempty,max=20"`
	CreditLimit       int
	OutstandingCredit int
}
