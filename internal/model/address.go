package model

import "database/sql"

// Address mirrors a row of the CustomerAddress table. Every address belongs
// to exactly one customer; only Line1 is required.
type Address struct {
	ID          int64          `db:"Address_ID"`
	CustomerID  int64          `db:"Customer_ID"`
	AddressType sql.NullString `db:"Address_Type"`
	ContactName sql.NullString `db:"Contact_Name"`
	Line1       sql.NullString `db:"Address_Line_1"`
	Line2       sql.NullString `db:"Address_Line_2"`
	Line3       sql.NullString `db:"Address_Line_3"`
	Line4       sql.NullString `db:"Address_Line_4"`
	Line5       sql.NullString `db:"Address_Line_5"`
	CreatedOn   sql.NullString `db:"Created_On"`
	UpdatedOn   sql.NullString `db:"Updated_On"`
}

// AddressColumns lists the table's columns in select order, used when
// printing full rows to the console.
var AddressColumns = []string{
	"Address_ID", "Customer_ID", "Address_Type", "Contact_Name",
	"Address_Line_1", "Address_Line_2", "Address_Line_3",
	"Address_Line_4", "Address_Line_5", "Created_On", "Updated_On",
}

// NewAddressInput carries the operator-entered fields for an address insert
// or update. The owning customer is identified separately (by short name on
// insert, by a picked address ID on update).
type NewAddressInput struct {
	AddressType sql.NullString `validate:"omitempty,max=10"`
	ContactName sql.NullString `validate:"omitempty,max=50"`
	Line1       string         `validate:"required,max=50"`
	Line2       sql.NullString `validate:"omitempty,max=50"`
	Line3       sql.NullString `validate:"omitempty,max=50"`
	Line4       sql.NullString `validate:"omitempty,max=50"`
	Line5       sql.NullString `validate:"omitempty,max=50"`
}
