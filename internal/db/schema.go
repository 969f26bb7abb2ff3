package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"customer-tracker/internal/repository"
)

// The DDL below runs idempotently on every startup. Addresses key to the
// customer table because one customer may hold several addresses.
const (
	createCustomersTable = `CREATE TABLE IF NOT EXISTS Customers(
        Customer_ID INTEGER PRIMARY KEY AUTOINCREMENT,
        Customer_Short_Name varchar(20) NOT NULL UNIQUE,
        First_Name varchar(20),
        Last_Name varchar(20),
        Group_Name varchar(20),
        Credit_Limit number(15,2),
        Outstanding_Credit number(15,2),
        Created_On date,
        Updated_On date);`

	createAddressTable = `CREATE TABLE IF NOT EXISTS CustomerAddress(
        Address_ID INTEGER PRIMARY KEY AUTOINCREMENT,
        Customer_ID int NOT NULL,
        Address_Type varchar(10),
        Contact_Name varchar(50),
        Address_Line_1 varchar(50) NOT NULL,
        Address_Line_2 varchar(50),
        Address_Line_3 varchar(50),
        Address_Line_4 varchar(50),
        Address_Line_5 varchar(50),
        Created_On date,
        Updated_On date,
        FOREIGN KEY(Customer_ID) REFERENCES Customers(Customer_ID));`
)

// Bootstrap creates the two tables if needed and, unless skipSeed is set,
// inserts the sample data when the customer table turns out to be empty.
// Failures are reported and the caller continues; a half-bootstrapped
// database still lets the operator poke around.
func Bootstrap(ctx context.Context, sqlDB *sql.DB, out io.Writer, skipSeed bool) error {
	runner := &repository.StatementRunner{DB: sqlDB, Out: out}

	fmt.Fprintln(out, "Creating Customers Table:")
	if err := runner.ExecTrusted(ctx, createCustomersTable, true); err != nil {
		return err
	}

	fmt.Fprintln(out, "Creating Addresses Table:")
	if err := runner.ExecTrusted(ctx, createAddressTable, true); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if skipSeed {
		return nil
	}

	// EXISTS is cheaper than COUNT(*) for an emptiness check.
	var hasRows int
	err := sqlDB.QueryRowContext(ctx,
		"SELECT CASE WHEN EXISTS (SELECT * FROM Customers) THEN 1 ELSE 0 END",
	).Scan(&hasRows)
	if err != nil {
		fmt.Fprintf(out, "Error reading table size: %v\n", err)
		return err
	}
	if hasRows == 0 {
		fmt.Fprintln(out, "Customer table is empty. Adding sample data...")
		if err := Seed(ctx, sqlDB, out); err != nil {
			fmt.Fprintln(out, "Error adding sample data to table.")
			return err
		}
	}
	fmt.Fprintln(out)
	return nil
}
