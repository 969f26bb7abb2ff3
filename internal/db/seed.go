package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"customer-tracker/internal/apperrors"
)

// Fixed sample data, inserted once when the database starts empty. Explicit
// IDs plus INSERT OR IGNORE make a re-run a no-op; address owners resolve
// through short-name subselects so the rows stay readable.
var seedCustomers = []string{
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (1, 'JSMITH', 'John', 'Smith', 'SMITH FAMILY', 10000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (2, 'MSMITH', 'Mary', 'Smith', 'SMITH FAMILY', 10000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (3, 'BSMITH', 'Bob', 'Smith', 'SMITH FAMILY', 5000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (4, 'BJONES', 'Brian', 'Jones', 'JONES FAMILY', 5000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (5, 'DTRACEY', 'Donald', 'Tracey', 'TRACEY FAMILY', 3000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (6, 'ABAKER', 'Anthony', 'Baker', 'BAKER FAMILY', 5000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (7, 'AMCKECHNIE', 'Alastair', 'McKechnie', 'MCKECHNIE FAMILY', 7000, 0, DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO Customers (Customer_ID, Customer_Short_Name, First_Name, Last_Name, Group_Name, Credit_Limit, Outstanding_Credit, Created_On, Updated_On)
     VALUES (8, 'RGOULDING', 'Robert', 'Goulding', 'GOULDING', 5000, 0, DATE('now'), DATE('now'));`,
}

var seedAddresses = []string{
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (1, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'JSMITH'), 'HOME', '', '1 Regent Road', 'London', 'W12 5GG', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (2, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'MSMITH'), 'HOME', '', '1 Regent Road', 'London', 'W12 5GG', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (3, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'BSMITH'), 'HOME', '', '1 Regent Road', 'London', 'W12 5GG', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (4, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'JSMITH'), 'WORK', '', '26 Lombard Street', 'London', 'EC4', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (5, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'DTRACEY'), 'HOME', '', '5 Bright Street', 'Dorking', 'Surrey', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (6, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'ABAKER'), 'HOME', '', '21 Hope Street', 'Barnet', 'Middlesex', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (7, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'ABAKER'), 'WORK', '', '1 Canada Square', 'Canary Wharf', 'London', '', '', DATE('now'), DATE('now'));`,
	`INSERT OR IGNORE INTO CustomerAddress (Address_ID, Customer_ID, Address_Type, Contact_Name, Address_Line_1, Address_Line_2, Address_Line_3, Address_Line_4, Address_Line_5, Created_On, Updated_On)
     VALUES (8, (SELECT Customer_ID FROM Customers WHERE Customer_Short_Name = 'ABAKER'), 'UNKNOWN', '', '17 Broad Street', 'London', 'EC3', '', '', DATE('now'), DATE('now'));`,
}

// Seed inserts the sample rows: 8 customers, 8 addresses. Safe to run
// against a populated database thanks to INSERT OR IGNORE.
func Seed(ctx context.Context, sqlDB *sql.DB, out io.Writer) error {
	fmt.Fprintln(out, "Adding sample Customer data:")
	if err := execAll(ctx, sqlDB, seedCustomers); err != nil {
		return err
	}
	fmt.Fprintln(out, "Adding sample Address data:")
	if err := execAll(ctx, sqlDB, seedAddresses); err != nil {
		return err
	}
	fmt.Fprintln(out, "Statement executed successfully.")
	return nil
}

func execAll(ctx context.Context, sqlDB *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return apperrors.Engine("seed sample data", err)
		}
	}
	return nil
}
