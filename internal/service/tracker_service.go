package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"

	"customer-tracker/internal/apperrors"
	"customer-tracker/internal/console"
	"customer-tracker/internal/model"
	"customer-tracker/internal/repository"
)

// TrackerService sequences console prompts and repository calls into the
// multi-field operations the menu exposes. Engine failures are reported to
// the operator and logged, then the enclosing menu loop continues; the only
// errors returned up the stack are exhausted-input ones, which end the
// session.
type TrackerService struct {
	Customers repository.CustomerRepositoryInterface
	Addresses repository.AddressRepositoryInterface
	Runner    *repository.StatementRunner
	Console   *console.Console
	Validate  *validator.Validate
}

// ResolveShortName loops until the operator enters a short name with at
// least one match in the customer table. A failed count query is reported
// and retried like a miss, so the returned name is always verified.
func (s *TrackerService) ResolveShortName(ctx context.Context) (string, error) {
	for {
		name, err := s.Console.ReadLine("")
		if err != nil {
			return "", err
		}
		count, countErr := s.Customers.ShortNameCount(ctx, name)
		switch {
		case countErr != nil:
			log.Println("short name lookup failed:", countErr)
			s.Console.Println("An error occurred searching for that name in the database.\nPlease try again.")
		case count == 0:
			s.Console.Println("Error: Customer short name not found in the database.\nPlease try again")
		default:
			s.Console.Println("Customer identified. Proceeding.")
			return name, nil
		}
	}
}

// PickAddressID lists every address owned by the customer behind shortName
// and loops until the operator picks one of the listed IDs. The returned ID
// therefore always belongs to that customer; this is the only guard against
// operating on another customer's address.
func (s *TrackerService) PickAddressID(ctx context.Context, shortName string) (int64, error) {
	customerID, err := s.Customers.IDByShortName(ctx, shortName)
	if err != nil {
		return 0, err
	}

	count, err := s.Addresses.CountByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.ErrNoAddresses
	}

	s.Console.Printf("Customer %s is associated with %d addresses:\n", shortName, count)

	addresses, err := s.Addresses.ListByCustomer(ctx, customerID)
	if err != nil {
		return 0, err
	}
	valid := make(map[int64]bool, len(addresses))
	for _, a := range addresses {
		s.printAddress(a)
		valid[a.ID] = true
	}

	s.Console.Println("Please enter the address ID of the address you would like to process:")
	for {
		picked, err := s.Console.ReadInt("")
		if err != nil {
			return 0, err
		}
		if valid[int64(picked)] {
			s.Console.Println("Address identified. Proceeding.")
			s.Console.Println()
			return int64(picked), nil
		}
		s.Console.Printf("Error: Please enter an address ID which corresponds with customer %s\n", shortName)
	}
}

// Counts returns the customer and address row counts for the view header.
func (s *TrackerService) Counts(ctx context.Context) (customers, addresses int, err error) {
	customers, err = s.Customers.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	addresses, err = s.Addresses.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return customers, addresses, nil
}

// ViewAllCustomers prints every customer row.
func (s *TrackerService) ViewAllCustomers(ctx context.Context) {
	s.Runner.ExecTrusted(ctx, "SELECT * FROM Customers;", true)
}

// ViewAllAddresses prints every address row.
func (s *TrackerService) ViewAllAddresses(ctx context.Context) {
	s.Runner.ExecTrusted(ctx, "SELECT * FROM CustomerAddress;", true)
}

// ViewJoined prints customers joined with their addresses, ordered by
// customer ID.
func (s *TrackerService) ViewJoined(ctx context.Context) {
	s.Runner.ExecTrusted(ctx,
		"SELECT * FROM Customers INNER JOIN CustomerAddress WHERE Customers.Customer_ID = CustomerAddress.Customer_ID ORDER BY Customers.Customer_ID;",
		true)
}

// ShowCustomer drills into one customer: the customer row first, then the
// address count and every owned address. The resolved integer ID is
// interpolated into the trusted SELECTs directly; it never came from user
// text.
func (s *TrackerService) ShowCustomer(ctx context.Context) error {
	s.Console.Println("Please enter the short name identifier of the customer you would like to search.")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}

	customerID, idErr := s.Customers.IDByShortName(ctx, shortName)
	if idErr != nil {
		log.Println("customer lookup failed:", idErr)
		s.Console.Println("Error fetching customer data.")
		return nil
	}

	s.Console.Println("Customer Data:")
	s.Runner.ExecTrusted(ctx, fmt.Sprintf("SELECT * FROM Customers WHERE Customer_ID = %d;", customerID), false)

	count, countErr := s.Addresses.CountByCustomer(ctx, customerID)
	if countErr != nil {
		log.Println("address count failed:", countErr)
		s.Console.Println("Error fetching customer data.")
		return nil
	}
	s.Console.Printf("Customer %s is associated with %d addresses:\n", shortName, count)
	s.Runner.ExecTrusted(ctx, fmt.Sprintf("SELECT * FROM CustomerAddress WHERE Customer_ID = %d;", customerID), false)
	return nil
}

// AddCustomer loops until an unused short name is entered, collects the
// remaining fields (optional ones via bind-or-null), validates the lot and
// inserts.
func (s *TrackerService) AddCustomer(ctx context.Context) error {
	var in model.NewCustomerInput
	for {
		s.Console.Println("Please enter a unique customer short name, which can be used as an identifier. Typical format: John Smith -> JSMITH")
		name, err := s.Console.ReadLine("")
		if err != nil {
			return err
		}
		count, countErr := s.Customers.ShortNameCount(ctx, name)
		if countErr != nil {
			log.Println("short name check failed:", countErr)
			s.Console.Println("An error occurred searching for that name in the database.\nPlease try again.")
			continue
		}
		if count == 0 {
			in.ShortName = name
			break
		}
		s.Console.Println("Error: Short name already in table. Please use new name or amend existing record.\n ")
	}

	var err error
	if in.FirstName, err = s.Console.ReadOptional("Please enter the new customer's first name:\nLeave blank for NULL"); err != nil {
		return err
	}
	if in.LastName, err = s.Console.ReadOptional("Please enter the new customer's surname:\nLeave blank for NULL"); err != nil {
		return err
	}
	if in.GroupName, err = s.Console.ReadOptional("Please enter the new customer's group name:\nLeave blank for NULL"); err != nil {
		return err
	}
	if in.CreditLimit, err = s.Console.ReadInt("Please enter the new customer's credit limit:"); err != nil {
		return err
	}
	if in.OutstandingCredit, err = s.Console.ReadInt("Please enter the new customer's outstanding credit:"); err != nil {
		return err
	}

	if vErr := s.Validate.Struct(in); vErr != nil {
		s.Console.Printf("Error: invalid customer input: %v\n", vErr)
		return nil
	}

	if insErr := s.Customers.Insert(ctx, in); insErr != nil {
		log.Println("insert customer failed:", insErr)
		s.Console.Printf("Error executing statement: %v\n", insErr)
		return nil
	}
	s.Console.Println("Record added successfully.\n ")
	return nil
}

// AddAddress resolves the owning customer by short name first, then
// collects the address fields and inserts; the customer ID is bound inside
// the insert through a lookup subquery.
func (s *TrackerService) AddAddress(ctx context.Context) error {
	s.Console.Println("To add a new address, the corresponding customer must first be specified. Please enter the Customer's Short Name identifier:")
	s.Console.Println("Please enter Customer Short Name:")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}

	var in model.NewAddressInput
	if in.AddressType, err = s.Console.ReadOptional("Please enter the address type for the new address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.ContactName, err = s.Console.ReadOptional("Please enter the contact name for this address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line1, err = s.Console.ReadLine("Please enter the first line of the new address:"); err != nil {
		return err
	}
	if in.Line2, err = s.Console.ReadOptional("Please enter the second line of the new address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line3, err = s.Console.ReadOptional("Please enter the third line of the new address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line4, err = s.Console.ReadOptional("Please enter the fourth line of the new address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line5, err = s.Console.ReadOptional("Please enter the fifth line of the new address:\nLeave blank for NULL."); err != nil {
		return err
	}

	if vErr := s.Validate.Struct(in); vErr != nil {
		s.Console.Printf("Error: invalid address input: %v\n", vErr)
		return nil
	}

	if insErr := s.Addresses.Insert(ctx, shortName, in); insErr != nil {
		log.Println("insert address failed:", insErr)
		s.Console.Printf("Error adding record: %v\n", insErr)
		return nil
	}
	s.Console.Println("Record added successfully.")
	return nil
}

// UpdateCustomer resolves a customer, shows the current row and updates one
// of the two field groups. Either branch refreshes the updated timestamp.
func (s *TrackerService) UpdateCustomer(ctx context.Context) error {
	s.Console.Println("Please enter the Short Name identifier of the customer you would like to update:")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}
	customerID, idErr := s.Customers.IDByShortName(ctx, shortName)
	if idErr != nil {
		log.Println("customer lookup failed:", idErr)
		s.Console.Printf("Error fetching customer ID for Customer %s\n", shortName)
		return nil
	}

	s.Console.Printf("Showing data for customer: %s\n", shortName)
	s.Runner.ExecTrusted(ctx, fmt.Sprintf("SELECT * FROM Customers WHERE Customer_ID = %d;", customerID), false)

	choice, err := s.Console.ReadIntInRange(
		"Which data would you like to update for this customer?\n"+
			"1. Customer Name and Group Name.\n"+
			"2. Customer Credit Limit and Outstanding Credit.", 1, 2)
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		var first, last, group sql.NullString
		if first, err = s.Console.ReadOptional("Please enter the customer's updated first name:\nLeave blank for NULL."); err != nil {
			return err
		}
		if last, err = s.Console.ReadOptional("Please enter the customer's updated surname:\nLeave blank for NULL."); err != nil {
			return err
		}
		if group, err = s.Console.ReadOptional("Please enter the customer's updated group name:\nLeave blank for NULL."); err != nil {
			return err
		}
		if upErr := s.Customers.UpdateNames(ctx, customerID, first, last, group); upErr != nil {
			log.Println("update customer names failed:", upErr)
			s.Console.Printf("Error executing UPDATE statement: %v\n", upErr)
			return nil
		}
	case 2:
		var creditLimit, outstanding int
		if creditLimit, err = s.Console.ReadInt("Please enter the customer's updated credit limit:"); err != nil {
			return err
		}
		if outstanding, err = s.Console.ReadInt("Please enter the customer's updated outstanding credit:"); err != nil {
			return err
		}
		if upErr := s.Customers.UpdateCredit(ctx, customerID, creditLimit, outstanding); upErr != nil {
			log.Println("update customer credit failed:", upErr)
			s.Console.Printf("Error executing UPDATE statement: %v\n", upErr)
			return nil
		}
	}
	s.Console.Println("Record updated successfully.")
	return nil
}

// UpdateAddress resolves a customer, has the operator pick one of that
// customer's addresses and rewrites its fields.
func (s *TrackerService) UpdateAddress(ctx context.Context) error {
	s.Console.Println("Please enter the Short Name identifier of the customer you would like to update:")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}

	addressID, pickErr := s.PickAddressID(ctx, shortName)
	if pickErr != nil {
		return s.reportPickError(shortName, pickErr)
	}

	var in model.NewAddressInput
	if in.AddressType, err = s.Console.ReadOptional("Please enter the updated Address Type:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.ContactName, err = s.Console.ReadOptional("Please enter the updated Contact Name:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line1, err = s.Console.ReadLine("Please enter the updated first line of the address."); err != nil {
		return err
	}
	if in.Line2, err = s.Console.ReadOptional("Please enter the updated second line of the address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line3, err = s.Console.ReadOptional("Please enter the updated third line of the address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line4, err = s.Console.ReadOptional("Please enter the updated fourth line of the address:\nLeave blank for NULL."); err != nil {
		return err
	}
	if in.Line5, err = s.Console.ReadOptional("Please enter the updated fifth line of the address:\nLeave blank for NULL."); err != nil {
		return err
	}

	if vErr := s.Validate.Struct(in); vErr != nil {
		s.Console.Printf("Error: invalid address input: %v\n", vErr)
		return nil
	}

	if upErr := s.Addresses.Update(ctx, addressID, in); upErr != nil {
		log.Println("update address failed:", upErr)
		s.Console.Printf("Error executing UPDATE statement: %v\n", upErr)
		return nil
	}
	s.Console.Println("Address updated successfully.\n ")
	return nil
}

// RemoveCustomer deletes a customer and every owned address after a yes/no
// confirmation. The two deletes run as independent statements in address-
// then-customer order; a partial failure is reported, not rolled back.
func (s *TrackerService) RemoveCustomer(ctx context.Context) error {
	s.Console.Println("Please enter the short name identifier of the customer:")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}
	customerID, idErr := s.Customers.IDByShortName(ctx, shortName)
	if idErr != nil {
		log.Println("customer lookup failed:", idErr)
		s.Console.Printf("Error fetching customer ID for Customer %s\n", shortName)
		return nil
	}

	proceed, err := s.Console.ReadYesNo(fmt.Sprintf(
		"This command will delete all customer and address data associated with customer %s. Are you sure you would like to proceed? [y/n]",
		shortName))
	if err != nil {
		return err
	}
	if !proceed {
		s.Console.Println("Deletion of data aborted.")
		return nil
	}

	if delErr := s.Addresses.DeleteByCustomer(ctx, customerID); delErr != nil {
		log.Println("delete addresses failed:", delErr)
		s.Console.Printf("Error executing DELETE statement: %v\n", delErr)
	} else {
		s.Console.Printf("Addresses associated with customer %s deleted successfully.\n", shortName)
	}

	if delErr := s.Customers.Delete(ctx, customerID); delErr != nil {
		log.Println("delete customer failed:", delErr)
		s.Console.Printf("Error executing DELETE statement: %v\n", delErr)
	} else {
		s.Console.Printf("Customer data for %s deleted successfully.\n", shortName)
	}
	return nil
}

// RemoveAddress deletes one address picked from the named customer's list,
// after a yes/no confirmation.
func (s *TrackerService) RemoveAddress(ctx context.Context) error {
	s.Console.Println("Please enter the short name identifier of the customer:")
	shortName, err := s.ResolveShortName(ctx)
	if err != nil {
		return err
	}

	addressID, pickErr := s.PickAddressID(ctx, shortName)
	if pickErr != nil {
		return s.reportPickError(shortName, pickErr)
	}

	proceed, err := s.Console.ReadYesNo(fmt.Sprintf(
		"This statement will delete address %d from the database. Would you like to proceed? [y/n]", addressID))
	if err != nil {
		return err
	}
	if !proceed {
		s.Console.Println("Deletion of address aborted.")
		return nil
	}

	if delErr := s.Addresses.Delete(ctx, addressID); delErr != nil {
		log.Println("delete address failed:", delErr)
		s.Console.Printf("Error executing DELETE statement: %v\n", delErr)
		return nil
	}
	s.Console.Printf("Address %d deleted successfully.\n", addressID)
	return nil
}

// reportPickError turns a PickAddressID failure into an operator message.
// Exhausted-input errors pass through so the session can end.
func (s *TrackerService) reportPickError(shortName string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNoAddresses):
		s.Console.Printf("Customer %s is not associated with any addresses in the database.\n", shortName)
	case errors.Is(err, apperrors.ErrNotFound), apperrors.IsEngine(err):
		log.Println("address pick failed:", err)
		s.Console.Printf("Error fetching addresses associated with customer %s: %v\n", shortName, err)
	default:
		return err
	}
	return nil
}

func (s *TrackerService) printAddress(a model.Address) {
	values := []sql.NullString{
		{String: strconv.FormatInt(a.ID, 10), Valid: true},
		{String: strconv.FormatInt(a.CustomerID, 10), Valid: true},
		a.AddressType, a.ContactName,
		a.Line1, a.Line2, a.Line3, a.Line4, a.Line5,
		a.CreatedOn, a.UpdatedOn,
	}
	for i, col := range model.AddressColumns {
		if values[i].Valid {
			s.Console.Printf("%s : %s\n", col, values[i].String)
		} else {
			s.Console.Printf("%s : NULL\n", col)
		}
	}
	s.Console.Println()
}
