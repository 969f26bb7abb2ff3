package controller

import (
	"context"
	"log"

	"customer-tracker/internal/console"
	"customer-tracker/internal/service"
)

// MenuController drives the interactive session: the main menu and its
// sub-menus, each a loop that returns to its own prompt until the operator
// picks the exit option. It sits where an HTTP router would in a service,
// translating operator choices into service calls.
type MenuController struct {
	Service *service.TrackerService
	Console *console.Console
}

const mainMenu = "Please select your option by entering the correct number :\n" +
	"1. View data in the database.\n" +
	"2. Add new data to the database.\n" +
	"3. Update existing data in the database.\n" +
	"4. Remove customer(s) from the database.\n" +
	"5. Run custom SQL on the database.\n" +
	"0. Exit\n"

// Run blocks on the read-eval loop until the operator exits or the input
// stream ends. It never returns an error to the caller; an exhausted input
// stream is a normal way for a session to finish.
func (c *MenuController) Run(ctx context.Context) {
	c.Console.Println("Welcome to the Customer Manager.")
	for {
		selection, err := c.Console.ReadIntInRange(mainMenu, 0, 5)
		if err != nil {
			return
		}

		switch selection {
		case 0:
			return
		case 1:
			err = c.viewLoop(ctx)
		case 2:
			err = c.addLoop(ctx)
		case 3:
			err = c.updateLoop(ctx)
		case 4:
			err = c.removeLoop(ctx)
		case 5:
			err = c.customSQLLoop(ctx)
		}
		if err != nil {
			return
		}
		c.Console.Println()
	}
}

func (c *MenuController) viewLoop(ctx context.Context) error {
	customers, addresses, err := c.Service.Counts(ctx)
	if err != nil {
		log.Println("count query failed:", err)
		c.Console.Println("Error: Could not count number of customers and addresses in database.")
	} else {
		c.Console.Printf("Currently storing %d customers and %d addresses.\n", customers, addresses)
	}

	for {
		selection, err := c.Console.ReadIntInRange(
			"Please select action:\n"+
				"1: View all Customer data.\n"+
				"2: View all Address data.\n"+
				"3: View all Customer and Address joint data.\n"+
				"4: Search for data on a specific customer.\n"+
				"0: Exit.\n", 0, 4)
		if err != nil {
			return err
		}

		switch selection {
		case 0:
			return nil
		case 1:
			c.Service.ViewAllCustomers(ctx)
		case 2:
			c.Service.ViewAllAddresses(ctx)
		case 3:
			c.Service.ViewJoined(ctx)
		case 4:
			if err := c.Service.ShowCustomer(ctx); err != nil {
				return err
			}
		}
	}
}

func (c *MenuController) addLoop(ctx context.Context) error {
	for {
		selection, err := c.Console.ReadIntInRange(
			"Would you like to add a new customer or new address to the database?\n"+
				"1: Customer\n"+
				"2: Address\n"+
				"0: Exit\n", 0, 2)
		if err != nil {
			return err
		}

		switch selection {
		case 0:
			return nil
		case 1:
			if err := c.Service.AddCustomer(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.Service.AddAddress(ctx); err != nil {
				return err
			}
		}
	}
}

func (c *MenuController) updateLoop(ctx context.Context) error {
	for {
		selection, err := c.Console.ReadIntInRange(
			"Which type of data would you like to update?\n"+
				"1. Customer\n"+
				"2. Address\n"+
				"0. Exit\n", 0, 2)
		if err != nil {
			return err
		}

		switch selection {
		case 0:
			return nil
		case 1:
			if err := c.Service.UpdateCustomer(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.Service.UpdateAddress(ctx); err != nil {
				return err
			}
		}
	}
}

func (c *MenuController) removeLoop(ctx context.Context) error {
	for {
		selection, err := c.Console.ReadIntInRange(
			"Please select action:\n"+
				"1. Delete customer and all associated addresses.\n"+
				"2. Delete a single address associated with a particular customer.\n"+
				"0. Exit\n", 0, 2)
		if err != nil {
			return err
		}

		switch selection {
		case 0:
			return nil
		case 1:
			if err := c.Service.RemoveCustomer(ctx); err != nil {
				return err
			}
		case 2:
			if err := c.Service.RemoveAddress(ctx); err != nil {
				return err
			}
		}
	}
}

// customSQLLoop is the operator escape hatch: raw statements run with no
// validation until EXIT is entered. Deliberately unsafe, kept for
// debugging only.
func (c *MenuController) customSQLLoop(ctx context.Context) error {
	c.Console.Println("Enter custom SQL statement:\nWarning: This statement will be executed regardless of how destructive to the database it may be.\nRun command EXIT to exit.")
	for {
		stmt, err := c.Console.ReadLine("")
		if err != nil {
			return err
		}
		if stmt == "EXIT" {
			return nil
		}
		c.Console.Printf("Executing statement %s\n", stmt)
		c.Service.Runner.ExecTrusted(ctx, stmt, true)
	}
}
