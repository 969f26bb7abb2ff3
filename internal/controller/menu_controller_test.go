package controller_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"customer-tracker/internal/console"
	"customer-tracker/internal/controller"
	"customer-tracker/internal/db"
	"customer-tracker/internal/model"
	"customer-tracker/internal/repository"
	"customer-tracker/internal/service"
)

// newSession builds the full stack over a fresh in-memory database and a
// scripted input stream, returning the controller, console output and the
// repositories for assertions.
func newSession(t *testing.T, input string) (*controller.MenuController, *bytes.Buffer, *repository.CustomerRepository, *repository.AddressRepository) {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Bootstrap(context.Background(), sqlDB, io.Discard, true))

	out := &bytes.Buffer{}
	cons := console.New(strings.NewReader(input), out)
	customers := &repository.CustomerRepository{DB: sqlDB}
	addresses := &repository.AddressRepository{DB: sqlDB}
	svc := &service.TrackerService{
		Customers: customers,
		Addresses: addresses,
		Runner:    &repository.StatementRunner{DB: sqlDB, Out: out},
		Console:   cons,
		Validate:  model.NewValidator(),
	}
	return &controller.MenuController{Service: svc, Console: cons}, out, customers, addresses
}

func TestSessionEndsWhenInputExhausted(t *testing.T) {
	menu, out, _, _ := newSession(t, "")
	menu.Run(context.Background())
	assert.Contains(t, out.String(), "Welcome to the Customer Manager.")
}

func TestAddCustomerSession(t *testing.T) {
	// main 2 (add), sub 1 (customer), short name, blanks for the three
	// optional names, credit limit, outstanding credit, exit sub, exit main
	input := "2\n1\nTESTER\n\n\n\n100\n0\n0\n0\n"
	menu, out, customers, _ := newSession(t, input)

	menu.Run(context.Background())

	count, err := customers.ShortNameCount(context.Background(), "TESTER")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "Record added successfully.")
}

func TestRemoveCustomerCascadeSession(t *testing.T) {
	// main 4 (remove), sub 1 (cascade), short name, confirm, exit sub, exit main
	input := "4\n1\nGONER\ny\n0\n0\n"
	menu, _, customers, addresses := newSession(t, input)
	ctx := context.Background()

	require.NoError(t, customers.Insert(ctx, model.NewCustomerInput{ShortName: "GONER", CreditLimit: 50}))
	require.NoError(t, addresses.Insert(ctx, "GONER", model.NewAddressInput{Line1: "1 Regent Road"}))
	goneID, err := customers.IDByShortName(ctx, "GONER")
	require.NoError(t, err)

	menu.Run(ctx)

	nameCount, err := customers.ShortNameCount(ctx, "GONER")
	require.NoError(t, err)
	assert.Equal(t, 0, nameCount)

	addrCount, err := addresses.CountByCustomer(ctx, goneID)
	require.NoError(t, err)
	assert.Equal(t, 0, addrCount)
}

func TestViewCountsSession(t *testing.T) {
	// main 1 (view), exit sub, exit main
	input := "1\n0\n0\n"
	menu, out, customers, _ := newSession(t, input)
	ctx := context.Background()

	require.NoError(t, customers.Insert(ctx, model.NewCustomerInput{ShortName: "ONLY"}))

	menu.Run(ctx)

	assert.Contains(t, out.String(), "Currently storing 1 customers and 0 addresses.")
}

func TestCustomSQLSession(t *testing.T) {
	// main 5 (custom SQL), one statement, EXIT, exit main
	input := "5\nSELECT 1 AS Answer;\nEXIT\n0\n"
	menu, out, _, _ := newSession(t, input)

	menu.Run(context.Background())

	assert.Contains(t, out.String(), "Executing statement SELECT 1 AS Answer;")
	assert.Contains(t, out.String(), "Answer : 1")
	assert.Contains(t, out.String(), "Statement executed successfully.")
}

func TestMenuRejectsOutOfRangeSelection(t *testing.T) {
	input := "8\nx\n0\n"
	menu, out, _, _ := newSession(t, input)

	menu.Run(context.Background())

	assert.Contains(t, out.String(), "Please enter a number which corresponds to one of the options.")
	assert.Contains(t, out.String(), "Error. Please enter a valid integer value.")
}
