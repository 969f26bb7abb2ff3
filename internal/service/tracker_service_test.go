package service_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-tracker/internal/apperrors"
	"customer-tracker/internal/console"
	"customer-tracker/internal/model"
	"customer-tracker/internal/service"
)

// Mock repositories

type mockCustomerRepo struct {
	counts   map[string]int
	ids      map[string]int64
	inserted []model.NewCustomerInput
	deleted  []int64
	countErr error
	calls    *[]string
}

func (m *mockCustomerRepo) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockCustomerRepo) ShortNameCount(ctx context.Context, shortName string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[shortName], nil
}

func (m *mockCustomerRepo) IDByShortName(ctx context.Context, shortName string) (int64, error) {
	id, ok := m.ids[shortName]
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	return id, nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return nil, apperrors.ErrNotFound
}

func (m *mockCustomerRepo) Insert(ctx context.Context, in model.NewCustomerInput) error {
	m.inserted = append(m.inserted, in)
	return nil
}

func (m *mockCustomerRepo) UpdateNames(ctx context.Context, id int64, first, last, group sql.NullString) error {
	return nil
}

func (m *mockCustomerRepo) UpdateCredit(ctx context.Context, id int64, creditLimit, outstandingCredit int) error {
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id int64) error {
	m.record("delete customer")
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockCustomerRepo) Count(ctx context.Context) (int, error) {
	return len(m.ids), nil
}

type mockAddressRepo struct {
	addresses         map[int64][]model.Address
	deleted           []int64
	deletedByCustomer []int64
	calls             *[]string
}

func (m *mockAddressRepo) record(call string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, call)
	}
}

func (m *mockAddressRepo) CountByCustomer(ctx context.Context, customerID int64) (int, error) {
	return len(m.addresses[customerID]), nil
}

func (m *mockAddressRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	return m.addresses[customerID], nil
}

func (m *mockAddressRepo) Insert(ctx context.Context, shortName string, in model.NewAddressInput) error {
	return nil
}

func (m *mockAddressRepo) Update(ctx context.Context, addressID int64, in model.NewAddressInput) error {
	return nil
}

func (m *mockAddressRepo) Delete(ctx context.Context, addressID int64) error {
	m.deleted = append(m.deleted, addressID)
	return nil
}

func (m *mockAddressRepo) DeleteByCustomer(ctx context.Context, customerID int64) error {
	m.record("delete addresses")
	m.deletedByCustomer = append(m.deletedByCustomer, customerID)
	return nil
}

func (m *mockAddressRepo) Count(ctx context.Context) (int, error) {
	total := 0
	for _, list := range m.addresses {
		total += len(list)
	}
	return total, nil
}

func newService(input string, customers *mockCustomerRepo, addresses *mockAddressRepo) (*service.TrackerService, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &service.TrackerService{
		Customers: customers,
		Addresses: addresses,
		Console:   console.New(strings.NewReader(input), out),
		Validate:  model.NewValidator(),
	}, out
}

func TestResolveShortNameRetriesUntilFound(t *testing.T) {
	customers := &mockCustomerRepo{counts: map[string]int{"GOOD": 1}}
	svc, out := newService("BAD\nGOOD\n", customers, &mockAddressRepo{})

	name, err := svc.ResolveShortName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GOOD", name)
	assert.Contains(t, out.String(), "Customer short name not found in the database.")
	assert.Contains(t, out.String(), "Customer identified. Proceeding.")
}

func TestResolveShortNameRetriesOnEngineError(t *testing.T) {
	customers := &mockCustomerRepo{countErr: apperrors.Engine("count Customers", errors.New("disk I/O error"))}
	svc, out := newService("ANY\n", customers, &mockAddressRepo{})

	_, err := svc.ResolveShortName(context.Background())
	// input runs out before a name can verify
	require.Error(t, err)
	assert.Contains(t, out.String(), "An error occurred searching for that name in the database.")
}

func TestPickAddressIDOnlyAcceptsOwnedIDs(t *testing.T) {
	customers := &mockCustomerRepo{ids: map[string]int64{"OWNER": 4}}
	addresses := &mockAddressRepo{addresses: map[int64][]model.Address{
		4: {{ID: 5, CustomerID: 4}, {ID: 7, CustomerID: 4}},
	}}
	svc, out := newService("9\n7\n", customers, addresses)

	id, err := svc.PickAddressID(context.Background(), "OWNER")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Contains(t, out.String(), "Error: Please enter an address ID which corresponds with customer OWNER")
}

func TestPickAddressIDNoAddresses(t *testing.T) {
	customers := &mockCustomerRepo{ids: map[string]int64{"OWNER": 4}}
	svc, _ := newService("", customers, &mockAddressRepo{})

	_, err := svc.PickAddressID(context.Background(), "OWNER")
	assert.ErrorIs(t, err, apperrors.ErrNoAddresses)
}

func TestAddCustomerRejectsDuplicateShortName(t *testing.T) {
	customers := &mockCustomerRepo{counts: map[string]int{"DUPE": 1}}
	// duplicate first, fresh name second, three blank optionals, two ints
	svc, out := newService("DUPE\nFRESH\n\n\n\n100\n0\n", customers, &mockAddressRepo{})

	require.NoError(t, svc.AddCustomer(context.Background()))

	require.Len(t, customers.inserted, 1)
	in := customers.inserted[0]
	assert.Equal(t, "FRESH", in.ShortName)
	assert.False(t, in.FirstName.Valid)
	assert.False(t, in.LastName.Valid)
	assert.False(t, in.GroupName.Valid)
	assert.Equal(t, 100, in.CreditLimit)
	assert.Equal(t, 0, in.OutstandingCredit)
	assert.Contains(t, out.String(), "Error: Short name already in table.")
	assert.Contains(t, out.String(), "Record added successfully.")
}

func TestAddCustomerValidationBlocksInsert(t *testing.T) {
	customers := &mockCustomerRepo{counts: map[string]int{}}
	longName := strings.Repeat("X", 30)
	svc, out := newService(longName+"\n\n\n\n100\n0\n", customers, &mockAddressRepo{})

	require.NoError(t, svc.AddCustomer(context.Background()))

	assert.Empty(t, customers.inserted)
	assert.Contains(t, out.String(), "invalid customer input")
}

func TestRemoveCustomerDeletesAddressesFirst(t *testing.T) {
	order := []string{}
	customers := &mockCustomerRepo{
		counts: map[string]int{"JSMITH": 1},
		ids:    map[string]int64{"JSMITH": 1},
		calls:  &order,
	}
	addresses := &mockAddressRepo{
		addresses: map[int64][]model.Address{1: {{ID: 1, CustomerID: 1}}},
		calls:     &order,
	}
	svc, out := newService("JSMITH\ny\n", customers, addresses)

	require.NoError(t, svc.RemoveCustomer(context.Background()))

	assert.Equal(t, []string{"delete addresses", "delete customer"}, order)
	assert.Equal(t, []int64{1}, addresses.deletedByCustomer)
	assert.Equal(t, []int64{1}, customers.deleted)
	assert.Contains(t, out.String(), "Addresses associated with customer JSMITH deleted successfully.")
	assert.Contains(t, out.String(), "Customer data for JSMITH deleted successfully.")
}

func TestRemoveCustomerAborted(t *testing.T) {
	customers := &mockCustomerRepo{
		counts: map[string]int{"JSMITH": 1},
		ids:    map[string]int64{"JSMITH": 1},
	}
	addresses := &mockAddressRepo{}
	svc, out := newService("JSMITH\nn\n", customers, addresses)

	require.NoError(t, svc.RemoveCustomer(context.Background()))

	assert.Empty(t, customers.deleted)
	assert.Empty(t, addresses.deletedByCustomer)
	assert.Contains(t, out.String(), "Deletion of data aborted.")
}

func TestRemoveAddressReportsNoAddresses(t *testing.T) {
	customers := &mockCustomerRepo{
		counts: map[string]int{"JSMITH": 1},
		ids:    map[string]int64{"JSMITH": 1},
	}
	addresses := &mockAddressRepo{}
	svc, out := newService("JSMITH\n", customers, addresses)

	require.NoError(t, svc.RemoveAddress(context.Background()))
	assert.Contains(t, out.String(), "Customer JSMITH is not associated with any addresses in the database.")
}
