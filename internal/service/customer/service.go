package customer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rosterly/attendance-backend-go/internal/domain/customer"
	"github.com/rosterly/attendance-backend-go/internal/pkg/clock"
	"github.com/rosterly/attendance-backend-go/internal/pkg/schema"
)

// createdOnLayout matches the timestamps already present in stored
// customer documents, e.g. "2024-06-15 09:30:00 IST+0530".
const createdOnLayout = "2006-01-02 15:04:05 MST-0700"

type CustomerServiceImpl struct {
	customerRepo customer.CustomerRepository
	schemaLoader *schema.Loader
	clock        clock.Clock
}

func NewCustomerService(
	customerRepo customer.CustomerRepository,
	schemaLoader *schema.Loader,
	clk clock.Clock,
) customer.CustomerService {
	return &CustomerServiceImpl{
		customerRepo: customerRepo,
		schemaLoader: schemaLoader,
		clock:        clk,
	}
}

// NewBlankForm implements customer.CustomerService.
func (s *CustomerServiceImpl) NewBlankForm(ctx context.Context) (customer.FormTemplate, error) {
	fields, err := s.schemaLoader.Load()
	if err != nil {
		return customer.FormTemplate{}, fmt.Errorf("failed to load customer schema: %w", err)
	}

	data := make(map[string]customer.FieldValue, len(fields))
	for _, field := range fields {
		data[field.Name] = customer.FieldValue{
			Description: field.Description,
			Value:       "",
		}
	}

	return customer.FormTemplate{
		CreatedOn: clock.NowIST(s.clock).Format(createdOnLayout),
		Data:      data,
	}, nil
}

// Save implements customer.CustomerService.
func (s *CustomerServiceImpl) Save(ctx context.Context, req customer.SaveCustomerRequest) (customer.Customer, error) {
	if err := req.Validate(); err != nil {
		return customer.Customer{}, err
	}

	if err := s.checkUnique(ctx, req.Data, ""); err != nil {
		return customer.Customer{}, err
	}

	created, err := s.customerRepo.Insert(ctx, customer.Customer{
		CreatedOn: clock.NowIST(s.clock).Format(createdOnLayout),
		Data:      req.Data,
	})
	if err != nil {
		return customer.Customer{}, err
	}

	slog.Info("Customer created", "customer_id", created.ID.Hex())
	return created, nil
}

// Update implements customer.CustomerService.
func (s *CustomerServiceImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Uniqueness scans exclude the customer being updated, so a
	// record can re-save its own unchanged values.
	if err := s.checkUnique(ctx, req.Data, req.CustomerID); err != nil {
		return err
	}

	if err := s.customerRepo.ReplaceData(ctx, req.CustomerID, req.Data); err != nil {
		return err
	}

	slog.Info("Customer updated", "customer_id", req.CustomerID)
	return nil
}

// checkUnique runs the EMAIL, MOBILE, NAME collision checks in that
// exact order with early return. The order decides which error a
// record violating several constraints reports, so it must not change.
func (s *CustomerServiceImpl) checkUnique(ctx context.Context, data map[string]customer.FieldValue, excludeID string) error {
	for _, field := range customer.UniqueFields {
		exists, err := s.customerRepo.ExistsFieldValue(ctx, field, data[field].Value, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return customer.ConflictError(field)
		}
	}
	return nil
}

// Get implements customer.CustomerService.
func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (customer.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// ListAll implements customer.CustomerService.
func (s *CustomerServiceImpl) ListAll(ctx context.Context) (map[string]customer.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]customer.Customer, len(customers))
	for _, c := range customers {
		byName[c.FieldValueOf(customer.FieldName)] = c
	}

	return byName, nil
}

// Delete implements customer.CustomerService.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Customer deleted", "customer_id", id)
	return nil
}
