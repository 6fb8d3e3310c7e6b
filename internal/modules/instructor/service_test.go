package instructor

import (
	"context"
	"testing"

	"gympay/internal/domain"
	"gympay/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, orgID string) ([]domain.Instructor, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Instructor), args.Error(1)
}

func (m *MockStore) GetByID(ctx context.Context, orgID string, id int64) (*domain.Instructor, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instructor), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, instructor *domain.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, instructor *domain.Instructor) error {
	args := m.Called(ctx, instructor)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, orgID string, id int64) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}

const testOrgID = "550e8400-e29b-41d4-a716-446655440000"

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateScopesToOrganization(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.Instructor) bool {
		return i.OrganizationID == testOrgID && i.Status == domain.InstructorActive
	})).Return(nil)

	created, err := service.Create(context.Background(), CreateInstructorRequest{
		FirstName:   "Carlos",
		LastName:    "Reyes",
		Email:       "carlos.reyes@example.com",
		Specialties: []string{"Boxing"},
		HourlyRate:  55,
	})

	require.NoError(t, err)
	assert.Equal(t, testOrgID, created.OrganizationID)
	assert.Equal(t, domain.InstructorActive, created.Status)
	store.AssertExpectations(t)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	existing := &domain.Instructor{
		ID:          7,
		FirstName:   "Sarah",
		LastName:    "Johnson",
		Email:       "sarah.johnson@example.com",
		Specialties: []string{"Yoga"},
		HourlyRate:  45,
		Status:      domain.InstructorActive,
	}
	store.On("GetByID", mock.Anything, testOrgID, int64(7)).Return(existing, nil)
	store.On("Update", mock.Anything, existing).Return(nil)

	updated, err := service.Update(context.Background(), 7, UpdateInstructorRequest{
		HourlyRate: f64Ptr(52.50),
	})

	require.NoError(t, err)
	assert.Equal(t, 52.50, updated.HourlyRate)
	assert.Equal(t, "Sarah", updated.FirstName)
	assert.Equal(t, "sarah.johnson@example.com", updated.Email)
	store.AssertExpectations(t)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("GetByID", mock.Anything, testOrgID, int64(7)).
		Return(&domain.Instructor{ID: 7, Status: domain.InstructorActive}, nil)

	_, err := service.Update(context.Background(), 7, UpdateInstructorRequest{
		Status: strPtr("retired"),
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRejectsBlankedEmail(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("GetByID", mock.Anything, testOrgID, int64(7)).
		Return(&domain.Instructor{
			ID:        7,
			FirstName: "Sarah",
			LastName:  "Johnson",
			Email:     "sarah.johnson@example.com",
			Status:    domain.InstructorActive,
		}, nil)

	_, err := service.Update(context.Background(), 7, UpdateInstructorRequest{
		Email: strPtr(""),
	})

	var fields validator.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "required", fields["Email"])
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateValidatesEntity(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	_, err := service.Create(context.Background(), CreateInstructorRequest{
		FirstName:  "Carlos",
		LastName:   "Reyes",
		Email:      "not-an-email",
		HourlyRate: 55,
	})

	var fields validator.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "email", fields["Email"])
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMissingInstructor(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("GetByID", mock.Anything, testOrgID, int64(99)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Update(context.Background(), 99, UpdateInstructorRequest{
		FirstName: strPtr("Nobody"),
	})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePropagatesStoreError(t *testing.T) {
	store := new(MockStore)
	service := NewService(store, testOrgID)

	store.On("Delete", mock.Anything, testOrgID, int64(4)).
		Return(gorm.ErrRecordNotFound)

	err := service.Delete(context.Background(), 4)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
