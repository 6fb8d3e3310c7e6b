package demo

import (
	"context"
	"time"

	"gympay/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nextID mirrors the original mock layer, which handed out Date.now() as
// a record id.
func nextID() int64 {
	return time.Now().UnixMilli()
}

type OrganizationStore struct{}

func NewOrganizationStore() *OrganizationStore { return &OrganizationStore{} }

func (s *OrganizationStore) List(ctx context.Context) ([]domain.Organization, error) {
	return organizations(), nil
}

func (s *OrganizationStore) Create(ctx context.Context, org *domain.Organization) error {
	org.ID = uuid.NewString()
	org.CreatedAt = time.Now().UTC()
	return nil
}

type GymStore struct{}

func NewGymStore() *GymStore { return &GymStore{} }

func (s *GymStore) List(ctx context.Context, orgID string) ([]domain.Gym, error) {
	return gyms(), nil
}

func (s *GymStore) Create(ctx context.Context, gym *domain.Gym) error {
	gym.ID = nextID()
	gym.Status = domain.GymActive
	gym.CreatedAt = time.Now().UTC()
	return nil
}

type InstructorStore struct{}

func NewInstructorStore() *InstructorStore { return &InstructorStore{} }

func (s *InstructorStore) List(ctx context.Context, orgID string) ([]domain.Instructor, error) {
	return instructors(), nil
}

func (s *InstructorStore) GetByID(ctx context.Context, orgID string, id int64) (*domain.Instructor, error) {
	for _, instructor := range instructors() {
		if instructor.ID == id {
			return &instructor, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *InstructorStore) Create(ctx context.Context, instructor *domain.Instructor) error {
	instructor.ID = nextID()
	instructor.Status = domain.InstructorActive
	instructor.CreatedAt = time.Now().UTC()
	return nil
}

func (s *InstructorStore) Update(ctx context.Context, instructor *domain.Instructor) error {
	instructor.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete always succeeds in demo mode; the canned list is never mutated.
func (s *InstructorStore) Delete(ctx context.Context, orgID string, id int64) error {
	return nil
}

type PayrollStore struct{}

func NewPayrollStore() *PayrollStore { return &PayrollStore{} }

func (s *PayrollStore) ListPeriods(ctx context.Context, orgID string) ([]domain.PayrollPeriod, error) {
	return payrollPeriods(), nil
}

func (s *PayrollStore) CreatePeriod(ctx context.Context, period *domain.PayrollPeriod) error {
	period.ID = nextID()
	period.Status = domain.PayrollDraft
	period.CreatedAt = time.Now().UTC()
	return nil
}

func (s *PayrollStore) GetPeriod(ctx context.Context, orgID string, id int64) (*domain.PayrollPeriod, error) {
	for _, period := range payrollPeriods() {
		if period.ID == id {
			return &period, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *PayrollStore) ListEntries(ctx context.Context, periodID int64) ([]domain.PayrollEntry, error) {
	return payrollEntries(), nil
}

// AnalyticsSource serves the fixed overview and metric rows. The numbers
// match what the dashboard shipped with before a datastore existed.
type AnalyticsSource struct{}

func NewAnalyticsSource() *AnalyticsSource { return &AnalyticsSource{} }

func (s *AnalyticsSource) Overview(ctx context.Context, orgID string, days int) (*domain.AnalyticsOverview, error) {
	return analyticsOverview(), nil
}

func (s *AnalyticsSource) Entries(ctx context.Context, orgID string, days int) ([]domain.AnalyticsEntry, error) {
	return analyticsEntries(), nil
}

type ReferralStore struct{}

func NewReferralStore() *ReferralStore { return &ReferralStore{} }

func (s *ReferralStore) List(ctx context.Context, orgID string) ([]domain.Referral, error) {
	return referrals(), nil
}

func (s *ReferralStore) Create(ctx context.Context, referral *domain.Referral) error {
	referral.ID = nextID()
	referral.Status = domain.ReferralPending
	referral.CreatedAt = time.Now().UTC()
	return nil
}
