package instructor

import (
	"context"

	"gympay/internal/domain"
	"gympay/internal/pkg/validator"
)

type Service struct {
	store Store
	orgID string
}

func NewService(store Store, orgID string) *Service {
	return &Service{store: store, orgID: orgID}
}

func (s *Service) List(ctx context.Context) ([]domain.Instructor, error) {
	return s.store.List(ctx, s.orgID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	return s.store.GetByID(ctx, s.orgID, id)
}

func (s *Service) Create(ctx context.Context, req CreateInstructorRequest) (*domain.Instructor, error) {
	instructor := &domain.Instructor{
		OrganizationID: s.orgID,
		GymID:          req.GymID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialties:    req.Specialties,
		HourlyRate:     req.HourlyRate,
		Status:         domain.InstructorActive,
	}
	if err := validator.Check(instructor); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateInstructorRequest) (*domain.Instructor, error) {
	instructor, err := s.store.GetByID(ctx, s.orgID, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		instructor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		instructor.LastName = *req.LastName
	}
	if req.Email != nil {
		instructor.Email = *req.Email
	}
	if req.Phone != nil {
		instructor.Phone = *req.Phone
	}
	if req.GymID != nil {
		instructor.GymID = req.GymID
	}
	if req.Specialties != nil {
		instructor.Specialties = *req.Specialties
	}
	if req.HourlyRate != nil {
		instructor.HourlyRate = *req.HourlyRate
	}
	if req.Status != nil {
		status := domain.InstructorStatus(*req.Status)
		if status != domain.InstructorActive && status != domain.InstructorInactive {
			return nil, ErrInvalidStatus
		}
		instructor.Status = status
	}

	if err := validator.Check(instructor); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, s.orgID, id)
}
