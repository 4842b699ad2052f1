package courier

import (
	"context"
	"fmt"
	"strings"

	"courierdesk/internal/entities"
)

type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil || courierModify.Email == nil {
		return 0, ErrMissingRequiredFields
	}
	if courierModify.Role == nil {
		role := entities.DefaultRole
		courierModify.Role = &role
	}

	if err := validateModify(&courierModify); err != nil {
		return 0, err
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*courierModify.ID) {
		return nil, ErrInvalidCourierID
	}
	if courierModify.Name == nil &&
		courierModify.Email == nil &&
		courierModify.Role == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(&courierModify); err != nil {
		return nil, err
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

// GetProfile профиль для сессии, отдельно от GetCourier из-за другого контекста ошибок.
func (s *Courier) GetProfile(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return courier, nil
}

// GetCouriers role=nil возвращает всех пользователей.
func (s *Courier) GetCouriers(ctx context.Context, role *entities.CourierRole) ([]entities.Courier, error) {
	if role != nil && !role.IsValid() {
		return nil, ErrInvalidRole
	}

	couriers, err := s.repository.GetAll(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

func validateModify(courierModify *entities.CourierModify) error {
	if courierModify.Name != nil {
		if !isValidName(*courierModify.Name) {
			return ErrInvalidName
		}
		name := strings.TrimSpace(*courierModify.Name)
		courierModify.Name = &name
	}
	if courierModify.Email != nil {
		if !isValidEmail(*courierModify.Email) {
			return ErrInvalidEmail
		}
		email := strings.ToLower(strings.TrimSpace(*courierModify.Email))
		courierModify.Email = &email
	}
	if courierModify.Role != nil && !courierModify.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
