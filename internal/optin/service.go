package optin

import (
	"context"
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("name and phone are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a WhatsApp opt-in after validating both fields.
func (s *Service) Register(ctx context.Context, name, phone string) (*OptIn, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" || phone == "" {
		return nil, ErrMissingFields
	}

	o := &OptIn{
		Name:  name,
		Phone: phone,
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) List(ctx context.Context) ([]*OptIn, error) {
	return s.repo.List(ctx)
}
