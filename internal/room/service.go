package room

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name           string
	BaseHourlyRate float64
	Capacity       int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Reset(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if req.BaseHourlyRate <= 0 {
		return nil, ErrInvalidRate
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	r := &Room{
		Name:           name,
		BaseHourlyRate: req.BaseHourlyRate,
		Capacity:       req.Capacity,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
