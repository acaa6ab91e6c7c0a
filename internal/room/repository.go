package room

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context) ([]*Room, error)
	Reset(ctx context.Context) error
}

// memoryRepository keeps the catalog in insertion order for the process
// lifetime. There is no durable state for rooms.
type memoryRepository struct {
	mu    sync.RWMutex
	rooms []*Room
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, room *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room.ID = "room_" + uuid.NewString()
	clone := *room
	r.rooms = append(r.rooms, &clone)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, room := range r.rooms {
		if room.ID == id {
			clone := *room
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) List(_ context.Context) ([]*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		clone := *room
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms = nil
	return nil
}
