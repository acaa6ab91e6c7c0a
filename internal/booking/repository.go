package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotLoaded is returned when a repository operation runs before Load.
var ErrNotLoaded = errors.New("booking repository not loaded")

type Repository interface {
	// Load reads the persisted collection into memory. It must be called once
	// at startup before any other operation.
	Load(ctx context.Context) error

	FindAll(ctx context.Context, filter Filter) ([]*Booking, error)
	FindByID(ctx context.Context, id string) (*Booking, error)

	// FindOverlapping returns the CONFIRMED bookings for the room whose
	// intervals intersect [start, end), in storage order.
	FindOverlapping(ctx context.Context, roomID string, start, end time.Time) ([]*Booking, error)

	// Create assigns the id and timestamps, appends and persists.
	Create(ctx context.Context, b *Booking) error

	// UpdateStatus transitions a booking's status and persists. It fails if
	// the id is absent.
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)

	// Aggregate sums CONFIRMED duration-hours and revenue per room,
	// restricted to bookings whose start and end both fall within [from, to]
	// when bounds are given. A date-only "to" is inclusive through the end of
	// its day.
	Aggregate(ctx context.Context, from, to *time.Time) ([]AnalyticsRow, error)

	// Clear truncates the collection and persists the empty state.
	Clear(ctx context.Context) error
}

// fileRepository keeps the whole collection in memory as the source of truth
// and rewrites the backing JSON file on every mutation. The mutex guards the
// read-modify-persist cycle so concurrent writers cannot interleave.
type fileRepository struct {
	path   string
	logger *zap.Logger

	mu       sync.RWMutex
	loaded   bool
	bookings []*Booking
}

func NewFileRepository(path string, logger *zap.Logger) Repository {
	return &fileRepository{path: path, logger: logger}
}

func (r *fileRepository) Load(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return nil
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read booking data file: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return fmt.Errorf("create booking data dir: %w", err)
		}
		r.bookings = []*Booking{}
		if err := r.persist(); err != nil {
			return err
		}
		r.loaded = true
		r.logger.Info("booking data file created", zap.String("path", r.path))
		return nil
	}

	var bookings []*Booking
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &bookings); err != nil {
			return fmt.Errorf("parse booking data file: %w", err)
		}
	}
	if bookings == nil {
		bookings = []*Booking{}
	}

	r.bookings = bookings
	r.loaded = true
	r.logger.Info("booking data file loaded",
		zap.String("path", r.path),
		zap.Int("count", len(bookings)))
	return nil
}

// persist rewrites the full collection. Callers must hold the write lock.
// The write goes through a temp file and rename so a crash mid-write cannot
// truncate the collection.
func (r *fileRepository) persist() error {
	data, err := json.MarshalIndent(r.bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write booking data file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace booking data file: %w", err)
	}
	return nil
}

func clone(b *Booking) *Booking {
	c := *b
	return &c
}

func (r *fileRepository) FindAll(_ context.Context, filter Filter) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, ErrNotLoaded
	}

	var out []*Booking
	for _, b := range r.bookings {
		if filter.RoomID != "" && b.RoomID != filter.RoomID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.From != nil && b.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && b.EndTime.After(*filter.To) {
			continue
		}
		out = append(out, clone(b))
	}
	return out, nil
}

func (r *fileRepository) FindByID(_ context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, ErrNotLoaded
	}

	for _, b := range r.bookings {
		if b.ID == id {
			return clone(b), nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileRepository) FindOverlapping(_ context.Context, roomID string, start, end time.Time) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, ErrNotLoaded
	}

	var relevant []*Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID && b.Status == StatusConfirmed {
			relevant = append(relevant, b)
		}
	}

	conflicts := FindConflicts(start, end, relevant)
	out := make([]*Booking, len(conflicts))
	for i, b := range conflicts {
		out[i] = clone(b)
	}
	return out, nil
}

func (r *fileRepository) Create(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return ErrNotLoaded
	}

	now := time.Now().UTC()
	b.ID = "booking_" + uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now

	r.bookings = append(r.bookings, clone(b))
	if err := r.persist(); err != nil {
		// Roll back the append so memory matches disk.
		r.bookings = r.bookings[:len(r.bookings)-1]
		r.logger.Error("persist booking failed", zap.String("id", b.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *fileRepository) UpdateStatus(_ context.Context, id string, status Status) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return nil, ErrNotLoaded
	}

	for i, b := range r.bookings {
		if b.ID != id {
			continue
		}

		next := clone(b)
		next.Status = status
		next.UpdatedAt = time.Now().UTC()

		prev := r.bookings[i]
		r.bookings[i] = next
		if err := r.persist(); err != nil {
			r.bookings[i] = prev
			r.logger.Error("persist booking status failed", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		return clone(next), nil
	}
	return nil, ErrNotFound
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

func (r *fileRepository) Aggregate(_ context.Context, from, to *time.Time) ([]AnalyticsRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, ErrNotLoaded
	}

	var fromBoundary, toBoundary *time.Time
	if from != nil {
		fromBoundary = from
	}
	if to != nil {
		// A date-only bound is inclusive through the end of its day.
		t := to.Add(24*time.Hour - time.Millisecond)
		toBoundary = &t
	}

	within := func(t time.Time) bool {
		if t.IsZero() {
			return false
		}
		if fromBoundary != nil && t.Before(*fromBoundary) {
			return false
		}
		if toBoundary != nil && t.After(*toBoundary) {
			return false
		}
		return true
	}

	type bucket struct {
		totalMinutes float64
		totalRevenue float64
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, b := range r.bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		if !within(b.StartTime) || !within(b.EndTime) {
			continue
		}

		minutes := b.EndTime.Sub(b.StartTime).Minutes()
		if minutes < 0 {
			minutes = 0
		}

		bk, ok := buckets[b.RoomID]
		if !ok {
			bk = &bucket{}
			buckets[b.RoomID] = bk
			order = append(order, b.RoomID)
		}
		bk.totalMinutes += minutes
		bk.totalRevenue = roundCurrency(bk.totalRevenue + b.TotalPrice)
	}

	rows := make([]AnalyticsRow, 0, len(order))
	for _, roomID := range order {
		bk := buckets[roomID]
		rows = append(rows, AnalyticsRow{
			RoomID:       roomID,
			TotalHours:   math.Round(bk.totalMinutes/60*100) / 100,
			TotalRevenue: roundCurrency(bk.totalRevenue),
		})
	}
	return rows, nil
}

func (r *fileRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return ErrNotLoaded
	}

	prev := r.bookings
	r.bookings = []*Booking{}
	if err := r.persist(); err != nil {
		r.bookings = prev
		r.logger.Error("persist cleared bookings failed", zap.Error(err))
		return err
	}
	return nil
}
