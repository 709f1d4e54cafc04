package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Collection names, as exposed through the API.
const (
	Students         = "students"
	Trackers         = "application_trackers"
	Essays           = "essays"
	Tasks            = "tasks"
	Scholarships     = "scholarships"
	SelectedColleges = "selected_colleges"
)

type collection struct {
	model func() any
	// indexed collections enqueue an outbox event on every write so the
	// sync worker can mirror them into Elasticsearch
	indexed bool
	entity  string
}

var collections = map[string]collection{
	Students:         {model: func() any { return &models.StudentProfile{} }, indexed: true, entity: "student"},
	Trackers:         {model: func() any { return &models.ApplicationTracker{} }},
	Essays:           {model: func() any { return &models.Essay{} }},
	Tasks:            {model: func() any { return &models.Task{} }},
	Scholarships:     {model: func() any { return &models.Scholarship{} }, indexed: true, entity: "scholarship"},
	SelectedColleges: {model: func() any { return &models.SelectedCollege{} }},
}

type identifiable interface {
	PrimaryID() uuid.UUID
}

var orderFieldRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// DB exposes the underlying handle for callers that need raw queries
// (workers, seed).
func (s *Store) DB() *gorm.DB { return s.db }

// Create inserts rec and stamps its timestamps. rec must be a pointer to
// the collection's model type.
func (s *Store) Create(ctx context.Context, col string, rec any) error {
	c, ok := collections[col]
	if !ok {
		return ErrUnknownCollection
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		if c.indexed {
			if id, ok := rec.(identifiable); ok {
				return addOutboxEvent(tx, c.entity, id.PrimaryID(), "UPSERT", rec)
			}
		}
		return nil
	})
}

// Get loads the record with the given id into out, or returns ErrNotFound.
func (s *Store) Get(ctx context.Context, col string, id uuid.UUID, out any) error {
	if _, ok := collections[col]; !ok {
		return ErrUnknownCollection
	}
	err := s.db.WithContext(ctx).First(out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Update merges fields into the record and restamps updated_at. Unknown
// ids return ErrNotFound.
func (s *Store) Update(ctx context.Context, col string, id uuid.UUID, fields map[string]any) error {
	c, ok := collections[col]
	if !ok {
		return ErrUnknownCollection
	}
	fields["updated_at"] = time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := c.model()
		res := tx.Model(m).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if c.indexed {
			if err := tx.First(m, "id = ?", id).Error; err != nil {
				return err
			}
			return addOutboxEvent(tx, c.entity, id, "UPSERT", m)
		}
		return nil
	})
}

func (s *Store) Delete(ctx context.Context, col string, id uuid.UUID) error {
	c, ok := collections[col]
	if !ok {
		return ErrUnknownCollection
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(c.model())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if c.indexed {
			return addOutboxEvent(tx, c.entity, id, "DELETE", nil)
		}
		return nil
	})
}

// List returns records ordered by a single field. out must be a pointer
// to a slice of the collection's model type.
func (s *Store) List(ctx context.Context, col, orderField, direction string, limit int, out any) error {
	if _, ok := collections[col]; !ok {
		return ErrUnknownCollection
	}
	order, err := buildOrder(orderField, direction)
	if err != nil {
		return err
	}
	q := s.db.WithContext(ctx).Order(order)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.Find(out).Error
}

// Filter applies equality predicates only, then orders. No ranges, no OR.
func (s *Store) Filter(ctx context.Context, col string, eq map[string]any, orderField, direction string, out any) error {
	if _, ok := collections[col]; !ok {
		return ErrUnknownCollection
	}
	q := s.db.WithContext(ctx)
	if len(eq) > 0 {
		for field := range eq {
			if !orderFieldRe.MatchString(field) {
				return fmt.Errorf("invalid filter field %q", field)
			}
		}
		q = q.Where(eq)
	}
	if orderField != "" {
		order, err := buildOrder(orderField, direction)
		if err != nil {
			return err
		}
		q = q.Order(order)
	}
	return q.Find(out).Error
}

// BulkCreate inserts a batch in one transaction. recs must be a pointer
// to a slice of the collection's model type.
func (s *Store) BulkCreate(ctx context.Context, col string, recs any) error {
	c, ok := collections[col]
	if !ok {
		return ErrUnknownCollection
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recs).Error; err != nil {
			return err
		}
		if !c.indexed {
			return nil
		}
		v := reflect.ValueOf(recs)
		for v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		for i := 0; i < v.Len(); i++ {
			rec := v.Index(i).Interface()
			if id, ok := rec.(identifiable); ok {
				if err := addOutboxEvent(tx, c.entity, id.PrimaryID(), "UPSERT", rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SaveProfile creates or updates the single profile keyed by the user id.
// The wizard calls this on every step transition.
func (s *Store) SaveProfile(ctx context.Context, p *models.StudentProfile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.StudentProfile
		err := tx.First(&existing, "user_id = ?", p.UserID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			if err := tx.Save(p).Error; err != nil {
				return err
			}
		}
		return addOutboxEvent(tx, "student", p.ID, "UPSERT", p)
	})
}

// ProfileByUser loads the profile owned by the given account, or
// ErrNotFound if the wizard has never saved one.
func (s *Store) ProfileByUser(ctx context.Context, userID uuid.UUID) (*models.StudentProfile, error) {
	var p models.StudentProfile
	err := s.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func buildOrder(field, direction string) (string, error) {
	if !orderFieldRe.MatchString(field) {
		return "", fmt.Errorf("invalid order field %q", field)
	}
	switch direction {
	case "", "asc":
		return field + " asc", nil
	case "desc":
		return field + " desc", nil
	default:
		return "", fmt.Errorf("invalid order direction %q", direction)
	}
}

func addOutboxEvent(tx *gorm.DB, entityType string, entityID uuid.UUID, op string, payload any) error {
	var data []byte
	if payload != nil {
		data, _ = json.Marshal(payload)
	}
	event := models.Outbox{
		EntityType: entityType,
		EntityID:   entityID,
		Op:         op,
		Payload:    datatypes.JSON(data),
	}
	return tx.Create(&event).Error
}
