// Package glossary owns all reads and writes of the terms table.
package glossary

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"glossary/internal/models"
)

// Repository runs each operation in its own transaction on a connection
// taken from the pool behind db, so it is safe for concurrent use.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every term. No order is guaranteed.
func (r *Repository) List(ctx context.Context) ([]models.Term, error) {
	terms := []models.Term{}
	err := r.tx(ctx, func(tx *gorm.DB) error {
		return tx.Find(&terms).Error
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (models.Term, error) {
	var term models.Term
	err := r.tx(ctx, func(tx *gorm.DB) error {
		var err error
		term, err = find(tx, id)
		return err
	})
	return term, err
}

// ListRelated returns the terms whose relation points at id.
func (r *Repository) ListRelated(ctx context.Context, id int64) ([]models.Term, error) {
	terms := []models.Term{}
	err := r.tx(ctx, func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}
		return tx.Where("relation = ?", id).Find(&terms).Error
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *Repository) Create(ctx context.Context, in NewTerm) (models.Term, error) {
	if err := in.validate(); err != nil {
		return models.Term{}, err
	}
	term := in.model()
	err := r.tx(ctx, func(tx *gorm.DB) error {
		if term.Relation != nil {
			if err := checkRelation(tx, *term.Relation); err != nil {
				return err
			}
		}
		return tx.Create(&term).Error
	})
	if err != nil {
		return models.Term{}, err
	}
	return term, nil
}

// Update merges p into the stored term and writes the result back.
// Concurrent updates of one id are last-writer-wins.
func (r *Repository) Update(ctx context.Context, id int64, p Patch) (models.Term, error) {
	var updated models.Term
	err := r.tx(ctx, func(tx *gorm.DB) error {
		current, err := find(tx, id)
		if err != nil {
			return err
		}
		updated = p.Apply(current)
		if updated.Term == "" {
			return &ValidationError{Field: "term", Reason: "must not be empty"}
		}
		if updated.Definition == "" {
			return &ValidationError{Field: "definition", Reason: "must not be empty"}
		}
		if p.Relation.Set && updated.Relation != nil {
			if *updated.Relation == id {
				return fmt.Errorf("%w: term %d cannot relate to itself", ErrInvalidRelation, id)
			}
			if err := checkRelation(tx, *updated.Relation); err != nil {
				return err
			}
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		return models.Term{}, err
	}
	return updated, nil
}

// Delete removes the term and clears the relation of every term that
// pointed at it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.tx(ctx, func(tx *gorm.DB) error {
		if _, err := find(tx, id); err != nil {
			return err
		}
		if err := tx.Model(&models.Term{}).
			Where("relation = ?", id).
			Update("relation", gorm.Expr("NULL")).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Term{}, id).Error
	})
}

func (r *Repository) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return classify(r.db.WithContext(ctx).Transaction(fn))
}

func find(tx *gorm.DB, id int64) (models.Term, error) {
	var term models.Term
	if err := tx.First(&term, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return term, ErrNotFound
		}
		return term, err
	}
	return term, nil
}

func checkRelation(tx *gorm.DB, target int64) error {
	var count int64
	if err := tx.Model(&models.Term{}).Where("id = ?", target).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: term %d does not exist", ErrInvalidRelation, target)
	}
	return nil
}

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), IsValidation(err):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
