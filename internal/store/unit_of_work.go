package store

import (
	"context"
	"fmt"

	"blog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
)

type change struct {
	kind   changeKind
	entity any
}

// UnitOfWork buffers inserts and updates until SaveChanges. It is not safe
// for concurrent use; create one per request.
type UnitOfWork struct {
	store   *Store
	changes []change
}

func (u *UnitOfWork) AddUser(user *models.User) {
	u.changes = append(u.changes, change{kind: changeInsert, entity: user})
}

func (u *UnitOfWork) AddArticle(article *models.Article) {
	u.changes = append(u.changes, change{kind: changeInsert, entity: article})
}

func (u *UnitOfWork) UpdateUser(user *models.User) {
	u.changes = append(u.changes, change{kind: changeUpdate, entity: user})
}

func (u *UnitOfWork) UpdateArticle(article *models.Article) {
	u.changes = append(u.changes, change{kind: changeUpdate, entity: article})
}

// Pending reports how many changes are waiting for SaveChanges.
func (u *UnitOfWork) Pending() int {
	return len(u.changes)
}

// SaveChanges validates and writes all pending changes in one transaction.
// On failure nothing is written, ids handed out during the attempt are
// cleared, and the changes stay pending.
func (u *UnitOfWork) SaveChanges(ctx context.Context) error {
	if len(u.changes) == 0 {
		return nil
	}

	for _, ch := range u.changes {
		if err := u.store.check(ch.entity); err != nil {
			return err
		}
	}

	err := u.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ch := range u.changes {
			if err := apply(tx, ch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		u.resetInsertedIDs()
		return err
	}

	u.changes = nil
	return nil
}

func apply(tx *gorm.DB, ch change) error {
	name := entityName(ch.entity)

	switch ch.kind {
	case changeInsert:
		if err := tx.Omit(clause.Associations).Create(ch.entity).Error; err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	case changeUpdate:
		res := tx.Model(ch.entity).Select("*").Omit(clause.Associations).Updates(ch.entity)
		if res.Error != nil {
			return fmt.Errorf("update %s: %w", name, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update %s: %w", name, ErrNotFound)
		}
	}
	return nil
}

func (u *UnitOfWork) resetInsertedIDs() {
	for _, ch := range u.changes {
		if ch.kind != changeInsert {
			continue
		}
		switch e := ch.entity.(type) {
		case *models.User:
			e.ID = 0
		case *models.Article:
			e.ID = 0
		}
	}
}

func entityName(entity any) string {
	switch entity.(type) {
	case *models.User:
		return "user"
	case *models.Article:
		return "article"
	}
	return fmt.Sprintf("%T", entity)
}
