// Package store is the data access layer over gorm. Reads go straight to the
// database; writes are buffered in a UnitOfWork and flushed by SaveChanges.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog/internal/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Store struct {
	db       *gorm.DB
	validate *validator.Validate
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListUsers returns every user ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListArticlesWithAuthor returns every article with Author populated by a join.
func (s *Store) ListArticlesWithAuthor(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.WithContext(ctx).
		Joins("Author").
		Order("articles.id ASC").
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

// GetArticle loads one article. Author is only populated when withAuthor is set.
func (s *Store) GetArticle(ctx context.Context, id uint, withAuthor bool) (*models.Article, error) {
	q := s.db.WithContext(ctx)
	if withAuthor {
		q = q.Joins("Author")
	}

	var article models.Article
	if err := q.First(&article, "articles.id = ?", id).Error; err != nil {
		return nil, notFound(err, "article", id)
	}
	return &article, nil
}

// DeleteUser removes a user that owns no articles. The articles.author_id
// foreign key is declared ON DELETE RESTRICT, so the database rejects the
// delete as well if an article slips in between the check and the delete.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFound(err, "user", id)
		}

		var count int64
		if err := tx.Model(&models.Article{}).Where("author_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("count articles of user %d: %w", id, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: user %d owns %d article(s)", ErrUserHasArticles, id, count)
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("delete user %d: %w", id, err)
		}
		return nil
	})
}

// Begin starts a new unit of work.
func (s *Store) Begin() *UnitOfWork {
	return &UnitOfWork{store: s}
}

func (s *Store) check(entity any) error {
	err := s.validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s (%s)", fe.Namespace(), rule))
	}
	return fmt.Errorf("%w: %s", ErrConstraint, strings.Join(msgs, ", "))
}

func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("get %s %d: %w", entity, id, err)
}
