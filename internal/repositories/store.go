package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Store bundles the repositories that share one database handle. Inside
// Transaction every repository is bound to the same transaction.
type Store struct {
	db      *gorm.DB
	Users   UserRepository
	Tweets  TweetRepository
	Media   MediaRepository
	Likes   LikeRepository
	Follows FollowRepository
}

// NewStore creates a Store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:      db,
		Users:   NewGormUserRepository(db),
		Tweets:  NewGormTweetRepository(db),
		Media:   NewGormMediaRepository(db),
		Likes:   NewGormLikeRepository(db),
		Follows: NewGormFollowRepository(db),
	}
}

// Transaction runs fn in a single database transaction. Any error returned
// by fn rolls the whole unit of work back and is returned unchanged.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// drivers that do not translate errors
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
