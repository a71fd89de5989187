package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fittracker/backend/internal/domain"
	"fittracker/backend/internal/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository keeps accounts in memory, keyed by id with a mail index.
type UserRepository struct {
	mutex  sync.RWMutex
	byID   map[string]domain.User
	byMail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:   make(map[string]domain.User),
		byMail: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	if user.Mail == "" || user.PasswordHash == "" {
		return errors.New("user mail and password hash are required")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := strings.ToLower(user.Mail)
	if _, taken := r.byMail[key]; taken {
		return repository.ErrDuplicate
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	r.byID[user.ID] = *user
	r.byMail[key] = user.ID
	return nil
}

func (r *UserRepository) GetByMail(_ context.Context, mail string) (*domain.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	id, ok := r.byMail[strings.ToLower(mail)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}
