package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/hotspoon/full-stack-todo-app/internal/domain"
	"github.com/hotspoon/full-stack-todo-app/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

// TodoService translates repo errors into service sentinels and coalesces
// concurrent identical list queries. It holds no cross-request state.
type TodoService struct {
	repo repo.TodoRepo
	sf   singleflight.Group
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title string, status bool) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	return s.repo.Create(ctx, title, status)
}

// List returns all todos, most recently updated first. Concurrent callers
// share a single database round trip.
func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	v, err, _ := s.sf.Do("list", func() (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Todo), nil
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, title string, status bool) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	t, err := s.repo.Update(ctx, id, title, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
