package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Ashwanthreddy-18/primetrade-fullstack-app/internal/cache"
	dom "github.com/Ashwanthreddy-18/primetrade-fullstack-app/internal/domain"
	"github.com/Ashwanthreddy-18/primetrade-fullstack-app/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmptyTitle = errors.New("title is required")
)

// TaskService implements owner-scoped task CRUD. The user id always comes
// from the authenticated request context, never from client input, and every
// repo call carries it. A task that exists but belongs to someone else is
// reported as ErrNotFound, same as a task that does not exist.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

func (s *TaskService) Create(ctx context.Context, userID int64, title, desc string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if title == "" {
		return dom.Task{}, ErrEmptyTitle
	}

	t, err := s.repo.Create(ctx, dom.Task{
		UserID:      userID,
		Title:       title,
		Description: desc,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, userID)
}

// Update applies a partial patch: nil fields keep the stored value. The
// lookup and the write are both scoped to userID.
func (s *TaskService) Update(ctx context.Context, userID, id int64, title, desc *string, completed *bool) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		t := strings.TrimSpace(*title)
		if t == "" {
			return dom.Task{}, ErrEmptyTitle
		}
		patch.Title = t
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if completed != nil {
		patch.Completed = *completed
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
