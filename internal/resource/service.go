// Package resource implements the CRUD contract shared by every REST collection:
// one generic service parametrized by entity, create input, partial update and filter.
package resource

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/apiclient"
)

var ErrEmptyID = errors.New("empty id")

// EntityService is what callers depend on; *Service satisfies it.
type EntityService[T, C, U any, F Filter] interface {
	GetAll(ctx context.Context, filter F) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, input C) (*T, error)
	Update(ctx context.Context, id string, patch U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Requester is the subset of *apiclient.Client used by Service.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

var _ Requester = (*apiclient.Client)(nil)

type Service[T, C, U any, F Filter] struct {
	api  Requester
	path string
}

// New binds a service to a collection path such as "/drivers".
func New[T, C, U any, F Filter](api Requester, path string) *Service[T, C, U, F] {
	return &Service[T, C, U, F]{api: api, path: "/" + strings.Trim(path, "/")}
}

func (s *Service[T, C, U, F]) Path() string { return s.path }

func (s *Service[T, C, U, F]) GetAll(ctx context.Context, filter F) ([]T, error) {
	query, err := filter.Query()
	if err != nil {
		return nil, err
	}
	var list []T
	if err := s.api.Get(ctx, s.path, query, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

func (s *Service[T, C, U, F]) GetByID(ctx context.Context, id string) (*T, error) {
	p, err := s.itemPath(id)
	if err != nil {
		return nil, err
	}
	var out T
	if err := s.api.Get(ctx, p, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service[T, C, U, F]) Create(ctx context.Context, input C) (*T, error) {
	var out T
	if err := s.api.Post(ctx, s.path, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends only the fields set in patch; the backend merges them into the record.
func (s *Service[T, C, U, F]) Update(ctx context.Context, id string, patch U) (*T, error) {
	p, err := s.itemPath(id)
	if err != nil {
		return nil, err
	}
	var out T
	if err := s.api.Put(ctx, p, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service[T, C, U, F]) Delete(ctx context.Context, id string) error {
	p, err := s.itemPath(id)
	if err != nil {
		return err
	}
	return s.api.Delete(ctx, p)
}

func (s *Service[T, C, U, F]) itemPath(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrEmptyID
	}
	return s.path + "/" + url.PathEscape(id), nil
}
