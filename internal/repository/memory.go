package repository

import (
	"context"
	"sync"

	apperrors "edutech/internal/errors"
)

// collection is an insertion-ordered map of records keyed by ID, with an
// optional unique secondary key (slug, username) indexed alongside it.
// Records are cloned on the way in and out so callers never share storage.
type collection[T any] struct {
	mu    sync.RWMutex
	byID  map[string]*T
	order []string
	index map[string]string

	id     func(*T) string
	key    func(*T) string
	clone  func(*T) *T
	serial uint
}

func newCollection[T any](id func(*T) string, key func(*T) string, clone func(*T) *T) *collection[T] {
	c := &collection[T]{
		byID:  make(map[string]*T),
		id:    id,
		key:   key,
		clone: clone,
	}
	if key != nil {
		c.index = make(map[string]string)
	}
	return c
}

// insert stores rec after prepare has filled its server-assigned fields.
// prepare receives the next sequence number and runs under the write lock.
func (c *collection[T]) insert(ctx context.Context, rec *T, prepare func(rec *T, seq uint)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key != nil {
		if _, taken := c.index[c.key(rec)]; taken {
			return apperrors.ErrDuplicate
		}
	}

	c.serial++
	prepare(rec, c.serial)

	id := c.id(rec)
	c.byID[id] = c.clone(rec)
	c.order = append(c.order, id)
	if c.key != nil {
		c.index[c.key(rec)] = id
	}
	return nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c.clone(rec), nil
}

func (c *collection[T]) getByKey(ctx context.Context, key string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.index[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c.clone(c.byID[id]), nil
}

func (c *collection[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.clone(c.byID[id]))
	}
	return out, nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
