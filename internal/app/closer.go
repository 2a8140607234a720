package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

// closer releases resources in reverse registration order.
type closer struct {
	mu    sync.Mutex
	funcs []namedCloser
}

func (c *closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.funcs = append(c.funcs, namedCloser{name: name, fn: fn})
}

func (c *closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := f.fn(ctx); err != nil {
			log.Errorw("failed to close", "resource", f.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		log.Debugw("closed", "resource", f.name)
	}
	return errors.Join(errs...)
}
