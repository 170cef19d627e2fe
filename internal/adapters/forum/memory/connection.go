package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/ports"
)

var errNotStarted = errors.New("connection not started")

type connection struct {
	forum    *Forum
	endpoint string
	username string

	mu      sync.Mutex
	running bool
}

// Connect returns a handle that marks username online in the room while it
// is started.
func (f *Forum) Connect(endpoint string, session domain.Session) ports.Connection {
	return &connection{forum: f, endpoint: endpoint, username: session.Name}
}

func (c *connection) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}
	c.running = true

	c.forum.mu.Lock()
	c.forum.connected[c.username]++
	c.forum.mu.Unlock()

	c.forum.logger.Debugw("connection started", "username", c.username, "endpoint", c.endpoint)
	return nil
}

func (c *connection) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return errNotStarted
	}
	c.running = false

	c.forum.mu.Lock()
	c.forum.connected[c.username]--
	if c.forum.connected[c.username] <= 0 {
		delete(c.forum.connected, c.username)
	}
	c.forum.mu.Unlock()

	c.forum.logger.Debugw("connection stopped", "username", c.username, "endpoint", c.endpoint)
	return nil
}
