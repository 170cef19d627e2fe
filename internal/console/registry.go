package console

import "sync"

// Registry maps command tokens to commands. Lookups that miss resolve to the
// fallback command, which sends the input as chat text.
type Registry struct {
	mu       sync.RWMutex
	byToken  map[string]Command
	tokens   []string
	fallback Command
}

func NewRegistry(fallback Command) *Registry {
	return &Registry{
		byToken:  make(map[string]Command),
		tokens:   make([]string, 0),
		fallback: fallback,
	}
}

// Register stores cmd under token. Registering a token again replaces the
// previous command and keeps its position.
func (r *Registry) Register(token string, cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byToken[token]; !exists {
		r.tokens = append(r.tokens, token)
	}
	r.byToken[token] = cmd
}

// Resolve returns the command for token, or the fallback and false.
func (r *Registry) Resolve(token string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.byToken[token]
	if !ok {
		return r.fallback, false
	}
	return cmd, true
}

func (r *Registry) Fallback() Command {
	return r.fallback
}

// Tokens lists registered tokens in registration order.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.tokens))
	copy(out, r.tokens)
	return out
}
