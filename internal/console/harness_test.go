package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bnema/fishpi-cli/internal/adapters/forum/memory"
	"github.com/bnema/fishpi-cli/internal/adapters/render/view"
	filestore "github.com/bnema/fishpi-cli/internal/adapters/secrets/file"
	"github.com/bnema/fishpi-cli/internal/application"
	"github.com/bnema/fishpi-cli/internal/domain"
	portmocks "github.com/bnema/fishpi-cli/internal/ports/mocks"
	"github.com/stretchr/testify/require"
)

type harness struct {
	out        *bytes.Buffer
	forum      *portmocks.MockForum
	backend    *memory.Forum
	state      *application.RuntimeState
	sessions   *application.SessionService
	registry   *Registry
	dispatcher *Dispatcher
	key        string
}

// newHarness logs alice in against the in-memory backend; forum calls made by
// commands go to a mock. input feeds password prompts.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()

	out := &bytes.Buffer{}
	backend := memory.NewForum(nil)
	state := application.NewRuntimeState(domain.DefaultRuntimeConfig(), nil, nil)
	creds := application.NewCredentialService(filestore.NewStore(t.TempDir()), state)
	prompter := NewLineReader(strings.NewReader(input), out)
	sessions := application.NewSessionService(backend, backend, prompter, creds, nil)

	session, err := sessions.Login(context.Background(), "alice", "pw", "")
	require.NoError(t, err)

	forum := portmocks.NewMockForum(t)
	env := &Env{
		Out:      out,
		Sessions: sessions,
		State:    state,
		Forum:    forum,
		Render:   view.NewRenderer(),
		Gesture:  func() domain.Gesture { return domain.GesturePaper },
	}
	registry := NewBuiltinRegistry()

	return &harness{
		out:        out,
		forum:      forum,
		backend:    backend,
		state:      state,
		sessions:   sessions,
		registry:   registry,
		dispatcher: NewDispatcher(registry, env, nil),
		key:        session.APIKey,
	}
}

func (h *harness) dispatch(t *testing.T, line string) string {
	t.Helper()

	h.out.Reset()
	require.NoError(t, h.dispatcher.Dispatch(context.Background(), line))
	return h.out.String()
}
