package decompose

import "context"

// mockCompleter implements Completer for tests.
type mockCompleter struct {
	answer     string
	err        error
	lastPrompt string
	calls      int
}

func (m *mockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.answer, nil
}
