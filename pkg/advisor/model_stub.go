package advisor

import "context"

// StubModel is an in-memory Model for tests.
type StubModel struct {
	Response   string
	Err        error
	Calls      int
	LastPrompt string
}

func NewStubModel(response string) *StubModel {
	return &StubModel{Response: response}
}

func (m *StubModel) Generate(_ context.Context, prompt string) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
