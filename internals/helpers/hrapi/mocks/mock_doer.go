package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDoer adalah mock hrapi.Doer untuk unit test service.
type MockDoer struct {
	mock.Mock
}

func (m *MockDoer) DoJSON(ctx context.Context, method, path, bearer string, body, out any) error {
	args := m.Called(ctx, method, path, bearer, body, out)
	return args.Error(0)
}
