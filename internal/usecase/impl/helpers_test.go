package impl

import (
	"context"
	"io"
	"log/slog"

	"gemstore/internal/domain/repository"
	mockRepo "gemstore/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runTx wires a MockTransactionManager so the transactional closure executes
// against the given factory and its error propagates to the caller.
func runTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
