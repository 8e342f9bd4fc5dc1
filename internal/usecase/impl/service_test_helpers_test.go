package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"caltrack/config"
	"caltrack/internal/domain/repository"
	mockRepo "caltrack/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Recommendation: &config.RecommendationConfig{
			DailyRate:      2800,
			ForbiddenLimit: 4,
		},
	}
}

// onExecute arranges the txManager mock to run the transactional callback
// against a factory prepared by setup, propagating the callback's error like
// the real transaction manager does.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
