package repository

import "context"

// RepositoryFactory creates repository instances that are bound to one
// transaction.
type RepositoryFactory interface {
	DiaryRepo() DiaryRepository
	SummaryRepo() SummaryRepository
	ProductRepo() ProductRepository
	CalculatorRepo() CalculatorRepository
}

// TransactionManager runs application logic within a single database
// transaction.
type TransactionManager interface {
	// Execute begins a transaction, invokes fn with a factory bound to it, and
	// commits on success or rolls back on error.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
