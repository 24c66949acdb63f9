package unitofwork

import (
	"context"

	"juntaplay-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ServiceRepository() contract.ServiceRepository
	GroupRepository() contract.GroupRepository
	MembershipRepository() contract.MembershipRepository
	CancellationRepository() contract.CancellationRepository
	OrderRepository() contract.OrderRepository
	WalletRepository() contract.WalletRepository
	ComplaintRepository() contract.ComplaintRepository
}
