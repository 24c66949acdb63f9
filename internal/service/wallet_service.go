package service

import (
	"context"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWalletService interface {
	GetBalance(ctx context.Context, userId uuid.UUID) (*dto.WalletResponse, error)
	GetStatement(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.WalletTransactionResponse, error)
	TopUp(ctx context.Context, userId uuid.UUID, req *dto.TopUpRequest) (*dto.CheckoutResponse, error)
}

type walletService struct {
	uowFactory     unitofwork.RepositoryFactory
	paymentService IPaymentService
}

func NewWalletService(uowFactory unitofwork.RepositoryFactory, paymentService IPaymentService) IWalletService {
	return &walletService{
		uowFactory:     uowFactory,
		paymentService: paymentService,
	}
}

func (s *walletService) GetBalance(ctx context.Context, userId uuid.UUID) (*dto.WalletResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wallet, err := uow.WalletRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		// No wallet row yet means a zero balance, not an error.
		return &dto.WalletResponse{Id: uuid.Nil, BalanceCents: 0, UpdatedAt: time.Now()}, nil
	}

	return &dto.WalletResponse{
		Id:           wallet.Id,
		BalanceCents: wallet.BalanceCents,
		UpdatedAt:    wallet.UpdatedAt,
	}, nil
}

func (s *walletService) GetStatement(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.WalletTransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	wallet, err := uow.WalletRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return []dto.WalletTransactionResponse{}, nil
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := uow.WalletRepository().FindTransactions(ctx,
		specification.Filter("wallet_id", wallet.Id),
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.WalletTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, dto.WalletTransactionResponse{
			Id:          tx.Id,
			Kind:        string(tx.Kind),
			AmountCents: tx.AmountCents,
			Description: tx.Description,
			ReferenceId: tx.ReferenceId,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return resp, nil
}

func (s *walletService) TopUp(ctx context.Context, userId uuid.UUID, req *dto.TopUpRequest) (*dto.CheckoutResponse, error) {
	return s.paymentService.CreateCheckout(ctx,
		userId,
		entity.OrderPurposeWalletTopup,
		nil,
		req.AmountCents,
		entity.PaymentMethod(req.PaymentMethod),
	)
}
