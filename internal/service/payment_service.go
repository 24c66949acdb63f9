package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/events"
	"juntaplay-be/pkg/gateway"
	pktNats "juntaplay-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// OrderWatchTopic is the in-process queue feeding the order status watcher.
const OrderWatchTopic = "order.watch"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

type IPaymentService interface {
	// CreateCheckout opens an order against the gateway. For card payments it
	// returns a hosted checkout handle, for pix a QR charge.
	CreateCheckout(ctx context.Context, userId uuid.UUID, purpose entity.OrderPurpose, groupId *uuid.UUID, amountCents int64, method entity.PaymentMethod) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error
	GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error)
	// Settle converges an order onto a terminal status and applies its
	// purpose effects. Safe to call repeatedly, terminal orders are left alone.
	Settle(ctx context.Context, orderId uuid.UUID, status gateway.ChargeStatus) error
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	gateway        gateway.Gateway
	eventPublisher *pktNats.Publisher
	watchQueue     *gochannel.GoChannel
	groupCache     *cache.GroupCache
	logger         logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gw gateway.Gateway,
	eventPublisher *pktNats.Publisher,
	watchQueue *gochannel.GoChannel,
	groupCache *cache.GroupCache,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		gateway:        gw,
		eventPublisher: eventPublisher,
		watchQueue:     watchQueue,
		groupCache:     groupCache,
		logger:         log,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, userId uuid.UUID, purpose entity.OrderPurpose, groupId *uuid.UUID, amountCents int64, method entity.PaymentMethod) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if method != entity.PaymentMethodCard && method != entity.PaymentMethodPix {
		return nil, errors.New("unsupported payment method")
	}

	order := &entity.Order{
		Id:          uuid.New(),
		UserId:      userId,
		GroupId:     groupId,
		Method:      method,
		Purpose:     purpose,
		AmountCents: amountCents,
		Status:      entity.OrderStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// The pending row goes in before the gateway is charged, so every gateway
	// transaction has a local order to reconcile against.
	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	description := "JuntaPlay - vaga em grupo"
	if purpose == entity.OrderPurposeWalletTopup {
		description = "JuntaPlay - recarga de carteira"
	}

	gwOrder := gateway.Order{
		OrderID:       order.Id.String(),
		AmountCents:   amountCents,
		Description:   description,
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
	}

	resp := &dto.CheckoutResponse{
		OrderId:     order.Id,
		Method:      string(method),
		AmountCents: amountCents,
	}

	switch method {
	case entity.PaymentMethodCard:
		checkout, err := s.gateway.CreateCardCheckout(gwOrder)
		if err != nil {
			s.failOrder(ctx, uow, order, err)
			return nil, err
		}
		order.SnapToken = &checkout.Token
		resp.SnapToken = checkout.Token
		resp.RedirectURL = checkout.RedirectURL

	case entity.PaymentMethodPix:
		charge, err := s.gateway.CreatePixCharge(gwOrder)
		if err != nil {
			s.failOrder(ctx, uow, order, err)
			return nil, err
		}
		order.GatewayTransactionId = &charge.TransactionID
		order.QRCodeURL = &charge.QRCodeURL
		resp.PixCopyPaste = charge.QRCodeURL
		resp.PixQrURL = charge.QRCodeURL
		if charge.ExpiresAt != "" {
			if exp, err := time.Parse("2006-01-02 15:04:05", charge.ExpiresAt); err == nil {
				resp.ExpiresAt = &exp
			}
		}
	}

	order.UpdatedAt = time.Now()
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	s.enqueueWatch(order.Id)
	return resp, nil
}

// failOrder closes a pending order whose gateway charge never went through.
func (s *paymentService) failOrder(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, cause error) {
	order.Status = entity.OrderStatusFailed
	order.UpdatedAt = time.Now()
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		s.logger.Error("PaymentService", "Failed to mark charge-less order as failed", map[string]interface{}{"order_id": order.Id, "cause": cause.Error(), "error": err.Error()})
		return
	}
	s.logger.Warn("PaymentService", "Gateway charge failed, order closed", map[string]interface{}{"order_id": order.Id, "error": cause.Error()})
}

// enqueueWatch hands the order to the background status watcher. The webhook
// usually wins the race; the watcher covers lost notifications.
func (s *paymentService) enqueueWatch(orderId uuid.UUID) {
	if s.watchQueue == nil {
		return
	}
	payload, _ := json.Marshal(dto.WatchOrderMessage{OrderId: orderId})
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.watchQueue.Publish(OrderWatchTopic, msg); err != nil {
		s.logger.Warn("PaymentService", "Failed to enqueue order watch", map[string]interface{}{"order_id": orderId, "error": err.Error()})
	}
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.PaymentNotificationRequest) error {
	if !s.gateway.ValidSignature(req.OrderId, req.StatusCode, req.GrossAmount, req.SignatureKey) {
		s.logger.Warn("PaymentService", "Webhook with bad signature rejected", map[string]interface{}{"order_id": req.OrderId})
		return ErrInvalidSignature
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return ErrOrderNotFound
	}

	status := gateway.MapTransactionStatus(req.TransactionStatus)
	if status == gateway.StatusUnknown || status == gateway.StatusPending {
		// Nothing actionable yet, the watcher or a later webhook resolves it.
		return nil
	}

	return s.Settle(ctx, orderId, status)
}

func (s *paymentService) GetOrder(ctx context.Context, userId, orderId uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: orderId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *paymentService) Settle(ctx context.Context, orderId uuid.UUID, status gateway.ChargeStatus) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Terminal() {
		// Webhook retries and the watcher both land here, first one wins.
		return nil
	}

	now := time.Now()
	order.UpdatedAt = now

	switch status {
	case gateway.StatusPaid:
		order.Status = entity.OrderStatusPaid
		order.PaidAt = &now
		if err := s.applyPaidEffects(ctx, uow, order, now); err != nil {
			return err
		}
	case gateway.StatusFailed:
		order.Status = entity.OrderStatusFailed
	case gateway.StatusExpired:
		order.Status = entity.OrderStatusExpired
	default:
		return nil
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if order.Status == entity.OrderStatusPaid {
		if err := s.groupCache.Invalidate(ctx); err != nil {
			s.logger.Warn("PaymentService", "Cache invalidation failed", map[string]interface{}{"error": err.Error()})
		}
	}
	s.publishOutcome(ctx, order)
	return nil
}

// applyPaidEffects runs inside the settle transaction.
func (s *paymentService) applyPaidEffects(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, now time.Time) error {
	switch order.Purpose {
	case entity.OrderPurposeJoinGroup:
		if order.GroupId == nil {
			return errors.New("join order without group")
		}
		group, err := uow.GroupRepository().FindOneForUpdate(ctx, specification.ByID{ID: *order.GroupId})
		if err != nil {
			return err
		}
		if group == nil {
			return ErrGroupNotFound
		}
		if !group.HasOpenSlot() {
			// Slot was taken while the payment settled. Refund to the wallet
			// instead of failing the settlement.
			s.logger.Warn("PaymentService", "Group filled during payment, refunding to wallet", map[string]interface{}{"order_id": order.Id, "group_id": group.Id})
			return creditWallet(ctx, uow, order.UserId, order.AmountCents, "Reembolso: grupo lotado", &order.Id, now)
		}

		membership := &entity.Membership{
			Id:        uuid.New(),
			UserId:    order.UserId,
			GroupId:   group.Id,
			JoinedAt:  now,
			Status:    entity.MembershipStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.MembershipRepository().Create(ctx, membership); err != nil {
			return err
		}

		group.CurrentMembers++
		if !group.HasOpenSlot() {
			group.Status = entity.GroupStatusQueue
		}
		group.UpdatedAt = now
		return uow.GroupRepository().Update(ctx, group)

	case entity.OrderPurposeWalletTopup:
		return creditWallet(ctx, uow, order.UserId, order.AmountCents, "Recarga de carteira", &order.Id, now)
	}
	return nil
}

func (s *paymentService) publishOutcome(ctx context.Context, order *entity.Order) {
	if s.eventPublisher == nil {
		return
	}

	eventType := events.TypePaymentFailed
	if order.Status == entity.OrderStatusPaid {
		eventType = events.TypePaymentConfirmed
	}

	data := map[string]interface{}{
		"user_id":      order.UserId.String(),
		"order_id":     order.Id.String(),
		"amount_cents": order.AmountCents,
		"purpose":      string(order.Purpose),
		"entity_type":  "order",
		"entity_id":    order.Id.String(),
	}
	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("PaymentService", "Failed to publish payment outcome", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
	}

	if order.Status == entity.OrderStatusPaid && order.Purpose == entity.OrderPurposeJoinGroup && order.GroupId != nil {
		joined := events.BaseEvent{
			Type: events.TypeMemberJoined,
			Data: map[string]interface{}{
				"user_id":     order.UserId.String(),
				"group_id":    order.GroupId.String(),
				"entity_type": "group",
				"entity_id":   order.GroupId.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, joined); err != nil {
			s.logger.Warn("PaymentService", "Failed to publish member joined", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
		}
	}
}

// creditWallet adds funds inside the caller's transaction, creating the
// wallet lazily on first credit.
func creditWallet(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, amountCents int64, description string, referenceId *uuid.UUID, now time.Time) error {
	wallet, err := uow.WalletRepository().FindByUserForUpdate(ctx, userId)
	if err != nil {
		return err
	}
	if wallet == nil {
		wallet = &entity.Wallet{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.WalletRepository().Create(ctx, wallet); err != nil {
			return err
		}
	}

	if err := uow.WalletRepository().UpdateBalance(ctx, wallet.Id, wallet.BalanceCents+amountCents); err != nil {
		return err
	}

	tx := &entity.WalletTransaction{
		Id:          uuid.New(),
		WalletId:    wallet.Id,
		Kind:        entity.WalletEntryCredit,
		AmountCents: amountCents,
		Description: description,
		ReferenceId: referenceId,
		CreatedAt:   now,
	}
	return uow.WalletRepository().CreateTransaction(ctx, tx)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Id:          o.Id,
		Purpose:     string(o.Purpose),
		Method:      string(o.Method),
		Status:      string(o.Status),
		AmountCents: o.AmountCents,
		GroupId:     o.GroupId,
		CreatedAt:   o.CreatedAt,
		PaidAt:      o.PaidAt,
	}
}
