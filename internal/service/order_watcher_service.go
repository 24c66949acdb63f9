package service

import (
	"context"
	"encoding/json"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/pkg/gateway"
	"juntaplay-be/pkg/poll"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IOrderWatcherService interface {
	Consume(ctx context.Context) error
}

// orderWatcherService polls the gateway for orders whose webhook never
// arrived. Each watched order runs under the bounded polling policy and
// settles through the payment service when a terminal status shows up.
type orderWatcherService struct {
	pubSub         *gochannel.GoChannel
	gateway        gateway.Gateway
	paymentService IPaymentService
	policy         poll.Policy
	logger         logger.ILogger
}

func NewOrderWatcherService(
	pubSub *gochannel.GoChannel,
	gw gateway.Gateway,
	paymentService IPaymentService,
	policy poll.Policy,
	log logger.ILogger,
) IOrderWatcherService {
	return &orderWatcherService{
		pubSub:         pubSub,
		gateway:        gw,
		paymentService: paymentService,
		policy:         policy,
		logger:         log,
	}
}

func (s *orderWatcherService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, OrderWatchTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *orderWatcherService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WatchOrderMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("OrderWatcher", "Failed to unmarshal watch message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed, retrying will never help
		return
	}

	go func() {
		err := s.policy.Run(ctx, func(ctx context.Context) (bool, error) {
			status, err := s.gateway.CheckStatus(payload.OrderId.String())
			if err != nil {
				// Gateway hiccups are retriable, back off and try again.
				return false, poll.Transient{Err: err}
			}

			switch status {
			case gateway.StatusPending, gateway.StatusUnknown:
				return false, nil
			default:
				return true, s.paymentService.Settle(ctx, payload.OrderId, status)
			}
		})

		if err != nil {
			s.logger.Warn("OrderWatcher", "Order watch ended without terminal status", map[string]interface{}{"order_id": payload.OrderId, "error": err.Error()})
		}
	}()

	msg.Ack()
}
