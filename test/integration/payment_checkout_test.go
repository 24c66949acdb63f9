package integration

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/internal/service"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/database"
	"juntaplay-be/pkg/gateway"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway stands in for the payment provider so checkout persistence can
// be exercised without network calls.
type stubGateway struct {
	failCharge bool
}

func (g *stubGateway) CreateCardCheckout(order gateway.Order) (*gateway.CardCheckout, error) {
	if g.failCharge {
		return nil, errors.New("gateway checkout error: provider unavailable")
	}
	return &gateway.CardCheckout{Token: "stub-token", RedirectURL: "https://pay.example/" + order.OrderID}, nil
}

func (g *stubGateway) CreatePixCharge(order gateway.Order) (*gateway.PixCharge, error) {
	if g.failCharge {
		return nil, errors.New("gateway charge error: provider unavailable")
	}
	return &gateway.PixCharge{TransactionID: "stub-tx-" + order.OrderID, QRCodeURL: "https://qr.example/" + order.OrderID}, nil
}

func (g *stubGateway) CheckStatus(orderID string) (gateway.ChargeStatus, error) {
	return gateway.StatusPending, nil
}

func (g *stubGateway) ValidSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	return true
}

// TestCheckoutPersistence verifies that every checkout writes its order row
// before the provider is charged, so a charge failure still leaves a local
// record to reconcile against.
func TestCheckoutPersistence(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)
	testLogger := logger.NewIsolatedLogger("logs/test.log")

	suffix := uuid.New().String()[:8]

	t.Run("Failed charge closes the order as failed", func(t *testing.T) {
		payer := seedUser(t, ctx, uow, "payer-fail-"+suffix)
		svcUnderTest := service.NewPaymentService(uowFactory, &stubGateway{failCharge: true}, nil, nil, cache.NewGroupCache(nil), testLogger)

		_, err := svcUnderTest.CreateCheckout(ctx, payer.Id, entity.OrderPurposeWalletTopup, nil, 5000, entity.PaymentMethodPix)
		require.Error(t, err)

		order, err := uow.OrderRepository().FindOne(ctx, specification.UserOwnedBy{UserID: payer.Id})
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, entity.OrderStatusFailed, order.Status)
	})

	t.Run("Successful charge keeps the order pending with gateway handles", func(t *testing.T) {
		payer := seedUser(t, ctx, uow, "payer-ok-"+suffix)
		svcUnderTest := service.NewPaymentService(uowFactory, &stubGateway{}, nil, nil, cache.NewGroupCache(nil), testLogger)

		resp, err := svcUnderTest.CreateCheckout(ctx, payer.Id, entity.OrderPurposeWalletTopup, nil, 5000, entity.PaymentMethodPix)
		require.NoError(t, err)
		require.NotEmpty(t, resp.PixQrURL)

		order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: resp.OrderId})
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		require.NotNil(t, order.GatewayTransactionId)
		assert.Equal(t, "stub-tx-"+resp.OrderId.String(), *order.GatewayTransactionId)
	})

	t.Run("Unknown method is rejected before any order exists", func(t *testing.T) {
		payer := seedUser(t, ctx, uow, "payer-bad-"+suffix)
		svcUnderTest := service.NewPaymentService(uowFactory, &stubGateway{}, nil, nil, cache.NewGroupCache(nil), testLogger)

		_, err := svcUnderTest.CreateCheckout(ctx, payer.Id, entity.OrderPurposeWalletTopup, nil, 5000, entity.PaymentMethod("boleto"))
		require.Error(t, err)

		order, err := uow.OrderRepository().FindOne(ctx, specification.UserOwnedBy{UserID: payer.Id})
		require.NoError(t, err)
		assert.Nil(t, order)
	})
}
