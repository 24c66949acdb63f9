package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"juntaplay-be/internal/dto"
	"juntaplay-be/internal/entity"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/repository/specification"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/internal/service"
	"juntaplay-be/pkg/billing"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCancellationFlow runs the full request/confirm transition against a
// real database: refund math, membership state, group counter, user
// restriction, wallet credit and the duplicate-confirm guard.
func TestCancellationFlow(t *testing.T) {
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

	// Seed: admin, member, service, group, active membership (3 days old).
	suffix := uuid.New().String()[:8]
	admin := seedUser(t, ctx, uow, "admin-"+suffix)
	member := seedUser(t, ctx, uow, "member-"+suffix)

	svc := &entity.StreamingService{
		Id:       uuid.New(),
		Name:     "Test Service " + suffix,
		Slug:     "test-service-" + suffix,
		MaxSlots: 4,
		IsActive: true,
	}
	require.NoError(t, uow.ServiceRepository().Create(ctx, svc))

	group := &entity.Group{
		Id:                uuid.New(),
		AdminId:           admin.Id,
		ServiceId:         svc.Id,
		Name:              "Test Group " + suffix,
		PricePerSlotCents: 3000,
		MaxMembers:        4,
		CurrentMembers:    2,
		Status:            entity.GroupStatusActiveWithSlots,
		Approved:          true,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, uow.GroupRepository().Create(ctx, group))

	joinedAt := time.Now().Add(-3 * 24 * time.Hour)
	membership := &entity.Membership{
		Id:        uuid.New(),
		UserId:    member.Id,
		GroupId:   group.Id,
		JoinedAt:  joinedAt,
		Status:    entity.MembershipStatusActive,
		CreatedAt: joinedAt,
		UpdatedAt: joinedAt,
	}
	require.NoError(t, uow.MembershipRepository().Create(ctx, membership))

	complaint := &entity.Complaint{
		Id:          uuid.New(),
		UserId:      member.Id,
		GroupId:     group.Id,
		Subject:     "Admin sumiu",
		Description: "Sem resposta ha uma semana",
		Status:      entity.ComplaintStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, uow.ComplaintRepository().Create(ctx, complaint))

	testLogger := logger.NewIsolatedLogger("logs/test.log")
	svcUnderTest := service.NewCancellationService(uowFactory, nil, nil, cache.NewGroupCache(nil), testLogger)

	t.Run("Request returns preview and marks membership", func(t *testing.T) {
		preview, err := svcUnderTest.RequestCancellation(ctx, member.Id, membership.Id, &dto.RequestCancellationRequest{Reason: "money_tight"})
		require.NoError(t, err)

		// 3 days in, 3000 cents: refund 2700, fee 135, final 2565, 30 day restriction.
		assert.Equal(t, 3, preview.DaysMember)
		assert.Equal(t, int64(2700), preview.RefundCents)
		assert.Equal(t, int64(135), preview.FeeCents)
		assert.Equal(t, int64(2565), preview.FinalRefundCents)
		assert.Equal(t, billing.RestrictionDaysEarly, preview.RestrictionDays)

		m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: membership.Id})
		require.NoError(t, err)
		assert.Equal(t, entity.MembershipStatusCancellationRequested, m.Status)
	})

	t.Run("Confirm applies all effects atomically", func(t *testing.T) {
		record, err := svcUnderTest.ConfirmCancellation(ctx, member.Id, membership.Id)
		require.NoError(t, err)
		assert.Equal(t, int64(2565), record.FinalRefundCents)

		m, err := uow.MembershipRepository().FindOne(ctx, specification.ByID{ID: membership.Id})
		require.NoError(t, err)
		assert.Equal(t, entity.MembershipStatusCancelled, m.Status)

		g, err := uow.GroupRepository().FindOne(ctx, specification.ByID{ID: group.Id})
		require.NoError(t, err)
		assert.Equal(t, 1, g.CurrentMembers)

		u, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: member.Id})
		require.NoError(t, err)
		require.NotNil(t, u.RestrictedUntil)
		assert.True(t, u.RestrictedUntil.After(time.Now().Add(29*24*time.Hour)))

		w, err := uow.WalletRepository().FindByUser(ctx, member.Id)
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.Equal(t, int64(2565), w.BalanceCents)

		c, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaint.Id})
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, entity.ComplaintStatusClosed, c.Status)
		assert.NotNil(t, c.ClosedAt)
	})

	t.Run("Second confirm is rejected", func(t *testing.T) {
		_, err := svcUnderTest.ConfirmCancellation(ctx, member.Id, membership.Id)
		assert.ErrorIs(t, err, service.ErrAlreadyCancelled)
	})

	t.Run("Confirm losing a double-click race maps to already cancelled", func(t *testing.T) {
		// A second member whose confirm "lost": the winning transaction
		// already inserted the cancellation record, but this goroutine read
		// the membership before it flipped to cancelled.
		racer := seedUser(t, ctx, uow, "racer-"+suffix)
		reason := entity.ReasonTooLong
		racedMembership := &entity.Membership{
			Id:            uuid.New(),
			UserId:        racer.Id,
			GroupId:       group.Id,
			JoinedAt:      joinedAt,
			Status:        entity.MembershipStatusCancellationRequested,
			PendingReason: &reason,
			CreatedAt:     joinedAt,
			UpdatedAt:     joinedAt,
		}
		require.NoError(t, uow.MembershipRepository().Create(ctx, racedMembership))

		winner := &entity.CancellationRecord{
			Id:               uuid.New(),
			MembershipId:     racedMembership.Id,
			UserId:           racer.Id,
			GroupId:          group.Id,
			Reason:           reason,
			RestrictionUntil: time.Now().Add(30 * 24 * time.Hour),
			CreatedAt:        time.Now(),
		}
		require.NoError(t, uow.CancellationRepository().Create(ctx, winner))

		_, err := svcUnderTest.ConfirmCancellation(ctx, racer.Id, racedMembership.Id)
		assert.ErrorIs(t, err, service.ErrAlreadyCancelled)
	})

	t.Run("Record is queryable by owner only", func(t *testing.T) {
		record, err := svcUnderTest.GetRecord(ctx, member.Id, membership.Id)
		require.NoError(t, err)
		assert.Equal(t, "money_tight", record.Reason)

		_, err = svcUnderTest.GetRecord(ctx, admin.Id, membership.Id)
		assert.ErrorIs(t, err, service.ErrNotMembershipOwner)
	})
}

func seedUser(t *testing.T, ctx context.Context, uow unitofwork.UnitOfWork, name string) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:            uuid.New(),
		Email:         name + "@example.com",
		FullName:      "Integration " + name,
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}
