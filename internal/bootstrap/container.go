package bootstrap

import (
	"context"
	"log"

	"juntaplay-be/internal/config"
	"juntaplay-be/internal/controller"
	"juntaplay-be/internal/handler"
	"juntaplay-be/internal/pkg/logger"
	"juntaplay-be/internal/pkg/mailer"
	"juntaplay-be/internal/repository/implementation"
	"juntaplay-be/internal/repository/unitofwork"
	"juntaplay-be/internal/service"
	"juntaplay-be/internal/websocket"
	"juntaplay-be/pkg/cache"
	"juntaplay-be/pkg/gateway"
	pktNats "juntaplay-be/pkg/nats"
	"juntaplay-be/pkg/poll"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	GroupController        controller.IGroupController
	MembershipController   controller.IMembershipController
	CancellationController controller.ICancellationController
	PaymentController      controller.IPaymentController
	WalletController       controller.IWalletController
	ComplaintController    controller.IComplaintController

	// Background services (exposed for main.go to run)
	OrderWatcherService service.IOrderWatcherService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	groupCache := cache.NewGroupCache(rdb)
	otpStore := cache.NewOTPStore(rdb)

	gatewayClient := gateway.New(gateway.Config{
		ServerKey:  cfg.Gateway.ServerKey,
		Production: cfg.Gateway.Production,
		FinishURL:  cfg.Gateway.FinishURL,
	})

	// In-process queue feeding the order status watcher.
	watermillLogger := watermill.NewStdLogger(false, false)
	watchQueue := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	authService := service.NewAuthService(uowFactory, emailService, otpStore, cfg.JWT.Secret)
	groupService := service.NewGroupService(uowFactory, groupCache, natsPub, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, gatewayClient, natsPub, watchQueue, groupCache, sysLogger)
	membershipService := service.NewMembershipService(uowFactory, paymentService)
	cancellationService := service.NewCancellationService(uowFactory, natsPub, emailService, groupCache, sysLogger)
	walletService := service.NewWalletService(uowFactory, paymentService)
	complaintService := service.NewComplaintService(uowFactory, natsPub, sysLogger)

	orderWatcher := service.NewOrderWatcherService(watchQueue, gatewayClient, paymentService, poll.DefaultPolicy(), sysLogger)

	// 4. Notification system
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go notifService.Start()
	}
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		GroupController:        controller.NewGroupController(groupService),
		MembershipController:   controller.NewMembershipController(membershipService),
		CancellationController: controller.NewCancellationController(cancellationService),
		PaymentController:      controller.NewPaymentController(paymentService, sysLogger),
		WalletController:       controller.NewWalletController(walletService),
		ComplaintController:    controller.NewComplaintController(complaintService),

		OrderWatcherService: orderWatcher,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
