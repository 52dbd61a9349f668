package bootstrap

import (
	"context"
	"log"

	"hostel-mgmt-be/internal/config"
	"hostel-mgmt-be/internal/controller"
	"hostel-mgmt-be/internal/handler"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/pkg/mailer"
	"hostel-mgmt-be/internal/repository/memory"
	"hostel-mgmt-be/internal/repository/unitofwork"
	"hostel-mgmt-be/internal/service"
	"hostel-mgmt-be/internal/websocket"

	pktNats "hostel-mgmt-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	StudentController       controller.IStudentController
	MatchingController      controller.IMatchingController
	RoommateGroupController controller.IRoommateGroupController
	RoomController          controller.IRoomController
	RoomChangeController    controller.IRoomChangeController
	FeeController           controller.IFeeController
	AdminController         controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory match suggestion cache
	suggestionCache := memory.NewSuggestionCache()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Payment.FeeTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Payment.FeeTopicName,
		uowFactory,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	studentService := service.NewStudentService(uowFactory)
	roomService := service.NewRoomService(uowFactory)
	matchingService := service.NewMatchingService(uowFactory, suggestionCache, sysLogger)

	groupService := service.NewRoommateGroupService(
		uowFactory,
		publisherService,
		natsPub,
		suggestionCache,
		sysLogger,
	)
	roomChangeService := service.NewRoomChangeService(uowFactory, natsPub, sysLogger)
	feeService := service.NewFeeService(
		uowFactory,
		groupService,
		roomChangeService,
		natsPub,
		emailService,
		sysLogger,
	)

	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		NotificationHandler:     notifHandler,
		WebSocketHub:            wsHub,
		AuthController:          controller.NewAuthController(authService),
		StudentController:       controller.NewStudentController(studentService, matchingService),
		MatchingController:      controller.NewMatchingController(matchingService, studentService),
		RoommateGroupController: controller.NewRoommateGroupController(groupService, studentService),
		RoomController:          controller.NewRoomController(roomService),
		RoomChangeController:    controller.NewRoomChangeController(roomChangeService, studentService),
		FeeController:           controller.NewFeeController(feeService, studentService),
		AdminController:         controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
