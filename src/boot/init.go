package boot

import (
	"context"
	"log"
	"time"

	"travelbook/src/booking"
	"travelbook/src/common"
	"travelbook/src/config"
	"travelbook/src/db"
	"travelbook/src/inventory"
	"travelbook/src/lib"
	"travelbook/src/lib/mailer"
	"travelbook/src/models"
	"travelbook/src/otp"
	"travelbook/src/tickets"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Flight{},
		&models.Bus{},
		&models.Coupon{},
		&models.Banner{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitInventory picks the seat counter backend from INVENTORY_BACKEND.
func InitInventory(gdb *gorm.DB) inventory.Store {
	switch config.InventoryBackend() {
	case inventory.BACKEND_FIRESTORE:
		client, err := lib.GetFirestore()
		if err != nil {
			log.Fatalf("error initializing firestore inventory: %s", err.Error())
		}
		log.Println("[Inventory] Using firestore backend")
		return inventory.NewFirestoreStore(client)
	case inventory.BACKEND_SQL:
	default:
		log.Printf("[Inventory] Unknown backend %q, falling back to sql\n", config.InventoryBackend())
	}
	log.Println("[Inventory] Using sql backend")
	return inventory.NewSQLStore(gdb)
}

// Services holds the components the HTTP handlers depend on.
type Services struct {
	DB        *gorm.DB
	Inventory inventory.Store
	Catalog   *common.Catalog
	Bookings  *booking.Service
	Mailer    mailer.Mailer
	OTP       *otp.Store
	Tickets   *tickets.Generator
	Sharer    *tickets.Sharer
	Users     UserDirectory
}

func NewServices(gdb *gorm.DB, store inventory.Store, m mailer.Mailer, otpStore *otp.Store, gen *tickets.Generator, sharer *tickets.Sharer, users UserDirectory) *Services {
	catalog := common.NewCatalog(gdb, store)
	return &Services{
		DB:        gdb,
		Inventory: store,
		Catalog:   catalog,
		Bookings:  booking.NewService(common.NewBookings(gdb), catalog, store, m),
		Mailer:    m,
		OTP:       otpStore,
		Tickets:   gen,
		Sharer:    sharer,
		Users:     users,
	}
}

// Init wires production dependencies from the environment.
func Init() *Services {
	gdb := InitDb()
	store := InitInventory(gdb)
	rdb := lib.GetRedisClient()
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := lib.PingRedis(pingCtx); err != nil {
		log.Printf("[Boot] Redis unavailable, OTP and ticket links will fail: %s\n", err.Error())
	}
	cancel()
	gen := tickets.NewGenerator(config.QRCSecret())
	m := mailer.New(lib.SendMail).WithTicketAttachment(gen.Attachment)
	return NewServices(
		gdb,
		store,
		m,
		otp.NewStore(rdb, config.OTP_TTL, config.OTP_MAX_ATTEMPTS),
		gen,
		tickets.NewSharer(rdb, config.TicketsBucket(), config.TICKET_LINK_TTL, lib.S3PutAndPresign),
		NewFirebaseUsers(),
	)
}
