package config

import (
	"log"
	"os"

	"campus-canteen-api/cart"
	"campus-canteen-api/models"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Carts holds the per-user cart store. Redis-backed when REDIS_ADDR is set,
// in-memory otherwise. Tests swap in a fresh MemoryStore.
var Carts cart.Store

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "canteen_super_secret_2024"))

// AdminCode gates registration of admin accounts
var AdminCode = getEnv("ADMIN_CODE", "mec-canteen-admin")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "canteen.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	SeedMenu(DB)

	log.Println("✅ Database connected and migrated successfully")
}

// InitCartStore picks the cart backend from the environment.
func InitCartStore() {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		Carts = cart.NewRedisStore(client)
		log.Println("✅ Cart store: redis at", addr)
		return
	}
	Carts = cart.NewMemoryStore()
	log.Println("✅ Cart store: in-memory (set REDIS_ADDR for durable carts)")
}
