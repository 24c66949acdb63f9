package main

import (
	"log"
	"os"

	"juntaplay-be/internal/model"
	"juntaplay-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding service catalog...")

	services := []model.StreamingService{
		{Name: "Netflix", Slug: "netflix", Category: "streaming", MaxSlots: 4, SuggestedPriceCents: 1490, IsActive: true, SortOrder: 1},
		{Name: "Disney+", Slug: "disney-plus", Category: "streaming", MaxSlots: 4, SuggestedPriceCents: 1190, IsActive: true, SortOrder: 2},
		{Name: "HBO Max", Slug: "hbo-max", Category: "streaming", MaxSlots: 5, SuggestedPriceCents: 1090, IsActive: true, SortOrder: 3},
		{Name: "Prime Video", Slug: "prime-video", Category: "streaming", MaxSlots: 3, SuggestedPriceCents: 990, IsActive: true, SortOrder: 4},
		{Name: "Spotify", Slug: "spotify", Category: "music", MaxSlots: 6, SuggestedPriceCents: 1190, IsActive: true, SortOrder: 5},
		{Name: "YouTube Premium", Slug: "youtube-premium", Category: "music", MaxSlots: 5, SuggestedPriceCents: 1290, IsActive: true, SortOrder: 6},
		{Name: "Crunchyroll", Slug: "crunchyroll", Category: "streaming", MaxSlots: 4, SuggestedPriceCents: 990, IsActive: true, SortOrder: 7},
		{Name: "Globoplay", Slug: "globoplay", Category: "streaming", MaxSlots: 4, SuggestedPriceCents: 1090, IsActive: true, SortOrder: 8},
	}

	for _, s := range services {
		var existing model.StreamingService
		if err := db.Where("slug = ?", s.Slug).First(&existing).Error; err == nil {
			log.Printf("Service '%s' already exists, skipping...", s.Slug)
			continue
		}

		if err := db.Create(&s).Error; err != nil {
			log.Printf("Error: failed to seed service '%s': %v", s.Slug, err)
			continue
		}
		log.Printf("Seeded service '%s'", s.Slug)
	}

	SeedNotificationTypes(db)

	log.Println("Seeding done.")
}
