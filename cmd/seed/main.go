package main

import (
	"log"
	"os"

	"readme-be/internal/model"
	"readme-be/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
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

	log.Println("Seeding Catalog...")

	// Sample books; new books go through the tagging queue before they get traits
	books := []model.Book{
		{Title: "The Brave Little Fox", Author: "Maya Chen", Description: "A young fox learns courage while exploring the forest beyond her den.", PdfUrl: "https://storage.example.com/books/brave-little-fox.pdf", IsVisible: true, NeedsTagging: true},
		{Title: "Counting Stars with Oma", Author: "Lukas Weber", Description: "A grandmother teaches her grandson about numbers and the night sky.", PdfUrl: "https://storage.example.com/books/counting-stars.pdf", IsVisible: true, NeedsTagging: true},
		{Title: "The Paintbrush Parade", Author: "Sofia Reyes", Description: "Every brush in the art room comes alive after school and paints a mural together.", PdfUrl: "https://storage.example.com/books/paintbrush-parade.pdf", IsVisible: true, NeedsTagging: true},
		{Title: "Tomo and the Tide Pool", Author: "Ken Nakamura", Description: "A curious boy discovers the tiny creatures living in a tide pool.", PdfUrl: "https://storage.example.com/books/tomo-tide-pool.pdf", IsVisible: true, NeedsTagging: true},
		{Title: "The Sharing Stone", Author: "Amara Osei", Description: "A village learns that a magic stone only works when everyone shares.", PdfUrl: "https://storage.example.com/books/sharing-stone.pdf", IsVisible: false, NeedsTagging: true},
	}

	for i := range books {
		b := &books[i]
		var existing model.Book
		if err := db.Where("title = ?", b.Title).First(&existing).Error; err == nil {
			log.Printf("Book '%s' already exists, skipping...", b.Title)
			books[i] = existing
			continue
		}
		if err := db.Create(b).Error; err != nil {
			log.Printf("Error creating book '%s': %v", b.Title, err)
		} else {
			log.Printf("Created book: %s (%s)", b.Title, b.Id)
		}
	}

	log.Println("Seeding Users...")

	users := []model.User{
		{Username: "demo_reader", Email: "demo.reader@example.com"},
		{Username: "bookworm_finn", Email: "finn@example.com"},
	}

	for i := range users {
		u := &users[i]
		var existing model.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			log.Printf("User '%s' already exists, skipping...", u.Email)
			users[i] = existing
			continue
		}
		if err := db.Create(u).Error; err != nil {
			log.Printf("Error creating user '%s': %v", u.Email, err)
		} else {
			log.Printf("Created user: %s (%s)", u.Username, u.Id)
		}
	}

	log.Println("Seeding Reading Signals...")

	demo := users[0]
	fox, stars := books[0], books[1]

	signals := []interface{}{
		&model.BookInteraction{UserId: demo.Id, BookId: fox.Id, Type: "favorite"},
		&model.ReadingProgress{UserId: demo.Id, BookId: fox.Id, IsCompleted: true, CurrentPage: 24, TotalPages: 24},
		&model.ReadingProgress{UserId: demo.Id, BookId: stars.Id, IsCompleted: false, CurrentPage: 18, TotalPages: 20},
		&model.ReadingSession{UserId: demo.Id, BookId: fox.Id, SessionDurationSeconds: 2100},
		&model.ReadingSession{UserId: demo.Id, BookId: fox.Id, SessionDurationSeconds: 1950},
		&model.QuizAttempt{UserId: demo.Id, BookId: fox.Id, Score: 5, TotalQuestions: 5},
		&model.QuizAnalytics{UserId: demo.Id, DominantTraits: datatypes.NewJSONSlice([]string{"curious", "brave"})},
	}

	for _, s := range signals {
		if err := db.Create(s).Error; err != nil {
			log.Printf("Error creating signal record: %v", err)
		}
	}

	log.Println("Seeding completed!")
}
