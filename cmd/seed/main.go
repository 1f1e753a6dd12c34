package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayspots/internal/config"
	"stayspots/internal/db"
	"stayspots/internal/model"
	"stayspots/internal/repository"
)

type seedUser struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type seedSpot struct {
	OwnerUsername string
	Address       string
	City          string
	State         string
	Country       string
	Lat           float64
	Lng           float64
	Name          string
	Description   string
	Price         string
	PreviewImage  string
}

var demoUsers = []seedUser{
	{Email: "demo@user.io", Username: "Demo-lition", FirstName: "Demo", LastName: "User", Password: "password"},
	{Email: "user1@user.io", Username: "FakeUser1", FirstName: "Fake", LastName: "UserOne", Password: "password2"},
	{Email: "user2@user.io", Username: "FakeUser2", FirstName: "Fake", LastName: "UserTwo", Password: "password3"},
}

var demoSpots = []seedSpot{
	{
		OwnerUsername: "Demo-lition",
		Address:       "123 Disney Lane",
		City:          "San Francisco",
		State:         "California",
		Country:       "United States of America",
		Lat:           37.7645358,
		Lng:           -122.4730327,
		Name:          "App Academy",
		Description:   "Place where web developers are created",
		Price:         "123.00",
		PreviewImage:  "https://images.stayspots.dev/spots/app-academy.jpg",
	},
	{
		OwnerUsername: "FakeUser1",
		Address:       "456 Ocean Drive",
		City:          "Miami",
		State:         "Florida",
		Country:       "United States of America",
		Lat:           25.7616798,
		Lng:           -80.1917902,
		Name:          "Beachside Bungalow",
		Description:   "Two-bedroom bungalow a short walk from the beach",
		Price:         "289.50",
		PreviewImage:  "https://images.stayspots.dev/spots/beachside-bungalow.jpg",
	},
	{
		OwnerUsername: "FakeUser2",
		Address:       "789 Alpine Way",
		City:          "Denver",
		State:         "Colorado",
		Country:       "United States of America",
		Lat:           39.7392358,
		Lng:           -104.990251,
		Name:          "Mountain Cabin",
		Description:   "Quiet cabin with a view of the front range",
		Price:         "175.00",
		PreviewImage:  "https://images.stayspots.dev/spots/mountain-cabin.jpg",
	},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Spot{},
		&model.SpotImage{},
		&model.Review{},
		&model.ReviewImage{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	spotRepo := repository.NewSpotRepository(gormDB)
	imageRepo := repository.NewSpotImageRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	log.Println("Seeding users...")
	usersByName, created, err := seedUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("  - New users created: %d", created)

	log.Println("Seeding spots...")
	spots, created, err := seedSpots(ctx, spotRepo, imageRepo, usersByName)
	if err != nil {
		log.Fatalf("Failed to seed spots: %v", err)
	}
	log.Printf("  - New spots created: %d", created)

	if created > 0 {
		log.Println("Seeding reviews and bookings...")
		if err := seedActivity(ctx, reviewRepo, bookingRepo, usersByName, spots); err != nil {
			log.Fatalf("Failed to seed reviews and bookings: %v", err)
		}
	}

	log.Println("Seed completed successfully!")
}

// seedUsers creates the demo users, skipping any that already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository) (map[string]*model.User, int, error) {
	users := make(map[string]*model.User, len(demoUsers))
	created := 0
	for _, item := range demoUsers {
		existing, err := repo.FindByUsername(ctx, item.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, created, err
		}
		if existing != nil {
			users[item.Username] = existing
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, created, err
		}
		user := &model.User{
			Email:          item.Email,
			Username:       item.Username,
			FirstName:      item.FirstName,
			LastName:       item.LastName,
			HashedPassword: string(hashed),
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, created, err
		}
		users[item.Username] = user
		created++
	}
	return users, created, nil
}

// seedSpots creates the demo spots with a preview image each, skipping spots
// whose owner already has listings.
func seedSpots(
	ctx context.Context,
	spotRepo repository.SpotRepository,
	imageRepo repository.SpotImageRepository,
	users map[string]*model.User,
) ([]*model.Spot, int, error) {
	spots := make([]*model.Spot, 0, len(demoSpots))
	created := 0
	for _, item := range demoSpots {
		owner, ok := users[item.OwnerUsername]
		if !ok {
			continue
		}

		existing, err := spotRepo.ListByOwner(ctx, owner.ID)
		if err != nil {
			return nil, created, err
		}
		if len(existing) > 0 {
			for i := range existing {
				spots = append(spots, &existing[i])
			}
			continue
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, created, err
		}
		spot := &model.Spot{
			OwnerID:     owner.ID,
			Address:     item.Address,
			City:        item.City,
			State:       item.State,
			Country:     item.Country,
			Lat:         item.Lat,
			Lng:         item.Lng,
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
		}
		if err := spotRepo.Create(ctx, spot); err != nil {
			return nil, created, err
		}
		image := &model.SpotImage{SpotID: spot.ID, URL: item.PreviewImage, Preview: true}
		if err := imageRepo.Create(ctx, image); err != nil {
			return nil, created, err
		}
		spots = append(spots, spot)
		created++
	}
	return spots, created, nil
}

// seedActivity adds a review and an upcoming booking to the first spot so the
// aggregated listing fields have data to show.
func seedActivity(
	ctx context.Context,
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	users map[string]*model.User,
	spots []*model.Spot,
) error {
	if len(spots) == 0 {
		return nil
	}
	spot := spots[0]
	reviewer, ok := users["FakeUser1"]
	if !ok || reviewer.ID == spot.OwnerID {
		return nil
	}

	review := &model.Review{
		SpotID: spot.ID,
		UserID: reviewer.ID,
		Review: "This was an awesome spot!",
		Stars:  5,
	}
	if err := reviewRepo.Create(ctx, review); err != nil {
		return err
	}

	start := model.Today().AddDays(14)
	end := start.AddDays(3)
	booking := &model.Booking{
		SpotID:    spot.ID,
		UserID:    reviewer.ID,
		StartDate: start,
		EndDate:   end,
	}
	return bookingRepo.Create(ctx, booking)
}
