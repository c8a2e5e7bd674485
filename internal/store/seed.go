package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/promarket/promarket-server/internal/models"
)

type seedCategory struct {
	name string
	icon string
}

var seedCategories = []seedCategory{
	{"Repair", "fa-hammer"},
	{"Cleaning", "fa-broom"},
	{"IT", "fa-laptop-code"},
	{"Beauty", "fa-magic"},
	{"Moving", "fa-truck"},
}

var seedFirstNames = []string{"Alexander", "Dmitry", "Igor", "Mikhail", "Sergey", "Andrey", "Artem", "Nikolay"}

var seedSurnames = []string{"Ivanov", "Petrov", "Smirnov", "Vasiliev", "Kuznetsov", "Popov", "Sokolov", "Lebedev"}

var seedDescs = []string{
	"Professional approach, more than 5 years of experience. Quality guaranteed.",
	"Fast and accurate work, 10 years in the trade. Professional equipment only.",
	"Jobs of any complexity. Plenty of positive reviews.",
	"8 years of experience, individual approach to every client. Portfolio available.",
	"Work comes with a guarantee, only quality materials.",
	"Young specialist with solid experience. Affordable rates.",
	"A true professional. Free travel within the city.",
}

// seedDocument builds the demo catalog of 100 pros used on first run.
func seedDocument() *Document {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	doc := &Document{
		SchemaVersion: schemaVersion,
		Users:         make([]models.User, 0, 100),
		Orders:        []models.Order{},
		Notifications: []models.Notification{},
		Reviews:       []models.Review{},
		Portfolio:     []models.PortfolioItem{},
	}

	for i := 0; i < 100; i++ {
		cat := seedCategories[i%len(seedCategories)]
		rawPrice := rng.Intn(4000) + 500

		doc.Users = append(doc.Users, models.User{
			ID:          uuid.New().String(),
			Role:        models.RolePro,
			Name:        seedFirstNames[i%len(seedFirstNames)] + " " + seedSurnames[rng.Intn(len(seedSurnames))],
			Email:       fmt.Sprintf("pro%d@example.com", i),
			Phone:       fmt.Sprintf("+7%09d", rng.Intn(1_000_000_000)),
			Category:    cat.name,
			Icon:        cat.icon,
			Price:       rawPrice / 100 * 100,
			Rating:      float64(42+rng.Intn(9)) / 10, // 4.2 .. 5.0
			RatingCount: rng.Intn(50) + 5,
			Desc:        seedDescs[rng.Intn(len(seedDescs))],
			Location: &models.Location{
				Lat: 55.75 + (rng.Float64()-0.5)*0.3,
				Lng: 37.61 + (rng.Float64()-0.5)*0.3,
			},
			Verified:      rng.Float64() > 0.3,
			CompletedJobs: rng.Intn(50) + 5,
			Favorites:     []string{},
			CreatedAt:     time.Now(),
		})
	}

	return doc
}
