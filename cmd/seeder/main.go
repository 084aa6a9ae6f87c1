// cmd/seeder/main.go
// Seeds a demo tenant: one contact, a handful of artifacts, and a work
// package built from the content-launch blueprint.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/unclebandit/bizdev-backend/internal/db"
	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/repository"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	db.Init()
	ctx := context.Background()

	blueprintPath := os.Getenv("BLUEPRINT_FILE")
	if blueprintPath == "" {
		blueprintPath = "config/blueprints.yaml"
	}
	templates, err := service.NewTemplateService(blueprintPath)
	if err != nil {
		log.Fatal("failed to load blueprints: ", err)
	}

	contactRepo := &repository.ContactRepository{DB: db.DB}
	artifactRepo := &repository.ArtifactRepository{DB: db.DB}
	wpRepo := &repository.WorkPackageRepository{DB: db.DB}

	wpService := service.NewWorkPackageService(wpRepo, artifactRepo)

	const companyHQID = 1

	contact := &model.Contact{
		CompanyHQID: companyHQID,
		FirstName:   "Dana",
		LastName:    "Okafor",
		Email:       "dana.okafor@example.com",
		CompanyName: "Okafor & Partners",
	}
	if err := contactRepo.Create(contact); err != nil {
		log.Fatal("failed to seed contact: ", err)
	}
	log.Println("Seeded contact", contact.ID)

	personas := []*model.Persona{
		{CompanyHQID: companyHQID, Name: "Managing Partner", Role: "decision maker", PainPoints: "origination pressure"},
		{CompanyHQID: companyHQID, Name: "In-house Counsel", Role: "influencer", PainPoints: "outside spend scrutiny"},
	}
	for _, p := range personas {
		if err := artifactRepo.Create(ctx, p); err != nil {
			log.Fatal("failed to seed persona: ", err)
		}
	}

	blog := &model.Blog{
		CompanyHQID: companyHQID,
		Title:       "Five Questions Before Your Next Engagement Letter",
		Body:        "Draft body...",
		Keywords:    "engagement letters, risk",
	}
	if err := artifactRepo.Create(ctx, blog); err != nil {
		log.Fatal("failed to seed blog: ", err)
	}
	if err := artifactRepo.SetPublished(ctx, model.KindBlog, blog.ID, true); err != nil {
		log.Fatal("failed to publish blog: ", err)
	}

	bp, ok := templates.Get("content-launch")
	if !ok {
		log.Fatal("content-launch blueprint missing")
	}

	started := time.Now()
	hqID := companyHQID
	wp, err := wpService.CreateFromBlueprint(ctx, bp, contact.ID, &hqID, &started)
	if err != nil {
		log.Fatal("failed to seed work package: ", err)
	}
	log.Println("Seeded work package", wp.ID)

	// Attach the seeded artifacts to their deliverable slots.
	for _, phase := range wp.Phases {
		for _, item := range phase.Items {
			switch item.Kind {
			case model.KindPersona:
				for _, p := range personas {
					if err := wpService.AttachArtifact(ctx, item.ID, model.KindPersona, p.ID); err != nil {
						log.Fatal("failed to attach persona: ", err)
					}
				}
			case model.KindBlog:
				if err := wpService.AttachArtifact(ctx, item.ID, model.KindBlog, blog.ID); err != nil {
					log.Fatal("failed to attach blog: ", err)
				}
			}
		}
	}

	log.Println("✅ Seed complete")
}
