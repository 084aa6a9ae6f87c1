// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/bizdev-backend/internal/controller"
	"github.com/unclebandit/bizdev-backend/internal/db"
	"github.com/unclebandit/bizdev-backend/internal/handler"
	"github.com/unclebandit/bizdev-backend/internal/queue"
	"github.com/unclebandit/bizdev-backend/internal/repository"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()
	q := queue.NewInMemoryQueue()

	// Default tenant is explicit configuration, not an implicit global.
	defaultCompanyHQID, err := strconv.Atoi(os.Getenv("DEFAULT_COMPANY_HQ_ID"))
	if err != nil || defaultCompanyHQID < 1 {
		log.Fatal("DEFAULT_COMPANY_HQ_ID must be set to a positive integer")
	}

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
	proposalRepo := &repository.ProposalRepository{DB: db.DB}
	invoiceRepo := &repository.InvoiceRepository{DB: db.DB}

	notifyEmail := os.Getenv("NOTIFY_EMAIL")
	if notifyEmail == "" {
		notifyEmail = "client-updates@example.com"
	}
	mailer := service.MockMailer{}
	queue.StartNotificationSubscriber(q, func(event queue.ArtifactPublishedEvent) error {
		return mailer.SendClientUpdate(notifyEmail, "New content published", event.Summary)
	})

	contactService := &service.ContactService{
		Repo:               contactRepo,
		Enricher:           service.MockEnricher{},
		DefaultCompanyHQID: defaultCompanyHQID,
	}
	artifactService := &service.ArtifactService{
		Repo:  artifactRepo,
		Queue: q,
	}
	wpService := service.NewWorkPackageService(wpRepo, artifactRepo)
	importService := &service.ImportService{
		ContactRepo:        contactRepo,
		WorkPackages:       wpService,
		Templates:          templates,
		DefaultCompanyHQID: defaultCompanyHQID,
	}
	invoiceService := &service.InvoiceService{Repo: invoiceRepo}

	wpController := &controller.WorkPackageController{
		WorkPackageService: wpService,
		ImportService:      importService,
		Templates:          templates,
	}
	proposalController := &controller.ProposalController{
		ProposalRepo: proposalRepo,
	}

	contactHandler := &handler.ContactHandler{Service: contactService}
	artifactHandler := &handler.ArtifactHandler{
		Service:            artifactService,
		DefaultCompanyHQID: defaultCompanyHQID,
	}
	invoiceHandler := &handler.InvoiceHandler{Service: invoiceService}

	r := chi.NewRouter()

	// Contact routes
	r.Post("/contacts", contactHandler.CreateContactHandler)
	r.Get("/contacts", contactHandler.ListContactsHandler)
	r.Get("/contacts/{id}", contactHandler.GetContactHandler)
	r.Put("/contacts/{id}", contactHandler.UpdateContactHandler)
	r.Post("/contacts/{id}/enrich", contactHandler.EnrichContactHandler)

	// Artifact builder routes
	r.Post("/artifacts/{kind}", artifactHandler.CreateArtifactHandler)
	r.Get("/artifacts/{kind}", artifactHandler.ListArtifactsHandler)
	r.Get("/artifacts/{kind}/{id}", artifactHandler.GetArtifactHandler)
	r.Post("/artifacts/{kind}/{id}/publish", artifactHandler.PublishArtifactHandler)
	r.Post("/artifacts/{kind}/{id}/unpublish", artifactHandler.UnpublishArtifactHandler)

	// Work package routes
	r.Post("/work-packages", wpController.CreateWorkPackage)
	r.Get("/work-packages", wpController.ListWorkPackages)
	r.Post("/work-packages/from-template", wpController.CreateFromTemplate)
	r.Post("/work-packages/import", wpController.ImportEngagements)
	r.Post("/work-packages/timeline-preview", wpController.TimelinePreview)
	r.Get("/work-packages/{id}", wpController.GetWorkPackage)
	r.Delete("/work-packages/{id}", wpController.DeleteWorkPackage)
	r.Post("/work-packages/{id}/phases", wpController.AddPhase)
	r.Post("/work-packages/{id}/items", wpController.AddItem)
	r.Post("/work-packages/items/{itemID}/attach", wpController.AttachArtifact)
	r.Post("/work-packages/items/{itemID}/detach", wpController.DetachArtifact)
	r.Patch("/work-packages/items/{itemID}/status", wpController.UpdateItemStatus)
	r.Get("/work-package-templates", wpController.ListTemplates)

	// Proposal routes
	r.Post("/proposals", proposalController.CreateProposal)
	r.Get("/proposals", proposalController.ListProposalsByContact)
	r.Get("/proposals/{id}", proposalController.GetProposal)
	r.Patch("/proposals/{id}/status", proposalController.UpdateProposalStatus)

	// Invoice routes
	r.Post("/invoices", invoiceHandler.CreateInvoiceHandler)
	r.Get("/invoices", invoiceHandler.ListInvoicesHandler)
	r.Get("/invoices/{id}", invoiceHandler.GetInvoiceHandler)
	r.Post("/invoices/{id}/payments", invoiceHandler.RecordPaymentHandler)
	r.Post("/invoices/{id}/send", invoiceHandler.SendInvoiceHandler)

	log.Println("🚀 Server running on :8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
