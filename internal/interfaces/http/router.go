package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/biztime/api/internal/application/usecase"
)

// RouterDeps carries the use cases the router wires into handlers.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	IndustryUC *usecase.IndustryUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.Get)
	companies.Put("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)
	companies.Post("/:code/industries", companyHandler.AssociateIndustry)

	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)

	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
}
