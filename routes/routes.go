package routes

import (
	"github.com/gofiber/fiber/v2"

	"pintureria-backend/controllers"
	"pintureria-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard (not tied to any handler transaction)
	protected.Use(middlewares.Idempotency())

	// Branches
	protected.Post("/branch", controllers.CreateBranch)
	protected.Get("/branches", controllers.GetBranches)
	protected.Get("/branch/:id", controllers.GetBranch)

	// Customers
	protected.Post("/customer", controllers.CreateCustomer)
	protected.Get("/customers", controllers.GetCustomers)
	protected.Get("/customer/:id", controllers.GetCustomer)
	protected.Put("/customer/:id", controllers.UpdateCustomer)

	// Suppliers
	protected.Post("/supplier", controllers.CreateSupplier)
	protected.Get("/suppliers", controllers.GetSuppliers)
	protected.Put("/supplier/:id", controllers.UpdateSupplier)

	// Products & units of measure
	protected.Post("/product", controllers.CreateProducts) // batch create
	protected.Get("/products", controllers.GetProducts)
	protected.Get("/product/:id", controllers.GetProduct)
	protected.Put("/product/:id", controllers.UpdateProduct)
	protected.Post("/uom", controllers.CreateUom)
	protected.Get("/uoms", controllers.GetUoms)

	// Stock ledger
	protected.Get("/stock/:branchId", controllers.GetBranchStock)
	protected.Get("/stock/:branchId/:productId/:uomId", controllers.GetStockRecord)
	protected.Post("/stock/receive", controllers.ReceiveStock)

	// Invoices
	protected.Post("/invoice", controllers.CreateInvoice)
	protected.Get("/invoices", controllers.GetInvoices)
	protected.Get("/invoice/:id", controllers.GetInvoice)
	protected.Post("/invoice/:id/void", controllers.VoidInvoice)

	// Quotations
	protected.Post("/quotation", controllers.CreateQuotation)
	protected.Get("/quotations", controllers.GetQuotations)
	protected.Get("/quotation/:id", controllers.GetQuotation)
	protected.Post("/quotation/:id/convert", controllers.ConvertQuotation)

	// Cart
	protected.Get("/cart", controllers.GetCart)
	protected.Post("/cart/items", controllers.UpsertCartItem)
	protected.Delete("/cart/items/:productId/:uomId", controllers.RemoveCartItem)
	protected.Delete("/cart", controllers.ClearCart)
	protected.Post("/cart/checkout", controllers.CheckoutCart)

	// Reports (read-only)
	protected.Get("/reports/sales/products", controllers.GetProductSalesReport)
	protected.Get("/reports/sales/branches", controllers.GetBranchSalesReport)
	protected.Get("/reports/customers/top", controllers.GetTopCustomersReport)
	protected.Get("/reports/sales/export", controllers.ExportProductSalesReport)
}
