package routes

import (
	"e2d-ledger/internal/adapters/http/handlers"
	"e2d-ledger/internal/adapters/http/middleware"
	"e2d-ledger/internal/adapters/persistence/repositories"
	"e2d-ledger/internal/config"
	"e2d-ledger/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	cotisationRepo := repositories.NewCotisationRepository(db)
	loanRepo := repositories.NewLoanRepository(db)
	sanctionRepo := repositories.NewSanctionRepository(db)
	sanctionTypeRepo := repositories.NewSanctionTypeRepository(db)
	aidRepo := repositories.NewAidRepository(db)
	aidTypeRepo := repositories.NewAidTypeRepository(db)
	debtRepo := repositories.NewDebtRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)
	caisseRepo := repositories.NewCaisseRepository(db)
	sportRepo := repositories.NewSportRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	settingsService := services.NewSettingsService(settingRepo)
	memberService := services.NewMemberService(memberRepo, sanctionRepo, settingsService)
	cotisationService := services.NewCotisationService(cotisationRepo, memberRepo, settingsService)
	loanService := services.NewLoanService(loanRepo, memberRepo)
	sanctionService := services.NewSanctionService(sanctionRepo, sanctionTypeRepo, memberRepo)
	aidService := services.NewAidService(aidRepo, aidTypeRepo, debtRepo, memberRepo)
	savingsService := services.NewSavingsService(savingsRepo, caisseRepo, memberRepo)
	sportService := services.NewSportService(sportRepo, memberRepo, sanctionService, settingsService)
	reportService := services.NewReportService(reportRepo, memberRepo)
	dashboardService := services.NewDashboardService(
		memberRepo,
		sanctionRepo,
		cotisationService,
		loanService,
		aidService,
		savingsService,
		memberService,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	cotisationHandler := handlers.NewCotisationHandler(cotisationService, memberService)
	loanHandler := handlers.NewLoanHandler(loanService)
	sanctionHandler := handlers.NewSanctionHandler(sanctionService)
	aidHandler := handlers.NewAidHandler(aidService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)
	sportHandler := handlers.NewSportHandler(sportService)
	reportHandler := handlers.NewReportHandler(reportService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public + protected)
	setupAuthRoutes(apiV1.Group("/auth"), authHandler, cfg)

	// Everything below requires authentication
	protected := apiV1.Group("", middleware.AuthMiddleware(cfg))

	setupMemberRoutes(protected.Group("/members"), memberHandler, cotisationHandler,
		loanHandler, sanctionHandler, aidHandler, savingsHandler)
	setupCotisationRoutes(protected.Group("/cotisations"), cotisationHandler)
	setupLoanRoutes(protected.Group("/prets"), loanHandler)
	setupSanctionRoutes(protected, sanctionHandler)
	setupAidRoutes(protected, aidHandler)
	setupSavingsRoutes(protected.Group("/epargne"), savingsHandler)
	setupSportRoutes(protected.Group("/sport"), sportHandler)
	setupReportRoutes(protected.Group("/reports"), reportHandler)
	setupSettingsRoutes(protected.Group("/settings"), settingsHandler)

	// Dashboard (financial snapshot, always fresh)
	protected.Get("/dashboard", middleware.NoCacheHeaders(), dashboardHandler.Overview)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
	router.Post("/users", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.CreateUser)
}

// setupMemberRoutes configures member routes plus the per-member
// financial sub-resources
func setupMemberRoutes(
	router fiber.Router,
	memberHandler *handlers.MemberHandler,
	cotisationHandler *handlers.CotisationHandler,
	loanHandler *handlers.LoanHandler,
	sanctionHandler *handlers.SanctionHandler,
	aidHandler *handlers.AidHandler,
	savingsHandler *handlers.SavingsHandler,
) {
	// Static paths before :id
	router.Get("/suspension-candidates", memberHandler.SuspensionCandidates)

	router.Get("/", memberHandler.List)
	router.Get("/:id", memberHandler.Get)
	router.Get("/:id/status-history", memberHandler.StatusHistory)
	router.Get("/:id/cotisations", cotisationHandler.ByMember)
	router.Get("/:id/prets", loanHandler.ByMember)
	router.Get("/:id/sanctions", sanctionHandler.ByMember)
	router.Get("/:id/aides", aidHandler.ByMember)
	router.Get("/:id/dettes", aidHandler.DebtsByMember)
	router.Get("/:id/epargne", savingsHandler.DepositsByMember)

	// Writes (treasurer or admin)
	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/", memberHandler.Create)
	writes.Put("/:id", memberHandler.Update)
	writes.Patch("/:id/status", memberHandler.ChangeStatus)

	// Removal (admin only)
	router.Delete("/:id", middleware.AdminOnly(), memberHandler.Delete)
}

// setupCotisationRoutes configures monthly-due routes
func setupCotisationRoutes(router fiber.Router, handler *handlers.CotisationHandler) {
	router.Get("/period", handler.Period)
	router.Get("/:id", handler.Get)

	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/", handler.Create)
	writes.Put("/:id", handler.Update)
}

// setupLoanRoutes configures loan routes
func setupLoanRoutes(router fiber.Router, handler *handlers.LoanHandler) {
	router.Get("/alerts", handler.Alerts)
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)

	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/", handler.Create)
	writes.Patch("/:id/repay", handler.Repay)
	writes.Patch("/:id/renew", handler.Renew)
}

// setupSanctionRoutes configures sanction and sanction-type routes
func setupSanctionRoutes(router fiber.Router, handler *handlers.SanctionHandler) {
	sanctions := router.Group("/sanctions")
	sanctions.Get("/", handler.List)
	sanctions.Get("/:id", handler.Get)

	writes := sanctions.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/", handler.Create)
	writes.Patch("/:id/pay", handler.Pay)
	writes.Patch("/:id/unpay", handler.Unpay)
	writes.Patch("/:id/cancel", handler.Cancel)

	// Catalog (rarely changes, cacheable)
	types := router.Group("/sanction-types")
	types.Get("/", middleware.CatalogCache(), handler.ListTypes)
	types.Post("/", middleware.AdminOnly(), handler.CreateType)
	types.Put("/:id", middleware.AdminOnly(), handler.UpdateType)
}

// setupAidRoutes configures aid, debt and aid-type routes
func setupAidRoutes(router fiber.Router, handler *handlers.AidHandler) {
	aids := router.Group("/aides")
	aids.Get("/", handler.List)
	aids.Get("/:id", handler.Get)

	aidWrites := aids.Group("", middleware.TreasurerOrAdmin())
	aidWrites.Post("/", handler.Create)
	aidWrites.Patch("/:id/repay", handler.MarkRepaid)

	debts := router.Group("/dettes")
	debts.Get("/alerts", handler.DebtAlerts)
	debts.Get("/", handler.ListDebts)
	debts.Get("/:id", handler.GetDebt)
	debts.Post("/:id/payments", middleware.TreasurerOrAdmin(), handler.RecordDebtPayment)

	// Catalog (rarely changes, cacheable)
	types := router.Group("/aid-types")
	types.Get("/", middleware.CatalogCache(), handler.ListAidTypes)
	types.Post("/", middleware.AdminOnly(), handler.CreateAidType)
	types.Put("/:id", middleware.AdminOnly(), handler.UpdateAidType)
}

// setupSavingsRoutes configures savings and caisse routes
func setupSavingsRoutes(router fiber.Router, handler *handlers.SavingsHandler) {
	router.Get("/deposits", handler.ListDeposits)
	router.Get("/deposits/:id", handler.GetDeposit)
	router.Get("/deposits/:id/interest", handler.InterestShare)
	router.Get("/caisse/summary", handler.CaisseSummary)

	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/deposits", handler.Deposit)
	writes.Patch("/deposits/:id/repay", handler.RepayDeposit)
	writes.Post("/caisse", handler.CreateCaisseDue)
	writes.Patch("/caisse/:id/pay", handler.PayCaisseDue)
}

// setupSportRoutes configures sport club routes
func setupSportRoutes(router fiber.Router, handler *handlers.SportHandler) {
	router.Get("/activities", middleware.CatalogCache(), handler.ListActivities)
	router.Get("/activities/:id/participants", handler.ListParticipants)
	router.Get("/activities/:id/matches", handler.ListMatches)
	router.Get("/matches/:id/stats", handler.MatchStats)

	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/participants", handler.RegisterParticipant)
	writes.Post("/matches", handler.CreateMatch)
	writes.Post("/stats", handler.RecordStat)
}

// setupReportRoutes configures meeting report routes
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)

	writes := router.Group("", middleware.TreasurerOrAdmin())
	writes.Post("/", handler.Create)
	writes.Put("/:id", handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}

// setupSettingsRoutes configures configuration routes (Admin only)
func setupSettingsRoutes(router fiber.Router, handler *handlers.SettingsHandler) {
	router.Use(middleware.AdminOnly())
	router.Get("/", handler.List)
	router.Get("/:key", handler.Get)
	router.Put("/", handler.Set)
}
