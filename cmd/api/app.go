package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/hugohenrick/erp-servicos/docs"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/route"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/validation"
	"github.com/hugohenrick/erp-servicos/internal/adapter/repository"
	"github.com/hugohenrick/erp-servicos/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-servicos/internal/config"
	"github.com/hugohenrick/erp-servicos/internal/domain/unitofwork"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/database"
	"github.com/hugohenrick/erp-servicos/internal/infrastructure/events"
	"github.com/hugohenrick/erp-servicos/internal/service"
	"github.com/hugohenrick/erp-servicos/pkg/logger"
	"github.com/hugohenrick/erp-servicos/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	eventBufferSize = 256
	shutdownTimeout = 10 * time.Second
)

// App representa a aplicação e suas dependências
type App struct {
	cfg    *config.Config
	log    logger.Logger
	router *gin.Engine
	db     *database.PostgresDB
	bus    *events.Bus
	cancel context.CancelFunc

	productController     *controller.ProductController
	customerController    *controller.CustomerController
	transactionController *controller.TransactionController
	lifecycleController   *controller.LifecycleController
	touchpointController  *controller.TouchpointController
	templateController    *controller.TemplateController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{cfg: cfg, log: log, cancel: cancel}

	uow, err := app.openStorage(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	// Eventos de domínio e histórico do cliente
	app.bus = events.NewBus(eventBufferSize)
	recorder := service.NewActivityRecorder(app.bus, uow.Activities(), log)
	if err := recorder.Start(ctx); err != nil {
		app.Close()
		return nil, err
	}

	// Criar serviços
	clock := service.SystemClock{}
	resolver := service.NewTemplateResolver(service.DefaultTemplateCacheTTL)
	purchaseService := service.NewPurchaseService(uow, service.NewMaterializer(resolver), app.bus, cfg.VAT, clock, log)
	touchpointService := service.NewTouchpointService(uow, clock, log)
	templateService := service.NewTemplateService(uow, resolver)

	// Criar controllers
	app.productController = controller.NewProductController(uow.Products(), clock, log)
	app.customerController = controller.NewCustomerController(uow.Customers(), uow.CustomerProducts(), uow.Activities(), log)
	app.transactionController = controller.NewTransactionController(purchaseService, uow.Transactions(), log)
	app.lifecycleController = controller.NewLifecycleController(uow.CustomerProducts(), touchpointService, log)
	app.touchpointController = controller.NewTouchpointController(touchpointService, log)
	app.templateController = controller.NewTemplateController(templateService, log)

	if err := validation.Register(); err != nil {
		app.Close()
		return nil, err
	}

	// Configurar router com modo correto
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	app.router = gin.New()
	app.router.Use(gin.Recovery())
	app.router.Use(middleware.RequestID())
	app.router.Use(middleware.RequestLogger(log))
	app.router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	app.SetupRoutes()
	return app, nil
}

// openStorage escolhe o armazenamento conforme STORAGE_DRIVER
func (a *App) openStorage(ctx context.Context) (unitofwork.UnitOfWork, error) {
	switch a.cfg.App.StorageDriver {
	case config.StorageMemory:
		a.log.Warn("Usando armazenamento em memória; os dados não são persistidos")
		return memory.NewStore(), nil
	case config.StoragePostgres:
		if a.cfg.App.AutoMigrate {
			if err := database.RunMigrations(a.cfg.Database, a.log); err != nil {
				return nil, err
			}
		}

		db, err := database.NewPostgresDB(ctx, a.cfg.Database, a.log)
		if err != nil {
			return nil, err
		}
		a.db = db
		return repository.NewStore(db), nil
	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", a.cfg.App.StorageDriver)
	}
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(a.cfg.App.BasePath)
	route.RegisterHealthRoutes(api, a.cfg.App.StorageDriver)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterCustomerRoutes(api, a.customerController)
	route.RegisterTransactionRoutes(api, a.transactionController)
	route.RegisterLifecycleRoutes(api, a.lifecycleController)
	route.RegisterTouchpointRoutes(api, a.touchpointController)
	route.RegisterTemplateRoutes(api, a.templateController)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start inicia o servidor HTTP e aguarda SIGINT/SIGTERM para encerrar
func (a *App) Start() error {
	srv := &http.Server{
		Addr:              ":" + a.cfg.App.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Servidor iniciado", "port", a.cfg.App.Port, "base_path", a.cfg.App.BasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	a.log.Info("Encerrando servidor")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("erro ao encerrar servidor: %w", err)
	}
	return nil
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	a.cancel()
	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			a.log.Error("Erro ao fechar barramento de eventos", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}
