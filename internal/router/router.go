package router

import (
	"fmt"
	"time"

	"gastropos/internal/config"
	"gastropos/internal/handler"
	"gastropos/internal/infra"
	"gastropos/internal/middleware"
	"gastropos/internal/model"
	"gastropos/internal/repository"
	"gastropos/internal/service"
	"gastropos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App is the wired HTTP engine plus the pieces cmd/server needs to run the
// background workers.
type App struct {
	Engine       *gin.Engine
	Dispatcher   *worker.Dispatcher
	Facturacion  service.FacturacionService
	Comprobantes repository.ComprobanteRepository
	Location     *time.Location
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil: the job queue and product cache are then disabled.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("business timezone: %w", err)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	txm := repository.NewTxManager(db)
	secuencias := repository.NewSecuenciaRepository()
	usuarioRepo := repository.NewUsuarioRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	comprobanteRepo := repository.NewComprobanteRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, empleadoRepo, cfg, nil)
	productoSvc := service.NewProductoService(productoRepo, infra.NewJSONCache(rdb, "products:", cfg.ProductCacheTTL), nil)
	clienteSvc := service.NewClienteService(clienteRepo, nil)
	proveedorSvc := service.NewProveedorService(proveedorRepo, nil)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, nil)
	cajaSvc := service.NewCajaService(txm, cajaRepo, secuencias, proveedorRepo, loc, nil)
	pedidoSvc := service.NewPedidoService(txm, pedidoRepo, cajaRepo, secuencias, nil)
	ventaSvc := service.NewVentaService(txm, ventaRepo, cajaRepo, pedidoRepo, productoRepo, loc, nil)
	facturacionSvc := service.NewFacturacionService(txm, comprobanteRepo, ventaRepo, clienteRepo, secuencias, dispatcher,
		service.FacturacionConfig{
			Emisor:            infra.Emisor{Nombre: cfg.BusinessName, CUIT: cfg.BusinessCUIT},
			PDFStoragePath:    cfg.PDFStoragePath,
			DefaultPuntoVenta: cfg.DefaultPuntoVenta,
			Location:          loc,
		}, nil)
	reporteSvc := service.NewReporteService(cajaRepo, ventaRepo, comprobanteRepo, pedidoRepo, loc, nil)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, ventaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	facturacionH := handler.NewFacturacionHandler(facturacionSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(cfg.LoginRateLimitPerMinute), authH.Login)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		admin := middleware.RequireRole(model.RolAdmin)
		caja := middleware.RequireRole(model.RolAdmin, model.RolCajero)
		salon := middleware.RequireRole(model.RolAdmin, model.RolCajero, model.RolMozo)
		cocina := middleware.RequireRole(model.RolCocina, model.RolAdmin, model.RolCajero)
		todos := middleware.RequireRole(model.RolAdmin, model.RolCajero, model.RolCocina, model.RolMozo)

		v1.GET("/auth/me", authH.Me)

		cash := v1.Group("/cash")
		{
			cash.GET("/current", cajaH.Actual)
			cash.POST("/open", caja, cajaH.Abrir)
			cash.POST("/opening/:id", caja, cajaH.MontoApertura)
			cash.POST("/close/:id", caja, cajaH.Cerrar)
			cash.POST("/movement/manual", caja, cajaH.MovimientoManual)
			cash.GET("/movements/:sessionId", caja, cajaH.Movimientos)
			cash.GET("/:cashId/orders", salon, pedidosH.ListarPorSesion)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("/kitchen", cocina, pedidosH.Cocina)
			orders.POST("", salon, pedidosH.Crear)
			orders.GET("/:id", todos, pedidosH.Obtener)
			orders.PATCH("/:id", salon, pedidosH.Actualizar)
			orders.PATCH("/:id/prep", cocina, pedidosH.Preparacion)
			orders.POST("/:id/charge", caja, pedidosH.Cobrar)
		}

		sales := v1.Group("/sales", caja)
		{
			sales.POST("", ventasH.Registrar)
			sales.GET("", ventasH.Listar)
			sales.GET("/summary", ventasH.Resumen)
		}

		invoices := v1.Group("/invoices", caja)
		{
			invoices.POST("", facturacionH.Emitir)
			invoices.GET("", facturacionH.Listar)
			invoices.GET("/sale/:saleId", facturacionH.PorVenta)
			invoices.GET("/:id", facturacionH.Obtener)
			invoices.GET("/:id/pdf", facturacionH.PDF)
		}

		reports := v1.Group("/reports", admin)
		{
			reports.GET("/cash", reportesH.Caja)
			reports.GET("/cash/export", reportesH.ExportarCaja)
			reports.GET("/orders", reportesH.Pedidos)
		}

		// Products — everyone reads (order entry), admin writes
		v1.GET("/products", todos, productosH.Listar)
		v1.GET("/products/:id", todos, productosH.ObtenerPorID)
		prods := v1.Group("/products", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
		}

		customers := v1.Group("/customers", caja)
		{
			customers.POST("", clientesH.Crear)
			customers.GET("", clientesH.Listar)
			customers.GET("/:id", clientesH.ObtenerPorID)
			customers.PUT("/:id", clientesH.Actualizar)
		}

		v1.GET("/suppliers", caja, proveedoresH.Listar)
		v1.GET("/suppliers/:id", caja, proveedoresH.ObtenerPorID)
		prov := v1.Group("/suppliers", admin)
		{
			prov.POST("", proveedoresH.Crear)
			prov.PUT("/:id", proveedoresH.Actualizar)
			prov.DELETE("/:id", proveedoresH.Eliminar)
		}

		v1.GET("/employees", todos, empleadosH.Listar)
		v1.GET("/employees/:id", todos, empleadosH.ObtenerPorID)
		emps := v1.Group("/employees", admin)
		{
			emps.POST("", empleadosH.Crear)
			emps.PUT("/:id", empleadosH.Actualizar)
		}

		usuarios := v1.Group("/users", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.POST("/from-employee", usuariosH.DesdeEmpleado)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return &App{
		Engine:       r,
		Dispatcher:   dispatcher,
		Facturacion:  facturacionSvc,
		Comprobantes: comprobanteRepo,
		Location:     loc,
	}, nil
}
