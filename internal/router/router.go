package router

import (
	"time"

	"github.com/Luchitowick/Terrible-Piolas/internal/config"
	"github.com/Luchitowick/Terrible-Piolas/internal/handler"
	"github.com/Luchitowick/Terrible-Piolas/internal/middleware"
	"github.com/Luchitowick/Terrible-Piolas/internal/repository"
	"github.com/Luchitowick/Terrible-Piolas/internal/service"
	"github.com/Luchitowick/Terrible-Piolas/internal/whatsapp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, media service.MediaStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	wa := whatsapp.NewBuilder(cfg.WhatsappBaseURL, cfg.WhatsappTelefono)

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	stockRepo := repository.NewStockTallaRepository(db)
	imagenRepo := repository.NewImagenRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, wa, rdb)
	stockSvc := service.NewStockService(stockRepo, productoRepo, rdb)
	imagenSvc := service.NewImagenService(imagenRepo, productoRepo, media, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	stockH := handler.NewStockHandler(stockSvc)
	imagenesH := handler.NewImagenesHandler(imagenSvc)
	catalogoH := handler.NewCatalogoHandler(productoSvc, productoRepo, wa, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Catálogo público — sin autenticación, solo lectura
	catalogo := r.Group("/v1/catalogo")
	{
		catalogo.GET("", catalogoH.Listar)
		catalogo.GET("/:slug", catalogoH.Detalle)
		catalogo.GET("/:slug/whatsapp", catalogoH.Whatsapp)
	}

	// Administración — la autenticación vive en el proxy de borde
	v1 := r.Group("/v1")
	{
		v1.GET("/categorias", categoriasH.Listar)
		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoriasH.Crear)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Desactivar)
			categorias.DELETE("/:id/definitivo", categoriasH.Eliminar)
		}

		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
			prods.PATCH("/:id/reactivar", productosH.Reactivar)
			prods.DELETE("/:id/definitivo", productosH.Eliminar)

			prods.GET("/:id/stock", stockH.Listar)
			prods.PUT("/:id/stock/:talla", stockH.ActualizarTalla)

			prods.POST("/:id/imagenes", imagenesH.Subir)
			prods.GET("/:id/imagenes", imagenesH.Listar)
			prods.PATCH("/:id/imagenes/:imagenID/principal", imagenesH.MarcarPrincipal)
			prods.DELETE("/:id/imagenes/:imagenID", imagenesH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
