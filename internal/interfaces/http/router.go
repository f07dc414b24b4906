package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartflow/smartflow-api/internal/application/auth"
	"github.com/smartflow/smartflow-api/internal/application/conversion"
	"github.com/smartflow/smartflow-api/internal/application/entrada"
	"github.com/smartflow/smartflow-api/internal/application/informe"
	"github.com/smartflow/smartflow-api/internal/application/movimiento"
	"github.com/smartflow/smartflow-api/internal/application/ordencompra"
	"github.com/smartflow/smartflow-api/internal/application/salida"
	"github.com/smartflow/smartflow-api/internal/application/usecase"
	"github.com/smartflow/smartflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	OrdenUC      *ordencompra.UseCase
	EntradaUC    *entrada.UseCase
	ConversionUC *conversion.UseCase
	MovimientoUC *movimiento.UseCase
	SalidaUC     *salida.UseCase
	InformeUC    *informe.UseCase
	PerfumeUC    *usecase.PerfumeUseCase
	AlmacenUC    *usecase.AlmacenUseCase
	ProveedorUC  *usecase.ProveedorUseCase
	UserUC       *usecase.UserUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	empleado := RequireRole(entity.RolEmpleado, entity.RolAdmin)
	auditor := RequireRole(entity.RolAuditor, entity.RolAdmin)
	admin := RequireRole(entity.RolAdmin)

	// Ordenes de compra
	ordenes := protected.Group("/ordenes")
	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	ordenes.Post("/", empleado, ordenHandler.Crear)
	ordenes.Get("/", ordenHandler.List)
	ordenes.Put("/validar/:id", auditor, ordenHandler.Validar)
	ordenes.Post("/desde-entrada", empleado, ordenHandler.DesdeEntrada)
	ordenes.Get("/:numero", ordenHandler.GetByNumero)

	// Entradas
	entradas := protected.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.EntradaUC)
	entradas.Post("/registrar", empleado, entradaHandler.Registrar)
	entradas.Post("/manual", empleado, entradaHandler.CrearManual)
	entradas.Get("/", entradaHandler.ListMias)
	entradas.Get("/:numero", entradaHandler.GetByNumero)

	// Conversión de documentos
	conversionHandler := NewConversionHandler(deps.ConversionUC)
	protected.Post("/conversion/convertir-entrada/:numero_entrada", empleado, conversionHandler.ConvertirEntrada)
	protected.Get("/conversion/buscar/:referencia", conversionHandler.BuscarReferencia)
	protected.Post("/ingreso-desde-referencia/entrada/desde-referencia/:referencia", empleado, conversionHandler.EntradaDesdeReferencia)

	// Movimientos (traspasos + info de perfume)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/crear", empleado, movimientoHandler.CrearTraspaso)
	movimientos.Post("/info-perfume", movimientoHandler.InfoPerfume)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:numero", movimientoHandler.GetByNumero)

	// Salidas
	salidas := protected.Group("/salidas")
	salidaHandler := NewSalidaHandler(deps.SalidaUC)
	salidas.Post("/crear", empleado, salidaHandler.Crear)
	salidas.Post("/manual", auditor, salidaHandler.CrearManual)
	salidas.Get("/almacen/:nombre_perfume", salidaHandler.AlmacenPorPerfume)
	salidas.Get("/por-mes/:mes", salidaHandler.PorMes)
	salidas.Get("/", salidaHandler.List)

	// Informes (auditoría)
	informeHandler := NewInformeHandler(deps.InformeUC)
	protected.Get("/informes/mes/:mes", auditor, informeHandler.PorMes)

	// Catálogos
	perfumes := protected.Group("/perfumes")
	perfumeHandler := NewPerfumeHandler(deps.PerfumeUC)
	perfumes.Post("/", empleado, perfumeHandler.Crear)
	perfumes.Get("/", perfumeHandler.List)
	perfumes.Get("/:id", perfumeHandler.GetByID)

	almacenes := protected.Group("/almacenes")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenes.Post("/", admin, almacenHandler.Crear)
	almacenes.Get("/", almacenHandler.List)
	almacenes.Get("/:codigo", almacenHandler.GetByCodigo)

	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", empleado, proveedorHandler.Crear)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)

	// Administración de usuarios (solo Admin)
	users := protected.Group("/admin/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Crear)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Actualizar)
	users.Delete("/:id", userHandler.Delete)
}
