package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"northwind/internal/logging"
	"northwind/internal/metrics"
	"northwind/internal/service"
	"northwind/internal/view"
)

// Server держит движок gin и зависимости, общие для всех обработчиков.
// Общее состояние между запросами — только пул соединений внутри catalog.
type Server struct {
	engine  *gin.Engine
	catalog *service.CatalogService
	clock   *service.ClockService
	views   view.Renderer
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewServer m may be nil, in which case no metrics are recorded or exposed.
func NewServer(catalog *service.CatalogService, clock *service.ClockService, views view.Renderer, log zerolog.Logger, m *metrics.Metrics) *Server {
	r := gin.New()
	s := &Server{engine: r, catalog: catalog, clock: clock, views: views, log: log, metrics: m}
	r.Use(logging.Middleware(log), gin.CustomRecovery(s.recovered))
	if m != nil {
		r.Use(m.Middleware())
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
	s.engine.GET("/healthz", s.health)

	s.engine.GET("/", s.root)
	s.engine.GET("/categories", listPage(s, view.Categories, "categories", s.categories))
	s.engine.GET("/category/:categoryId/products", listPage(s, view.CatProducts, "products", s.categoryProducts))
	s.engine.GET("/products", listPage(s, view.Products, "products", s.products))
	s.engine.GET("/customers", listPage(s, view.Customers, "customers", s.customers))
	s.engine.GET("/customer/:customerId/orders", listPage(s, view.Orders, "orders", s.customerOrders))
	s.engine.GET("/order/:orderId/details", listPage(s, view.OrderDetails, "orderdetails", s.orderDetails))

	s.engine.GET("/zonetimes", s.zoneTimes)
	s.engine.POST("/zonetime", s.zoneTime)

	s.engine.NoRoute(func(c *gin.Context) {
		s.renderPage(c, http.StatusNotFound, view.Error, gin.H{"errmsg": "page not found"})
	})
}

// recovered keeps a panicking handler from taking the process down
func (s *Server) recovered(c *gin.Context, rec any) {
	s.requestLog(c).Error().Interface("panic", rec).Str("path", c.Request.URL.Path).Msg("handler panicked")
	c.String(http.StatusInternalServerError, "internal server error")
	c.Abort()
}

// requestLog is the trace-tagged logger set by the logging middleware,
// falling back to the server logger.
func (s *Server) requestLog(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.log
}
