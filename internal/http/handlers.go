package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"northwind/internal/domain"
	"northwind/internal/view"
)

// @Summary Start page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (s *Server) root(c *gin.Context) {
	s.renderPage(c, http.StatusOK, view.Root, nil)
}

// @Summary List categories
// @Tags catalog
// @Produce html
// @Success 200 {string} string "categories page"
// @Failure 503 {string} string "error page"
// @Router /categories [get]
func (s *Server) categories(c *gin.Context) ([]domain.Category, error) {
	return s.catalog.Categories(c.Request.Context())
}

// @Summary List products of one category
// @Tags catalog
// @Produce html
// @Param categoryId path int true "Category ID"
// @Success 200 {string} string "products page"
// @Failure 400 {string} string "error page"
// @Failure 503 {string} string "error page"
// @Router /category/{categoryId}/products [get]
func (s *Server) categoryProducts(c *gin.Context) ([]domain.Product, error) {
	id, err := smallIDParam(c, "categoryId")
	if err != nil {
		return nil, err
	}
	return s.catalog.ProductsByCategory(c.Request.Context(), id)
}

// @Summary List all products
// @Tags catalog
// @Produce html
// @Success 200 {string} string "products page"
// @Failure 503 {string} string "error page"
// @Router /products [get]
func (s *Server) products(c *gin.Context) ([]domain.Product, error) {
	return s.catalog.Products(c.Request.Context())
}

// @Summary List customers
// @Tags orders
// @Produce html
// @Success 200 {string} string "customers page"
// @Failure 503 {string} string "error page"
// @Router /customers [get]
func (s *Server) customers(c *gin.Context) ([]domain.Customer, error) {
	return s.catalog.Customers(c.Request.Context())
}

// @Summary List orders of one customer
// @Tags orders
// @Produce html
// @Param customerId path string true "Customer ID"
// @Success 200 {string} string "orders page"
// @Failure 400 {string} string "error page"
// @Failure 503 {string} string "error page"
// @Router /customer/{customerId}/orders [get]
func (s *Server) customerOrders(c *gin.Context) ([]domain.Order, error) {
	id, err := textParam(c, "customerId")
	if err != nil {
		return nil, err
	}
	return s.catalog.OrdersByCustomer(c.Request.Context(), id)
}

// @Summary List line items of one order
// @Tags orders
// @Produce html
// @Param orderId path int true "Order ID"
// @Success 200 {string} string "order details page"
// @Failure 400 {string} string "error page"
// @Failure 503 {string} string "error page"
// @Router /order/{orderId}/details [get]
func (s *Server) orderDetails(c *gin.Context) ([]domain.OrderDetail, error) {
	id, err := smallIDParam(c, "orderId")
	if err != nil {
		return nil, err
	}
	return s.catalog.OrderDetails(c.Request.Context(), id)
}

// @Summary Zone selector
// @Tags clock
// @Produce html
// @Success 200 {string} string "zone selector page"
// @Router /zonetimes [get]
func (s *Server) zoneTimes(c *gin.Context) {
	s.renderPage(c, http.StatusOK, view.ZoneSelector, gin.H{
		"zones":    s.clock.Zones(),
		"selected": s.clock.DefaultZone(),
	})
}

// @Summary Analog clock for a time zone
// @Tags clock
// @Accept x-www-form-urlencoded
// @Produce html
// @Param zone formData string true "IANA zone name"
// @Success 200 {string} string "clock face page"
// @Failure 400 {string} string "error page"
// @Router /zonetime [post]
func (s *Server) zoneTime(c *gin.Context) {
	zone, err := formField(c, "zone")
	if err != nil {
		s.renderError(c, err)
		return
	}
	face, err := s.clock.Now(zone)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.renderPage(c, http.StatusOK, view.ClockFace, gin.H{"clock": face})
}

// @Summary Liveness and store reachability
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (s *Server) health(c *gin.Context) {
	if err := s.catalog.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}
