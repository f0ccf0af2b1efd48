// Package httpserver exposes the engine over REST, plus the Prometheus
// scrape endpoint.
package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"xchange/domain/book"
	"xchange/infra/metrics"
	"xchange/service"
)

type Server struct {
	eng *service.Engine
	met *metrics.Metrics
}

func NewServer(eng *service.Engine, met *metrics.Metrics) *Server {
	return &Server{eng: eng, met: met}
}

type submitOrderRequest struct {
	// ID is opaque and caller-assigned; zero is a valid id.
	ID    uint64 `json:"id"`
	Side  string `json:"side" binding:"required"`
	Price int64  `json:"price"`
	Qty   int64  `json:"qty" binding:"required"`
}

type cancelOrderRequest struct {
	ID uint64 `json:"id"`
}

type bboResponse struct {
	Bid *int64 `json:"bid,omitempty"`
	Ask *int64 `json:"ask,omitempty"`
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.POST("/orders", s.submitOrder)
	r.POST("/orders/cancel", s.cancelOrder)
	r.GET("/book", s.getBook)
	r.GET("/bbo", s.getBBO)
	if s.met != nil {
		r.GET("/metrics", gin.WrapH(s.met.Handler()))
	}

	return r
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) submitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	side, ok := parseSide(req.Side)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "side must be buy or sell"})
		return
	}

	if err := s.eng.Submit(book.Order{
		ID:    req.ID,
		Side:  side,
		Price: req.Price,
		Qty:   req.Qty,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"accepted": true, "id": req.ID})
}

func (s *Server) cancelOrder(c *gin.Context) {
	var req cancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.eng.Cancel(req.ID)
	c.JSON(http.StatusAccepted, gin.H{"accepted": true, "id": req.ID})
}

func (s *Server) getBook(c *gin.Context) {
	depth := service.DefaultDepth
	if d, ok := intQuery(c, "depth"); ok {
		depth = d
	}

	snap, err := s.eng.Depth(depth)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) getBBO(c *gin.Context) {
	var resp bboResponse
	if px, ok := s.eng.BestBid(); ok {
		resp.Bid = &px
	}
	if px, ok := s.eng.BestAsk(); ok {
		resp.Ask = &px
	}
	c.JSON(http.StatusOK, resp)
}

func parseSide(s string) (book.Side, bool) {
	switch s {
	case "buy", "BUY":
		return book.Buy, true
	case "sell", "SELL":
		return book.Sell, true
	default:
		return 0, false
	}
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
