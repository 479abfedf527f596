package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/framecraft/admin/internal/models"
)

// dashboard aggregates the counts and revenue shown on the admin
// landing page. Revenue sums the discounted final price when present,
// else the total; cancelled orders do not count.
func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	orderList, err := s.orders.List(ctx, "")
	if err != nil {
		respondError(c, err)
		return
	}

	var revenue float64
	pendingCount := 0
	for _, o := range orderList {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		if o.Status == models.OrderStatusPending {
			pendingCount++
		}
		if o.FinalPrice > 0 {
			revenue += o.FinalPrice
		} else {
			revenue += o.TotalPrice
		}
	}

	counts := gin.H{"orders": len(orderList), "pendingOrders": pendingCount}

	productList, err := s.products.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	frameList, err := s.frames.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	categoryList, err := s.categories.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	userList, err := s.users.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	counts["products"] = len(productList)
	counts["frames"] = len(frameList)
	counts["categories"] = len(categoryList)
	counts["users"] = len(userList)

	recent := orderList
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":       counts,
		"revenue":      revenue,
		"recentOrders": recent,
	})
}
