package api

import (
	"net/http"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler serves plans, the mock checkout and the dashboard.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	dashboardService    service.DashboardService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService, dashboardService service.DashboardService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		dashboardService:    dashboardService,
	}
}

// ListPlans handles GET /api/subscriptions/plans.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.subscriptionService.ListPlans())
}

// Activate handles POST /api/subscriptions/activate. The body is only
// required to be a JSON object; its fields are not checked.
func (h *SubscriptionHandler) Activate(c *gin.Context) {
	var req domain.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.JSON(http.StatusOK, h.subscriptionService.Activate(c.Request.Context(), req))
}

// DashboardStats handles GET /api/dashboard/stats.
func (h *SubscriptionHandler) DashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.GetStats())
}
