package funding

import (
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	slots := r.Group("/grant-position-slots")
	slots.Use(middleware.AuthMiddleware())
	{
		slots.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "funding", "read"),
			handler.GetAllSlots,
		)
		slots.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "funding", "create"),
			handler.CreateSlot,
		)
	}

	allocations := r.Group("/employments/:id/funding-allocations")
	allocations.Use(middleware.AuthMiddleware())
	{
		allocations.GET("",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "funding", "read"),
			handler.GetByEmployment,
		)
		allocations.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "funding", "create"),
			handler.ReplaceForEmployment,
		)
	}
}
