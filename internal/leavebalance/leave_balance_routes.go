package leavebalance

import (
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	balances := r.Group("/leave-balances")
	balances.Use(middleware.AuthMiddleware())
	{
		balances.GET("/employees/:employeeId",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "balance", "read"),
			handler.GetAllByEmployee,
		)
		balances.GET("/employees/:employeeId/types/:leaveTypeId",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "balance", "read"),
			handler.GetByKey,
		)
		balances.POST("/bulk-initialize",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "balance", "create"),
			handler.BulkInitialize,
		)
	}
}
