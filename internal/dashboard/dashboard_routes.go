package dashboard

import (
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	widgets := r.Group("/dashboard-widgets")
	widgets.Use(middleware.AuthMiddleware())
	{
		widgets.GET("/employees/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "dashboard", "read"),
			handler.GetForEmployee,
		)
		widgets.PUT("/employees/:employeeId/:widgetKey",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "dashboard", "create"),
			handler.UpdateWidget,
		)
	}
}
