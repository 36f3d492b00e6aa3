package employment

import (
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
) {
	employments := r.Group("/employments")
	employments.Use(middleware.AuthMiddleware())
	{
		employments.GET("/employees/:employeeId",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employment", "read"),
			handler.GetAllByEmployee,
		)
		employments.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "employment", "read"),
			handler.GetById,
		)
		employments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employment", "create"),
			handler.Create,
		)
		employments.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employment", "create"),
			handler.Update,
		)
		employments.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "employment", "delete"),
			handler.Delete,
		)
	}
}
