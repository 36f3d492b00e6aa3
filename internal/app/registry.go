package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/dashboard"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/employee"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/employment"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/funding"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/holiday"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavebalance"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leaverequest"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/leavetype"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/messaging/kafka"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/middleware"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/rbac"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/rbac/infra"
	"github.com/EhDohWah/hrms-backend-api-v1-sub001/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultApprovalRoles = "hr-manager,hr-assistant"

// ApprovalRolesFromEnv reads LEAVE_APPROVAL_ROLES, the comma-separated list
// of roles whose approvals are required before a leave request flips to
// approved.
func ApprovalRolesFromEnv() []string {
	raw := os.Getenv("LEAVE_APPROVAL_ROLES")
	if strings.TrimSpace(raw) == "" {
		raw = defaultApprovalRoles
	}

	var roles []string
	for _, r := range strings.Split(raw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return roles
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	employmentRepo := employment.NewRepository(gormDB)
	fundingRepo := funding.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveBalanceRepo := leavebalance.NewRepository(gormDB)
	leaveRequestRepo := leaverequest.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Domain core ---
	ledger := leavebalance.NewLedger(leaveBalanceRepo)
	calendar := holiday.NewCalendar(holidayRepo)
	allocator := funding.NewAllocator(fundingRepo)
	statsCache := leaverequest.NewStatisticsCache(rdb)

	// --- Services ---
	dashboardService := dashboard.NewService(db, dashboardRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	employmentService := employment.NewService(db, employmentRepo, allocator)
	fundingService := funding.NewService(db, fundingRepo, allocator)
	holidayService := holiday.NewService(db, holidayRepo)
	leaveBalanceService := leavebalance.NewService(db, leaveBalanceRepo, ledger)
	leaveRequestService := leaverequest.NewService(
		db,
		leaveRequestRepo,
		ledger,
		calendar,
		outboxRepo,
		statsCache,
		ApprovalRolesFromEnv(),
	)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, ledger)

	// --- Handlers ---
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	employmentHandler := employment.NewHandler(employmentService)
	fundingHandler := funding.NewHandler(fundingService)
	holidayHandler := holiday.NewHandler(holidayService)
	leaveBalanceHandler := leavebalance.NewHandler(leaveBalanceService)
	leaveRequestHandler := leaverequest.NewHandler(leaveRequestService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		employment.RegisterRoutes(api, employmentHandler, rbacService)
		funding.RegisterRoutes(api, fundingHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		leavebalance.RegisterRoutes(api, leaveBalanceHandler, rbacService)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rbacService, rdb)
		leavetype.RegisterRoutes(api, leaveTypeHandler, rbacService)
	}

	return nil
}
