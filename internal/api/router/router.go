package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gusi-ui/sadmini-sub001/config"
	"github.com/Gusi-ui/sadmini-sub001/internal/api/handler"
	"github.com/Gusi-ui/sadmini-sub001/internal/api/middleware"
	"github.com/Gusi-ui/sadmini-sub001/pkg/jwt"
	"github.com/Gusi-ui/sadmini-sub001/pkg/redis"
)

// Setup builds the gin engine with every route and middleware attached.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (public)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// care workers
			workers := authorized.Group("/workers")
			{
				workers.GET("", h.Worker.List)
				workers.GET("/:id", h.Worker.GetByID)
				workers.POST("", middleware.RoleAuth("admin"), h.Worker.Create)
				workers.PUT("/:id", middleware.RoleAuth("admin"), h.Worker.Update)
				workers.DELETE("/:id", middleware.RoleAuth("admin"), h.Worker.Delete)
			}

			// care recipients
			clients := authorized.Group("/clients")
			{
				clients.GET("", h.Client.List)
				clients.GET("/:id", h.Client.GetByID)
				clients.POST("", middleware.RoleAuth("admin"), h.Client.Create)
				clients.PUT("/:id", middleware.RoleAuth("admin"), h.Client.Update)
				clients.DELETE("/:id", middleware.RoleAuth("admin"), h.Client.Delete)
			}

			// holiday calendar
			holidays := authorized.Group("/holidays")
			{
				holidays.GET("", h.Holiday.List)
				holidays.GET("/:id", h.Holiday.GetByID)
				holidays.POST("", middleware.RoleAuth("admin"), h.Holiday.Create)
				holidays.POST("/seed", middleware.RoleAuth("admin"), h.Holiday.Seed)
				holidays.PUT("/:id", middleware.RoleAuth("admin"), h.Holiday.Update)
				holidays.DELETE("/:id", middleware.RoleAuth("admin"), h.Holiday.Deactivate)
			}

			// assignments and their recurring slots
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.List)
				assignments.GET("/:id", h.Assignment.GetByID)
				assignments.POST("", middleware.RoleAuth("admin"), h.Assignment.Create)
				assignments.PUT("/:id", middleware.RoleAuth("admin"), h.Assignment.Update)
				assignments.PUT("/:id/activate", middleware.RoleAuth("admin"), h.Assignment.Activate)
				assignments.PUT("/:id/end", middleware.RoleAuth("admin"), h.Assignment.End)
				assignments.GET("/:id/time-slots", h.Assignment.ListTimeSlots)
				assignments.POST("/:id/time-slots", middleware.RoleAuth("admin"), h.Assignment.AddTimeSlot)
				assignments.PUT("/:id/time-slots/:slotId", middleware.RoleAuth("admin"), h.Assignment.UpdateTimeSlot)
				assignments.DELETE("/:id/time-slots/:slotId", middleware.RoleAuth("admin"), h.Assignment.DeactivateTimeSlot)
			}

			// resolved schedules (read only)
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("/assignments/:id", h.Schedule.ResolveAssignment)
				schedule.GET("/workers/:id", h.Schedule.ResolveWorker)
				schedule.GET("/clients/:id", h.Schedule.ResolveClient)
			}

			// downloads
			export := authorized.Group("/export")
			{
				export.GET("/schedule/workers/:id/xlsx", h.Export.WorkerXLSX)
				export.GET("/schedule/workers/:id/ics", h.Export.WorkerICS)
			}
		}
	}

	return r
}
