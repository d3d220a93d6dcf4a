package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trivia_room_backend/docs"
	"trivia_room_backend/internal/config"
	"trivia_room_backend/internal/middleware"
	"trivia_room_backend/internal/model"
	"trivia_room_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（无需登录）
	a.registerPublicRoutes(router, c)

	// 2. 玩家与通用授权接口
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerPlayerRoutes(authGroup, c)

		// 3. 主持人接口（房主身份在服务层按房间校验）
		a.registerHostRoutes(authGroup, c)
	}

	// 4. 管理员接口
	a.registerAdminRoutes(router, c, repos)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 房间预览：游客可见，已登录用户走可选认证
		public.GET("/rooms/preview/:code", middleware.TryAuthMiddleware(a.Config), c.room.Preview)
	}
}

func (a *App) registerPlayerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar", c.user.UploadAvatar)

	// 房间成员视角
	rg.POST("/rooms/join", c.player.JoinRoom)
	rg.GET("/rooms/joined", c.room.ListJoinedRooms)
	rg.GET("/rooms/:id", c.room.GetRoom)
	rg.POST("/rooms/:id/leave", c.player.LeaveRoom)
	rg.GET("/rooms/:id/leaderboard", c.player.Leaderboard)
	rg.GET("/rooms/:id/questions", c.question.ListRoomQuestions)
	rg.GET("/rooms/:id/questions/current", c.question.GetCurrentQuestion)
	rg.GET("/rooms/:id/answers", c.answer.MyAnswers)

	// 核心作答接口
	rg.POST("/questions/:id/answers", c.answer.RecordAnswer)
}

func (a *App) registerHostRoutes(rg *gin.RouterGroup, c *controllers) {
	host := rg.Group("/host")
	{
		// 房间管理
		host.POST("/rooms", c.room.CreateRoom)
		host.GET("/rooms", c.room.ListMyRooms)
		host.GET("/rooms/:id", c.room.GetHostRoom)
		host.PUT("/rooms/:id", c.room.UpdateRoom)
		host.DELETE("/rooms/:id", c.room.DeleteRoom)

		// 生命周期
		host.POST("/rooms/:id/open", c.room.OpenRoom)
		host.POST("/rooms/:id/end", c.room.EndRoom)
		host.POST("/rooms/:id/advance", c.room.AdvanceRoom)

		// 题目管理
		host.POST("/rooms/:id/questions", c.question.AppendQuestion)
		host.GET("/rooms/:id/questions", c.question.ListHostQuestions)
		host.PUT("/rooms/:id/questions/:position", c.question.UpsertQuestionAtPosition)
		host.PUT("/questions/:id", c.question.UpdateQuestion)
		host.DELETE("/questions/:id", c.question.DeleteQuestion)
		host.GET("/questions/:id/answers", c.answer.ListQuestionAnswers)

		// 玩家管理
		host.POST("/rooms/:id/players/:playerId/kick", c.player.KickPlayer)

		// 题目素材
		host.POST("/media/upload", c.media.UploadQuestionMedia)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(a.Config),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.RoleAdmin),
	)
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.POST("/users/:id/disable", c.user.DisableUser)
		admin.POST("/users/:id/reset-password", c.user.ResetPassword)

		admin.GET("/rooms", c.room.ListAllRooms)
		admin.DELETE("/rooms/:id", c.room.DeleteRoom)
	}
}
