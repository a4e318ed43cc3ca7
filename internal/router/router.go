package router

import (
	"fmt"
	"time"

	"trivia-api/internal/handlers"
	"trivia-api/internal/services"

	_ "trivia-api/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const requestIDHeader = "X-Request-ID"

type Options struct {
	CORSOrigins []string
	// Quiet disables the access log, for tests.
	Quiet bool
}

func New(triviaService *services.TriviaService, opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(RequestID())
	if !opts.Quiet {
		r.Use(gin.LoggerWithFormatter(accessLog))
	}
	r.Use(gin.CustomRecovery(handlers.Recovery))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.NoRoute(handlers.NoRoute)
	r.NoMethod(handlers.NoMethod)

	categoryHandler := handlers.NewCategoryHandler(triviaService)
	questionHandler := handlers.NewQuestionHandler(triviaService)
	quizHandler := handlers.NewQuizHandler(triviaService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.ListCategoryQuestions)

	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.GET("/questions/:id", questionHandler.GetQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	r.POST("/questionssearch", questionHandler.SearchQuestions)

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(handlers.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func accessLog(p gin.LogFormatterParams) string {
	return fmt.Sprintf("%s | %3d | %13v | %15s | %-7s %#v | %s\n",
		p.TimeStamp.Format(time.RFC3339),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		p.Path,
		p.Keys[handlers.RequestIDKey],
	)
}
