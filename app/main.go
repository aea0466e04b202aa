package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/Go-Campus-Backend/internal/repository/redis"
	"github.com/Guyuepp/Go-Campus-Backend/internal/workers"

	"github.com/Guyuepp/Go-Campus-Backend/internal/rest"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/middleware"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/comment"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/course"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/enrollment"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/notice"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/post"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/schedule"
	"github.com/Guyuepp/Go-Campus-Backend/internal/usecase/score"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Shanghai")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))
	route.Use(middleware.Actor())

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	courseRepo := mysqlRepo.NewCourseRepository(db)
	enrollRepo := mysqlRepo.NewEnrollmentRepository(db)
	scheduleRepo := mysqlRepo.NewScheduleRepository(db)
	scoreRepo := mysqlRepo.NewScoreRepository(db)

	// Post相关的三层架构
	// 1. DB层
	postDBRepo := mysqlRepo.NewPostRepository(db)
	// 2. Cache层
	postCache := myRedisCache.NewPostCache(client)
	// 3. Repository协调层
	postRepo := repository.NewPostRepository(postDBRepo, postCache, userRepo)

	noticeDBRepo := mysqlRepo.NewNoticeRepository(db)
	noticeCache := myRedisCache.NewNoticeCache(client)
	noticeRepo := repository.NewNoticeRepository(noticeDBRepo, noticeCache, userRepo)

	userNameCache := myRedisCache.NewUserNameCache(client)
	userDirectory := repository.NewUserDirectory(userRepo, userNameCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	viewsSyncer := workers.NewViewSyncWorker(postDBRepo)
	go viewsSyncer.Start(ctx)

	// Build service layer
	postSvc := post.NewService(postRepo, bloomRepo, viewsSyncer)
	commentSvc := comment.NewService(postRepo, userDirectory, bloomRepo)
	courseSvc := course.NewService(courseRepo)
	enrollSvc := enrollment.NewService(enrollRepo, courseRepo)
	scheduleSvc := schedule.NewService(scheduleRepo, courseRepo)
	scoreSvc := score.NewService(scoreRepo, courseRepo)
	noticeSvc := notice.NewService(noticeRepo)

	postHandler := rest.NewPostHandler(postSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	courseHandler := rest.NewCourseHandler(courseSvc, enrollSvc, scheduleSvc)
	scoreHandler := rest.NewScoreHandler(scoreSvc)
	noticeHandler := rest.NewNoticeHandler(noticeSvc)

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.GET("/posts", postHandler.FetchPost)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)

	route.GET("/courses", courseHandler.FetchCourse)
	route.GET("/courses/:id", courseHandler.GetByID)
	route.GET("/courses/:id/schedule", courseHandler.FetchSchedule)

	route.GET("/notices", noticeHandler.FetchNotice)
	route.GET("/notices/:id", noticeHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(middleware.RequireActor())
	{
		authorized.POST("/posts", postHandler.Store)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.DELETE("/posts/:id/comments/:commentId", commentHandler.DeleteComment)

		authorized.POST("/courses/:id/enroll", courseHandler.Enroll)
		authorized.DELETE("/courses/:id/enroll", courseHandler.Drop)
		authorized.GET("/enrollments", courseHandler.FetchMyEnrollments)
		authorized.GET("/scores", scoreHandler.FetchMyScores)
	}

	admin := route.Group("/")
	admin.Use(middleware.RequireActor(), middleware.RequireAdmin())
	{
		admin.GET("/admin/comments", commentHandler.FetchAllComments)
		admin.PUT("/admin/posts/:id/comments/:commentId/status", commentHandler.ModerateComment)

		admin.POST("/courses", courseHandler.Store)
		admin.DELETE("/courses/:id", courseHandler.Delete)
		admin.POST("/courses/:id/schedule", courseHandler.StoreSchedule)
		admin.POST("/courses/:id/scores", scoreHandler.Store)

		admin.POST("/notices", noticeHandler.Store)
		admin.DELETE("/notices/:id", noticeHandler.Delete)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
