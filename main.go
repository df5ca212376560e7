package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"files-manager/api/handler"
	"files-manager/api/middleware"
	"files-manager/api/route"
	"files-manager/common"
	"files-manager/library/session"
	"files-manager/library/storage"
	"files-manager/library/thumbnail"
	"files-manager/model"
	"files-manager/service"
)

func main() {
	_ = godotenv.Load()
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog("Files Manager " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb, err := common.InitRedisClient(*common.RedisConnString)
	if err != nil {
		common.FatalLog(err)
	}

	db, err := model.InitDB(*common.SQLDsn, *common.SQLitePath)
	if err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(db); err != nil {
			common.SysError("failed to close database: " + err.Error())
		}
	}()

	blobs := storage.NewBlobStore(*common.FolderPath)

	// Redis backs both the session store and the job queue when available;
	// without it both fall back to in-process backends and jobs do not
	// survive a restart.
	var sessions *session.Store
	var queue thumbnail.Queue
	if rdb != nil {
		sessions = session.NewStore(session.NewRedisClient(rdb))
		queue = thumbnail.NewRedisQueue(rdb)
	} else {
		sessions = session.NewStore(session.NewMemoryClient())
		queue = thumbnail.NewMemoryQueue(128)
	}

	catalog := model.NewFileCatalog(db, blobs, queue)
	users := model.NewUserStore(db)
	svc := service.NewFileService(sessions, users, catalog, blobs, db)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker := thumbnail.NewWorker(queue, blobs, catalog)
	go worker.Start(workerCtx)

	server := gin.Default()
	server.Use(middleware.CORS())
	route.SetApiRouter(server, handler.NewHandler(svc), *common.RequestRateLimit)

	setupGracefulShutdown(stopWorker)

	port := strconv.Itoa(*common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// setupGracefulShutdown stops the thumbnail worker before the process exits.
func setupGracefulShutdown(stopWorker context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		stopWorker()
		os.Exit(0)
	}()
}
