package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"campus/backend/internal/audit"
	"campus/backend/internal/auth"
	"campus/backend/internal/config"
	"campus/backend/internal/db"
	campusgrpc "campus/backend/internal/grpc"
	internalhttp "campus/backend/internal/http"
	"campus/backend/internal/logger"
	"campus/backend/internal/registry"
	"campus/backend/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal("config load failed", zap.Error(err))
	}
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}
	defer pool.Close()

	store := db.NewStore(pool)
	if err := store.Migrate(ctx); err != nil {
		log.Fatal("db migration failed", zap.Error(err))
	}

	equipment := registry.NewEquipment(repository.NewEquipmentRepo(store), cfg.SeedDemoData, log.Named("equipment"))
	if cfg.SeedDemoData {
		if err := equipment.EnsureSeeded(ctx); err != nil {
			log.Fatal("seeding demo equipment failed", zap.Error(err))
		}
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("redis ping failed", zap.Error(err))
		}
		cancel()
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Warn("redis close error", zap.Error(err))
			}
		}()
	}
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AdminEmail,
		auth.WithRevocations(auth.NewRedisRevocations(redisClient)))

	var auditWriter audit.MessageWriter
	if w := audit.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAuditTopic); w != nil {
		auditWriter = w
	}
	auditLog := audit.NewLog(log.Named("audit"), auditWriter)
	defer func() {
		if err := auditLog.Close(); err != nil {
			log.Warn("audit writer close error", zap.Error(err))
		}
	}()

	server := internalhttp.NewServer(cfg, internalhttp.Dependencies{
		Tokens:     tokens,
		Equipment:  equipment,
		Complaints: registry.NewComplaints(repository.NewComplaintRepo(store)),
		Mess:       registry.NewMess(repository.NewFeedbackRepo(store)),
		LostFound:  registry.NewLostFound(repository.NewLostFoundRepo(store)),
		Audit:      auditLog,
		Logger:     log.Named("http"),
	})
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var grpcServer *campusgrpc.Server
	if cfg.GRPCAddr != "" {
		if cfg.ServiceAuthToken == "" {
			log.Warn("SERVICE_AUTH_TOKEN is empty, internal grpc endpoint disabled")
		} else if grpcServer, err = campusgrpc.NewServer(cfg.ServiceAuthToken); err != nil {
			log.Fatal("grpc server init failed", zap.Error(err))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if grpcServer != nil {
		listener, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			log.Fatal("grpc listen error", zap.Error(err))
		}
		grpcServer.MarkServing()
		g.Go(func() error {
			log.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
			return grpcServer.Serve(listener)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if grpcServer != nil {
			grpcServer.Shutdown()
		}
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
	}
	log.Info("shutdown complete")
}
