package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/blockvest/smartfund-backend/internal/adapter/grpc"
	smartfundv1 "github.com/blockvest/smartfund-backend/internal/adapter/grpc/smartfund/v1"
	"github.com/blockvest/smartfund-backend/internal/adapter/portal"
	"github.com/blockvest/smartfund-backend/internal/adapter/repository/postgres"
	"github.com/blockvest/smartfund-backend/internal/domain"
	"github.com/blockvest/smartfund-backend/internal/usecase/fund"
	"github.com/blockvest/smartfund-backend/internal/usecase/registry"
)

const (
	defaultAPIToken = "dev-token"
	grpcPort        = ":8080"

	exchangePortalAddr = domain.Address("portal-exchange")
	poolPortalAddr     = domain.Address("portal-pool")
)

func main() {
	// 1. Setup Database
	dbConnStr := os.Getenv("DB_CONN_STR")
	if dbConnStr == "" {
		// If explicit string is missing, build it from individual vars (Docker friendly)
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost" // Default for local run without docker
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "smartfund"
		}

		dbConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(dbConnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 2. Initialize Repositories (Postgres)
	fundRepo := postgres.NewFundRepository(db)
	tradeRepo := postgres.NewTradeRecordRepository(db)

	// 3. Initialize Portal Collaborators
	// The simulated portals back paper-trading deployments; swapping in live
	// exchange/pool/lending integrations is a wiring change here only.
	stableCoin := domain.Asset(os.Getenv("STABLE_COIN_ASSET"))
	if stableCoin == "" {
		stableCoin = "DAI"
	}
	exchange := portal.NewSimulatedExchange(map[domain.Asset]decimal.Decimal{
		domain.NativeAsset: decimal.NewFromInt(1),
		stableCoin:         decimal.NewFromInt(1),
	})
	collab := fund.Collaborators{
		Exchange:     exchange,
		ExchangeAddr: exchangePortalAddr,
		Pools:        portal.NewSimulatedPool(),
		PoolsAddr:    poolPortalAddr,
		Lending:      portal.NewSimulatedLending(),
		Permitted:    portal.NewStaticDirectory(exchangePortalAddr, poolPortalAddr),
		Transferor:   portal.NewCustodyBook(),
		TradeRepo:    tradeRepo,
	}

	// 4. Initialize Fund Registry (Use Cases)
	registryService := registry.NewService(fundRepo, collab)

	// 5. Start gRPC Server
	// Get API token from environment or use default
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	// Create gRPC server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(apiToken)),
	)

	// Register SmartFundServiceServer
	grpcAdapter := grpcadapter.NewServer(registryService, tradeRepo)
	smartfundv1.RegisterSmartFundServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	// Listen on TCP port 8080
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, db)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, db *postgres.DB) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	if err := db.Close(); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}
	log.Println("gRPC server stopped")
}
