package cmd

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tokenrelay/internal/config"
	"tokenrelay/internal/core"
	"tokenrelay/internal/db"
	"tokenrelay/internal/ethereum"
	"tokenrelay/internal/http/handler"
	"tokenrelay/internal/http/handler/middleware"
	"tokenrelay/internal/http/payload"
	"tokenrelay/internal/http/server"
	"tokenrelay/internal/identity"
	"tokenrelay/internal/privatechain"
	"tokenrelay/internal/publisher"
	"tokenrelay/internal/repository"
	"tokenrelay/pkg/jwt"
	"tokenrelay/pkg/log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const gatewayTimeout = 30 * time.Second

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("tokenrelay", zapcore.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZapLogger("tokenrelay", level)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewWalletRepository(dbConn)
	if err := repo.Migrate(context.Background()); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// private chain
	gateway := privatechain.NewGateway(
		logger,
		config.PrivateChain.ExecuteAPIHost,
		privatechain.Credentials{
			AccessKeyID:     config.PrivateChain.AWSAccessKey,
			SecretAccessKey: config.PrivateChain.AWSSecretAccessKey,
			Region:          config.PrivateChain.AWSRegion,
		},
		&http.Client{Timeout: gatewayTimeout})
	chainClient := privatechain.NewClient(gateway, config.PrivateChain.BridgeAddress)
	poller := privatechain.NewConfirmationPoller(logger, chainClient, privatechain.PollerConfig{
		Retries:  config.ReceiptRetryCount,
		Interval: config.ReceiptRetryInterval,
	})

	// transaction checks
	chainID := big.NewInt(config.PrivateChain.ChainID)
	codec := ethereum.NewTransactionCodec(
		config.PrivateChain.BridgeAddress,
		config.PrivateChain.TokenAddress,
		chainID)
	callData := ethereum.NewCallDataValidator(
		config.PrivateChain.BridgeAddress,
		ethereum.ValueRange{Min: config.TipValueMin, Max: config.TipValueMax},
		ethereum.ValueRange{Min: config.SendValueMin, Max: config.SendValueMax})
	signatures := ethereum.NewSignatureVerifier(chainID)

	// send events
	events := newEventPublisher(logger, config.Kafka)
	defer func() {
		if err := events.Close(); err != nil {
			logger.Errorw("failed to close event publisher", "error", err)
		}
	}()

	// wallet
	wallet := core.NewWallet(logger,
		core.WalletDeps{
			Repo:       repo,
			Chain:      chainClient,
			Poller:     poller,
			Pins:       identity.NewPinVerifier(logger, jwtService, repo, identity.LimitConfig{}),
			Codec:      codec,
			Validator:  callData,
			Signatures: signatures,
			Events:     events,
		},
		core.WalletConfig{
			DailyLimit: config.DailyLimit,
			SendValue:  ethereum.ValueRange{Min: config.SendValueMin, Max: config.SendValueMax},
			TipValue:   ethereum.ValueRange{Min: config.TipValueMin, Max: config.TipValueMax},
		})
	syncer := core.NewRelaySyncer(logger, chainClient)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runBackground(ctx, logger, config.ReconcileInterval, wallet, syncer)

	// handler
	walletHdlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		wallet)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewAuthMiddleware(logger, jwtService).Auth(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.SendTokens, walletHdlr.HandleSendTokens)
	mux.HandleFunc(handler.SendTip, walletHdlr.HandleSendTip)
	mux.HandleFunc(handler.SendRawTransaction, walletHdlr.HandleSendRawTransaction)
	mux.HandleFunc(handler.BindAddress, walletHdlr.HandleBindAddress)
	mux.HandleFunc(handler.SendHistory, walletHdlr.HandleSendHistory)
	mux.HandleFunc(handler.Balance, walletHdlr.HandleBalance)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

type eventPublisher interface {
	core.EventPublisher
	Close() error
}

func newEventPublisher(logger *zap.SugaredLogger, cfg config.Kafka) eventPublisher {
	if len(cfg.Brokers) == 0 {
		logger.Infow("kafka brokers not configured, send events disabled")
		return publisher.NopPublisher{}
	}

	writer := publisher.NewKafkaWriter(cfg.Brokers, cfg.Topic)
	return publisher.NewKafkaPublisher(logger, writer)
}

// runBackground reconciles pending sends and forwards relay events on every tick.
func runBackground(ctx context.Context, logger *zap.SugaredLogger, interval time.Duration, wallet *core.Wallet, syncer *core.RelaySyncer) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := wallet.ReconcilePending(ctx); err != nil {
			logger.Errorw("failed to reconcile pending sends", "error", err)
		}
		if err := syncer.Sync(ctx); err != nil {
			logger.Errorw("failed to sync relay events", "error", err)
		}
	}
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
