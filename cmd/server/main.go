// cmd/server/main.go

// 本服務提供開戶、存提款、借款、轉帳與管理端報表等 RESTful API。
// 此檔案負責讀取設定、初始化模組（bank, server），
// 並啟動 HTTP 伺服器；收到 SIGINT/SIGTERM 時優雅關閉。

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"banksim/internal/bank"
	"banksim/internal/config"
	"banksim/internal/server"
)

func main() {
	// .env 不存在時僅使用環境變數
	if err := godotenv.Load(); err != nil {
		log.Printf("level=info component=main msg=\"no .env file loaded\" err=%v", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=main msg=\"cannot load config\" err=%v", err)
	}

	// 初始化帳本（狀態僅存在記憶體，重啟即清空）
	ledger := bank.NewLedger(bank.WithIncomingTransfers(cfg.RecordIncomingTransfers))

	s := server.NewServer(ledger, server.Options{
		Admin: server.Credentials{
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		},
		RequestTimeout: cfg.RequestTimeout(),
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: s.Router(),
	}

	go func() {
		log.Printf("level=info component=main msg=\"bank server running\" addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("level=fatal component=main msg=\"server failed\" err=%v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("level=info component=main msg=\"shutting down\"")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("level=fatal component=main msg=\"forced shutdown\" err=%v", err)
	}
	log.Printf("level=info component=main msg=\"server exited\"")
}
