// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊與中介層組裝。
//   - handler.go / admin.go 定義「如何處理請求」
//   - router.go 定義「請求如何被導向」
//   - main.go 組裝整體應用（注入 Ledger、設定值）
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router 建立並回傳整個 HTTP 處理鏈。
func (s *Server) Router() http.Handler {
	v1 := chi.NewRouter()

	// 健康檢查
	v1.Get("/health", s.health)

	// 帳戶操作：
	//   - POST /accounts
	//   - GET  /accounts/{number}[/balance|/history]
	//   - POST /accounts/{number}/deposit|withdraw|loan|transfer
	v1.Route("/accounts", func(r chi.Router) {
		r.Post("/", s.openAccount)
		r.Route("/{number}", func(r chi.Router) {
			r.Get("/", s.getAccount)
			r.Get("/balance", s.balance)
			r.Get("/history", s.history)
			r.Post("/deposit", s.amountOp(s.Ledger.Deposit))
			r.Post("/withdraw", s.amountOp(s.Ledger.Withdraw))
			r.Post("/loan", s.amountOp(s.Ledger.TakeLoan))
			r.Post("/transfer", s.transfer)
		})
	})

	// 管理端點：需通過管理者標頭檢查
	v1.Route("/admin", func(r chi.Router) {
		r.Use(AdminAuth(s.opts.Admin))

		r.Post("/accounts", s.adminCreateAccount)
		r.Get("/accounts", s.adminListAccounts)
		r.Delete("/accounts/{number}", s.adminDeleteAccount)
		r.Get("/reports/balance", s.balanceReport)
		r.Get("/reports/loans", s.loanReport)
		r.Post("/loan-feature/toggle", s.toggleLoanFeature)
		r.Post("/bankrupt", s.declareBankrupt)
		r.Get("/status", s.adminStatus)
	})

	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://*"}
	}

	root := chi.NewRouter()
	root.Use(middleware.RequestID)
	root.Use(middleware.Logger)
	root.Use(middleware.Recoverer)
	root.Use(middleware.Timeout(s.opts.RequestTimeout))
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderAdminName, HeaderAdminEmail, HeaderAdminPassword},
		MaxAge:         300,
	}))

	// 所有端點掛在 /api/v1 下，同時保留根路徑方便本地測試。
	root.Mount("/api/v1", v1)
	root.Mount("/", v1)

	return root
}
