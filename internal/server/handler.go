// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP RESTful 介面，作為 bank 帳本的呈現層。
// 每個 handler 僅負責：
//  1. 解析與驗證 HTTP 請求（帳號格式、JSON）
//  2. 呼叫 bank 層執行商業邏輯
//  3. 回傳標準化 JSON 回應或錯誤
//
// bank 不依賴 HTTP，server 依賴 bank。
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"banksim/internal/bank"
)

var errBadNumber = errors.New("account number must be an integer")

// Options 為建立 Server 時的可調參數。
type Options struct {
	Admin          Credentials
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Server 為 HTTP 層核心結構：
// - Ledger：帳本核心。
// - Admin：管理層控制器，與 Ledger 共用同一份狀態。
type Server struct {
	Ledger *bank.Ledger
	Admin  *bank.Admin
	opts   Options
}

// NewServer 建立新的 HTTP 伺服器。
func NewServer(l *bank.Ledger, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	return &Server{Ledger: l, Admin: bank.NewAdmin(l), opts: opts}
}

type accountResponse struct {
	Number    int         `json:"account_number"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Type      string      `json:"account_type"`
	Balance   bank.Amount `json:"balance"`
	LoanCount int         `json:"loan_count"`
}

func toAccountResponse(a *bank.Account) accountResponse {
	return accountResponse{
		Number:    a.Number,
		Name:      a.Name,
		Email:     a.Email,
		Address:   a.Address,
		Type:      a.Type,
		Balance:   a.Balance(),
		LoanCount: a.LoanCount(),
	}
}

type amountRequest struct {
	Amount bank.Amount `json:"amount"`
}

type transferRequest struct {
	To     int         `json:"to"`
	Amount bank.Amount `json:"amount"`
}

type balanceResponse struct {
	Number  int         `json:"account_number"`
	Balance bank.Amount `json:"balance"`
}

// accountNumber 解析路徑中的 {number}。
func accountNumber(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		return 0, errBadNumber
	}
	return n, nil
}

// openAccount 處理 POST /accounts → 開戶。
func (s *Server) openAccount(w http.ResponseWriter, r *http.Request) {
	var p bank.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	a, err := s.Ledger.OpenAccount(p)
	if err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(a))
}

// getAccount 處理 GET /accounts/{number}。
func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	n, err := accountNumber(r)
	if err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	a, err := s.Ledger.Get(n)
	if err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(a))
}

// balance 處理 GET /accounts/{number}/balance。
func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	n, err := accountNumber(r)
	if err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	b, err := s.Ledger.Balance(n)
	if err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Number: n, Balance: b})
}

// history 處理 GET /accounts/{number}/history。
func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	n, err := accountNumber(r)
	if err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	h, err := s.Ledger.History(n)
	if err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// amountOp 為存款、提款、借款共用的流程：解析帳號與金額 → 執行 → 回傳新餘額。
func (s *Server) amountOp(op func(int, bank.Amount) (bank.Amount, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := accountNumber(r)
		if err != nil {
			writeErr(w, err, http.StatusBadRequest)
			return
		}
		var req amountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, err, http.StatusBadRequest)
			return
		}
		b, err := op(n, req.Amount)
		if err != nil {
			writeLedgerErr(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, balanceResponse{Number: n, Balance: b})
	}
}

// transfer 處理 POST /accounts/{number}/transfer → JSON {to, amount}。
// 成功後同時回傳雙方最新餘額。
func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	from, err := accountNumber(r)
	if err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	if err := s.Ledger.Transfer(from, req.To, req.Amount); err != nil {
		writeLedgerErr(w, r, err)
		return
	}

	fromBal, _ := s.Ledger.Balance(from)
	toBal, _ := s.Ledger.Balance(req.To)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "transfer success",
		"from":    balanceResponse{Number: from, Balance: fromBal},
		"to":      balanceResponse{Number: req.To, Balance: toBal},
	})
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
