// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式，以及領域錯誤 → HTTP 狀態碼的對應。
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"banksim/internal/bank"
)

// writeJSON 統一輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 統一輸出錯誤回應（純文字訊息）。
func writeErr(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}

// statusFor 將領域錯誤轉為 HTTP 狀態碼；未知錯誤視為 500。
func statusFor(err error) int {
	switch {
	case errors.Is(err, bank.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, bank.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, bank.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, bank.ErrLoanLimitReached):
		return http.StatusForbidden
	case errors.Is(err, bank.ErrHalted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeLedgerErr 依錯誤種類輸出；500 類額外記錄到日誌。
func writeLedgerErr(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		log.Printf("level=error component=server msg=\"ledger operation failed\" path=%s err=%v", r.URL.Path, err)
	}
	writeErr(w, err, code)
}
