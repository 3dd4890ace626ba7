// internal/server/admin.go
//
// 管理端點與管理者身分檢查。
package server

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"banksim/internal/bank"
)

// 管理者身分以請求標頭傳遞。
const (
	HeaderAdminName     = "X-Admin-Name"
	HeaderAdminEmail    = "X-Admin-Email"
	HeaderAdminPassword = "X-Admin-Password"
)

// Credentials 為管理者帳密；三者皆空時不做檢查。
type Credentials struct {
	Name     string
	Email    string
	Password string
}

func (c Credentials) empty() bool {
	return c.Name == "" && c.Email == "" && c.Password == ""
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// AdminAuth 比對三個管理者標頭，任一不符即回 401。
func AdminAuth(creds Credentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if creds.empty() {
				next.ServeHTTP(w, r)
				return
			}
			ok := equal(r.Header.Get(HeaderAdminName), creds.Name) &&
				equal(r.Header.Get(HeaderAdminEmail), creds.Email) &&
				equal(r.Header.Get(HeaderAdminPassword), creds.Password)
			if !ok {
				log.Printf("level=warn component=admin msg=\"admin credentials rejected\" path=%s remote=%s", r.URL.Path, r.RemoteAddr)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type totalResponse struct {
	Total bank.Amount `json:"total"`
}

type statusResponse struct {
	Halted      bool   `json:"halted"`
	LoanFeature string `json:"loan_feature"`
}

func (s *Server) status() statusResponse {
	return statusResponse{Halted: s.Ledger.IsHalted(), LoanFeature: s.Admin.LoanFeature()}
}

// adminCreateAccount 處理 POST /admin/accounts。
func (s *Server) adminCreateAccount(w http.ResponseWriter, r *http.Request) {
	var p bank.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	a, err := s.Admin.CreateAccount(p)
	if err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	log.Printf("level=info component=admin msg=\"account created\" account=%d", a.Number)
	writeJSON(w, http.StatusCreated, toAccountResponse(a))
}

// adminListAccounts 處理 GET /admin/accounts。
func (s *Server) adminListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Admin.ListAccounts())
}

// adminDeleteAccount 處理 DELETE /admin/accounts/{number}。
func (s *Server) adminDeleteAccount(w http.ResponseWriter, r *http.Request) {
	n, err := accountNumber(r)
	if err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	if err := s.Admin.DeleteAccount(n); err != nil {
		writeLedgerErr(w, r, err)
		return
	}
	log.Printf("level=info component=admin msg=\"account deleted\" account=%d", n)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) balanceReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, totalResponse{Total: s.Admin.TotalBalanceReport()})
}

func (s *Server) loanReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, totalResponse{Total: s.Admin.TotalLoanReport()})
}

// toggleLoanFeature 處理 POST /admin/loan-feature/toggle。
func (s *Server) toggleLoanFeature(w http.ResponseWriter, r *http.Request) {
	state := s.Admin.ToggleLoanFeature()
	log.Printf("level=info component=admin msg=\"loan feature toggled\" loan_feature=%s", state)
	writeJSON(w, http.StatusOK, s.status())
}

// declareBankrupt 處理 POST /admin/bankrupt；重複呼叫結果相同。
func (s *Server) declareBankrupt(w http.ResponseWriter, r *http.Request) {
	s.Admin.DeclareBankrupt()
	log.Printf("level=info component=admin msg=\"bank declared bankrupt\"")
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) adminStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.status())
}
