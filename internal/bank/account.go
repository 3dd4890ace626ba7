// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 與 Profile 結構，不含任何 HTTP 細節。

package bank

import "github.com/shopspring/decimal"

// Amount 為帳本使用的金額型別。
type Amount = decimal.Decimal

// MaxLoans 為每個帳戶可借款的次數上限。
const MaxLoans = 2

// 常見帳戶類型；其他自由文字同樣接受。
const (
	TypeSavings = "Savings"
	TypeCurrent = "Current"
)

// Profile 為開戶時提供的使用者資料。
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Type    string `json:"account_type"`
}

// Account represents a bank account.
// 餘額、借款次數與交易紀錄只能經由 Ledger 變更；
// 呼叫端拿到的永遠是拷貝。
type Account struct {
	Number int
	Profile

	balance Amount
	loans   int
	records []Record
}

// Balance 回傳目前餘額。
func (a *Account) Balance() Amount { return a.balance }

// LoanCount 回傳已借款次數（0..MaxLoans）。
func (a *Account) LoanCount() int { return a.loans }

// History 依時間順序回傳完整交易紀錄。
// 每次呼叫都回傳新的切片，修改它不影響帳戶。
func (a *Account) History() []Record {
	out := make([]Record, len(a.records))
	copy(out, a.records)
	return out
}

// clone 產生與內部狀態不共用切片的拷貝。
func (a *Account) clone() *Account {
	cp := *a
	cp.records = a.History()
	return &cp
}
