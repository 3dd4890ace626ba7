// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 帳本層只回傳這些錯誤值，由上層 HTTP handler 轉換成適當的狀態碼與訊息。

package bank

import "errors"

var (
	// ErrAccountNotFound 代表帳號未註冊於帳本。
	ErrAccountNotFound = errors.New("account does not exist")

	// ErrInvalidAmount 代表金額非法（<= 0）。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds 代表提款或轉帳金額超過目前餘額。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrLoanLimitReached 代表該帳戶已借滿 MaxLoans 次。
	ErrLoanLimitReached = errors.New("loan limit reached")

	// ErrHalted 代表銀行已停止交易（破產模式），任何異動操作皆不執行。
	ErrHalted = errors.New("the bank is bankrupt, no transactions can be processed")

	// ErrNumbersExhausted 代表在重試上限內找不到未使用的帳號。
	ErrNumbersExhausted = errors.New("no free account number available")
)
