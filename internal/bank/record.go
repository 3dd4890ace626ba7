package bank

import (
	"time"

	"github.com/google/uuid"
)

// Kind 標示交易紀錄的種類。
type Kind string

const (
	KindDeposit  Kind = "Deposit"
	KindWithdraw Kind = "Withdraw"
	KindLoan     Kind = "Loan"
	KindTransfer Kind = "Transfer"
)

// 轉帳紀錄的方向；其餘種類不帶方向。
const (
	DirectionOut = "out"
	DirectionIn  = "in"
)

// Record represents a transaction record.
// Counterparty 與 Direction 只在 KindTransfer 時有值。
type Record struct {
	ID           uuid.UUID `json:"id"`
	Time         time.Time `json:"time"`
	Kind         Kind      `json:"kind"`
	Amount       Amount    `json:"amount"`
	Counterparty int       `json:"counterparty_account,omitempty"`
	Direction    string    `json:"direction,omitempty"`
}

func newRecord(kind Kind, amt Amount) Record {
	return Record{ID: uuid.New(), Time: time.Now(), Kind: kind, Amount: amt}
}

func newTransferRecord(amt Amount, counterparty int, direction string) Record {
	r := newRecord(KindTransfer, amt)
	r.Counterparty = counterparty
	r.Direction = direction
	return r
}
