package bank

import "math/rand/v2"

// 帳號範圍（含兩端）。
const (
	MinAccountNumber = 10000
	MaxAccountNumber = 99999
)

// NumberGenerator 產生候選帳號；不保證唯一，碰撞由 Ledger 處理。
type NumberGenerator interface {
	Generate() int
}

// RandomNumbers 在 [MinAccountNumber, MaxAccountNumber] 內均勻抽取帳號。
type RandomNumbers struct{}

// Generate 實作 NumberGenerator。
func (RandomNumbers) Generate() int {
	return MinAccountNumber + rand.IntN(MaxAccountNumber-MinAccountNumber+1)
}

// NumberFunc 讓一般函式滿足 NumberGenerator，方便測試注入固定序列。
type NumberFunc func() int

// Generate 實作 NumberGenerator。
func (f NumberFunc) Generate() int { return f() }
