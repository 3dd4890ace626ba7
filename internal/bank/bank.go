// internal/bank/bank.go

// Package bank 定義核心商業邏輯：開戶、存款、提款、借款、轉帳、查詢與交易紀錄。
// 採用單一互斥鎖 (sync.Mutex) 保障所有狀態變更「原子且序列化」，
// 轉帳的扣款與入帳不會與其他操作交錯。
package bank

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// numberAttempts 為單次開戶時抽取帳號的重試上限。
const numberAttempts = 100

// Ledger 為聚合根 (Aggregate Root)：管理全系統帳戶與全行旗標。
// - mu：序列化所有讀寫（含 halted 旗標）。
// - accts：帳號 → *Account，內部指標只在臨界區內修改。
// - order：開戶順序，List 依此輸出。
// - loans：累計放款總額，只增不減（刪除帳戶也不扣回）。
type Ledger struct {
	mu       sync.Mutex
	gen      NumberGenerator
	incoming bool

	accts  map[int]*Account
	order  []int
	halted bool
	loans  Amount
}

// Option 調整 Ledger 的建立行為。
type Option func(*Ledger)

// WithNumberGenerator 替換帳號產生器。
func WithNumberGenerator(g NumberGenerator) Option {
	return func(l *Ledger) { l.gen = g }
}

// WithIncomingTransfers 設定是否同時在收款方記錄轉入紀錄。
// 預設關閉：只有付款方的紀錄會出現轉帳。
func WithIncomingTransfers(on bool) Option {
	return func(l *Ledger) { l.incoming = on }
}

// NewLedger 建立空白帳本（狀態為 Active，無外部依賴）。
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		gen:   RandomNumbers{},
		accts: make(map[int]*Account),
		loans: decimal.Zero,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// allocNumber 抽取未被使用的帳號；呼叫端須持有 mu。
func (l *Ledger) allocNumber() (int, error) {
	if len(l.accts) >= MaxAccountNumber-MinAccountNumber+1 {
		return 0, ErrNumbersExhausted
	}
	for i := 0; i < numberAttempts; i++ {
		n := l.gen.Generate()
		if n < MinAccountNumber || n > MaxAccountNumber {
			continue
		}
		if _, taken := l.accts[n]; !taken {
			return n, nil
		}
	}
	return 0, ErrNumbersExhausted
}

// OpenAccount 以使用者資料開戶：分配帳號、餘額為零、紀錄為空。
// 開戶不受 halted 旗標影響。
func (l *Ledger) OpenAccount(p Profile) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, err := l.allocNumber()
	if err != nil {
		return nil, err
	}
	a := &Account{Number: n, Profile: p, balance: decimal.Zero}
	l.accts[n] = a
	l.order = append(l.order, n)
	return a.clone(), nil
}

// CloseAccount 自帳本移除帳戶（無軟刪除）；累計放款總額不變。
func (l *Ledger) CloseAccount(number int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accts[number]; !ok {
		return fmt.Errorf("close %d: %w", number, ErrAccountNotFound)
	}
	delete(l.accts, number)
	for i, n := range l.order {
		if n == number {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get 依帳號取得帳戶拷貝。
func (l *Ledger) Get(number int) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return nil, fmt.Errorf("get %d: %w", number, ErrAccountNotFound)
	}
	return a.clone(), nil
}

// List 依開戶順序回傳所有帳戶拷貝。
func (l *Ledger) List() []*Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Account, 0, len(l.order))
	for _, n := range l.order {
		out = append(out, l.accts[n].clone())
	}
	return out
}

// Balance 回傳指定帳戶的目前餘額；停止交易時仍可查詢。
func (l *Ledger) Balance(number int) (Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return decimal.Zero, fmt.Errorf("balance %d: %w", number, ErrAccountNotFound)
	}
	return a.balance, nil
}

// History 回傳指定帳戶的交易紀錄拷貝。
func (l *Ledger) History(number int) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return nil, fmt.Errorf("history %d: %w", number, ErrAccountNotFound)
	}
	return a.History(), nil
}

// guard 為所有異動操作共用的前置檢查：停止交易 → 金額 → 帳戶存在。
// 呼叫端須持有 mu。
func (l *Ledger) guard(number int, amt Amount) (*Account, error) {
	if l.halted {
		return nil, ErrHalted
	}
	if !amt.IsPositive() {
		return nil, ErrInvalidAmount
	}
	a, ok := l.accts[number]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
	}
	return a, nil
}

// Deposit 存款，回傳新餘額。
func (l *Ledger) Deposit(number int, amt Amount) (Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.guard(number, amt)
	if err != nil {
		return decimal.Zero, err
	}
	a.balance = a.balance.Add(amt)
	a.records = append(a.records, newRecord(KindDeposit, amt))
	return a.balance, nil
}

// Withdraw 提款：金額大於餘額時回傳 ErrInsufficientFunds，餘額不變。
func (l *Ledger) Withdraw(number int, amt Amount) (Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.guard(number, amt)
	if err != nil {
		return decimal.Zero, err
	}
	if amt.GreaterThan(a.balance) {
		return a.balance, ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amt)
	a.records = append(a.records, newRecord(KindWithdraw, amt))
	return a.balance, nil
}

// TakeLoan 借款：每帳戶至多 MaxLoans 次；成功時同步累加全行放款總額。
func (l *Ledger) TakeLoan(number int, amt Amount) (Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.guard(number, amt)
	if err != nil {
		return decimal.Zero, err
	}
	if a.loans >= MaxLoans {
		return a.balance, ErrLoanLimitReached
	}
	a.balance = a.balance.Add(amt)
	a.loans++
	l.loans = l.loans.Add(amt)
	a.records = append(a.records, newRecord(KindLoan, amt))
	return a.balance, nil
}

// Transfer 轉帳為「單一臨界區內」的原子操作：
// 1) 檢查停止交易與金額 → 2) 檢查餘額 → 3) 檢查收款帳戶 → 4) 扣款與入帳。
// 任一步驟失敗皆不改變任何帳戶狀態。允許轉給自己（淨額不變）。
func (l *Ledger) Transfer(from, to int, amt Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	src, err := l.guard(from, amt)
	if err != nil {
		return err
	}
	if amt.GreaterThan(src.balance) {
		return ErrInsufficientFunds
	}
	dst, ok := l.accts[to]
	if !ok {
		return fmt.Errorf("recipient %d: %w", to, ErrAccountNotFound)
	}

	src.balance = src.balance.Sub(amt)
	dst.balance = dst.balance.Add(amt)

	src.records = append(src.records, newTransferRecord(amt, to, DirectionOut))
	if l.incoming && from != to {
		dst.records = append(dst.records, newTransferRecord(amt, from, DirectionIn))
	}
	return nil
}

// TotalBalance 回傳目前所有帳戶餘額總和。
func (l *Ledger) TotalBalance() Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := decimal.Zero
	for _, a := range l.accts {
		total = total.Add(a.balance)
	}
	return total
}

// TotalLoans 回傳累計放款總額。
func (l *Ledger) TotalLoans() Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loans
}

// IsHalted 回傳全行是否停止交易。
func (l *Ledger) IsHalted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.halted
}

// ToggleHalt 切換停止交易旗標，回傳切換後的狀態。
func (l *Ledger) ToggleHalt() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.halted = !l.halted
	return l.halted
}

// SetHalted 直接設定停止交易旗標。
func (l *Ledger) SetHalted(halted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.halted = halted
}
