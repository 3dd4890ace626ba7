package bank

// Admin 為管理層控制器：本身無狀態，僅持有 Ledger。
// 身分驗證不屬於本層，由呈現層負責。
type Admin struct {
	ledger *Ledger
}

// NewAdmin 建立綁定指定帳本的 Admin。
func NewAdmin(l *Ledger) *Admin {
	return &Admin{ledger: l}
}

// Summary 為帳戶列表中的單列資料。
type Summary struct {
	Number  int    `json:"account_number"`
	Name    string `json:"name"`
	Balance Amount `json:"balance"`
}

// 借款功能狀態（與 halted 相反）。
const (
	LoanFeatureOn  = "on"
	LoanFeatureOff = "off"
)

// CreateAccount 代使用者開戶。
func (ad *Admin) CreateAccount(p Profile) (*Account, error) {
	return ad.ledger.OpenAccount(p)
}

// DeleteAccount 刪除帳戶；不存在時回傳 ErrAccountNotFound。
func (ad *Admin) DeleteAccount(number int) error {
	return ad.ledger.CloseAccount(number)
}

// ListAccounts 依開戶順序列出 (帳號, 名稱, 餘額)；無帳戶時回傳空切片。
func (ad *Admin) ListAccounts() []Summary {
	accts := ad.ledger.List()
	out := make([]Summary, 0, len(accts))
	for _, a := range accts {
		out = append(out, Summary{Number: a.Number, Name: a.Name, Balance: a.Balance()})
	}
	return out
}

// TotalBalanceReport 回傳全行可用餘額。
func (ad *Admin) TotalBalanceReport() Amount {
	return ad.ledger.TotalBalance()
}

// TotalLoanReport 回傳累計放款總額。
func (ad *Admin) TotalLoanReport() Amount {
	return ad.ledger.TotalLoans()
}

// ToggleLoanFeature 切換停止交易旗標，回傳切換後的借款功能狀態。
func (ad *Admin) ToggleLoanFeature() string {
	return loanFeature(ad.ledger.ToggleHalt())
}

// LoanFeature 回傳目前借款功能狀態。
func (ad *Admin) LoanFeature() string {
	return loanFeature(ad.ledger.IsHalted())
}

// DeclareBankrupt 強制進入停止交易狀態。
func (ad *Admin) DeclareBankrupt() {
	ad.ledger.SetHalted(true)
}

func loanFeature(halted bool) string {
	if halted {
		return LoanFeatureOff
	}
	return LoanFeatureOn
}
