package ledger

import "github.com/shopspring/decimal"

// SeedBalance is a test helper that overwrites an account balance when the
// in-memory ledger is in use. The account is created if missing.
func SeedBalance(l Ledger, code string, amount decimal.Decimal) {
	mem, ok := l.(*inMemoryLedger)
	if !ok {
		return
	}
	mem.mu.Lock()
	defer mem.mu.Unlock()
	acct, exists := mem.accounts[code]
	if !exists {
		acct = &account{}
		mem.accounts[code] = acct
	}
	acct.balance = amount
}
