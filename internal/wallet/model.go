package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// Demo user roles. The role is a tag, not an authorization boundary.
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

// Wallet is the core ledger entity holding an address and balance for one
// demo user. Wallets live for the lifetime of the process and are never
// deleted.
type Wallet struct {
	ID        string
	OwnerID   string
	Address   string
	Role      string
	CreatedAt time.Time
}

// Balance encapsulates available funds for a wallet at a point in time.
type Balance struct {
	WalletID string
	Amount   decimal.Decimal
	AsOf     time.Time
}

// AccountCode derives the ledger account code backing a wallet.
func AccountCode(walletID string) string {
	return "wallet:" + walletID
}
