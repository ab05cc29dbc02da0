package market

import (
	"encoding/json"

	"github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/domain"
)

// NotListed is rendered when a listing carries no resolvable price.
const NotListed = "Not listed"

// Item is one listing as shown to a buyer. Price is already converted to a
// display amount in the chain's native unit.
type Item struct {
	TokenId   string           `json:"tokenId"`
	Price     string           `json:"price"`
	Image     string           `json:"image,omitempty"`
	Seller    domain.Address   `json:"seller"`
	Order     json.RawMessage  `json:"order,omitempty"`
	OrderHash domain.OrderHash `json:"orderHash,omitempty"`
	OnChain   bool             `json:"onChain"`
}

type UseCase interface {
	// Connect opens a wallet session and returns the active account.
	Connect(c ctx.Ctx) (domain.Address, error)
	// Disconnect drops the session. Safe to call when not connected.
	Disconnect(c ctx.Ctx)
	Connected() bool
	// LoadListings fetches and renders one page from the order store.
	LoadListings(c ctx.Ctx, page int) ([]Item, error)
	// Buy purchases the item's order. Requires a connected session.
	Buy(c ctx.Ctx, item *Item) (domain.TxHash, error)
}
