package seaport

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/service/wallet"
)

// Action is one deferred fulfillment step. Execute signs and broadcasts it.
type Action struct {
	Description string
	Execute     func(ctx bCtx.Ctx) (*types.Transaction, error)
}

// Fulfillment carries either deferred actions or an already broadcast
// transaction, never both.
type Fulfillment struct {
	Actions []Action
	Tx      *types.Transaction
}

type Client interface {
	// FulfillOrder prepares the purchase of the given order descriptor on
	// behalf of fulfiller.
	FulfillOrder(c bCtx.Ctx, descriptor json.RawMessage, fulfiller domain.Address) (*Fulfillment, error)
	// WaitMined blocks until the transaction is mined and checks its status.
	WaitMined(c bCtx.Ctx, tx *types.Transaction) error
}

type ClientCfg struct {
	Contract domain.Address
	Wallet   wallet.Client
}
