package wallet

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/domain"
)

// Client is a key-backed wallet bound to one JSON-RPC node.
type Client interface {
	// RequestAccounts returns the addresses this wallet can sign for.
	RequestAccounts(ctx bCtx.Ctx) ([]domain.Address, error)
	ChainId(ctx bCtx.Ctx) (domain.ChainId, error)
	// SwitchChain asks for the given chain. Nodes serve a single chain, so a
	// mismatch is reported but not treated as fatal.
	SwitchChain(ctx bCtx.Ctx, chainId domain.ChainId) error
	// TransactOpts returns signing options for the wallet key.
	TransactOpts(ctx bCtx.Ctx) (*bind.TransactOpts, error)
	Address() domain.Address
	Backend() *ethclient.Client
	Close()
}

type ClientCfg struct {
	RpcUrl     string
	PrivateKey string
	ChainId    domain.ChainId
}
