package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
)

type impl struct {
	backend *ethclient.Client
	key     *ecdsa.PrivateKey
	address domain.Address
	chainId domain.ChainId
}

func New(cfg *ClientCfg) (Client, error) {
	backend, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		return nil, err
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		backend.Close()
		return nil, err
	}
	address := crypto.PubkeyToAddress(key.PublicKey)
	return &impl{
		backend: backend,
		key:     key,
		address: domain.Address(address.Hex()),
		chainId: cfg.ChainId,
	}, nil
}

func MustNew(cfg *ClientCfg) Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

func (im *impl) RequestAccounts(ctx bCtx.Ctx) ([]domain.Address, error) {
	return []domain.Address{im.address}, nil
}

func (im *impl) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	id, err := im.backend.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	return domain.ChainId(id.Int64()), nil
}

func (im *impl) SwitchChain(ctx bCtx.Ctx, chainId domain.ChainId) error {
	current, err := im.ChainId(ctx)
	if err != nil {
		return err
	}
	if current != chainId {
		ctx.WithFields(log.Fields{
			"want": chainId,
			"got":  current,
		}).Warn("node serves a different chain")
	}
	return nil
}

func (im *impl) TransactOpts(ctx bCtx.Ctx) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(im.key, big.NewInt(int64(im.chainId)))
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func (im *impl) Address() domain.Address {
	return im.address
}

func (im *impl) Backend() *ethclient.Client {
	return im.backend
}

func (im *impl) Close() {
	im.backend.Close()
}
