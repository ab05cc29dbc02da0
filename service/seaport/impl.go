package seaport

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/service/wallet"
)

const fulfillOrderAbi = `[{"inputs":[{"components":[{"components":[{"internalType":"address","name":"offerer","type":"address"},{"internalType":"address","name":"zone","type":"address"},{"components":[{"internalType":"uint8","name":"itemType","type":"uint8"},{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"identifierOrCriteria","type":"uint256"},{"internalType":"uint256","name":"startAmount","type":"uint256"},{"internalType":"uint256","name":"endAmount","type":"uint256"}],"internalType":"struct OfferItem[]","name":"offer","type":"tuple[]"},{"components":[{"internalType":"uint8","name":"itemType","type":"uint8"},{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"identifierOrCriteria","type":"uint256"},{"internalType":"uint256","name":"startAmount","type":"uint256"},{"internalType":"uint256","name":"endAmount","type":"uint256"},{"internalType":"address payable","name":"recipient","type":"address"}],"internalType":"struct ConsiderationItem[]","name":"consideration","type":"tuple[]"},{"internalType":"uint8","name":"orderType","type":"uint8"},{"internalType":"uint256","name":"startTime","type":"uint256"},{"internalType":"uint256","name":"endTime","type":"uint256"},{"internalType":"bytes32","name":"zoneHash","type":"bytes32"},{"internalType":"uint256","name":"salt","type":"uint256"},{"internalType":"bytes32","name":"conduitKey","type":"bytes32"},{"internalType":"uint256","name":"totalOriginalConsiderationItems","type":"uint256"}],"internalType":"struct OrderParameters","name":"parameters","type":"tuple"},{"internalType":"bytes","name":"signature","type":"bytes"}],"internalType":"struct Order","name":"order","type":"tuple"},{"internalType":"bytes32","name":"fulfillerConduitKey","type":"bytes32"}],"name":"fulfillOrder","outputs":[{"internalType":"bool","name":"fulfilled","type":"bool"}],"stateMutability":"payable","type":"function"}]`

type impl struct {
	contract common.Address
	wallet   wallet.Client
	abi      abi.ABI
}

func New(cfg *ClientCfg) (Client, error) {
	parsed, err := abi.JSON(strings.NewReader(fulfillOrderAbi))
	if err != nil {
		return nil, err
	}
	return &impl{
		contract: common.HexToAddress(string(cfg.Contract)),
		wallet:   cfg.Wallet,
		abi:      parsed,
	}, nil
}

func MustNew(cfg *ClientCfg) Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

func (im *impl) FulfillOrder(c bCtx.Ctx, descriptor json.RawMessage, fulfiller domain.Address) (*Fulfillment, error) {
	order, err := ParseOrder(descriptor)
	if err != nil {
		c.WithField("err", err).Error("seaport.ParseOrder failed")
		return nil, err
	}

	action := Action{
		Description: "fulfill order",
		Execute: func(ctx bCtx.Ctx) (*types.Transaction, error) {
			return im.sendFulfillment(ctx, order)
		},
	}
	return &Fulfillment{Actions: []Action{action}}, nil
}

func (im *impl) sendFulfillment(ctx bCtx.Ctx, order *Order) (*types.Transaction, error) {
	opts, err := im.wallet.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	opts.Value = order.EthValue()

	backend := im.wallet.Backend()
	contract := bind.NewBoundContract(im.contract, im.abi, backend, backend, backend)
	tx, err := contract.Transact(opts, "fulfillOrder", *order, order.Parameters.ConduitKey)
	if err != nil {
		ctx.WithField("err", err).Error("contract.Transact failed")
		return nil, xerrors.Errorf("fulfillOrder: %v: %w", err, domain.ErrFulfillment)
	}
	return tx, nil
}

func (im *impl) WaitMined(c bCtx.Ctx, tx *types.Transaction) error {
	receipt, err := bind.WaitMined(c, im.wallet.Backend(), tx)
	if err != nil {
		c.WithField("err", err).Error("bind.WaitMined failed")
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.WithField("tx", tx.Hash().Hex()).Error("transaction reverted")
		return domain.ErrFulfillment
	}
	return nil
}
