package seaport

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bearhustle/goapi/domain"
)

// OfferItem mirrors the on-chain OfferItem tuple.
type OfferItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
}

// ConsiderationItem mirrors the on-chain ConsiderationItem tuple.
type ConsiderationItem struct {
	ItemType             uint8
	Token                common.Address
	IdentifierOrCriteria *big.Int
	StartAmount          *big.Int
	EndAmount            *big.Int
	Recipient            common.Address
}

type OrderParameters struct {
	Offerer                         common.Address
	Zone                            common.Address
	Offer                           []OfferItem
	Consideration                   []ConsiderationItem
	OrderType                       uint8
	StartTime                       *big.Int
	EndTime                         *big.Int
	ZoneHash                        [32]byte
	Salt                            *big.Int
	ConduitKey                      [32]byte
	TotalOriginalConsiderationItems *big.Int
}

type Order struct {
	Parameters OrderParameters
	Signature  []byte
}

// EthValue sums the native-coin consideration amounts. Those entries carry the
// zero token address.
func (o *Order) EthValue() *big.Int {
	total := new(big.Int)
	for _, item := range o.Parameters.Consideration {
		if item.Token == (common.Address{}) {
			total.Add(total, item.EndAmount)
		}
	}
	return total
}

// flexBig accepts decimal strings, JSON numbers and 0x-prefixed hex.
type flexBig big.Int

func (f *flexBig) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v := (*big.Int)(f)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if _, ok := v.SetString(s[2:], 16); !ok {
			return domain.ErrNoOrderDescriptor
		}
		return nil
	}
	if _, ok := v.SetString(s, 10); !ok {
		return domain.ErrNoOrderDescriptor
	}
	return nil
}

func (f *flexBig) Int() *big.Int {
	if f == nil {
		return new(big.Int)
	}
	return new(big.Int).Set((*big.Int)(f))
}

type wireItem struct {
	ItemType             flexBig `json:"itemType"`
	Token                string  `json:"token"`
	IdentifierOrCriteria flexBig `json:"identifierOrCriteria"`
	StartAmount          flexBig `json:"startAmount"`
	EndAmount            flexBig `json:"endAmount"`
	Recipient            string  `json:"recipient"`
}

type wireParameters struct {
	Offerer                         string     `json:"offerer"`
	Zone                            string     `json:"zone"`
	Offer                           []wireItem `json:"offer"`
	Consideration                   []wireItem `json:"consideration"`
	OrderType                       flexBig    `json:"orderType"`
	StartTime                       flexBig    `json:"startTime"`
	EndTime                         flexBig    `json:"endTime"`
	ZoneHash                        string     `json:"zoneHash"`
	Salt                            flexBig    `json:"salt"`
	ConduitKey                      string     `json:"conduitKey"`
	TotalOriginalConsiderationItems flexBig    `json:"totalOriginalConsiderationItems"`
}

type wireOrder struct {
	Parameters *wireParameters `json:"parameters"`
	Signature  string          `json:"signature"`
}

// ParseOrder decodes a stored order descriptor into the on-chain tuple shape.
func ParseOrder(raw json.RawMessage) (*Order, error) {
	wire := wireOrder{}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, domain.ErrNoOrderDescriptor
	}
	if wire.Parameters == nil || len(wire.Parameters.Offer) == 0 {
		return nil, domain.ErrNoOrderDescriptor
	}
	p := wire.Parameters

	params := OrderParameters{
		Offerer:                         common.HexToAddress(p.Offerer),
		Zone:                            common.HexToAddress(p.Zone),
		Offer:                           make([]OfferItem, 0, len(p.Offer)),
		Consideration:                   make([]ConsiderationItem, 0, len(p.Consideration)),
		OrderType:                       uint8(p.OrderType.Int().Uint64()),
		StartTime:                       p.StartTime.Int(),
		EndTime:                         p.EndTime.Int(),
		ZoneHash:                        [32]byte(common.HexToHash(p.ZoneHash)),
		Salt:                            p.Salt.Int(),
		ConduitKey:                      [32]byte(common.HexToHash(p.ConduitKey)),
		TotalOriginalConsiderationItems: p.TotalOriginalConsiderationItems.Int(),
	}
	if params.TotalOriginalConsiderationItems.Sign() == 0 {
		params.TotalOriginalConsiderationItems = big.NewInt(int64(len(p.Consideration)))
	}
	for _, item := range p.Offer {
		params.Offer = append(params.Offer, OfferItem{
			ItemType:             uint8(item.ItemType.Int().Uint64()),
			Token:                common.HexToAddress(item.Token),
			IdentifierOrCriteria: item.IdentifierOrCriteria.Int(),
			StartAmount:          item.StartAmount.Int(),
			EndAmount:            item.EndAmount.Int(),
		})
	}
	for _, item := range p.Consideration {
		params.Consideration = append(params.Consideration, ConsiderationItem{
			ItemType:             uint8(item.ItemType.Int().Uint64()),
			Token:                common.HexToAddress(item.Token),
			IdentifierOrCriteria: item.IdentifierOrCriteria.Int(),
			StartAmount:          item.StartAmount.Int(),
			EndAmount:            item.EndAmount.Int(),
			Recipient:            common.HexToAddress(item.Recipient),
		})
	}

	signature := []byte{}
	if wire.Signature != "" {
		decoded, err := hexutil.Decode(ensureHexPrefix(wire.Signature))
		if err != nil {
			return nil, domain.ErrNoOrderDescriptor
		}
		signature = decoded
	}
	return &Order{Parameters: params, Signature: signature}, nil
}

func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s
	}
	return "0x" + s
}
