package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	bValidator "github.com/bearhustle/goapi/base/validator"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/service/orderstore"
	"github.com/bearhustle/goapi/service/seaport"
	"github.com/bearhustle/goapi/service/wallet"
	market_usecase "github.com/bearhustle/goapi/stores/market/usecase"
)

func init() {
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/market/config.yaml`)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	// the signing key is secret, only ever taken from the environment
	viper.BindEnv("WALLET_PRIVATE_KEY")
}

func main() {
	context := bCtx.Background()

	chainId := domain.ChainId(viper.GetInt64("network.chainId"))
	walletClient := wallet.MustNew(&wallet.ClientCfg{
		RpcUrl:     viper.GetString("network.rpcUrl"),
		PrivateKey: viper.GetString("WALLET_PRIVATE_KEY"),
		ChainId:    chainId,
	})
	defer walletClient.Close()

	seaportContract := viper.GetString("contracts.seaport")
	if !bValidator.IsValidAddress(seaportContract) {
		log.Log().WithField("address", seaportContract).Panic("invalid seaport address in config")
	}
	seaportClient := seaport.MustNew(&seaport.ClientCfg{
		Contract: domain.Address(seaportContract),
		Wallet:   walletClient,
	})
	orderStoreClient := orderstore.New(&orderstore.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("http.timeout"),
		BaseUrl:    viper.GetString("orderstore.baseUrl"),
	})

	uc := market_usecase.NewMarketUseCase(&market_usecase.MarketUseCaseCfg{
		OrderStore: orderStoreClient,
		Seaport:    seaportClient,
		Wallet:     walletClient,
		ChainId:    chainId,
		PageLimit:  viper.GetInt("market.pageLimit"),
	})

	account, err := uc.Connect(context)
	if err != nil {
		context.WithField("err", err).Error("wallet connect failed")
		os.Exit(1)
	}
	defer uc.Disconnect(context)

	page := viper.GetInt("market.page")
	items, err := uc.LoadListings(context, page)
	if err != nil {
		context.WithField("err", err).Error("load listings failed")
		os.Exit(1)
	}
	for _, item := range items {
		context.WithFields(log.Fields{
			"tokenId": item.TokenId,
			"price":   item.Price,
			"seller":  item.Seller,
			"onChain": item.OnChain,
		}).Info("listing")
	}

	buyTokenId := viper.GetString("market.buyTokenId")
	if buyTokenId == "" {
		return
	}
	for i := range items {
		if items[i].TokenId != buyTokenId {
			continue
		}
		txHash, err := uc.Buy(context, &items[i])
		if err != nil {
			context.WithFields(log.Fields{
				"tokenId": buyTokenId,
				"err":     err,
			}).Error("purchase failed")
			os.Exit(1)
		}
		context.WithFields(log.Fields{
			"tokenId": buyTokenId,
			"tx":      txHash,
			"account": account,
		}).Info("purchase complete")
		return
	}
	context.WithField("tokenId", buyTokenId).Error("token not found on page")
	os.Exit(1)
}
