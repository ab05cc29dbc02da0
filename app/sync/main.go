package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	bCtx "github.com/bearhustle/goapi/base/ctx"
	"github.com/bearhustle/goapi/base/log"
	"github.com/bearhustle/goapi/domain"
	"github.com/bearhustle/goapi/service/opensea"
	"github.com/bearhustle/goapi/service/orderstore"
	importer_usecase "github.com/bearhustle/goapi/stores/importer/usecase"
)

func init() {
	_ = godotenv.Load()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/sync/config.yaml`)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	// the upstream key is secret, only ever taken from the environment
	viper.BindEnv("OPENSEA_APIKEY")
}

func main() {
	context := bCtx.Background()

	openseaClient := opensea.New(&opensea.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("http.timeout"),
		Apikey:     viper.GetString("OPENSEA_APIKEY"),
	})
	orderStoreClient := orderstore.New(&orderstore.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("http.timeout"),
		BaseUrl:    viper.GetString("orderstore.baseUrl"),
	})

	uc := importer_usecase.NewImporterUseCase(&importer_usecase.ImporterUseCaseCfg{
		OpenSea:             openseaClient,
		OrderStore:          orderStoreClient,
		Chain:               viper.GetString("opensea.chain"),
		AssetContract:       domain.Address(viper.GetString("contracts.nft")),
		MarketplaceContract: domain.Address(viper.GetString("contracts.marketplace")),
		PageLimit:           viper.GetInt("sync.pageLimit"),
		ItemDelay:           viper.GetDuration("sync.itemDelay"),
		PageDelay:           viper.GetDuration("sync.pageDelay"),
	})

	report, err := uc.Run(context)
	if err != nil {
		context.WithFields(log.Fields{
			"scanned": report.Scanned,
			"sent":    report.Sent,
			"err":     err,
		}).Error("sync run failed")
		os.Exit(1)
	}
	context.WithFields(log.Fields{
		"scanned": report.Scanned,
		"sent":    report.Sent,
	}).Info("sync run complete")
}
