package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"syscall"

	"github.com/spf13/pflag"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/database/mongoclient"
	"github.com/x-xyz/xionmarket/base/log"
	bValidator "github.com/x-xyz/xionmarket/base/validator"
	"github.com/x-xyz/xionmarket/config"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/deployment"
	"github.com/x-xyz/xionmarket/domain/swap"
	"github.com/x-xyz/xionmarket/service/cache"
	"github.com/x-xyz/xionmarket/service/cache/provider/primitive"
	"github.com/x-xyz/xionmarket/service/chain"
	"github.com/x-xyz/xionmarket/service/query"
	cw721Usecase "github.com/x-xyz/xionmarket/stores/cw721/usecase"
	deploymentRepo "github.com/x-xyz/xionmarket/stores/deployment/repository"
	deploymentUsecase "github.com/x-xyz/xionmarket/stores/deployment/usecase"
	swapRepo "github.com/x-xyz/xionmarket/stores/swap/repository"
	swapUsecase "github.com/x-xyz/xionmarket/stores/swap/usecase"
)

const (
	exitOk    = 0
	exitFail  = 1
	exitUsage = 2
)

type command struct {
	usage string
	run   func(ctx bCtx.Ctx, args []string, out io.Writer) error
}

var commands = map[string]command{
	"create":             {"list an nft for sale or make an offer", runCreate},
	"buy":                {"buy a listing with its advertised price", runBuy},
	"buy-for":            {"buy a listing and send the nft to a recipient", runBuyFor},
	"cancel":             {"cancel a listing", runCancel},
	"update":             {"change the price and expiration of a listing", runUpdate},
	"withdraw":           {"withdraw marketplace fees (admin)", runWithdraw},
	"get":                {"show one listing", runGet},
	"list":               {"list all listings, one page at a time", runList},
	"search":             {"search listings by price, type, collection, owner or payment token", runSearch},
	"config":             {"show the marketplace configuration", runConfig},
	"mint":               {"mint a cw721 token", runMint},
	"transfer":           {"transfer a cw721 token", runTransfer},
	"owner-of":           {"show the owner and approvals of a token", runOwnerOf},
	"tokens":             {"list the tokens of an owner", runTokens},
	"deploy-marketplace": {"upload and instantiate the marketplace contract", runDeployMarketplace},
	"deploy-nft":         {"upload and instantiate a cw721 collection", runDeployNft},
	"deployments":        {"show the latest recorded deployments", runDeployments},
	"whoami":             {"show the signer address and check token ownership", runWhoami},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(out)
		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(out, "unknown command %q\n\n", args[0])
		usage(out)
		return exitUsage
	}

	ctx, stop := bCtx.WithSignal(bCtx.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer log.Sync()

	if err := cmd.run(ctx, args[1:], out); err != nil {
		if err == pflag.ErrHelp {
			return exitUsage
		}
		newRenderer(out, false).failure(err)
		return exitFail
	}
	return exitOk
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "usage: swapctl <command> [flags]")
	fmt.Fprintln(out)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-20s %s\n", name, commands[name].usage)
	}
}

// globals are the flags every command accepts.
type globals struct {
	configPath  string
	marketplace string
	json        bool
	debug       bool
}

func newFlagSet(name string, out io.Writer) (*pflag.FlagSet, *globals) {
	g := &globals{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&g.configPath, "config", "", "yaml config file")
	fs.StringVarP(&g.marketplace, "marketplace", "m", "open", "open, single, permissioned or a contract address")
	fs.BoolVar(&g.json, "json", false, "print json instead of a report")
	fs.BoolVar(&g.debug, "debug", false, "verbose logs")
	return fs, g
}

// app holds everything a command needs, built once per invocation.
type app struct {
	cfg    *config.Config
	client chain.Client
	swap   swap.UseCase
	cw721  cw721.UseCase
	deploy deployment.UseCase
	render *renderer
}

func (g *globals) wire(ctx bCtx.Ctx, out io.Writer) (*app, error) {
	if g.debug {
		log.SetDebug(true)
	} else {
		log.SetQuiet()
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		log.SetDebug(true)
	}

	client := chain.NewClient(&chain.ClientCfg{
		HttpClient:    http.Client{},
		LcdUrl:        cfg.Network.LcdUrl,
		SignerUrl:     cfg.SignerUrl,
		Timeout:       cfg.Timeout,
		GasLimit:      cfg.Network.GasLimit,
		GasPrice:      cfg.Network.GasPrice,
		RetryAttempts: cfg.Retry.Attempts,
		RetryDelay:    cfg.Retry.Delay,
		RetryMaxDelay: cfg.Retry.MaxDelay,
	})
	validate := bValidator.New()

	configCache := cache.New(cache.ServiceConfig{
		Ttl:   cfg.ConfigTtl,
		Pfx:   "config",
		Cache: primitive.NewPrimitive("config", 1),
	})

	var (
		records     swap.RecordRepo
		deployments deployment.Repo
	)
	if cfg.Mongo.Uri != "" {
		mongoClient, err := mongoclient.ConnectMongoClient(cfg.Mongo.Uri, cfg.Mongo.DbName, 1)
		if err != nil {
			ctx.WithField("err", err).Warn("mongo unavailable, records are not kept")
		} else {
			q := query.New(mongoClient)
			records = swapRepo.NewRecordRepo(q)
			deployments = deploymentRepo.NewDeploymentRepo(q)
		}
	}

	return &app{
		cfg:    cfg,
		client: client,
		swap: swapUsecase.NewSwapUseCase(&swapUsecase.SwapUseCaseCfg{
			Gateway:      client,
			RecordRepo:   records,
			ConfigCache:  configCache,
			Validator:    validate,
			ConfirmDelay: cfg.ConfirmDelay,
		}),
		cw721: cw721Usecase.NewCw721UseCase(&cw721Usecase.Cw721UseCaseCfg{
			Gateway:   client,
			Deployer:  client,
			Validator: validate,
		}),
		deploy: deploymentUsecase.NewDeploymentUseCase(&deploymentUsecase.DeploymentUseCaseCfg{
			Deployer:  client,
			Repo:      deployments,
			Validator: validate,
			Network:   cfg.Network.Name,
			Denom:     cfg.Denom,
		}),
		render: newRenderer(out, g.json),
	}, nil
}
