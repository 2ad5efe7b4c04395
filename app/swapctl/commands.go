package main

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/wallet"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/deployment"
	"github.com/x-xyz/xionmarket/domain/swap"
)

func runCreate(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("create", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	token := fs.StringP("token", "t", "", "token id")
	price := fs.StringP("price", "p", "", `price, e.g. "10", "10 XION" or "10000000 uxion"`)
	hours := fs.Int("duration-hours", 0, "hours until the listing expires (default 168)")
	blocks := fs.Uint64("expire-blocks", 0, "expire after this many blocks instead of hours")
	typ := fs.String("type", "sale", "sale or offer")
	paymentToken := fs.String("payment-token", "", "cw20 contract paid instead of XION")
	id := fs.String("id", "", "listing id, generated when empty")
	skipApprove := fs.Bool("skip-approve", false, "do not send the cw721 approval first")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	nftContract, err := a.cfg.NftContract(*nft)
	if err != nil {
		return err
	}
	swapType, err := swap.ParseType(*typ)
	if err != nil {
		return err
	}
	if swapType == nil {
		return xerrors.Errorf("type must be sale or offer: %w", domain.ErrInvalidInput)
	}

	params := swap.CreateParams{
		Marketplace:   marketplace,
		NftContract:   nftContract,
		TokenId:       domain.TokenId(*token),
		Price:         *price,
		DurationHours: *hours,
		SwapType:      *swapType,
		PaymentToken:  domain.Address(*paymentToken),
		Id:            *id,
		SkipApprove:   *skipApprove,
		ExpireBlocks:  *blocks,
	}

	res, err := a.swap.Create(ctx, params)
	if err != nil {
		return err
	}
	a.render.created(res)
	return nil
}

func buyFlags(name string, out io.Writer, withRecipient bool) (func(args []string) error, *globals, *swap.BuyParams) {
	fs, g := newFlagSet(name, out)
	id := fs.String("id", "", "listing id")
	yes := fs.BoolP("yes", "y", false, "skip the confirmation delay")
	var recipient *string
	if withRecipient {
		recipient = fs.String("recipient", "", "address receiving the nft")
	}
	params := &swap.BuyParams{}
	parse := func(args []string) error {
		if err := fs.Parse(args); err != nil {
			return err
		}
		params.Id = *id
		params.SkipConfirm = *yes
		if recipient != nil {
			params.Recipient = domain.Address(*recipient)
		}
		return nil
	}
	return parse, g, params
}

func runBuy(ctx bCtx.Ctx, args []string, out io.Writer) error {
	return buy(ctx, args, out, false)
}

func runBuyFor(ctx bCtx.Ctx, args []string, out io.Writer) error {
	return buy(ctx, args, out, true)
}

func buy(ctx bCtx.Ctx, args []string, out io.Writer, forRecipient bool) error {
	name := "buy"
	if forRecipient {
		name = "buy-for"
	}
	parse, g, params := buyFlags(name, out, forRecipient)
	if err := parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	if params.Marketplace, err = a.cfg.MarketplaceAddress(g.marketplace); err != nil {
		return err
	}
	params.OnConfirm = func(listing *swap.Swap, funds []domain.Coin, delay time.Duration) {
		a.render.confirm(listing, funds, delay)
	}

	var res *swap.BuyResult
	if forRecipient {
		res, err = a.swap.BuyFor(ctx, *params)
	} else {
		res, err = a.swap.Buy(ctx, *params)
	}
	if err != nil {
		return err
	}
	a.render.bought(res)
	return nil
}

func runCancel(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("cancel", out)
	id := fs.String("id", "", "listing id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	report, err := a.swap.Cancel(ctx, marketplace, *id)
	if err != nil {
		return err
	}
	a.render.tx("Listing cancelled", report)
	return nil
}

func runUpdate(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("update", out)
	id := fs.String("id", "", "listing id")
	price := fs.StringP("price", "p", "", "new price")
	hours := fs.Int("duration-hours", 0, "hours from now until the listing expires (default 168)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	report, err := a.swap.Update(ctx, swap.UpdateParams{
		Marketplace:   marketplace,
		Id:            *id,
		Price:         *price,
		DurationHours: *hours,
	})
	if err != nil {
		return err
	}
	a.render.tx("Listing updated", report)
	return nil
}

func runWithdraw(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("withdraw", out)
	amount := fs.String("amount", "", "amount to withdraw")
	paymentToken := fs.String("payment-token", "", "cw20 contract to withdraw instead of XION")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	report, err := a.swap.Withdraw(ctx, swap.WithdrawParams{
		Marketplace:  marketplace,
		Amount:       *amount,
		PaymentToken: domain.Address(*paymentToken),
	})
	if err != nil {
		return err
	}
	a.render.tx("Fees withdrawn", report)
	return nil
}

func runGet(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("get", out)
	id := fs.String("id", "", "listing id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	listing, err := a.swap.Details(ctx, marketplace, *id)
	if err != nil {
		return err
	}
	a.render.listing(listing)
	return nil
}

func runList(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("list", out)
	page := fs.Uint32("page", 0, "page number")
	limit := fs.Uint32("limit", swap.DefaultPageLimit, "page size")
	sortPrice := fs.Bool("sort-price", false, "sort the page by price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	res, err := a.swap.Search(ctx, swap.SearchParams{
		Marketplace: marketplace,
		Page:        *page,
		Limit:       *limit,
		SortByPrice: *sortPrice,
	})
	if err != nil {
		return err
	}
	a.render.search(res)
	return nil
}

func runSearch(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("search", out)
	minPrice := fs.String("min", "", "lowest price")
	maxPrice := fs.String("max", "", "highest price")
	typ := fs.String("type", "all", "sale, offer or all")
	nft := fs.String("nft", "", "cw721 contract")
	owner := fs.String("owner", "", "listings created by this address")
	paymentToken := fs.String("payment-token", "", "listings paid with this cw20 contract")
	page := fs.Uint32("page", 0, "page number")
	limit := fs.Uint32("limit", swap.DefaultPageLimit, "page size")
	sortPrice := fs.Bool("sort-price", true, "sort the page by price")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	swapType, err := swap.ParseType(*typ)
	if err != nil {
		return err
	}
	res, err := a.swap.Search(ctx, swap.SearchParams{
		Marketplace:  marketplace,
		Min:          *minPrice,
		Max:          *maxPrice,
		Type:         swapType,
		Cw721:        domain.Address(*nft),
		Owner:        domain.Address(*owner),
		PaymentToken: domain.Address(*paymentToken),
		Page:         *page,
		Limit:        *limit,
		SortByPrice:  *sortPrice,
	})
	if err != nil {
		return err
	}
	a.render.search(res)
	return nil
}

func runConfig(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("config", out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	marketplace, err := a.cfg.MarketplaceAddress(g.marketplace)
	if err != nil {
		return err
	}
	cfg, err := a.swap.Config(ctx, marketplace)
	if err != nil {
		return err
	}
	a.render.marketplaceConfig(marketplace, cfg)
	return nil
}

func runMint(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("mint", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	token := fs.StringP("token", "t", "", "token id")
	owner := fs.String("owner", "", "owner of the new token, defaults to the signer")
	uri := fs.String("uri", "", "token uri")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	contract, err := a.cfg.NftContract(*nft)
	if err != nil {
		return err
	}
	report, err := a.cw721.Mint(ctx, cw721.MintParams{
		Contract: contract,
		TokenId:  domain.TokenId(*token),
		Owner:    domain.Address(*owner),
		TokenUri: *uri,
	})
	if err != nil {
		return err
	}
	a.render.tx("Token minted", report)
	return nil
}

func runTransfer(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("transfer", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	token := fs.StringP("token", "t", "", "token id")
	recipient := fs.String("recipient", "", "new owner")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	contract, err := a.cfg.NftContract(*nft)
	if err != nil {
		return err
	}
	report, err := a.cw721.Transfer(ctx, cw721.TransferParams{
		Contract:  contract,
		TokenId:   domain.TokenId(*token),
		Recipient: domain.Address(*recipient),
	})
	if err != nil {
		return err
	}
	a.render.tx("Token transferred", report)
	return nil
}

func runOwnerOf(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("owner-of", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	token := fs.StringP("token", "t", "", "token id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	contract, err := a.cfg.NftContract(*nft)
	if err != nil {
		return err
	}
	res, err := a.cw721.OwnerOf(ctx, contract, domain.TokenId(*token))
	if err != nil {
		return err
	}
	a.render.ownerOf(domain.TokenId(*token), res)
	return nil
}

func runTokens(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("tokens", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	owner := fs.String("owner", "", "owner, defaults to the signer")
	startAfter := fs.String("start-after", "", "token id to continue after")
	limit := fs.Uint32("limit", 30, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	contract, err := a.cfg.NftContract(*nft)
	if err != nil {
		return err
	}
	ownerAddr := domain.Address(*owner)
	if ownerAddr.IsEmpty() {
		if ownerAddr, err = a.client.Sender(ctx); err != nil {
			return err
		}
	}
	res, err := a.cw721.Tokens(ctx, cw721.TokensParams{
		Contract:   contract,
		Owner:      ownerAddr,
		StartAfter: *startAfter,
		Limit:      *limit,
	})
	if err != nil {
		return err
	}
	total, err := a.cw721.NumTokens(ctx, contract)
	if err != nil {
		return err
	}
	a.render.tokens(ownerAddr, res, total)
	return nil
}

func readWasm(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	wasm, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("read wasm %s: %w", path, err)
	}
	return wasm, nil
}

func runDeployMarketplace(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("deploy-marketplace", out)
	wasmPath := fs.String("wasm", "", "contract wasm file")
	codeId := fs.Uint64("code-id", 0, "instantiate stored code instead of uploading")
	label := fs.String("label", "xion-marketplace", "contract label")
	admin := fs.String("admin", "", "contract admin, defaults to ADMIN_ADDRESS or the signer")
	fee := fs.Uint64("fee", 0, "fee percentage, defaults to FEE_PERCENTAGE")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	wasm, err := readWasm(*wasmPath)
	if err != nil {
		return err
	}
	params := deployment.MarketplaceParams{
		Wasm:          wasm,
		CodeId:        domain.CodeId(*codeId),
		Label:         *label,
		Admin:         domain.Address(*admin),
		FeePercentage: *fee,
	}
	if params.Admin.IsEmpty() {
		params.Admin = a.cfg.Admin
	}
	if !fs.Changed("fee") {
		params.FeePercentage = a.cfg.FeePercentage
	}

	d, err := a.deploy.DeployMarketplace(ctx, params)
	if d != nil {
		a.render.deployment(d)
	}
	return err
}

func runDeployNft(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("deploy-nft", out)
	wasmPath := fs.String("wasm", "", "cw721 wasm file")
	codeId := fs.Uint64("code-id", 0, "instantiate stored code instead of uploading")
	label := fs.String("label", "xion-cw721", "contract label")
	name := fs.String("name", "", "collection name")
	symbol := fs.String("symbol", "", "collection symbol")
	minter := fs.String("minter", "", "minter, defaults to the signer")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	wasm, err := readWasm(*wasmPath)
	if err != nil {
		return err
	}
	d, err := a.deploy.DeployCw721(ctx, deployment.Cw721Params{
		Wasm:   wasm,
		CodeId: domain.CodeId(*codeId),
		Label:  *label,
		Name:   *name,
		Symbol: *symbol,
		Minter: domain.Address(*minter),
	})
	if d != nil {
		a.render.deployment(d)
	}
	return err
}

func runDeployments(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("deployments", out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}
	for _, t := range []deployment.ContractType{deployment.ContractMarketplace, deployment.ContractCw721} {
		d, err := a.deploy.Latest(ctx, t)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		a.render.deployment(d)
	}
	return nil
}

func runWhoami(ctx bCtx.Ctx, args []string, out io.Writer) error {
	fs, g := newFlagSet("whoami", out)
	nft := fs.String("nft", "", "cw721 contract, defaults to NFT_CONTRACT_ADDRESS")
	token := fs.StringP("token", "t", "", "also check who owns this token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := g.wire(ctx, out)
	if err != nil {
		return err
	}

	var addr domain.Address
	if a.cfg.PrivateKey != "" {
		if addr, err = wallet.AddressFromHexKey(a.cfg.PrivateKey, a.cfg.Network.Prefix); err != nil {
			return err
		}
	} else if addr, err = a.client.Sender(ctx); err != nil {
		return err
	}

	var owner *cw721.OwnerOfResponse
	if *token != "" {
		contract, err := a.cfg.NftContract(*nft)
		if err != nil {
			return err
		}
		if owner, err = a.cw721.OwnerOf(ctx, contract, domain.TokenId(*token)); err != nil {
			return err
		}
	}
	a.render.whoami(addr, domain.TokenId(*token), owner)
	return nil
}
