package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/labstack/gommon/color"

	"github.com/x-xyz/xionmarket/base/amount"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/deployment"
	"github.com/x-xyz/xionmarket/domain/swap"
)

const shortAddr = 10

type renderer struct {
	w    io.Writer
	c    *color.Color
	json bool
}

func newRenderer(w io.Writer, asJson bool) *renderer {
	c := color.New()
	c.SetOutput(w)
	return &renderer{w: w, c: c, json: asJson}
}

func (r *renderer) printJson(v interface{}) {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(r.w, err)
	}
}

func (r *renderer) title(s string) {
	fmt.Fprintln(r.w, r.c.Bold(r.c.Green(s)))
}

func (r *renderer) field(name string, value interface{}) {
	fmt.Fprintf(r.w, "  %-14s %v\n", name+":", value)
}

// price colors a base unit amount by tier.
func (r *renderer) price(baseUnits string) string {
	display := amount.MustDisplay(baseUnits)
	v, err := amount.Parse(baseUnits)
	if err != nil {
		return display
	}
	switch amount.TierOf(v) {
	case amount.TierLow:
		return r.c.Green(display)
	case amount.TierMid:
		return r.c.Yellow(display)
	}
	return r.c.Magenta(display)
}

func (r *renderer) tx(title string, report *domain.TxReport) {
	if r.json {
		r.printJson(report)
		return
	}
	r.title(title)
	r.field("tx", report.TxHash)
	r.field("height", report.Height)
	r.field("gas", fmt.Sprintf("%d / %d", report.GasUsed, report.GasWanted))
	for _, e := range report.Events {
		for _, a := range e.Attributes {
			fmt.Fprintf(r.w, "    %s = %s\n", r.c.Grey(a.Key), a.Value)
		}
	}
}

func (r *renderer) created(res *swap.CreateResult) {
	if r.json {
		r.printJson(res)
		return
	}
	if res.ApproveErr != nil {
		fmt.Fprintln(r.w, r.c.Yellow("approve failed, the listing may not be purchasable"))
		r.guidance(res.ApproveErr)
	}
	r.tx("Listing created", res.Create)
	r.field("id", res.Id)
	r.field("price", r.price(res.Price))
	r.field("expires", res.Expires)
	if res.Approve != nil {
		r.field("approve tx", res.Approve.TxHash)
	}
}

func (r *renderer) confirm(listing *swap.Swap, funds []domain.Coin, delay time.Duration) {
	fmt.Fprintf(r.w, "Buying %s #%s for %s",
		listing.NftContract.Short(shortAddr), listing.TokenId, r.price(listing.Price))
	if len(funds) == 0 {
		fmt.Fprintf(r.w, " (paid with %s)", listing.PaymentToken.Short(shortAddr))
	}
	fmt.Fprintf(r.w, " in %s, Ctrl-C to abort\n", delay)
}

func (r *renderer) bought(res *swap.BuyResult) {
	if r.json {
		r.printJson(res)
		return
	}
	r.tx("Listing purchased", res.Report)
	r.field("id", res.Listing.Id)
	r.field("token", fmt.Sprintf("%s #%s", res.Listing.NftContract.Short(shortAddr), res.Listing.TokenId))
	r.field("price", r.price(res.Listing.Price))
}

func (r *renderer) listingLine(l *swap.Swap) {
	fmt.Fprintf(r.w, "  %-32s %-6s %s #%-8s %-24s %s\n",
		l.Id, l.SwapType, l.NftContract.Short(shortAddr), l.TokenId, r.price(l.Price), r.c.Grey(expiresOf(l)))
}

func expiresOf(l *swap.Swap) string {
	return expirationText(l.Expires)
}

func expirationText(e swap.ExpirationJSON) string {
	if e.Expiration == nil {
		return "-"
	}
	return e.String()
}

func (r *renderer) listing(l *swap.Swap) {
	if r.json {
		r.printJson(l)
		return
	}
	r.title("Listing " + l.Id)
	r.field("type", l.SwapType)
	r.field("creator", l.Creator)
	r.field("nft", l.NftContract)
	r.field("token", l.TokenId)
	r.field("price", r.price(l.Price))
	if !l.PaysNative() {
		r.field("paid with", *l.PaymentToken)
	}
	r.field("expires", expiresOf(l))
}

func (r *renderer) search(res *swap.SearchResult) {
	if r.json {
		r.printJson(res)
		return
	}
	r.title(fmt.Sprintf("%d listings (%s, page %d)", len(res.Swaps), res.Shape, res.Page))
	for i := range res.Swaps {
		r.listingLine(&res.Swaps[i])
	}
	if res.Stats != nil {
		fmt.Fprintf(r.w, "  min %s  max %s  avg %s\n",
			amount.Format(res.Stats.Min), amount.Format(res.Stats.Max), amount.Format(res.Stats.Avg))
	}
	if res.MayHaveMore {
		fmt.Fprintln(r.w, r.c.Grey(fmt.Sprintf("  more may follow, try --page %d", res.NextPage)))
	}
}

func (r *renderer) marketplaceConfig(marketplace domain.Address, cfg *swap.Config) {
	if r.json {
		r.printJson(cfg)
		return
	}
	r.title("Marketplace " + marketplace.Short(shortAddr))
	r.field("admin", cfg.Admin)
	r.field("denom", cfg.Denom)
	r.field("fee", fmt.Sprintf("%d%%", cfg.Fees))
}

func (r *renderer) ownerOf(token domain.TokenId, res *cw721.OwnerOfResponse) {
	if r.json {
		r.printJson(res)
		return
	}
	r.title("Token #" + token.String())
	r.field("owner", res.Owner)
	for _, a := range res.Approvals {
		r.field("approved", fmt.Sprintf("%s (%s)", a.Spender, expirationText(a.Expires)))
	}
}

func (r *renderer) tokens(owner domain.Address, res *cw721.TokensResponse, total uint64) {
	if r.json {
		r.printJson(res)
		return
	}
	r.title(fmt.Sprintf("%d tokens of %s (%d minted)", len(res.Tokens), owner.Short(shortAddr), total))
	for _, t := range res.Tokens {
		fmt.Fprintf(r.w, "  #%s\n", t)
	}
}

func (r *renderer) deployment(d *deployment.Deployment) {
	if r.json {
		r.printJson(d)
		return
	}
	r.title(fmt.Sprintf("%s deployed on %s", d.ContractType, d.Network))
	r.field("address", d.ContractAddress)
	r.field("code id", d.CodeId)
	r.field("admin", d.Admin)
	if d.ContractType == deployment.ContractMarketplace {
		r.field("fee", fmt.Sprintf("%d%% %s", d.FeePercentage, d.Denom))
	}
	if d.TxHashes.Upload != "" {
		r.field("upload tx", d.TxHashes.Upload)
	}
	r.field("instantiate tx", d.TxHashes.Instantiate)
	r.field("at", d.DeployedAt.Format(time.RFC3339))
}

func (r *renderer) whoami(addr domain.Address, token domain.TokenId, owner *cw721.OwnerOfResponse) {
	if r.json {
		r.printJson(map[string]interface{}{"address": addr, "owner": owner})
		return
	}
	r.title("Signer")
	r.field("address", addr)
	if owner == nil {
		return
	}
	if owner.Owner.Equals(addr) {
		r.field("token #"+token.String(), r.c.Green("owned"))
	} else {
		r.field("token #"+token.String(), r.c.Red("owned by "+owner.Owner.String()))
	}
}

func (r *renderer) guidance(err error) {
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) && stepErr.Guidance != "" {
		fmt.Fprintln(r.w, r.c.Yellow("  hint: "+stepErr.Guidance))
	}
}

// failure prints the kind, the failed step and the hint of err.
func (r *renderer) failure(err error) {
	kind := domain.KindName(err)
	step := "-"
	var stepErr *domain.StepError
	if errors.As(err, &stepErr) {
		step = string(stepErr.Step)
	}
	fmt.Fprintf(r.w, "%s %s (step %s)\n", r.c.Red(r.c.Bold("Error")), r.c.Red(kind), step)
	fmt.Fprintf(r.w, "  %v\n", err)
	r.guidance(err)
}
