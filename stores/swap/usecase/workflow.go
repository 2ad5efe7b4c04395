package usecase

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/x-xyz/xionmarket/base/amount"
	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	"github.com/x-xyz/xionmarket/base/log"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/swap"
)

var (
	detailsGuidance = map[error]string{
		domain.ErrNotFound: "Listing may have already been purchased or cancelled",
		domain.ErrNetwork:  "Check the LCD endpoint and try again",
	}
	heightGuidance = map[error]string{
		domain.ErrNetwork: "Could not read the current block height. Check the LCD endpoint or use --duration-hours",
	}
	approveGuidance = map[error]string{
		domain.ErrUnauthorized: "Make sure you own the NFT you're trying to list",
		domain.ErrNotFound:     "Check the NFT contract address and token id",
	}
	createGuidance = map[error]string{
		domain.ErrUnauthorized:  "Make sure you own the NFT you're trying to list",
		domain.ErrAlreadyExists: "Try a different ID or omit --id to auto-generate",
		domain.ErrInvalidInput:  "Check the price, expiration and contract addresses",
		domain.ErrExpired:       "The expiration is already in the past",
	}
	cancelGuidance = map[error]string{
		domain.ErrNotFound:     "Listing may have already been purchased or cancelled",
		domain.ErrUnauthorized: "Only the listing creator can cancel it",
	}
	updateGuidance = map[error]string{
		domain.ErrNotFound:     "Listing may have already been purchased or cancelled",
		domain.ErrUnauthorized: "Only the listing creator can update it",
		domain.ErrExpired:      "The new expiration is already in the past",
	}
	withdrawGuidance = map[error]string{
		domain.ErrUnauthorized:      "Only the marketplace admin can withdraw",
		domain.ErrInsufficientFunds: "The marketplace holds less than the requested amount",
	}
)

func settleGuidance(listing *swap.Swap, forRecipient bool) map[error]string {
	g := map[error]string{
		domain.ErrNotFound:          "Listing may have already been purchased or cancelled",
		domain.ErrExpired:           "This listing has expired",
		domain.ErrWrongType:         "Offer listings are accepted by the NFT owner and cannot be bought",
		domain.ErrInsufficientFunds: "Make sure you have enough XION",
	}
	if listing != nil {
		g[domain.ErrInsufficientFunds] = fmt.Sprintf("Make sure you have enough XION. Required: %s", listing.DisplayPrice())
	}
	if forRecipient {
		g[domain.ErrInvalidInput] = "Check that the recipient address is valid"
	}
	return g
}

// expiration resolves an explicit expiration or one that ends hours from now.
func (im *impl) expiration(exp swap.Expiration, hours int) swap.Expiration {
	if exp != nil {
		return exp
	}
	if hours == 0 {
		hours = swap.DefaultDurationHours
	}
	return swap.AfterHours(im.timeNow(), hours)
}

func (im *impl) Create(ctx bCtx.Ctx, params swap.CreateParams) (*swap.CreateResult, error) {
	if params.SwapType == "" {
		params.SwapType = swap.TypeSale
	}
	if err := im.validateParams(ctx, params, nil); err != nil {
		return nil, err
	}
	if params.NftContract.Equals(params.Marketplace) {
		return nil, domain.NewStepError(domain.StepValidate, domain.ErrSameContract, nil)
	}

	price, err := amount.ToBaseUnits(params.Price)
	if err != nil {
		return nil, domain.NewStepError(domain.StepValidate, err, nil)
	}
	if params.SwapType == swap.TypeSale && price == "0" {
		return nil, domain.NewStepError(domain.StepValidate, xerrors.Errorf("sale price must be positive: %w", domain.ErrInvalidAmount), nil)
	}

	if params.Expires == nil && params.ExpireBlocks > 0 {
		exp, err := swap.AfterBlocks(ctx, im.gateway, params.ExpireBlocks)
		if err != nil {
			return nil, domain.NewStepError(domain.StepQuery, err, heightGuidance)
		}
		params.Expires = exp
	}

	res := &swap.CreateResult{
		Id:      params.Id,
		Expires: im.expiration(params.Expires, params.DurationHours),
		Price:   price,
	}
	if res.Id == "" {
		res.Id = im.newId(im.timeNow())
	}
	ctx = bCtx.WithValue(ctx, "listingId", res.Id)

	if params.SwapType == swap.TypeSale && !params.SkipApprove {
		approve := cw721.ApproveMsg{
			Spender: params.Marketplace,
			TokenId: params.TokenId,
			Expires: res.Expires,
		}
		if tx, err := im.gateway.Execute(ctx, params.NftContract, approve, nil); err != nil {
			// an earlier approval may still cover the listing
			ctx.WithField("err", err).Warn("approve failed, creating anyway")
			res.ApproveErr = domain.NewStepError(domain.StepApprove, err, approveGuidance)
		} else {
			res.Approve = domain.NewTxReport(tx)
		}
	}

	create := swap.CreateMsg{
		Id:       res.Id,
		Cw721:    params.NftContract,
		TokenId:  params.TokenId,
		Expires:  res.Expires,
		Price:    price,
		SwapType: params.SwapType,
	}
	if !params.PaymentToken.IsEmpty() {
		create.PaymentToken = &params.PaymentToken
	}
	tx, err := im.gateway.Execute(ctx, params.Marketplace, create, nil)
	if err != nil {
		ctx.WithField("err", err).Error("create failed")
		return nil, domain.NewStepError(domain.StepCreate, err, createGuidance)
	}
	res.Create = domain.NewTxReport(tx)

	im.record(ctx, swap.Record{
		Marketplace: params.Marketplace,
		ListingId:   res.Id,
		Action:      swap.ActionCreate,
		Price:       price,
	}, tx)
	return res, nil
}

func (im *impl) Buy(ctx bCtx.Ctx, params swap.BuyParams) (*swap.BuyResult, error) {
	params.Recipient = ""
	return im.settle(ctx, params, false)
}

func (im *impl) BuyFor(ctx bCtx.Ctx, params swap.BuyParams) (*swap.BuyResult, error) {
	if params.Recipient.IsEmpty() {
		err := xerrors.Errorf("recipient is required: %w", domain.ErrInvalidAddress)
		return nil, domain.NewStepError(domain.StepValidate, err, settleGuidance(nil, true))
	}
	return im.settle(ctx, params, true)
}

// settle runs query -> check -> confirm -> finish. Funds always come from the queried listing.
func (im *impl) settle(ctx bCtx.Ctx, params swap.BuyParams, forRecipient bool) (*swap.BuyResult, error) {
	if err := im.validateParams(ctx, params, settleGuidance(nil, forRecipient)); err != nil {
		return nil, err
	}
	ctx = bCtx.WithValue(ctx, "listingId", params.Id)

	listing := &swap.Swap{}
	if err := im.query(ctx, params.Marketplace, swap.DetailsQuery{Id: params.Id}, listing); err != nil {
		return nil, domain.NewStepError(domain.StepQuery, err, settleGuidance(nil, forRecipient))
	}
	guidance := settleGuidance(listing, forRecipient)

	if !listing.IsSale() {
		err := xerrors.Errorf("listing %s is an %s: %w", listing.Id, listing.SwapType, domain.ErrWrongType)
		return nil, domain.NewStepError(domain.StepValidate, err, guidance)
	}
	// height based expirations are left to the contract
	if listing.Expires.Expiration != nil && listing.Expires.IsExpired(0, im.timeNow()) {
		err := xerrors.Errorf("listing %s expired %s: %w", listing.Id, listing.Expires, domain.ErrExpired)
		return nil, domain.NewStepError(domain.StepValidate, err, guidance)
	}

	funds := listing.Funds()
	if !params.SkipConfirm {
		if params.OnConfirm != nil {
			params.OnConfirm(listing, funds, im.confirmDelay)
		}
		if err := bCtx.Sleep(ctx, im.confirmDelay); err != nil {
			ctx.Info("purchase cancelled")
			return nil, domain.NewStepError(domain.StepSettle, err, nil)
		}
	}

	var (
		msg    swap.ExecuteMsg = swap.FinishMsg{Id: listing.Id}
		action                 = swap.ActionFinish
	)
	if forRecipient {
		msg = swap.FinishForMsg{Id: listing.Id, Recipient: params.Recipient}
		action = swap.ActionFinishFor
	}

	tx, err := im.gateway.Execute(ctx, params.Marketplace, msg, funds)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "funds": funds}).Error("settle failed")
		return nil, domain.NewStepError(domain.StepSettle, err, guidance)
	}

	im.record(ctx, swap.Record{
		Marketplace: params.Marketplace,
		ListingId:   listing.Id,
		Action:      action,
		Price:       listing.Price,
		Recipient:   params.Recipient,
	}, tx)
	return &swap.BuyResult{
		Listing: listing,
		Funds:   funds,
		Report:  domain.NewTxReport(tx),
	}, nil
}

func (im *impl) Cancel(ctx bCtx.Ctx, marketplace domain.Address, id string) (*domain.TxReport, error) {
	if id == "" {
		return nil, domain.NewStepError(domain.StepValidate, xerrors.Errorf("listing id is required: %w", domain.ErrInvalidInput), nil)
	}
	tx, err := im.gateway.Execute(ctx, marketplace, swap.CancelMsg{Id: id}, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": id}).Error("cancel failed")
		return nil, domain.NewStepError(domain.StepCancel, err, cancelGuidance)
	}
	im.record(ctx, swap.Record{
		Marketplace: marketplace,
		ListingId:   id,
		Action:      swap.ActionCancel,
	}, tx)
	return domain.NewTxReport(tx), nil
}

func (im *impl) Update(ctx bCtx.Ctx, params swap.UpdateParams) (*domain.TxReport, error) {
	if err := im.validateParams(ctx, params, nil); err != nil {
		return nil, err
	}
	price, err := amount.ToBaseUnits(params.Price)
	if err != nil {
		return nil, domain.NewStepError(domain.StepValidate, err, nil)
	}

	msg := swap.UpdateMsg{
		Id:      params.Id,
		Expires: im.expiration(params.Expires, params.DurationHours),
		Price:   price,
	}
	tx, err := im.gateway.Execute(ctx, params.Marketplace, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "listingId": params.Id}).Error("update failed")
		return nil, domain.NewStepError(domain.StepUpdate, err, updateGuidance)
	}
	im.record(ctx, swap.Record{
		Marketplace: params.Marketplace,
		ListingId:   params.Id,
		Action:      swap.ActionUpdate,
		Price:       price,
	}, tx)
	return domain.NewTxReport(tx), nil
}

func (im *impl) Withdraw(ctx bCtx.Ctx, params swap.WithdrawParams) (*domain.TxReport, error) {
	if err := im.validateParams(ctx, params, nil); err != nil {
		return nil, err
	}
	value, err := amount.ToBaseUnits(params.Amount)
	if err != nil {
		return nil, domain.NewStepError(domain.StepValidate, err, nil)
	}

	msg := swap.WithdrawMsg{Amount: value, Denom: domain.NativeDenom}
	if !params.PaymentToken.IsEmpty() {
		msg.PaymentToken = &params.PaymentToken
	}
	tx, err := im.gateway.Execute(ctx, params.Marketplace, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("withdraw failed")
		return nil, domain.NewStepError(domain.StepWithdraw, err, withdrawGuidance)
	}
	return domain.NewTxReport(tx), nil
}
