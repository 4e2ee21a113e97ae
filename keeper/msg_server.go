// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package keeper

import (
	"context"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"vault.custodia.xyz/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Initialize creates the protocol state and the vault authority. Both records
// are singletons; a second invocation fails without touching state.
func (m msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.Owner); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}

	_, found, err := m.GetProtocolState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch protocol state")
	}
	if found {
		return nil, errors.Wrap(types.ErrAlreadyInitialized, "protocol state already exists")
	}

	authorityAddress, err := m.address.BytesToString(types.AuthorityAddress())
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode authority address")
	}

	headerInfo := m.header.GetHeaderInfo(ctx)
	if err := m.SetProtocolState(ctx, types.ProtocolState{
		Owner:     msg.Owner,
		CreatedAt: headerInfo.Time,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to persist protocol state")
	}
	if err := m.SetVaultAuthority(ctx, types.VaultAuthority{
		Address:   authorityAddress,
		CreatedAt: headerInfo.Time,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault authority")
	}

	m.logger.Info("protocol initialized", "owner", msg.Owner, "authority", authorityAddress)

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeInitialized,
		event.Attribute{Key: types.AttributeKeyOwner, Value: msg.Owner},
		event.Attribute{Key: types.AttributeKeyAuthority, Value: authorityAddress},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit initialization event")
	}

	return &types.MsgInitializeResponse{Owner: msg.Owner, Authority: authorityAddress}, nil
}

// InitializeVault creates the vault for an underlying denom. The custody
// address and share denom are derived from the denom, so at most one vault
// can ever exist per underlying asset.
func (m msgServer) InitializeVault(ctx context.Context, msg *types.MsgInitializeVault) (*types.MsgInitializeVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.Signer); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid signer address: %s", msg.Signer)
	}
	if err := sdk.ValidateDenom(msg.UnderlyingDenom); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid underlying denom: %s", msg.UnderlyingDenom)
	}

	_, found, err := m.GetProtocolState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch protocol state")
	}
	if !found {
		return nil, errors.Wrap(types.ErrNotInitialized, "initialize the protocol before creating vaults")
	}

	exists, err := m.HasVault(ctx, msg.UnderlyingDenom)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check for existing vault")
	}
	if exists {
		return nil, errors.Wrapf(types.ErrVaultExists, "underlying denom %s", msg.UnderlyingDenom)
	}

	custodyAddress, err := m.address.BytesToString(types.CustodyAddress(msg.UnderlyingDenom))
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode custody address")
	}

	vault := types.Vault{
		ShareDenom:      types.ShareDenom(msg.UnderlyingDenom),
		UnderlyingDenom: msg.UnderlyingDenom,
		CustodyAddress:  custodyAddress,
		CreatedAt:       m.header.GetHeaderInfo(ctx).Time,
	}
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	m.logger.Info("vault created",
		"underlying_denom", vault.UnderlyingDenom,
		"share_denom", vault.ShareDenom,
		"custody_address", vault.CustodyAddress,
	)

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeVaultCreated,
		event.Attribute{Key: types.AttributeKeyUnderlyingDenom, Value: vault.UnderlyingDenom},
		event.Attribute{Key: types.AttributeKeyShareDenom, Value: vault.ShareDenom},
		event.Attribute{Key: types.AttributeKeyCustodyAddress, Value: vault.CustodyAddress},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault creation event")
	}

	return &types.MsgInitializeVaultResponse{
		ShareDenom:     vault.ShareDenom,
		CustodyAddress: vault.CustodyAddress,
	}, nil
}

// Deposit transfers underlying assets into custody and mints proportional
// shares to the depositor. Supply and custody balance are read before any
// mutation, so donations sitting in the custody account dilute the depositor,
// never the existing holders.
func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}
	depositor := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.UnderlyingDenom)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "underlying denom %s", msg.UnderlyingDenom)
	}

	if msg.ShareDenom != "" && msg.ShareDenom != vault.ShareDenom {
		return nil, errors.Wrapf(types.ErrInvalidShareAsset, "expected %s, got %s", vault.ShareDenom, msg.ShareDenom)
	}

	if _, found, err = m.GetVaultAuthority(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault authority")
	} else if !found {
		return nil, errors.Wrap(types.ErrNotInitialized, "vault authority does not exist")
	}

	custodyBz, err := m.address.StringToBytes(vault.CustodyAddress)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode custody address")
	}
	custody := sdk.AccAddress(custodyBz)

	// Both totals are read before any mutation in this call. They include any
	// prior donations made directly into custody.
	totalShares := m.bank.GetSupply(ctx, vault.ShareDenom).Amount
	totalAssets := m.bank.GetBalance(ctx, custody, vault.UnderlyingDenom).Amount

	balance := m.bank.GetBalance(ctx, depositor, vault.UnderlyingDenom).Amount
	if balance.LT(msg.Amount) {
		return nil, errors.Wrapf(sdkerrors.ErrInsufficientFunds, "balance %s is smaller than deposit %s%s", balance, msg.Amount, vault.UnderlyingDenom)
	}

	shares, err := CalculateSharesToMint(msg.Amount, totalShares, totalAssets)
	if err != nil {
		return nil, err
	}
	if !shares.IsPositive() {
		return nil, errors.Wrapf(types.ErrInsufficientShares, "depositing %s%s would mint zero shares", msg.Amount, vault.UnderlyingDenom)
	}

	// Side effects: transfer into custody, then mint shares under the vault
	// authority. The host executes the handler transactionally, so a failure
	// of either leg discards both.
	if err := m.bank.SendCoins(ctx, depositor, custody, sdk.NewCoins(sdk.NewCoin(vault.UnderlyingDenom, msg.Amount))); err != nil {
		return nil, errors.Wrap(err, "unable to transfer deposit into custody")
	}

	minted := sdk.NewCoins(sdk.NewCoin(vault.ShareDenom, shares))
	if err := m.bank.MintCoins(ctx, types.ModuleName, minted); err != nil {
		return nil, errors.Wrap(err, "unable to mint shares")
	}
	if err := m.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, minted); err != nil {
		return nil, errors.Wrap(err, "unable to pay out minted shares")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeyDepositor, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyUnderlyingDenom, Value: vault.UnderlyingDenom},
		event.Attribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
		event.Attribute{Key: types.AttributeKeySharesMinted, Value: shares.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit deposit event")
	}

	return &types.MsgDepositResponse{AmountDeposited: msg.Amount, SharesMinted: shares}, nil
}

// Redeem burns shares and transfers the proportional slice of custody back to
// the redeemer.
func (m msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "share amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Redeemer)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid redeemer address: %s", msg.Redeemer)
	}
	redeemer := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.UnderlyingDenom)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "underlying denom %s", msg.UnderlyingDenom)
	}

	if _, found, err = m.GetVaultAuthority(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault authority")
	} else if !found {
		return nil, errors.Wrap(types.ErrNotInitialized, "vault authority does not exist")
	}

	custodyBz, err := m.address.StringToBytes(vault.CustodyAddress)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode custody address")
	}
	custody := sdk.AccAddress(custodyBz)

	totalShares := m.bank.GetSupply(ctx, vault.ShareDenom).Amount
	totalAssets := m.bank.GetBalance(ctx, custody, vault.UnderlyingDenom).Amount

	if !totalShares.IsPositive() {
		return nil, errors.Wrapf(types.ErrNoShares, "share denom %s", vault.ShareDenom)
	}
	if !totalAssets.IsPositive() {
		return nil, errors.Wrapf(types.ErrEmptyVault, "custody account %s", vault.CustodyAddress)
	}

	held := m.bank.GetBalance(ctx, redeemer, vault.ShareDenom).Amount
	if held.LT(msg.Shares) {
		return nil, errors.Wrapf(sdkerrors.ErrInsufficientFunds, "share balance %s is smaller than redemption %s%s", held, msg.Shares, vault.ShareDenom)
	}

	underlying, err := CalculateUnderlyingForShares(msg.Shares, totalShares, totalAssets)
	if err != nil {
		return nil, err
	}
	if !underlying.IsPositive() {
		return nil, errors.Wrapf(types.ErrInsufficientUnderlying, "redeeming %s%s would return zero underlying", msg.Shares, vault.ShareDenom)
	}

	// Side effects: burn the shares, then release custody funds under the
	// vault authority. Transactional as a pair, same as Deposit.
	burned := sdk.NewCoins(sdk.NewCoin(vault.ShareDenom, msg.Shares))
	if err := m.bank.SendCoinsFromAccountToModule(ctx, redeemer, types.ModuleName, burned); err != nil {
		return nil, errors.Wrap(err, "unable to collect shares for burning")
	}
	if err := m.bank.BurnCoins(ctx, types.ModuleName, burned); err != nil {
		return nil, errors.Wrap(err, "unable to burn shares")
	}

	if err := m.bank.SendCoins(ctx, custody, redeemer, sdk.NewCoins(sdk.NewCoin(vault.UnderlyingDenom, underlying))); err != nil {
		return nil, errors.Wrap(err, "unable to release custody funds")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeRedeem,
		event.Attribute{Key: types.AttributeKeyRedeemer, Value: msg.Redeemer},
		event.Attribute{Key: types.AttributeKeyUnderlyingDenom, Value: vault.UnderlyingDenom},
		event.Attribute{Key: types.AttributeKeySharesBurned, Value: msg.Shares.String()},
		event.Attribute{Key: types.AttributeKeyUnderlyingReturned, Value: underlying.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit redeem event")
	}

	return &types.MsgRedeemResponse{SharesBurned: msg.Shares, UnderlyingReturned: underlying}, nil
}

// TransferOwnership replaces the protocol owner. Only the current owner may
// hand the role off.
func (m msgServer) TransferOwnership(ctx context.Context, msg *types.MsgTransferOwnership) (*types.MsgTransferOwnershipResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.NewOwner); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid new owner address: %s", msg.NewOwner)
	}

	state, found, err := m.GetProtocolState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch protocol state")
	}
	if !found {
		return nil, errors.Wrap(types.ErrNotInitialized, "protocol state does not exist")
	}

	if msg.CurrentOwner != state.Owner {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", state.Owner, msg.CurrentOwner)
	}
	if msg.NewOwner == state.Owner {
		return nil, errors.Wrap(types.ErrSameOwner, "ownership transfer is a no-op")
	}

	previousOwner := state.Owner
	state.Owner = msg.NewOwner
	if err := m.SetProtocolState(ctx, state); err != nil {
		return nil, errors.Wrap(err, "unable to persist protocol state")
	}

	m.logger.Info("ownership transferred", "previous_owner", previousOwner, "new_owner", msg.NewOwner)

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeOwnershipTransfer,
		event.Attribute{Key: types.AttributeKeyPreviousOwner, Value: previousOwner},
		event.Attribute{Key: types.AttributeKeyOwner, Value: msg.NewOwner},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit ownership transfer event")
	}

	return &types.MsgTransferOwnershipResponse{PreviousOwner: previousOwner, NewOwner: msg.NewOwner}, nil
}
