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

package mocks

import (
	"context"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"vault.custodia.xyz/types"
)

var _ types.BankKeeper = BankKeeper{}

// BankKeeper is an in-memory ledger. Balances are keyed by bech32 address;
// Supply tracks the total of every denom minted minus burned. Each operation
// applies atomically: it either fully updates both sides or returns an error
// leaving the maps untouched.
type BankKeeper struct {
	Balances map[string]sdk.Coins
	Supply   map[string]sdkmath.Int
}

func NewBankKeeper() BankKeeper {
	return BankKeeper{
		Balances: make(map[string]sdk.Coins),
		Supply:   make(map[string]sdkmath.Int),
	}
}

func (k BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	recipient := authtypes.NewModuleAddress(moduleName).String()
	for _, coin := range amt {
		supply := k.supplyOf(coin.Denom)
		updated, err := supply.SafeAdd(coin.Amount)
		if err != nil {
			return errors.Wrapf(err, "unable to mint %s", coin)
		}
		k.Supply[coin.Denom] = updated
	}
	k.Balances[recipient] = k.Balances[recipient].Add(amt...)
	return nil
}

func (k BankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	source := authtypes.NewModuleAddress(moduleName).String()
	for _, coin := range amt {
		if k.Balances[source].AmountOf(coin.Denom).LT(coin.Amount) {
			return errors.Wrapf(sdkerrors.ErrInsufficientFunds, "module %s cannot burn %s", moduleName, coin)
		}
	}
	for _, coin := range amt {
		k.Supply[coin.Denom] = k.supplyOf(coin.Denom).Sub(coin.Amount)
	}
	k.Balances[source] = k.Balances[source].Sub(amt...)
	return nil
}

func (k BankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	sender, recipient := from.String(), to.String()
	for _, coin := range amt {
		balance := k.Balances[sender].AmountOf(coin.Denom)
		if balance.LT(coin.Amount) {
			return errors.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance %s%s is smaller than %s", balance, coin.Denom, coin)
		}
	}
	k.Balances[sender] = k.Balances[sender].Sub(amt...)
	k.Balances[recipient] = k.Balances[recipient].Add(amt...)
	return nil
}

func (k BankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	return k.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipient, amt)
}

func (k BankKeeper) SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return k.SendCoins(ctx, sender, authtypes.NewModuleAddress(recipientModule), amt)
}

func (k BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.Balances[addr.String()].AmountOf(denom))
}

func (k BankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.supplyOf(denom))
}

func (k BankKeeper) supplyOf(denom string) sdkmath.Int {
	supply, ok := k.Supply[denom]
	if !ok {
		return sdkmath.ZeroInt()
	}
	return supply
}
