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

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"vault.custodia.xyz/types"
)

// VaultSummary is a read-only snapshot of a vault's exchange-rate inputs.
type VaultSummary struct {
	Vault types.Vault
	// TotalShares is the share denom's current supply.
	TotalShares sdkmath.Int
	// TotalAssets is the custody account's current underlying balance.
	TotalAssets sdkmath.Int
	// ValuePerShare is TotalAssets/TotalShares at FixedPointScale precision,
	// zero while the vault is in its bootstrap state.
	ValuePerShare sdkmath.Int
}

// GetVaultSummary reads the vault record and its live ledger totals.
func (k *Keeper) GetVaultSummary(ctx context.Context, underlyingDenom string) (VaultSummary, error) {
	vault, found, err := k.GetVault(ctx, underlyingDenom)
	if err != nil {
		return VaultSummary{}, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return VaultSummary{}, errors.Wrapf(types.ErrVaultNotFound, "underlying denom %s", underlyingDenom)
	}

	custodyBz, err := k.address.StringToBytes(vault.CustodyAddress)
	if err != nil {
		return VaultSummary{}, errors.Wrap(err, "unable to decode custody address")
	}

	totalShares := k.bank.GetSupply(ctx, vault.ShareDenom).Amount
	totalAssets := k.bank.GetBalance(ctx, sdk.AccAddress(custodyBz), vault.UnderlyingDenom).Amount

	return VaultSummary{
		Vault:         vault,
		TotalShares:   totalShares,
		TotalAssets:   totalAssets,
		ValuePerShare: ValuePerShare(totalShares, totalAssets),
	}, nil
}
