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
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"vault.custodia.xyz/types"
)

// FixedPointScale is the multiplier used when comparing value-per-share
// ratios without floating point.
var FixedPointScale = sdkmath.NewInt(1_000_000_000)

// CalculateSharesToMint returns the shares a deposit of amount is entitled to,
// given the vault's share supply and custody balance read before any mutation.
//
// With no shares outstanding, shares are minted 1:1 with the deposit and any
// residual custody balance is ignored. Otherwise the result is
// floor(amount * totalShares / totalAssets): division truncates so the
// depositor never receives more than their exact proportional entitlement,
// and rounding loss accrues to existing holders.
//
// The cross multiplication is performed on arbitrary-precision integers, so
// the product of two 64-bit quantities cannot wrap. A result that does not fit
// the unsigned 64-bit balance domain fails with ErrMathOverflow.
func CalculateSharesToMint(amount, totalShares, totalAssets sdkmath.Int) (sdkmath.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}

	if totalShares.IsZero() {
		if !amount.IsUint64() {
			return sdkmath.ZeroInt(), errors.Wrapf(types.ErrMathOverflow, "bootstrap mint of %s exceeds the 64-bit balance domain", amount)
		}
		return amount, nil
	}

	// Shares outstanding against a drained vault cannot occur under correct
	// redeem logic; fail closed rather than divide by zero.
	if !totalAssets.IsPositive() {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrInvalidVaultState, "shares outstanding against an empty vault")
	}

	product, err := amount.SafeMul(totalShares)
	if err != nil {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrMathOverflow, err.Error())
	}

	shares := product.Quo(totalAssets)
	if !shares.IsUint64() {
		return sdkmath.ZeroInt(), errors.Wrapf(types.ErrMathOverflow, "minting %s shares exceeds the 64-bit balance domain", shares)
	}

	return shares, nil
}

// CalculateUnderlyingForShares returns the underlying a redemption of shares
// is entitled to, floor(shares * totalAssets / totalShares), under the same
// truncation and overflow rules as CalculateSharesToMint. Rounding loss again
// accrues to the remaining holders.
func CalculateUnderlyingForShares(shares, totalShares, totalAssets sdkmath.Int) (sdkmath.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrInvalidAmount, "share amount must be positive")
	}
	if !totalShares.IsPositive() {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrNoShares, "share supply is zero")
	}
	if !totalAssets.IsPositive() {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrEmptyVault, "custody balance is zero")
	}

	product, err := shares.SafeMul(totalAssets)
	if err != nil {
		return sdkmath.ZeroInt(), errors.Wrap(types.ErrMathOverflow, err.Error())
	}

	underlying := product.Quo(totalShares)
	if !underlying.IsUint64() {
		return sdkmath.ZeroInt(), errors.Wrapf(types.ErrMathOverflow, "returning %s underlying exceeds the 64-bit balance domain", underlying)
	}

	return underlying, nil
}

// ValuePerShare returns totalAssets/totalShares at FixedPointScale precision.
// Zero when no shares exist.
func ValuePerShare(totalShares, totalAssets sdkmath.Int) sdkmath.Int {
	if !totalShares.IsPositive() {
		return sdkmath.ZeroInt()
	}
	return totalAssets.Mul(FixedPointScale).Quo(totalShares)
}
