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

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault.custodia.xyz/types"
	"vault.custodia.xyz/utils"
)

func TestGetVaultSummary(t *testing.T) {
	// ARRANGE
	env := initializedEnv(t)
	depositor := utils.TestAccount()
	fund(env.bank, depositor.Address, underlyingDenom, ONE)

	// ACT: Summary of an unknown vault.
	_, err := env.keeper.GetVaultSummary(env.ctx, "uatom")
	// ASSERT
	require.ErrorIs(t, err, types.ErrVaultNotFound)

	// ACT: Summary of the empty vault.
	summary, err := env.keeper.GetVaultSummary(env.ctx, underlyingDenom)
	// ASSERT: Bootstrap state, no rate yet.
	require.NoError(t, err)
	assert.Equal(t, types.ShareDenom(underlyingDenom), summary.Vault.ShareDenom)
	assert.True(t, summary.TotalShares.IsZero())
	assert.True(t, summary.TotalAssets.IsZero())
	assert.True(t, summary.ValuePerShare.IsZero())

	// ARRANGE: Deposit, then accrue yield into custody.
	_, err = env.server.Deposit(env.ctx, &types.MsgDeposit{
		Depositor:       depositor.Address,
		UnderlyingDenom: underlyingDenom,
		Amount:          ONE,
	})
	require.NoError(t, err)
	fund(env.bank, env.custody.String(), underlyingDenom, math.NewInt(200_000))

	// ACT
	summary, err = env.keeper.GetVaultSummary(env.ctx, underlyingDenom)

	// ASSERT: Live totals and a 1.2 rate at fixed-point precision.
	require.NoError(t, err)
	assert.Equal(t, ONE, summary.TotalShares)
	assert.Equal(t, math.NewInt(1_200_000), summary.TotalAssets)
	assert.Equal(t, math.NewInt(1_200_000_000), summary.ValuePerShare)
}
