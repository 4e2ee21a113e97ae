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

package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"

	"vault.custodia.xyz/types"
)

func TestAddressDerivation(t *testing.T) {
	// Derivations are pure functions of their inputs.
	assert.Equal(t, types.AuthorityAddress(), types.AuthorityAddress())
	assert.Equal(t, types.CustodyAddress("uusdc"), types.CustodyAddress("uusdc"))

	// Distinct denoms get distinct custody accounts, and none of them collide
	// with the authority or the module account.
	seen := map[string]bool{
		types.AuthorityAddress().String(): true,
		types.ModuleAddress.String():      true,
	}
	for _, denom := range []string{"uusdc", "uatom", "uosmo"} {
		custody := types.CustodyAddress(denom).String()
		assert.False(t, seen[custody], "custody address collision for %s", denom)
		seen[custody] = true
	}
}

func TestShareDenom(t *testing.T) {
	denom := types.ShareDenom("uusdc")

	assert.Equal(t, "vaultshare/uusdc", denom)
	assert.NoError(t, sdk.ValidateDenom(denom))
}
