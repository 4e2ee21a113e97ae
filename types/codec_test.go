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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault.custodia.xyz/types"
)

func TestCollJSONValue(t *testing.T) {
	codec := types.CollJSONValue[types.Vault]("vault")
	vault := types.Vault{
		ShareDenom:      types.ShareDenom("uusdc"),
		UnderlyingDenom: "uusdc",
		CustodyAddress:  types.CustodyAddress("uusdc").String(),
		CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	bz, err := codec.Encode(vault)
	require.NoError(t, err)
	got, err := codec.Decode(bz)
	require.NoError(t, err)
	assert.Equal(t, vault, got)

	assert.JSONEq(t, string(bz), codec.Stringify(vault))
	assert.Equal(t, "vault", codec.ValueType())

	_, err = codec.Decode([]byte("not json"))
	assert.Error(t, err)
}
