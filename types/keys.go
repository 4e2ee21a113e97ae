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

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const ModuleName = "vault"

var (
	ProtocolStateKey  = []byte("vault/protocol_state")
	VaultAuthorityKey = []byte("vault/authority")
	VaultPrefix       = []byte("vault/vaults/")
)

// ModuleAddress is the address shares are minted into before they are paid out
// to depositors, and the address burned shares pass through on redemption.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

// AuthorityAddress derives the singleton vault authority address. Every mint
// out of a share denom and every transfer out of a custody account is
// authorized by this address.
func AuthorityAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/authority", ModuleName))
}

// CustodyAddress derives the custody account for the vault holding the given
// underlying denom. The derivation is a pure function of the module namespace
// and the underlying denom, so any caller can recompute it without a lookup.
func CustodyAddress(underlyingDenom string) sdk.AccAddress {
	return authtypes.NewModuleAddress(fmt.Sprintf("%s/custody/%s", ModuleName, underlyingDenom))
}

// ShareDenom derives the share denom for the vault holding the given
// underlying denom. One underlying denom maps to exactly one share denom.
func ShareDenom(underlyingDenom string) string {
	return fmt.Sprintf("vaultshare/%s", underlyingDenom)
}
