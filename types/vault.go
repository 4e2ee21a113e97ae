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

import "time"

// Vault is the durable record for one underlying denom. It is written once at
// vault creation and never updated; balances referenced by it live in the bank
// ledger.
type Vault struct {
	// ShareDenom is the denom minted on deposits and burned on redemptions.
	// Its supply is managed exclusively by this module.
	ShareDenom string `json:"share_denom"`
	// UnderlyingDenom is the denom the vault custodies.
	UnderlyingDenom string `json:"underlying_denom"`
	// CustodyAddress is the bech32 address holding the vault's underlying
	// assets, derived from the underlying denom.
	CustodyAddress string `json:"custody_address"`
	// CreatedAt is the block time the vault was initialized.
	CreatedAt time.Time `json:"created_at"`
}

// VaultAuthority is the singleton capability record authorizing share mints
// and transfers out of custody accounts. Created once, never mutated.
type VaultAuthority struct {
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ProtocolState holds the protocol owner. Mutated only by TransferOwnership.
type ProtocolState struct {
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}
