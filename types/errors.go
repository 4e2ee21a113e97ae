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

import "cosmossdk.io/errors"

var (
	// Input validation. Surfaced before any state change.
	ErrInvalidRequest    = errors.Register(ModuleName, 2, "invalid request")
	ErrInvalidAmount     = errors.Register(ModuleName, 3, "amount must be positive")
	ErrInvalidShareAsset = errors.Register(ModuleName, 4, "share denom does not match the vault's share denom")

	// Numeric safety. Fails closed.
	ErrMathOverflow = errors.Register(ModuleName, 5, "math operation overflow")

	// Economic-soundness guards. Fail closed, protect counterparties.
	ErrInsufficientShares     = errors.Register(ModuleName, 6, "deposit would mint zero shares")
	ErrInsufficientUnderlying = errors.Register(ModuleName, 7, "redemption would return zero underlying")
	ErrInvalidVaultState      = errors.Register(ModuleName, 8, "vault state is invalid")
	ErrNoShares               = errors.Register(ModuleName, 9, "no shares exist in circulation")
	ErrEmptyVault             = errors.Register(ModuleName, 10, "vault holds no assets")

	// Administrative surface.
	ErrUnauthorized       = errors.Register(ModuleName, 11, "signer is not the protocol owner")
	ErrAlreadyInitialized = errors.Register(ModuleName, 12, "protocol is already initialized")
	ErrNotInitialized     = errors.Register(ModuleName, 13, "protocol is not initialized")
	ErrVaultExists        = errors.Register(ModuleName, 14, "a vault already exists for this underlying denom")
	ErrVaultNotFound      = errors.Register(ModuleName, 15, "no vault exists for this underlying denom")
	ErrSameOwner          = errors.Register(ModuleName, 16, "new owner matches the current owner")
)
