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
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the transaction surface of the vault module.
type MsgServer interface {
	// Initialize creates the protocol state and vault authority. It may be
	// executed exactly once per deployment.
	Initialize(ctx context.Context, msg *MsgInitialize) (*MsgInitializeResponse, error)
	// InitializeVault creates the vault for an underlying denom, deriving its
	// custody address and share denom. At most one vault per underlying denom.
	InitializeVault(ctx context.Context, msg *MsgInitializeVault) (*MsgInitializeVaultResponse, error)
	// Deposit exchanges underlying assets for a proportional amount of shares.
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	// Redeem exchanges shares for a proportional slice of the vault's
	// underlying holdings.
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)
	// TransferOwnership hands the protocol owner role to a new address.
	TransferOwnership(ctx context.Context, msg *MsgTransferOwnership) (*MsgTransferOwnershipResponse, error)
}

type MsgInitialize struct {
	// Owner is the initial protocol owner.
	Owner string
}

type MsgInitializeResponse struct {
	Owner     string
	Authority string
}

type MsgInitializeVault struct {
	// Signer pays for and triggers vault creation; no ownership is required.
	Signer          string
	UnderlyingDenom string
}

type MsgInitializeVaultResponse struct {
	ShareDenom     string
	CustodyAddress string
}

type MsgDeposit struct {
	Depositor       string
	UnderlyingDenom string
	Amount          math.Int
	// ShareDenom optionally declares the share denom the depositor expects to
	// receive. When set it must match the vault's share denom.
	ShareDenom string
}

type MsgDepositResponse struct {
	AmountDeposited math.Int
	SharesMinted    math.Int
}

type MsgRedeem struct {
	Redeemer        string
	UnderlyingDenom string
	Shares          math.Int
}

type MsgRedeemResponse struct {
	SharesBurned       math.Int
	UnderlyingReturned math.Int
}

type MsgTransferOwnership struct {
	// CurrentOwner must match the stored protocol owner.
	CurrentOwner string
	NewOwner     string
}

type MsgTransferOwnershipResponse struct {
	PreviousOwner string
	NewOwner      string
}
