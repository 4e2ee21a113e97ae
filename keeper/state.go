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
	"errors"

	"cosmossdk.io/collections"

	"vault.custodia.xyz/types"
)

// GetProtocolState returns the stored protocol state. The boolean flag
// indicates whether the protocol has been initialized.
func (k *Keeper) GetProtocolState(ctx context.Context) (types.ProtocolState, bool, error) {
	state, err := k.ProtocolState.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ProtocolState{}, false, nil
		}
		return types.ProtocolState{}, false, err
	}

	return state, true, nil
}

// SetProtocolState persists the supplied protocol state.
func (k *Keeper) SetProtocolState(ctx context.Context, state types.ProtocolState) error {
	return k.ProtocolState.Set(ctx, state)
}

// GetVaultAuthority returns the singleton vault authority record. The boolean
// flag indicates whether it exists in state.
func (k *Keeper) GetVaultAuthority(ctx context.Context) (types.VaultAuthority, bool, error) {
	authority, err := k.VaultAuthority.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultAuthority{}, false, nil
		}
		return types.VaultAuthority{}, false, err
	}

	return authority, true, nil
}

// SetVaultAuthority persists the singleton vault authority record.
func (k *Keeper) SetVaultAuthority(ctx context.Context, authority types.VaultAuthority) error {
	return k.VaultAuthority.Set(ctx, authority)
}

// GetVault returns the vault for an underlying denom. The boolean flag
// indicates whether the vault exists.
func (k *Keeper) GetVault(ctx context.Context, underlyingDenom string) (types.Vault, bool, error) {
	vault, err := k.Vaults.Get(ctx, underlyingDenom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, false, nil
		}
		return types.Vault{}, false, err
	}

	return vault, true, nil
}

// HasVault reports whether a vault exists for the underlying denom.
func (k *Keeper) HasVault(ctx context.Context, underlyingDenom string) (bool, error) {
	return k.Vaults.Has(ctx, underlyingDenom)
}

// SetVault writes the vault record keyed by its underlying denom.
func (k *Keeper) SetVault(ctx context.Context, vault types.Vault) error {
	return k.Vaults.Set(ctx, vault.UnderlyingDenom, vault)
}

// IterateVaults walks every stored vault and invokes the supplied callback.
// Returning true from the callback stops the iteration early.
func (k *Keeper) IterateVaults(ctx context.Context, fn func(vault types.Vault) (bool, error)) error {
	return k.Vaults.Walk(ctx, nil, func(_ string, vault types.Vault) (bool, error) {
		return fn(vault)
	})
}
