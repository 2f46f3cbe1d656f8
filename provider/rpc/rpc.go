// Package rpc fetches raw account records over Solana JSON-RPC using
// getMultipleAccounts.
package rpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	solrpc "github.com/gagliardetto/solana-go/rpc"

	"github.com/solwatch/parsecache"
)

var ErrNilClient = errors.New("rpc provider: nil client")

type Provider struct {
	cl         *solrpc.Client
	commitment solrpc.CommitmentType
}

var _ parsecache.Provider = (*Provider)(nil)

type Config struct {
	Client     *solrpc.Client
	Commitment solrpc.CommitmentType // "" => finalized
}

func New(cfg Config) (*Provider, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	cm := cfg.Commitment
	if cm == "" {
		cm = solrpc.CommitmentFinalized
	}
	return &Provider{cl: cfg.Client, commitment: cm}, nil
}

// Fetch issues one getMultipleAccounts call for the non-nil ids and maps the
// response back onto the input positions. Unknown accounts come back nil.
func (p *Provider) Fetch(ctx context.Context, ids []*solana.PublicKey) ([]*parsecache.RawRecord, error) {
	out := make([]*parsecache.RawRecord, len(ids))

	keys := make([]solana.PublicKey, 0, len(ids))
	pos := make([]int, 0, len(ids))
	for i, id := range ids {
		if id != nil {
			keys = append(keys, *id)
			pos = append(pos, i)
		}
	}
	if len(keys) == 0 {
		return out, nil
	}

	res, err := p.cl.GetMultipleAccountsWithOpts(ctx, keys, &solrpc.GetMultipleAccountsOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: p.commitment,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("rpc provider: empty getMultipleAccounts response")
	}
	if len(res.Value) != len(keys) {
		return nil, fmt.Errorf("rpc provider: got %d accounts for %d keys", len(res.Value), len(keys))
	}

	slot := res.RPCContext.Context.Slot
	for j, acc := range res.Value {
		if acc == nil {
			continue // account does not exist at this commitment
		}
		out[pos[j]] = &parsecache.RawRecord{
			Pubkey: keys[j],
			Data:   acc.Data.GetBinary(),
			Meta: parsecache.AccountMeta{
				Owner:      acc.Owner,
				Lamports:   acc.Lamports,
				Slot:       slot,
				Executable: acc.Executable,
			},
		}
	}
	return out, nil
}
