//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

package simpledb

import (
	"context"
	"strconv"

	"github.com/fogfish/simpledb/internal/sigv2"
)

// CreateDomain creates the domain, the call is idempotent.
func (db *Client) CreateDomain(ctx context.Context, domain string) error {
	seq := sigv2.Params{}.With("DomainName", domain)

	_, err := send[nullResponse](ctx, db, "CreateDomain", seq)
	return err
}

// DeleteDomain removes the domain and everything in it.
func (db *Client) DeleteDomain(ctx context.Context, domain string) error {
	seq := sigv2.Params{}.With("DomainName", domain)

	_, err := send[nullResponse](ctx, db, "DeleteDomain", seq)
	return err
}

// ListDomains returns domain names of the account, 100 at most unless
// Limit demands less. The returned token resumes the listing.
func (db *Client) ListDomains(ctx context.Context, opts ...interface{ ListDomainsOpt() }) ([]Domain, NextToken, error) {
	seq := sigv2.Params{}
	for _, opt := range opts {
		switch v := opt.(type) {
		case Limit:
			seq = seq.With("MaxNumberOfDomains", strconv.Itoa(int(v)))
		case NextToken:
			seq = seq.With("NextToken", string(v))
		}
	}

	val, err := send[listDomainsResponse](ctx, db, "ListDomains", seq)
	if err != nil {
		return nil, "", err
	}

	domains := make([]Domain, len(val.Domains))
	for i, name := range val.Domains {
		domains[i] = Domain{Name: name}
	}

	return domains, NextToken(val.NextToken), nil
}

// DomainMetadata fetches the counters snapshot of the domain.
func (db *Client) DomainMetadata(ctx context.Context, domain string) (*DomainMetadata, error) {
	seq := sigv2.Params{}.With("DomainName", domain)

	val, err := send[domainMetadataResponse](ctx, db, "DomainMetadata", seq)
	if err != nil {
		if recoverNoSuchDomain(err) {
			return nil, errNotFound(err, domain)
		}
		return nil, err
	}

	return &val.Metadata, nil
}
