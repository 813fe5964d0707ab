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

	"github.com/fogfish/simpledb/internal/sigv2"
)

// BatchPutAttributes writes attributes of multiple items with a single
// call. The service limits the batch to 25 items.
func (db *Client) BatchPutAttributes(ctx context.Context, domain string, items []Item) error {
	seq := sigv2.Params{}.With("DomainName", domain)
	seq = encodeItems(seq, items)

	_, err := send[nullResponse](ctx, db, "BatchPutAttributes", seq)
	if recoverNoSuchDomain(err) {
		return errNotFound(err, domain)
	}
	return err
}

// BatchDeleteAttributes removes attributes of multiple items with a single
// call, entire items when their attribute sequence is empty. A name-only
// attribute removes every value of that name.
func (db *Client) BatchDeleteAttributes(ctx context.Context, domain string, items []Item) error {
	seq := sigv2.Params{}.With("DomainName", domain)
	seq = encodeDeletableItems(seq, items)

	_, err := send[nullResponse](ctx, db, "BatchDeleteAttributes", seq)
	if recoverNoSuchDomain(err) {
		return errNotFound(err, domain)
	}
	return err
}
