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

// PutAttributes writes attributes of the item. An attribute with Replace
// overwrites every existing value of its name, others append.
func (db *Client) PutAttributes(ctx context.Context, domain, item string, attrs []Attribute) error {
	seq := sigv2.Params{}.
		With("DomainName", domain).
		With("ItemName", item)
	seq = encodeAttributes(seq, "", attrs)

	_, err := send[nullResponse](ctx, db, "PutAttributes", seq)
	if recoverNoSuchDomain(err) {
		return errNotFound(err, domain)
	}
	return err
}

// GetAttributes fetches attributes of the item, all of them unless
// AttributeName restricts the set. Read is eventually consistent unless
// ConsistentRead(true) is given.
func (db *Client) GetAttributes(ctx context.Context, domain, item string, opts ...interface{ GetAttributesOpt() }) ([]Attribute, error) {
	seq := sigv2.Params{}.
		With("DomainName", domain).
		With("ItemName", item)

	consistent := ConsistentRead(false)
	for _, opt := range opts {
		switch v := opt.(type) {
		case AttributeName:
			seq = seq.With("AttributeName", string(v))
		case ConsistentRead:
			consistent = v
		}
	}
	seq = seq.With("ConsistentRead", strconv.FormatBool(bool(consistent)))

	val, err := send[getAttributesResponse](ctx, db, "GetAttributes", seq)
	if err != nil {
		if recoverNoSuchDomain(err) {
			return nil, errNotFound(err, domain)
		}
		return nil, err
	}

	attrs := make([]Attribute, len(val.Attributes))
	for i, node := range val.Attributes {
		attrs[i] = Attribute{Name: node.Name, Value: node.Value}
	}

	return attrs, nil
}

// DeleteAttributes removes attributes of the item, the entire item when
// attrs is empty.
func (db *Client) DeleteAttributes(ctx context.Context, domain, item string, attrs []Attribute) error {
	seq := sigv2.Params{}.
		With("DomainName", domain).
		With("ItemName", item)
	seq = encodeDeletable(seq, "", attrs)

	_, err := send[nullResponse](ctx, db, "DeleteAttributes", seq)
	if recoverNoSuchDomain(err) {
		return errNotFound(err, domain)
	}
	return err
}
