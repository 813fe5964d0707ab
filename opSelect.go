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

// Select evaluates the expression against the domain named inside it.
// The result is truncated by the service, the returned token resumes the
// query from the last seen item.
func (db *Client) Select(ctx context.Context, expr string, opts ...interface{ SelectOpt() }) ([]Item, NextToken, error) {
	seq := sigv2.Params{}.With("SelectExpression", expr)

	consistent := ConsistentRead(false)
	for _, opt := range opts {
		switch v := opt.(type) {
		case NextToken:
			seq = seq.With("NextToken", string(v))
		case ConsistentRead:
			consistent = v
		}
	}
	seq = seq.With("ConsistentRead", strconv.FormatBool(bool(consistent)))

	val, err := send[selectResponse](ctx, db, "Select", seq)
	if err != nil {
		return nil, "", err
	}

	items := make([]Item, len(val.Items))
	for i, node := range val.Items {
		attrs := make([]Attribute, len(node.Attributes))
		for j, attr := range node.Attributes {
			attrs[j] = Attribute{Name: attr.Name, Value: attr.Value}
		}
		items[i] = Item{Name: node.Name, Attributes: attrs}
	}

	return items, NextToken(val.NextToken), nil
}
