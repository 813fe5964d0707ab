//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

package simpledb

import (
	"strconv"

	"github.com/fogfish/simpledb/internal/sigv2"
)

// encodeAttributes flattens attributes into Attribute.N.* wire parameters,
// 1-based and contiguous in caller order. Replace is emitted only when set,
// false is the wire default.
func encodeAttributes(seq sigv2.Params, prefix string, attrs []Attribute) sigv2.Params {
	for i, attr := range attrs {
		key := prefix + "Attribute." + strconv.Itoa(i+1)
		seq = seq.With(key+".Name", attr.Name)
		seq = seq.With(key+".Value", attr.Value)
		if attr.Replace {
			seq = seq.With(key+".Replace", "true")
		}
	}

	return seq
}

// encodeDeletable emits Attribute.N.Value only for named values, a name
// without the value removes every value of the attribute. Replace has no
// meaning in a delete request and never reaches the wire.
func encodeDeletable(seq sigv2.Params, prefix string, attrs []Attribute) sigv2.Params {
	for i, attr := range attrs {
		key := prefix + "Attribute." + strconv.Itoa(i+1)
		seq = seq.With(key+".Name", attr.Name)
		if attr.Value != "" {
			seq = seq.With(key+".Value", attr.Value)
		}
	}

	return seq
}

// encodeItems flattens the batch into Item.N.ItemName plus the item's
// attributes under the same prefix.
func encodeItems(seq sigv2.Params, items []Item) sigv2.Params {
	for i, item := range items {
		key := "Item." + strconv.Itoa(i+1)
		seq = seq.With(key+".ItemName", item.Name)
		seq = encodeAttributes(seq, key+".", item.Attributes)
	}

	return seq
}

// encodeDeletableItems flattens the batch with delete semantics per
// attribute, an item with no attributes removes the entire item.
func encodeDeletableItems(seq sigv2.Params, items []Item) sigv2.Params {
	for i, item := range items {
		key := "Item." + strconv.Itoa(i+1)
		seq = seq.With(key+".ItemName", item.Name)
		seq = encodeDeletable(seq, key+".", item.Attributes)
	}

	return seq
}
