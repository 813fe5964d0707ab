//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

package simpledb_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fogfish/it"
	"github.com/fogfish/simpledb"
	"github.com/fogfish/simpledb/internal/sdbtest"
)

const fixtureBatchPut = `<BatchPutAttributesResponse xmlns="http://sdb.amazonaws.com/doc/2009-04-15/">
  <ResponseMetadata>
    <RequestId>490206ce-8292-456c-8ef8-42d5a68a6808</RequestId>
    <BoxUsage>0.0000461918</BoxUsage>
  </ResponseMetadata>
</BatchPutAttributesResponse>`

const fixtureBatchDelete = `<BatchDeleteAttributesResponse xmlns="http://sdb.amazonaws.com/doc/2009-04-15/">
  <ResponseMetadata>
    <RequestId>3e696a2b-4a85-4479-a067-431ce4f2c9a4</RequestId>
    <BoxUsage>0.0000461918</BoxUsage>
  </ResponseMetadata>
</BatchDeleteAttributesResponse>`

func TestBatchPutAttributes(t *testing.T) {
	mock := &sdbtest.Service{Body: fixtureBatchPut}
	db := sdbtest.Endpoint(mock)

	err := db.BatchPutAttributes(context.Background(), "people",
		[]simpledb.Item{
			{
				Name: "8980789222",
				Attributes: []simpledb.Attribute{
					{Name: "name", Value: "Verner Pleishner"},
					{Name: "age", Value: "64", Replace: true},
				},
			},
			{
				Name: "8980789223",
				Attributes: []simpledb.Attribute{
					{Name: "name", Value: "Knut Hellström"},
				},
			},
		},
	)

	it.Ok(t).
		If(err).Should().Equal(nil).
		If(mock.Query.Get("Action")).Should().Equal("BatchPutAttributes").
		If(mock.Query.Get("DomainName")).Should().Equal("people").
		If(mock.Query.Get("Item.1.ItemName")).Should().Equal("8980789222").
		If(mock.Query.Get("Item.1.Attribute.1.Name")).Should().Equal("name").
		If(mock.Query.Get("Item.1.Attribute.1.Value")).Should().Equal("Verner Pleishner").
		If(mock.Query.Get("Item.1.Attribute.2.Name")).Should().Equal("age").
		If(mock.Query.Get("Item.1.Attribute.2.Replace")).Should().Equal("true").
		If(mock.Query.Get("Item.2.ItemName")).Should().Equal("8980789223").
		If(mock.Query.Get("Item.2.Attribute.1.Name")).Should().Equal("name")
}

// a name-only attribute deletes every value of the name, an empty
// Attribute.N.Value on the wire would delete the value "" instead
func TestBatchDeleteAttributesNameOnly(t *testing.T) {
	mock := &sdbtest.Service{Body: fixtureBatchDelete}
	db := sdbtest.Endpoint(mock)

	err := db.BatchDeleteAttributes(context.Background(), "people",
		[]simpledb.Item{
			{
				Name: "8980789222",
				Attributes: []simpledb.Attribute{
					{Name: "address"},
				},
			},
		},
	)

	it.Ok(t).
		If(err).Should().Equal(nil).
		If(mock.Query.Get("Item.1.Attribute.1.Name")).Should().Equal("address").
		IfFalse(mock.Query.Has("Item.1.Attribute.1.Value")).
		IfFalse(mock.Query.Has("Item.1.Attribute.1.Replace"))
}

func TestBatchDeleteAttributes(t *testing.T) {
	mock := &sdbtest.Service{Body: fixtureBatchDelete}
	db := sdbtest.Endpoint(mock)

	err := db.BatchDeleteAttributes(context.Background(), "people",
		[]simpledb.Item{
			{Name: "8980789222"},
			{
				Name: "8980789223",
				Attributes: []simpledb.Attribute{
					{Name: "age", Value: "64"},
				},
			},
		},
	)

	attrsOfFirst := false
	for key := range mock.Query {
		if strings.HasPrefix(key, "Item.1.Attribute.") {
			attrsOfFirst = true
		}
	}

	it.Ok(t).
		If(err).Should().Equal(nil).
		If(mock.Query.Get("Action")).Should().Equal("BatchDeleteAttributes").
		If(mock.Query.Get("Item.1.ItemName")).Should().Equal("8980789222").
		IfFalse(attrsOfFirst).
		If(mock.Query.Get("Item.2.Attribute.1.Name")).Should().Equal("age").
		If(mock.Query.Get("Item.2.Attribute.1.Value")).Should().Equal("64")
}
