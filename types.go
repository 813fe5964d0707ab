//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

//
// The file declares public types of the library
//

package simpledb

//-----------------------------------------------------------------------------
//
// Region
//
//-----------------------------------------------------------------------------

// Region is the SimpleDB endpoint of an AWS region. The endpoint host
// participates in the string-to-sign, requests against a wrong host fail
// the signature check server-side. The client demands an explicit region,
// there is no implicit default.
type Region struct {
	Name     string
	Endpoint string
}

var (
	USEast1      = Region{Name: "us-east-1", Endpoint: "sdb.amazonaws.com"}
	USWest1      = Region{Name: "us-west-1", Endpoint: "sdb.us-west-1.amazonaws.com"}
	USWest2      = Region{Name: "us-west-2", Endpoint: "sdb.us-west-2.amazonaws.com"}
	EUWest1      = Region{Name: "eu-west-1", Endpoint: "sdb.eu-west-1.amazonaws.com"}
	APSouthEast1 = Region{Name: "ap-southeast-1", Endpoint: "sdb.ap-southeast-1.amazonaws.com"}
	APNorthEast1 = Region{Name: "ap-northeast-1", Endpoint: "sdb.ap-northeast-1.amazonaws.com"}
	SAEast1      = Region{Name: "sa-east-1", Endpoint: "sdb.sa-east-1.amazonaws.com"}
)

//-----------------------------------------------------------------------------
//
// Entities
//
//-----------------------------------------------------------------------------

// Attribute is a single name/value pair of an item. Attributes are
// multi-valued, the service keeps every value written under the same name
// unless Replace demands the overwrite.
type Attribute struct {
	Name    string
	Value   string
	Replace bool
}

// Item is a named sequence of attributes within a domain. The order of
// attributes is preserved on the wire, array position becomes part of the
// parameter name.
type Item struct {
	Name       string
	Attributes []Attribute
}

// Domain is a named container of items, its lifecycle is entirely
// server-side.
type Domain struct {
	Name string
}

// DomainMetadata is a read-only snapshot of domain counters.
type DomainMetadata struct {
	ItemCount                int64 `xml:"ItemCount"`
	ItemNamesSizeBytes       int64 `xml:"ItemNamesSizeBytes"`
	AttributeNameCount       int64 `xml:"AttributeNameCount"`
	AttributeNamesSizeBytes  int64 `xml:"AttributeNamesSizeBytes"`
	AttributeValueCount      int64 `xml:"AttributeValueCount"`
	AttributeValuesSizeBytes int64 `xml:"AttributeValuesSizeBytes"`
	Timestamp                int64 `xml:"Timestamp"`
}

//-----------------------------------------------------------------------------
//
// Per-call options
//
//-----------------------------------------------------------------------------

// Limit caps the number of domain names returned by ListDomains,
// the service defaults to 100.
type Limit int32

func (Limit) ListDomainsOpt() {}

// NextToken resumes a paginated ListDomains or Select. The client never
// follows the token on its own, re-invoke the action to continue.
type NextToken string

func (NextToken) ListDomainsOpt() {}
func (NextToken) SelectOpt()      {}

// ConsistentRead demands a strongly consistent read, eventually
// consistent is the service default.
type ConsistentRead bool

func (ConsistentRead) GetAttributesOpt() {}
func (ConsistentRead) SelectOpt()        {}

// AttributeName restricts GetAttributes to the named attribute.
type AttributeName string

func (AttributeName) GetAttributesOpt() {}
