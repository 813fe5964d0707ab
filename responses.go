//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

//
// The file declares success and error envelopes of the 2009-04-15 XML schema
//

package simpledb

import (
	"encoding/xml"
	"fmt"
)

type responseMetadata struct {
	RequestID string  `xml:"RequestId"`
	BoxUsage  float64 `xml:"BoxUsage"`
}

// actions with empty result (CreateDomain, PutAttributes, ...) reply with
// the metadata envelope only, the element name varies per action so the
// decoder leaves the root open and validate pins it afterwards
type nullResponse struct {
	XMLName  xml.Name
	Metadata responseMetadata `xml:"ResponseMetadata"`
}

func (rsp *nullResponse) validate(action string) error {
	if rsp.XMLName.Local != action+"Response" {
		return fmt.Errorf("unexpected %s envelope for %s", rsp.XMLName.Local, action)
	}
	return nil
}

type listDomainsResponse struct {
	XMLName   xml.Name         `xml:"ListDomainsResponse"`
	Domains   []string         `xml:"ListDomainsResult>DomainName"`
	NextToken string           `xml:"ListDomainsResult>NextToken"`
	Metadata  responseMetadata `xml:"ResponseMetadata"`
}

type domainMetadataResponse struct {
	XMLName  xml.Name         `xml:"DomainMetadataResponse"`
	Metadata DomainMetadata   `xml:"DomainMetadataResult"`
	Usage    responseMetadata `xml:"ResponseMetadata"`
}

type getAttributesResponse struct {
	XMLName    xml.Name         `xml:"GetAttributesResponse"`
	Attributes []attributeNode  `xml:"GetAttributesResult>Attribute"`
	Metadata   responseMetadata `xml:"ResponseMetadata"`
}

type selectResponse struct {
	XMLName   xml.Name         `xml:"SelectResponse"`
	Items     []itemNode       `xml:"SelectResult>Item"`
	NextToken string           `xml:"SelectResult>NextToken"`
	Metadata  responseMetadata `xml:"ResponseMetadata"`
}

type attributeNode struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

type itemNode struct {
	Name       string          `xml:"Name"`
	Attributes []attributeNode `xml:"Attribute"`
}

// the error envelope spells RequestID with a capital ID, unlike the
// success metadata
type errorResponse struct {
	XMLName   xml.Name  `xml:"Response"`
	Errors    []OpError `xml:"Errors>Error"`
	RequestID string    `xml:"RequestID"`
}
