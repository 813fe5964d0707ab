//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

// Package simpledb implements a client to Amazon SimpleDB REST API,
// version 2009-04-15.
//
// # Inspiration
//
// SimpleDB speaks the AWS query protocol: every action is an HTTP GET
// whose query string carries the parameters and an AWS Signature Version 2
// seal. The library assembles the parameters, signs them and decodes the
// XML reply into typed results, one method per API action.
//
// Essentially, it implements the following trait to access domains and
// their items
//
//	trait SimpleDB {
//	  def createDomain(domain: String)
//	  def deleteDomain(domain: String)
//	  def listDomains(): Seq[Domain]
//	  def putAttributes(domain: String, item: String, attrs: Seq[Attribute])
//	  def getAttributes(domain: String, item: String): Seq[Attribute]
//	  def deleteAttributes(domain: String, item: String, attrs: Seq[Attribute])
//	  def select(expr: String): Seq[Item]
//	}
//
// # Getting started
//
// Create the client, the region is an explicit and required decision
//
//	db := simpledb.Must(
//	  simpledb.New(
//	    simpledb.WithRegion(simpledb.USEast1),
//	    simpledb.WithDefaultCredentials(),
//	  ),
//	)
//
// Create a domain and write an item
//
//	err := db.CreateDomain(ctx, "people")
//	err = db.PutAttributes(ctx, "people", "8980789222",
//	  []simpledb.Attribute{
//	    {Name: "name", Value: "Verner Pleishner"},
//	    {Name: "age", Value: "64", Replace: true},
//	  },
//	)
//
// Read it back, strongly consistent
//
//	attrs, err := db.GetAttributes(ctx, "people", "8980789222",
//	  simpledb.ConsistentRead(true),
//	)
//
// Query the domain, following the pagination token is the caller's call
//
//	items, token, err := db.Select(ctx, "select * from people where age > '60'")
//
// The client performs no retries and no recovery, every failure is
// returned as-is: transport errors, the service's own error envelope
// (simpledb.OpError) and undecodable replies are distinct kinds.
package simpledb
