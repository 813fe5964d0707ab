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
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/fogfish/opts"
	"github.com/fogfish/simpledb/internal/sigv2"
)

// Client is a connection handle to the service in the configured region.
// It holds no mutable state, methods are safe for concurrent use.
type Client struct {
	region      Region
	credentials aws.CredentialsProvider
	service     aws.HTTPClient
	expiry      time.Duration
	clock       func() time.Time
}

// Must constraint for client factory
func Must(db *Client, err error) *Client {
	if err != nil {
		panic(err)
	}

	return db
}

// New creates instance of the SimpleDB client
func New(opt ...Option) (*Client, error) {
	conf := optsDefault()
	if err := opts.Apply(&conf, opt); err != nil {
		return nil, err
	}
	if err := conf.checkRequired(); err != nil {
		return nil, err
	}

	return &Client{
		region:      conf.region,
		credentials: conf.credentials,
		service:     conf.service,
		expiry:      conf.expiry,
		clock:       conf.clock,
	}, nil
}

// send signs the parameter set, issues HTTP GET to the regional endpoint
// and decodes the response into A. Every action method is parameter
// assembly plus one send.
func send[A any](ctx context.Context, db *Client, action string, params sigv2.Params) (*A, error) {
	seq := make(sigv2.Params, 0, len(params)+1)
	seq = seq.With("Action", action)
	seq = append(seq, params...)

	creds, err := db.credentials.Retrieve(ctx)
	if err != nil {
		return nil, errServiceIO.New(err)
	}

	signer := sigv2.Signer{
		Access:  creds.AccessKeyID,
		Secret:  creds.SecretAccessKey,
		Token:   creds.SessionToken,
		Expires: db.clock().Add(db.expiry),
	}

	query, err := signer.Sign(http.MethodGet, db.region.Endpoint, seq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://"+db.region.Endpoint+"/?"+query, nil)
	if err != nil {
		return nil, errServiceIO.New(err)
	}

	rsp, err := db.service.Do(req)
	if err != nil {
		return nil, errServiceIO.New(err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode != http.StatusOK {
		return nil, recoverOpError(rsp)
	}

	var val A
	if err := xml.NewDecoder(rsp.Body).Decode(&val); err != nil {
		return nil, errInvalidResponse.New(err)
	}

	// envelopes with the action-derived element name are pinned here,
	// the typed ones constrain the root at decode time
	if rsp, ok := any(&val).(interface{ validate(string) error }); ok {
		if err := rsp.validate(action); err != nil {
			return nil, errInvalidResponse.New(err)
		}
	}

	return &val, nil
}

// recoverOpError decodes the error envelope, an undecodable body is a
// distinct failure so that callers can tell "service rejected the request"
// from "we could not understand the reply".
func recoverOpError(rsp *http.Response) error {
	var seq errorResponse
	if err := xml.NewDecoder(rsp.Body).Decode(&seq); err != nil {
		return errInvalidResponse.New(err)
	}
	if len(seq.Errors) == 0 {
		return errInvalidResponse.New(fmt.Errorf("empty error envelope (http %d)", rsp.StatusCode))
	}

	fail := seq.Errors[0]
	fail.Status = rsp.StatusCode
	fail.RequestID = seq.RequestID
	return &fail
}
