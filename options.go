//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

//
// The file declares config options
//

package simpledb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/fogfish/opts"
)

// Option type to configure the client
type Option = opts.Option[Options]

// Config Options
type Options struct {
	region      Region
	credentials aws.CredentialsProvider
	service     aws.HTTPClient
	expiry      time.Duration
	clock       func() time.Time
}

func (c *Options) checkRequired() error {
	// credentials is an interface, reflection on the unset field panics
	// inside opts.Required, the nil check has to be explicit
	if c.credentials == nil {
		return errUndefinedCredentials.New(nil)
	}

	return opts.Required(c,
		WithRegion(Region{}),
	)
}

var (
	// Select the service region, e.g. simpledb.USEast1
	WithRegion = opts.ForType[Options, Region]()

	// Supply AWS credentials used for request signing
	WithCredentials = opts.ForType[Options, aws.CredentialsProvider]()

	// Set HTTP transport used to reach the service
	WithHTTP = opts.ForType[Options, aws.HTTPClient]()

	// Bound the validity window of the request signature, 600s by default
	WithExpiry = opts.ForType[Options, time.Duration]()

	// Inject the time source, tests pin it to freeze the Expires parameter
	WithClock = opts.ForType[Options, func() time.Time]()

	// Configure the client from aws.Config
	WithConfig = opts.FMap(optsFromConfig)

	// Resolve credentials from the ambient AWS environment
	WithDefaultCredentials = opts.From(optsDefaultCredentials)
)

func optsDefault() Options {
	return Options{
		service: awshttp.NewBuildableClient(),
		expiry:  600 * time.Second,
		clock:   time.Now,
	}
}

func optsFromConfig(c *Options, cfg aws.Config) error {
	if c.credentials == nil {
		c.credentials = cfg.Credentials
	}
	if cfg.HTTPClient != nil {
		c.service = cfg.HTTPClient
	}
	return nil
}

func optsDefaultCredentials(c *Options) error {
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}

	return optsFromConfig(c, cfg)
}
