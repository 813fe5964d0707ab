//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

package simpledb

import (
	"errors"
	"fmt"

	"github.com/fogfish/faults"
)

const (
	errServiceIO            = faults.Type("service i/o failed")
	errInvalidResponse      = faults.Type("malformed service response")
	errUndefinedCredentials = faults.Type("undefined credentials")
)

// OpError is the failure reported by the service itself, decoded from the
// error envelope of the response.
type OpError struct {
	Code      string  `xml:"Code"`
	Message   string  `xml:"Message"`
	BoxUsage  float64 `xml:"BoxUsage"`
	Status    int     `xml:"-"`
	RequestID string  `xml:"-"`
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s (http %d): %s", e.Code, e.Status, e.Message)
}

func (e *OpError) ErrorCode() string { return e.Code }

// NotFound is an error to handle unknown domains
func errNotFound(err error, domain string) error {
	return &notFound{domain: domain, err: err}
}

type notFound struct {
	domain string
	err    error
}

func (e *notFound) Error() string {
	return fmt.Sprintf("Not Found (%s): %s", e.domain, e.err)
}

func (e *notFound) Unwrap() error { return e.err }

func (e *notFound) NotFound() string { return e.domain }

// recover AWS ErrorCode
func recoverNoSuchDomain(err error) bool {
	var e interface{ ErrorCode() string }

	ok := errors.As(err, &e)
	return ok && e.ErrorCode() == "NoSuchDomain"
}
