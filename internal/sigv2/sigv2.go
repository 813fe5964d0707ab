//
// Copyright (C) 2022 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/simpledb
//

// Package sigv2 seals query parameters with AWS Signature Version 2.
//
// The service validates the signature against its own rendition of the
// request, the canonical form has to match byte-for-byte: parameters are
// sorted by key, percent-encoded per RFC 3986 and joined into the four
// line string-to-sign METHOD, HOST, "/", QUERY.
package sigv2

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fogfish/faults"
)

// Version of the SimpleDB API the signature is issued for
const Version = "2009-04-15"

const (
	signatureVersion = "2"
	signatureMethod  = "HmacSHA1"
	timeFormat       = "2006-01-02T15:04:05Z"
)

const errEncoding = faults.Safe1[string]("parameter %s is not a valid utf8 sequence")

// Param is a single key/value pair of the query string
type Param struct{ Key, Value string }

// Params is an ordered sequence of pairs. The order is significant,
// list-valued parameters (Item.N, Attribute.N) derive wire names from it
// and the canonical sort is stable over it.
type Params []Param

// With appends the pair to the sequence
func (seq Params) With(key, value string) Params {
	return append(seq, Param{Key: key, Value: value})
}

// Signer seals request parameters on behalf of the AWS account.
// Expires is a resolved instant rather than a time source, signing is
// a pure function of the struct and its inputs.
type Signer struct {
	Access  string
	Secret  string
	Token   string
	Expires time.Time
}

// Sign produces the signed query string for the request.
func (s Signer) Sign(method, host string, params Params) (string, error) {
	seq := make(Params, len(params), len(params)+6)
	copy(seq, params)

	seq = seq.
		With("AWSAccessKeyId", s.Access).
		With("Expires", s.Expires.UTC().Format(timeFormat)).
		With("Version", Version).
		With("SignatureVersion", signatureVersion).
		With("SignatureMethod", signatureMethod)
	if s.Token != "" {
		seq = seq.With("SecurityToken", s.Token)
	}

	sort.SliceStable(seq, func(i, j int) bool { return seq[i].Key < seq[j].Key })

	var query strings.Builder
	for i, kv := range seq {
		if !utf8.ValidString(kv.Key) || !utf8.ValidString(kv.Value) {
			return "", errEncoding.New(nil, kv.Key)
		}
		if i != 0 {
			query.WriteByte('&')
		}
		query.WriteString(escape(kv.Key))
		query.WriteByte('=')
		query.WriteString(escape(kv.Value))
	}

	digest := hmac.New(sha1.New, []byte(s.Secret))
	digest.Write([]byte(method))
	digest.Write([]byte{'\n'})
	digest.Write([]byte(host))
	digest.Write([]byte("\n/\n"))
	digest.Write([]byte(query.String()))
	signature := base64.StdEncoding.EncodeToString(digest.Sum(nil))

	return "Signature=" + escape(signature) + "&" + query.String(), nil
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes everything but the RFC 3986 unreserved set,
// space becomes %20 not +.
func escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
