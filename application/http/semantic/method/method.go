// Package method enumerates the standard HTTP request methods.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9
package method

import (
	"http-enum/lib/ds/set"

	"github.com/pkg/errors"
)

var ErrUnknown = errors.New("unknown method")

// Method is a request method token. Tokens are case-sensitive.
type Method string

const (
	Get     Method = "GET"
	Post    Method = "POST"
	Put     Method = "PUT"
	Delete  Method = "DELETE"
	Patch   Method = "PATCH" // RFC 5789
	Head    Method = "HEAD"
	Options Method = "OPTIONS"
	Trace   Method = "TRACE"
	Connect Method = "CONNECT"
)

var members = set.New(Get, Post, Put, Delete, Patch, Head, Options, Trace, Connect)

// Parse matches token exactly. It neither trims nor folds case,
// so "get" and "GET " are both rejected.
func Parse(token string) (Method, bool) {
	m := Method(token)
	if !members.Contains(m) {
		return "", false
	}
	return m, true
}

func MustParse(token string) Method {
	m, ok := Parse(token)
	if !ok {
		panic(errors.Wrapf(ErrUnknown, "%q", token))
	}
	return m
}

func IsValid(token string) bool {
	_, ok := Parse(token)
	return ok
}

func (m Method) Valid() bool { return members.Contains(m) }

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.2.1
func (m Method) IsSafe() bool {
	switch m {
	case Get, Head, Options, Trace:
		return true
	case Post, Put, Delete, Patch, Connect:
		return false
	}
	return false
}

// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-9.2.2
func (m Method) IsIdempotent() bool {
	switch m {
	case Get, Head, Put, Delete, Options, Trace, Connect:
		return true
	case Post, Patch:
		return false
	}
	return false
}

func All() []Method        { return members.Data() }
func Safe() []Method       { return members.Filter(Method.IsSafe) }
func Idempotent() []Method { return members.Filter(Method.IsIdempotent) }

func (m Method) String() string { return string(m) }

func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknown, "%q", string(m))
	}
	return []byte(m), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return errors.Wrapf(ErrUnknown, "%q", string(text))
	}
	*m = v
	return nil
}
