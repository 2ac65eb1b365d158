// Package status enumerates HTTP response status codes and their reason phrases.
package status

import (
	"http-enum/lib/ds/set"
	"strconv"

	"github.com/pkg/errors"
)

var ErrUnknown = errors.New("unknown status code")

type Code uint

// Informational 1XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.2
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102 // RFC 2518
	EarlyHints         Code = 103 // RFC 8297
)

// Successful 2XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.3
const (
	OK                   Code = 200
	Created              Code = 201
	Accepted             Code = 202
	NonAuthoritativeInfo Code = 203
	NoContent            Code = 204
	ResetContent         Code = 205
	PartialContent       Code = 206
	MultiStatus          Code = 207 // RFC 4918
	AlreadyReported      Code = 208 // RFC 5842
	IMUsed               Code = 226 // RFC 3229
)

// Redirection 3xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.4
const (
	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	SwitchProxy       Code = 306 // Unused
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308
)

// Client Error 4xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.5
const (
	BadRequest                  Code = 400
	Unauthorized                Code = 401
	PaymentRequired             Code = 402
	Forbidden                   Code = 403
	NotFound                    Code = 404
	MethodNotAllowed            Code = 405
	NotAcceptable               Code = 406
	ProxyAuthRequired           Code = 407
	RequestTimeout              Code = 408
	Conflict                    Code = 409
	Gone                        Code = 410
	LengthRequired              Code = 411
	PreconditionFailed          Code = 412
	ContentTooLarge             Code = 413
	URITooLong                  Code = 414
	UnsupportedMediaType        Code = 415
	RangeNotSatisfiable         Code = 416
	ExpectationFailed           Code = 417
	ImATeapot                   Code = 418 // RFC 2324. But I like the joke.
	MisdirectedRequest          Code = 421
	UnprocessableContent        Code = 422
	Locked                      Code = 423 // RFC 4918
	FailedDependency            Code = 424 // RFC 4918
	TooEarly                    Code = 425 // RFC 8470
	UpgradeRequired             Code = 426
	PreconditionRequired        Code = 428 // RFC 6585
	TooManyRequests             Code = 429 // RFC 6585
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585
	UnavailableForLegalReasons  Code = 451 // RFC 7725
)

// Server Error 5xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.6
const (
	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HTTPVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506 // RFC 2295
	InsufficientStorage           Code = 507 // RFC 4918
	LoopDetected                  Code = 508 // RFC 5842
	NotExtended                   Code = 510 // RFC 2774
	NetworkAuthenticationRequired Code = 511 // RFC 6585
)

var reasonPhrases = make(map[Code]string)

func add(code Code, phrase string) Code {
	reasonPhrases[code] = phrase
	return code
}

var members = set.New(
	add(Continue, "Continue"),
	add(SwitchingProtocols, "Switching Protocols"),
	add(Processing, "Processing"),
	add(EarlyHints, "Early Hints"),

	add(OK, "OK"),
	add(Created, "Created"),
	add(Accepted, "Accepted"),
	add(NonAuthoritativeInfo, "Non-Authoritative Information"),
	add(NoContent, "No Content"),
	add(ResetContent, "Reset Content"),
	add(PartialContent, "Partial Content"),
	add(MultiStatus, "Multi-Status"),
	add(AlreadyReported, "Already Reported"),
	add(IMUsed, "IM Used"),

	add(MultipleChoices, "Multiple Choices"),
	add(MovedPermanently, "Moved Permanently"),
	add(Found, "Found"),
	add(SeeOther, "See Other"),
	add(NotModified, "Not Modified"),
	add(UseProxy, "Use Proxy"),
	add(SwitchProxy, "Switch Proxy"),
	add(TemporaryRedirect, "Temporary Redirect"),
	add(PermanentRedirect, "Permanent Redirect"),

	add(BadRequest, "Bad Request"),
	add(Unauthorized, "Unauthorized"),
	add(PaymentRequired, "Payment Required"),
	add(Forbidden, "Forbidden"),
	add(NotFound, "Not Found"),
	add(MethodNotAllowed, "Method Not Allowed"),
	add(NotAcceptable, "Not Acceptable"),
	add(ProxyAuthRequired, "Proxy Authentication Required"),
	add(RequestTimeout, "Request Timeout"),
	add(Conflict, "Conflict"),
	add(Gone, "Gone"),
	add(LengthRequired, "Length Required"),
	add(PreconditionFailed, "Precondition Failed"),
	add(ContentTooLarge, "Content Too Large"),
	add(URITooLong, "URI Too Long"),
	add(UnsupportedMediaType, "Unsupported Media Type"),
	add(RangeNotSatisfiable, "Range Not Satisfiable"),
	add(ExpectationFailed, "Expectation Failed"),
	add(ImATeapot, "I'm a teapot"),
	add(MisdirectedRequest, "Misdirected Request"),
	add(UnprocessableContent, "Unprocessable Content"),
	add(Locked, "Locked"),
	add(FailedDependency, "Failed Dependency"),
	add(TooEarly, "Too Early"),
	add(UpgradeRequired, "Upgrade Required"),
	add(PreconditionRequired, "Precondition Required"),
	add(TooManyRequests, "Too Many Requests"),
	add(RequestHeaderFieldsTooLarge, "Request Header Fields Too Large"),
	add(UnavailableForLegalReasons, "Unavailable For Legal Reasons"),

	add(InternalServerError, "Internal Server Error"),
	add(NotImplemented, "Not Implemented"),
	add(BadGateway, "Bad Gateway"),
	add(ServiceUnavailable, "Service Unavailable"),
	add(GatewayTimeout, "Gateway Timeout"),
	add(HTTPVersionNotSupported, "HTTP Version Not Supported"),
	add(VariantAlsoNegotiates, "Variant Also Negotiates"),
	add(InsufficientStorage, "Insufficient Storage"),
	add(LoopDetected, "Loop Detected"),
	add(NotExtended, "Not Extended"),
	add(NetworkAuthenticationRequired, "Network Authentication Required"),
)

// FromCode never synthesizes a status from the class digit:
// 299 or 640 are rejected just like 0.
func FromCode(code uint) (Code, bool) {
	c := Code(code)
	if !members.Contains(c) {
		return 0, false
	}
	return c, true
}

func MustFromCode(code uint) Code {
	c, ok := FromCode(code)
	if !ok {
		panic(errors.Wrapf(ErrUnknown, "%d", code))
	}
	return c
}

func (c Code) Valid() bool { return members.Contains(c) }

// ReasonPhrase is empty for codes that aren't registered.
func (c Code) ReasonPhrase() string {
	return reasonPhrases[c]
}

// String formats the code as it appears in a status line, e.g. "404 Not Found".
func (c Code) String() string {
	s := strconv.FormatUint(uint64(c), 10)
	if phrase, ok := reasonPhrases[c]; ok {
		s += " " + phrase
	}
	return s
}
