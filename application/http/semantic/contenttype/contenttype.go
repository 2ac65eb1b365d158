// Package contenttype enumerates the media types commonly carried in HTTP payloads.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110#section-8.3
//
// - https://www.iana.org/assignments/media-types/media-types.xhtml
package contenttype

import (
	"http-enum/application/util/rule"
	"http-enum/lib/ds/set"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknown = errors.New("unknown content type")

// ContentType is a canonical, lowercase media type without parameters.
type ContentType string

// Text
const (
	Text       ContentType = "text/plain"
	HTML       ContentType = "text/html"
	XML        ContentType = "application/xml"
	CSS        ContentType = "text/css"
	JavaScript ContentType = "application/javascript"
	CSV        ContentType = "text/csv"
	Markdown   ContentType = "text/markdown"
)

// JSON
const (
	JSON            ContentType = "application/json"
	JSONAPI         ContentType = "application/vnd.api+json"
	JSONSchema      ContentType = "application/schema+json"
	HALJSON         ContentType = "application/hal+json"
	ProblemJSON     ContentType = "application/problem+json" // RFC 9457
	CloudEventsJSON ContentType = "application/cloudevents+json"
)

// Forms
const (
	FormURLEncoded ContentType = "application/x-www-form-urlencoded"
	FormData       ContentType = "multipart/form-data"
)

// Binary
const (
	PDF         ContentType = "application/pdf"
	ZIP         ContentType = "application/zip"
	OctetStream ContentType = "application/octet-stream"
	MsgPack     ContentType = "application/msgpack"
	Protobuf    ContentType = "application/protobuf"
)

// Image
const (
	PNG  ContentType = "image/png"
	JPEG ContentType = "image/jpeg"
	GIF  ContentType = "image/gif"
	WebP ContentType = "image/webp"
	SVG  ContentType = "image/svg+xml"
	Icon ContentType = "image/x-icon"
	HEIC ContentType = "image/heic"
)

// Audio and video
const (
	MP3  ContentType = "audio/mpeg"
	WAV  ContentType = "audio/wav"
	MP4  ContentType = "video/mp4"
	MPEG ContentType = "video/mpeg"
	WebM ContentType = "video/webm"
)

// Feeds and streams
const (
	Atom        ContentType = "application/atom+xml"
	RSS         ContentType = "application/rss+xml"
	XHTML       ContentType = "application/xhtml+xml"
	EventStream ContentType = "text/event-stream"
)

// Font
const (
	WOFF  ContentType = "font/woff"
	WOFF2 ContentType = "font/woff2"
	TTF   ContentType = "font/ttf"
	OTF   ContentType = "font/otf"
)

var members = set.New(
	Text, HTML, XML, CSS, JavaScript, CSV, Markdown,
	JSON, JSONAPI, JSONSchema, HALJSON, ProblemJSON, CloudEventsJSON,
	FormURLEncoded, FormData,
	PDF, ZIP, OctetStream, MsgPack, Protobuf,
	PNG, JPEG, GIF, WebP, SVG, Icon, HEIC,
	MP3, WAV, MP4, MPEG, WebM,
	Atom, RSS, XHTML, EventStream,
	WOFF, WOFF2, TTF, OTF,
)

// Parse matches value against the canonical values exactly.
// Use [FromHeader] for raw header values.
func Parse(value string) (ContentType, bool) {
	ct := ContentType(value)
	if !members.Contains(ct) {
		return "", false
	}
	return ct, true
}

// MustParse is like [Parse] but panics if value isn't a known content type.
func MustParse(value string) ContentType {
	ct, ok := Parse(value)
	if !ok {
		panic(errors.Wrapf(ErrUnknown, "%q", value))
	}
	return ct
}

// FromHeader resolves a Content-Type field value, ignoring any parameters.
//
//	FromHeader("application/json; charset=utf-8") // JSON, true
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-8.3.1
func FromHeader(header string) (ContentType, bool) {
	mediaType, _, _ := strings.Cut(header, ";")
	mediaType = strings.TrimFunc(mediaType, rule.IsWhitespace)

	return Parse(rule.ToLowerASCII(mediaType))
}

func (ct ContentType) Valid() bool { return members.Contains(ct) }

func (ct ContentType) String() string { return string(ct) }

func (ct ContentType) MarshalText() ([]byte, error) {
	if !ct.Valid() {
		return nil, errors.Wrapf(ErrUnknown, "%q", string(ct))
	}
	return []byte(ct), nil
}

func (ct *ContentType) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return errors.Wrapf(ErrUnknown, "%q", string(text))
	}
	*ct = v
	return nil
}
