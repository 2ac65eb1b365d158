// Package scheme enumerates well-known URI schemes and their conventions.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986#section-3.1
//
// - https://www.iana.org/assignments/uri-schemes/uri-schemes.xhtml
package scheme

import (
	"http-enum/lib/ds/set"

	"github.com/pkg/errors"
)

var ErrUnknown = errors.New("unknown scheme")

// Scheme is a lowercase scheme name.
// Parsing is case-sensitive, so callers must normalize first.
type Scheme string

const (
	HTTP   Scheme = "http"
	HTTPS  Scheme = "https"
	WS     Scheme = "ws"
	WSS    Scheme = "wss"
	FTP    Scheme = "ftp"
	SFTP   Scheme = "sftp"
	SSH    Scheme = "ssh"
	Telnet Scheme = "telnet"
	SMTP   Scheme = "smtp"
	IMAP   Scheme = "imap"
	POP    Scheme = "pop"
	LDAP   Scheme = "ldap"
	LDAPS  Scheme = "ldaps"
	Gopher Scheme = "gopher"
	NNTP   Scheme = "nntp"
	News   Scheme = "news"
)

var members = set.New(
	HTTP, HTTPS, WS, WSS, FTP, SFTP, SSH, Telnet,
	SMTP, IMAP, POP, LDAP, LDAPS, Gopher, NNTP, News,
)

func Parse(token string) (Scheme, bool) {
	s := Scheme(token)
	if !members.Contains(s) {
		return "", false
	}
	return s, true
}

func MustParse(token string) Scheme {
	s, ok := Parse(token)
	if !ok {
		panic(errors.Wrapf(ErrUnknown, "%q", token))
	}
	return s
}

func (s Scheme) Valid() bool { return members.Contains(s) }

// DefaultPort reports the port implied when an authority omits one.
// ok is false if the scheme has no conventional port.
func (s Scheme) DefaultPort() (port uint16, ok bool) {
	switch s {
	case HTTP, WS:
		return 80, true
	case HTTPS, WSS:
		return 443, true
	case FTP:
		return 21, true
	case SFTP, SSH:
		return 22, true
	case Telnet:
		return 23, true
	case SMTP:
		return 25, true
	case Gopher:
		return 70, true
	case POP:
		return 110, true
	case NNTP, News:
		return 119, true
	case IMAP:
		return 143, true
	case LDAP:
		return 389, true
	case LDAPS:
		return 636, true
	}
	return 0, false
}

// RequiresHost reports whether a URI of this scheme must carry a non-empty host.
func (s Scheme) RequiresHost() bool {
	switch s {
	case HTTP, HTTPS, WS, WSS, FTP, SFTP:
		return true
	}
	return false
}

func (s Scheme) IsSecure() bool {
	switch s {
	case HTTPS, WSS, SFTP, LDAPS, SSH:
		return true
	}
	return false
}

func All() []Scheme          { return members.Data() }
func Secure() []Scheme       { return members.Filter(Scheme.IsSecure) }
func HostRequired() []Scheme { return members.Filter(Scheme.RequiresHost) }

func (s Scheme) String() string { return string(s) }

func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrUnknown, "%q", string(s))
	}
	return []byte(s), nil
}

func (s *Scheme) UnmarshalText(text []byte) error {
	v, ok := Parse(string(text))
	if !ok {
		return errors.Wrapf(ErrUnknown, "%q", string(text))
	}
	*s = v
	return nil
}
