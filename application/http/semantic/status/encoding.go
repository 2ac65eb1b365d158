package status

import (
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Codes travel as plain numbers in JSON and YAML documents.
// Decoding rejects numbers outside the registered set.

func (c Code) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrUnknown, "%d", uint(c))
	}
	return strconv.AppendUint(nil, uint64(c), 10), nil
}

func (c *Code) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	return c.decode(string(b))
}

func (c Code) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrUnknown, "%d", uint(c))
	}
	return uint(c), nil
}

func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: status code must be a scalar", value.Line)
	}
	return c.decode(value.Value)
}

func (c *Code) decode(raw string) error {
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return errors.Wrapf(ErrUnknown, "%q", raw)
	}

	code, ok := FromCode(uint(n))
	if !ok {
		return errors.Wrapf(ErrUnknown, "%d", n)
	}
	*c = code
	return nil
}
