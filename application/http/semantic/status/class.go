package status

// Class is the first digit of a status code.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15-4
type Class uint

const (
	ClassInformational Class = 1
	ClassSuccessful    Class = 2
	ClassRedirection   Class = 3
	ClassClientError   Class = 4
	ClassServerError   Class = 5
)

// Class returns 0 for codes that aren't registered.
func (c Code) Class() Class {
	if !c.Valid() {
		return 0
	}
	return Class(c / 100)
}

func (c Class) String() string {
	switch c {
	case ClassInformational:
		return "informational"
	case ClassSuccessful:
		return "success"
	case ClassRedirection:
		return "redirection"
	case ClassClientError:
		return "client error"
	case ClassServerError:
		return "server error"
	}
	return "unknown"
}

func (c Code) IsInformational() bool { return c.Class() == ClassInformational }
func (c Code) IsSuccess() bool       { return c.Class() == ClassSuccessful }
func (c Code) IsRedirection() bool   { return c.Class() == ClassRedirection }
func (c Code) IsClientError() bool   { return c.Class() == ClassClientError }
func (c Code) IsServerError() bool   { return c.Class() == ClassServerError }

func (c Code) IsClientOrServerError() bool {
	return c.IsClientError() || c.IsServerError()
}

// All returns every registered code in ascending order.
func All() []Code { return members.Data() }

func Informational() []Code       { return members.Filter(Code.IsInformational) }
func Success() []Code             { return members.Filter(Code.IsSuccess) }
func Redirection() []Code         { return members.Filter(Code.IsRedirection) }
func ClientError() []Code         { return members.Filter(Code.IsClientError) }
func ServerError() []Code         { return members.Filter(Code.IsServerError) }
func ClientOrServerError() []Code { return members.Filter(Code.IsClientOrServerError) }
