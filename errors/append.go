package errors

import "strings"

// Append combines given errors into a single one. Nil errors are ignored.
//
// When all given errors are nil, nil is returned. When only a single error
// is given, it is returned unmodified. In any other case the result groups
// all given errors and can be unpacked. An error kind test run on a group
// succeeds if at least one member is of that kind.
func Append(errs ...error) error {
	var group multiError
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(multiError); ok {
			group = append(group, m...)
		} else {
			group = append(group, err)
		}
	}
	switch len(group) {
	case 0:
		return nil
	case 1:
		return group[0]
	default:
		return group
	}
}

type multiError []error

var _ unpacker = (multiError)(nil)

func (e multiError) Unpack() []error {
	return e
}

// Code returns the failure code of the first grouped error. Processing
// stops at the first failure, so that is the code the host observes.
func (e multiError) Code() uint32 {
	return FailureCode(e[0])
}

func (e multiError) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
