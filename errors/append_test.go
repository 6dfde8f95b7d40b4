package errors

import "testing"

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs     []error
		wantNil  bool
		wantMsg  string
		wantCode uint32
	}{
		"no errors given": {
			errs:    nil,
			wantNil: true,
		},
		"only nil errors given": {
			errs:    []error{nil, nil},
			wantNil: true,
		},
		"typed nil error is ignored": {
			errs:    []error{(*Error)(nil)},
			wantNil: true,
		},
		"a single error passes through unchanged": {
			errs:     []error{ErrEmpty},
			wantMsg:  "value is empty",
			wantCode: 9,
		},
		"two errors are grouped": {
			errs:     []error{Wrap(ErrEmpty, "admin"), Wrap(ErrInput, "fee")},
			wantMsg:  "admin: value is empty; fee: invalid input",
			wantCode: 9,
		},
		"nil errors within a group are skipped": {
			errs:     []error{nil, ErrState, nil, ErrOverflow},
			wantMsg:  "invalid state; an operation cannot be completed due to value overflow",
			wantCode: 10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Append(tc.errs...)
			if tc.wantNil {
				if err != nil {
					t.Fatalf("want nil, got %+v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("want an error, got nil")
			}
			if got := err.Error(); got != tc.wantMsg {
				t.Fatalf("unexpected message: %q", got)
			}
			if got := FailureCode(err); got != tc.wantCode {
				t.Fatalf("want code %d, got %d", tc.wantCode, got)
			}
		})
	}
}

func TestAppendFlattensGroups(t *testing.T) {
	err := Append(Append(ErrEmpty, ErrInput), ErrOverflow)
	u, ok := err.(unpacker)
	if !ok {
		t.Fatal("a grouped error must support unpacking")
	}
	if got := len(u.Unpack()); got != 3 {
		t.Fatalf("want 3 grouped errors, got %d", got)
	}
	if !ErrOverflow.Is(err) {
		t.Fatal("group must match all members")
	}
}
