// Package assert provides minimal test assertion helpers.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

func True(t *testing.T, value bool) {
	t.Helper()
	if !value {
		t.Fatal("value is not true")
	}
}

func False(t *testing.T, value bool) {
	t.Helper()
	if value {
		t.Fatal("value is not false")
	}
}

func IsNil(t *testing.T, value any) {
	t.Helper()
	if value == nil {
		return
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	t.Fatalf("value is not nil: %v", value)
}

func ErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match target %v", err, target)
	}
}

func ErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error is nil, expected to contain %q", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("error %q does not contain %q", err.Error(), substr)
	}
}
