package runtimex

import (
	"errors"
	"testing"
)

func TestPanicOnError(t *testing.T) {
	badfunc := func(in error) (out error) {
		defer func() {
			out = recover().(error)
		}()
		PanicOnError(in, "we expect this assertion to fail")
		return
	}

	t.Run("error is nil", func(t *testing.T) {
		PanicOnError(nil, "this assertion should not fail")
	})

	t.Run("error is not nil", func(t *testing.T) {
		expected := errors.New("mocked error")
		if !errors.Is(badfunc(expected), expected) {
			t.Fatal("not the error we expected")
		}
	})
}

func TestPanicIfFalse(t *testing.T) {
	badfunc := func(in bool, message string) (out string) {
		defer func() {
			out = recover().(string)
		}()
		PanicIfFalse(in, message)
		return
	}

	t.Run("assertion is true", func(t *testing.T) {
		PanicIfFalse(true, "this assertion should not fail")
	})

	t.Run("assertion is false", func(t *testing.T) {
		message := "mocked error"
		if badfunc(false, message) != message {
			t.Fatal("not the error we expected")
		}
	})
}

func TestTry(t *testing.T) {
	t.Run("Try1 returns the value on success", func(t *testing.T) {
		if Try1(17, nil) != 17 {
			t.Fatal("unexpected value")
		}
	})

	t.Run("Try1 panics on failure", func(t *testing.T) {
		expected := errors.New("mocked error")
		var got error
		func() {
			defer func() {
				got = recover().(error)
			}()
			Try1(0, expected)
		}()
		if !errors.Is(got, expected) {
			t.Fatal("not the error we expected", got)
		}
	})
}
