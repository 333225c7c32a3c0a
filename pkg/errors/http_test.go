package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "support-chat-backend/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		err := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
		got, ok := pkgErrors.AsHTTPError(err)
		if !ok {
			t.Fatalf("expected HTTPError")
		}
		if got.Code != http.StatusConflict || got.Error() != "conflict" {
			t.Errorf("unexpected error: %+v", got)
		}
	})

	t.Run("Wrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", pkgErrors.ErrNotFound)
		got, ok := pkgErrors.AsHTTPError(err)
		if !ok || got.Code != http.StatusNotFound {
			t.Errorf("expected wrapped 404, got %+v ok=%v", got, ok)
		}
	})

	t.Run("Plain error", func(t *testing.T) {
		if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("boom")); ok {
			t.Errorf("plain error must not be an HTTPError")
		}
	})
}
