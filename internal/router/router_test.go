package router

import (
	"net/http"
	"testing"

	"adboard/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodPost + " /user",
		http.MethodGet + " /user/:id",
		http.MethodGet + " /users",
		http.MethodPost + " /advert",
		http.MethodGet + " /advert/:id",
		http.MethodDelete + " /advert/:id",
		http.MethodGet + " /adverts",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
