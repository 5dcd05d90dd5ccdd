package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/biztime/api/internal/application/usecase"
	apphttp "github.com/biztime/api/internal/interfaces/http"
	"github.com/biztime/api/internal/testutil"
)

// newApp builds a Fiber app with the full route table over an in-memory store.
func newApp(t *testing.T) (*fiber.App, *testutil.MemStore) {
	t.Helper()
	store := testutil.NewMemStore()
	app := fiber.New(fiber.Config{Immutable: true})
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(store.Companies(), store.Invoices(), store.Industries()),
		InvoiceUC:  usecase.NewInvoiceUseCase(store.Invoices(), store),
		IndustryUC: usecase.NewIndustryUseCase(store.Industries()),
	})
	return app, store
}

// doJSON performs a request with an optional JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into T and closes it.
func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
