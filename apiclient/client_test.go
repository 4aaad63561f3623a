package apiclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeBody(status int, data string) string {
	return fmt.Sprintf(`{"data":{"status":%d,"data":%s}}`, status, data)
}

func TestClientEnvelope(t *testing.T) {
	t.Run("unwraps nested data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(200, `[{"shapeId":1,"name":"Bag"},{"shapeId":2,"name":"Box"}]`))
		}))
		defer srv.Close()

		shapes, err := NewReferenceClient(NewClient(srv.URL, "")).ArticleShapes()
		require.NoError(t, err)
		require.Len(t, shapes, 2)
		assert.Equal(t, "Bag", shapes[0].Name)
	})

	t.Run("non-200 inner status is a business error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(409, `"lr number already exists"`))
		}))
		defer srv.Close()

		_, err := NewReferenceClient(NewClient(srv.URL, "")).ArticleShapes()
		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, 409, ue.Status)
		assert.Equal(t, "lr number already exists", ue.Message)
	})

	t.Run("transport 401 expires auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewReferenceClient(NewClient(srv.URL, "stale")).ArticleShapes()
		assert.ErrorIs(t, err, ErrAuthExpired)
	})

	t.Run("inner 401 expires auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(401, `null`))
		}))
		defer srv.Close()

		_, err := NewReferenceClient(NewClient(srv.URL, "stale")).ArticleShapes()
		assert.ErrorIs(t, err, ErrAuthExpired)
	})

	t.Run("forwards bearer token", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			fmt.Fprint(w, envelopeBody(200, `[]`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "base")
		_, err := NewReferenceClient(c.WithToken("caller-token")).ArticleShapes()
		require.NoError(t, err)
		assert.Equal(t, "Bearer caller-token", got)
	})
}

func TestQuotationNormalization(t *testing.T) {
	t.Run("party rows use rate and toBranchId", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/quotations/party/7", r.URL.Path)
			fmt.Fprint(w, envelopeBody(200, `[
				{"quotationId":11,"partyId":7,"fromBranchId":1,"toBranchId":2,"billTypeId":1,"shapeId":5,"rate":"12.50","rateTypeId":2}
			]`))
		}))
		defer srv.Close()

		qs, err := NewQuotationClient(NewClient(srv.URL, "")).QuotationsByParty(7)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, int64(11), qs[0].QuotationID)
		assert.Equal(t, int64(2), qs[0].ToBranchID)
		assert.Equal(t, "12.5", qs[0].Rate.String())
	})

	t.Run("billRate wins when both rate fields are present", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(200, `[
				{"quotationId":21,"partyId":7,"fromBranchId":1,"toBranchId":2,"billTypeId":1,"rate":"10.00","billRate":"20.00","rateTypeId":2}
			]`))
		}))
		defer srv.Close()

		qs, err := NewQuotationClient(NewClient(srv.URL, "")).QuotationsByParty(7)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "20", qs[0].Rate.String())
	})

	t.Run("legacy rows use billRate, toId and id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(200, `[
				{"id":4,"fromBranchId":1,"toId":3,"billTypeId":1,"billRate":"9.00","rateTypeId":1}
			]`))
		}))
		defer srv.Close()

		qs, err := NewQuotationClient(NewClient(srv.URL, "")).CompanyQuotationsByBranch(1, 3)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, int64(4), qs[0].QuotationID)
		assert.Equal(t, int64(3), qs[0].ToBranchID)
		assert.Equal(t, "9", qs[0].Rate.String())
	})

	t.Run("single company object is accepted", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(200, `{"quotationId":9,"fromBranchId":1,"toBranchId":2,"billTypeId":1,"rate":"5","rateTypeId":3}`))
		}))
		defer srv.Close()

		qs, err := NewQuotationClient(NewClient(srv.URL, "")).CompanyQuotationsByBranch(1, 2)
		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, int64(9), qs[0].QuotationID)
	})

	t.Run("null body yields empty set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, envelopeBody(200, `null`))
		}))
		defer srv.Close()

		qs, err := NewQuotationClient(NewClient(srv.URL, "")).CompanyQuotationsByBranch(1, 2)
		require.NoError(t, err)
		assert.Empty(t, qs)
	})
}
