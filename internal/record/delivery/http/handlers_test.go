package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hypermedia-record-api/internal/record"
	fileRepo "hypermedia-record-api/internal/record/repository/file"
	"hypermedia-record-api/internal/record/usecase"
	"hypermedia-record-api/internal/representation"
	"hypermedia-record-api/pkg/log"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.Nop()
	store := fileRepo.New(t.TempDir(), l)
	if err := store.CreateCollection(context.Background(), "api"); err != nil {
		t.Fatalf("create collection: %v", err)
	}

	schema := record.DefaultSchema()
	uc := usecase.New(store, schema, "api", l)
	rep := representation.New(
		representation.Templates(),
		representation.DefaultTransitions(schema),
		representation.DefaultMetadata("Test Records", "tester", "1.0.0"),
		l,
	)

	r := gin.New()
	RegisterRoutes(r, New(l, uc, rep, "api"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body, ctype, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// records pulls the payload array out of a plain-JSON response.
func records(t *testing.T, w *httptest.ResponseRecorder) []record.Record {
	t.Helper()
	var doc map[string][]record.Record
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return doc["api"]
}

func TestRecordLifecycle(t *testing.T) {
	r := newTestRouter(t)

	var id string

	t.Run("create generates id and defaults status", func(t *testing.T) {
		w := do(t, r, "POST", "/", `{"email":"alice@example.org","givenName":"Alice"}`, "application/json", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		if len(out) != 1 {
			t.Fatalf("expected one record, got %d", len(out))
		}
		created := out[0]
		id = created["id"]
		if id == "" {
			t.Fatal("no generated id")
		}
		if created["status"] != "pending" {
			t.Errorf("status = %q, want pending", created["status"])
		}
		if created["dateCreated"] != created["dateUpdated"] {
			t.Error("dateCreated should equal dateUpdated on create")
		}
	})

	t.Run("read by id", func(t *testing.T) {
		w := do(t, r, "GET", "/"+id, "", "", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		if len(out) != 1 || out[0]["id"] != id {
			t.Fatalf("unexpected read result: %v", out)
		}
	})

	t.Run("update replaces and refreshes timestamp", func(t *testing.T) {
		w := do(t, r, "PUT", "/"+id, `{"email":"alice@example.org","status":"active"}`, "application/json", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		updated := out[0]
		if updated["status"] != "active" {
			t.Errorf("status = %q, want active", updated["status"])
		}
		if _, ok := updated["givenName"]; ok && updated["givenName"] != "" {
			t.Error("update is a wholesale replace, givenName should be gone")
		}
		if updated["dateUpdated"] < updated["dateCreated"] {
			t.Error("dateUpdated went backwards")
		}
	})

	t.Run("status changes only the status", func(t *testing.T) {
		w := do(t, r, "PATCH", "/status/"+id, `{"status":"closed"}`, "application/json", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		if out[0]["status"] != "closed" {
			t.Errorf("status = %q, want closed", out[0]["status"])
		}
		if out[0]["email"] != "alice@example.org" {
			t.Error("status change lost the rest of the record")
		}
	})

	t.Run("remove returns the refreshed list", func(t *testing.T) {
		w := do(t, r, "DELETE", "/"+id, "", "", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		for _, rec := range records(t, w) {
			if rec["id"] == id {
				t.Error("removed record still listed")
			}
		}
	})
}

func TestListAndFilter(t *testing.T) {
	r := newTestRouter(t)

	do(t, r, "POST", "/", `{"email":"a@x.org","givenName":"Xavier"}`, "application/json", "")
	do(t, r, "POST", "/", `{"email":"b@x.org","givenName":"Alexa"}`, "application/json", "")
	do(t, r, "POST", "/", `{"email":"c@x.org","givenName":"Bob"}`, "application/json", "")

	t.Run("list returns everything", func(t *testing.T) {
		w := do(t, r, "GET", "/list/", "", "", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		if got := len(records(t, w)); got != 3 {
			t.Errorf("list returned %d records, want 3", got)
		}
	})

	t.Run("filter is case-insensitive containment", func(t *testing.T) {
		w := do(t, r, "GET", "/filter/?givenName=x", "", "", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		if got := len(records(t, w)); got != 2 {
			t.Errorf("filter matched %d records, want 2 (Xavier, Alexa)", got)
		}
	})

	t.Run("filter without a query is rejected", func(t *testing.T) {
		w := do(t, r, "GET", "/filter/", "", "", "application/json")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %d, want 400", w.Code)
		}
	})
}

func TestProblemResponses(t *testing.T) {
	r := newTestRouter(t)

	t.Run("unknown id yields a problem document", func(t *testing.T) {
		w := do(t, r, "GET", "/nope", "", "", "application/json")
		if w.Code != http.StatusNotFound {
			t.Fatalf("status %d, want 404", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
			t.Errorf("content type = %q", ct)
		}
		var doc struct {
			Error []record.Problem `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(doc.Error) != 1 {
			t.Fatalf("expected exactly one problem, got %d", len(doc.Error))
		}
		p := doc.Error[0]
		if p.Status != http.StatusNotFound {
			t.Errorf("problem status = %d", p.Status)
		}
		if p.Instance == "" {
			t.Error("problem instance should carry the request URL")
		}
	})

	t.Run("invalid body is a 400", func(t *testing.T) {
		w := do(t, r, "POST", "/", `{"broken`, "application/json", "application/json")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %d, want 400", w.Code)
		}
	})

	t.Run("missing required field is a 400", func(t *testing.T) {
		w := do(t, r, "POST", "/", `{"givenName":"NoEmail"}`, "application/json", "application/json")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %d, want 400", w.Code)
		}
	})
}

func TestBodyContentTypes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("form-urlencoded", func(t *testing.T) {
		w := do(t, r, "POST", "/", "email=form%40example.org&givenName=Form", "application/x-www-form-urlencoded", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		if out[0]["email"] != "form@example.org" {
			t.Errorf("email = %q", out[0]["email"])
		}
	})

	t.Run("collection+json template", func(t *testing.T) {
		body := `{"template":{"data":[{"name":"email","value":"cj@example.org"},{"name":"givenName","value":"CJ"}]}}`
		w := do(t, r, "POST", "/", body, "application/vnd.collection+json", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		out := records(t, w)
		if out[0]["email"] != "cj@example.org" || out[0]["givenName"] != "CJ" {
			t.Errorf("collection+json body not parsed: %v", out[0])
		}
	})
}

func TestNegotiatedRepresentations(t *testing.T) {
	r := newTestRouter(t)
	do(t, r, "POST", "/", `{"email":"a@x.org"}`, "application/json", "")

	t.Run("csv", func(t *testing.T) {
		w := do(t, r, "GET", "/list/", "", "", "text/csv")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("content type = %q", ct)
		}
		lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Errorf("expected header and one row, got %d lines", len(lines))
		}
	})

	t.Run("forms json carries list affordances", func(t *testing.T) {
		w := do(t, r, "GET", "/list/", "", "", "application/forms+json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var doc struct {
			Links []representation.Form `json:"links"`
			Items []struct {
				Forms []representation.Form `json:"forms"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(doc.Links) == 0 {
			t.Error("expected page-level links")
		}
		if len(doc.Items) != 1 || len(doc.Items[0].Forms) == 0 {
			t.Error("expected item-level forms")
		}
		for _, f := range doc.Links {
			if strings.Contains(f.Href, "{fullhost}") {
				t.Errorf("unexpanded href %q", f.Href)
			}
		}
	})

	t.Run("unmatched accept falls back to canonical json", func(t *testing.T) {
		w := do(t, r, "GET", "/list/", "", "", "application/hal+json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content type = %q", ct)
		}
	})
}

func TestHomeResource(t *testing.T) {
	r := newTestRouter(t)

	t.Run("plain json gets the bootstrap link", func(t *testing.T) {
		w := do(t, r, "GET", "/", "", "", "application/json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var doc map[string][]record.Record
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		links := doc["home"]
		if len(links) != 1 {
			t.Fatalf("expected one link, got %v", doc)
		}
		href := links[0]["href"]
		if !strings.HasSuffix(href, "/list/") || strings.Contains(href, "{fullhost}") {
			t.Errorf("href = %q", href)
		}
	})

	t.Run("hypermedia accept gets no bootstrap link", func(t *testing.T) {
		w := do(t, r, "GET", "/", "", "", "application/forms+json")
		if w.Code != http.StatusOK {
			t.Fatalf("status %d", w.Code)
		}
		var doc struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(doc.Items) != 0 {
			t.Errorf("expected no items, got %d", len(doc.Items))
		}
	})
}
