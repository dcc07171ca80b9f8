package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// withURLParam attaches a chi route context carrying the {id} param.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPropertyHandler_Create(t *testing.T) {
	store := newFakePropertyStore()
	h := &PropertyHandler{Store: store}

	rr := postForm(t, h.Create, "/add-property", url.Values{
		"title":       {"Sunny Flat"},
		"description": {"2BR"},
		"price":       {"1200"},
		"image":       {"a.jpg"},
	})

	if rr.Code != http.StatusFound {
		t.Fatalf("Create status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect: got %q, want /admin", loc)
	}

	list, _ := store.List(context.Background())
	if len(list) != 1 {
		t.Fatalf("property count: got %d, want 1", len(list))
	}
	p := list[0]
	if p.Title != "Sunny Flat" || p.Description != "2BR" || p.Price != 1200 {
		t.Errorf("stored fields: %+v", p)
	}
	if len(p.Images) != 1 || p.Images[0] != "a.jpg" {
		t.Errorf("images: got %v, want [a.jpg]", p.Images)
	}
}

func TestPropertyHandler_Create_BadPrice(t *testing.T) {
	h := &PropertyHandler{Store: newFakePropertyStore()}

	rr := postForm(t, h.Create, "/add-property", url.Values{
		"title": {"Sunny Flat"},
		"price": {"not-a-number"},
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Create status: got %d, want 400", rr.Code)
	}
}

func TestPropertyHandler_Detail(t *testing.T) {
	store := newFakePropertyStore()
	h := &PropertyHandler{Store: store}

	createRR := postForm(t, h.Create, "/add-property", url.Values{
		"title": {"Sunny Flat"},
		"price": {"1200"},
		"image": {"a.jpg"},
	})
	if createRR.Code != http.StatusFound {
		t.Fatalf("create failed: %d", createRR.Code)
	}

	list, _ := store.List(context.Background())
	id := list[0].ID.Hex()

	req := withURLParam(httptest.NewRequest("GET", "/property/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.Detail(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Detail status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Sunny Flat") {
		t.Error("detail page missing title")
	}
	if !strings.Contains(body, "1200") {
		t.Error("detail page missing price")
	}
}

func TestPropertyHandler_Detail_MalformedID(t *testing.T) {
	h := &PropertyHandler{Store: newFakePropertyStore()}

	req := withURLParam(httptest.NewRequest("GET", "/property/not-a-valid-id", nil), "id", "not-a-valid-id")
	rr := httptest.NewRecorder()
	h.Detail(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Detail status: got %d, want 400", rr.Code)
	}
}

func TestPropertyHandler_Detail_NotFound(t *testing.T) {
	h := &PropertyHandler{Store: newFakePropertyStore()}

	// Well-formed but absent.
	id := "64b5f0a1c2d3e4f5a6b7c8d9"
	req := withURLParam(httptest.NewRequest("GET", "/property/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.Detail(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Detail status: got %d, want 404", rr.Code)
	}
}

func TestPropertyHandler_Update(t *testing.T) {
	store := newFakePropertyStore()
	h := &PropertyHandler{Store: store}

	postForm(t, h.Create, "/add-property", url.Values{
		"title": {"Sunny Flat"},
		"price": {"1200"},
		"image": {"a.jpg"},
	})
	list, _ := store.List(context.Background())
	id := list[0].ID.Hex()

	form := url.Values{
		"title":       {"Sunnier Flat"},
		"description": {"2BR renovated"},
		"price":       {"1350"},
		// image blank: keep current
	}
	req := withURLParam(httptest.NewRequest("POST", "/edit-property/"+id, strings.NewReader(form.Encode())), "id", id)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("Update status: got %d, want 302", rr.Code)
	}

	p, err := store.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if p.Title != "Sunnier Flat" || p.Price != 1350 || p.Description != "2BR renovated" {
		t.Errorf("updated fields: %+v", p)
	}
	if len(p.Images) != 1 || p.Images[0] != "a.jpg" {
		t.Errorf("images changed on blank field: %v", p.Images)
	}
}

func TestPropertyHandler_Update_AbsentIDIsNoop(t *testing.T) {
	h := &PropertyHandler{Store: newFakePropertyStore()}

	id := "64b5f0a1c2d3e4f5a6b7c8d9"
	form := url.Values{"title": {"Ghost"}, "price": {"1"}}
	req := withURLParam(httptest.NewRequest("POST", "/edit-property/"+id, strings.NewReader(form.Encode())), "id", id)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Update status: got %d, want 302 (silent no-op)", rr.Code)
	}
}

func TestPropertyHandler_Delete(t *testing.T) {
	store := newFakePropertyStore()
	h := &PropertyHandler{Store: store}

	postForm(t, h.Create, "/add-property", url.Values{
		"title": {"Sunny Flat"},
		"price": {"1200"},
	})
	list, _ := store.List(context.Background())
	id := list[0].ID.Hex()

	req := withURLParam(httptest.NewRequest("POST", "/delete-property/"+id, nil), "id", id)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("Delete status: got %d, want 302", rr.Code)
	}

	if _, err := store.GetByID(context.Background(), id); err == nil {
		t.Error("property still present after delete")
	}

	// Deleting again is a no-op.
	rr = httptest.NewRecorder()
	h.Delete(rr, withURLParam(httptest.NewRequest("POST", "/delete-property/"+id, nil), "id", id))
	if rr.Code != http.StatusFound {
		t.Errorf("second Delete status: got %d, want 302", rr.Code)
	}
}

func TestPropertyHandler_StoreFailure(t *testing.T) {
	store := newFakePropertyStore()
	store.err = context.DeadlineExceeded
	h := &PropertyHandler{Store: store}

	rr := postForm(t, h.Create, "/add-property", url.Values{
		"title": {"Sunny Flat"},
		"price": {"1200"},
	})
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Create status on store failure: got %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), ErrMessageInternal) {
		t.Errorf("body: got %q, want generic message", rr.Body.String())
	}
}
