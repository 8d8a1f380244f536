package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"totetracker/internal/db"
	"totetracker/internal/model"
	"totetracker/internal/qr"
	"totetracker/internal/search"
)

func setupTestServer(t *testing.T) (*httptest.Server, *qr.Encoder) {
	t.Helper()
	database := db.NewTestDB(t)
	encoder := &qr.Encoder{BaseURL: "http://localhost:8080", Dir: t.TempDir()}
	server := httptest.NewServer(NewRouter(database, encoder))
	t.Cleanup(server.Close)
	return server, encoder
}

func doJSON(t *testing.T, method, url string, body any, target any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if target != nil {
		json.NewDecoder(resp.Body).Decode(target)
	}
	return resp.StatusCode
}

func TestToteCreateGeneratesQRAndSearchFindsByBrand(t *testing.T) {
	server, encoder := setupTestServer(t)

	// Create a tote; the response must carry a QR code path and the PNG
	// must exist in the cache.
	var tote model.Tote
	status := doJSON(t, "POST", server.URL+"/api/totes", map[string]string{"name": "Winter Gear"}, &tote)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if tote.QRCodeURL == "" {
		t.Fatal("expected qr code url on created tote")
	}
	if _, err := os.Stat(filepath.Join(encoder.Dir, tote.ID+".png")); err != nil {
		t.Fatalf("expected cached qr png: %v", err)
	}

	// The QR image is servable.
	resp, err := http.Get(server.URL + tote.QRCodeURL)
	if err != nil {
		t.Fatalf("fetching qr code: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for qr image, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %q", ct)
	}

	// Assign an item, then find it by brand with the tote name joined in.
	status = doJSON(t, "POST", server.URL+"/api/items", map[string]any{
		"name":   "Ski Gloves",
		"brand":  "Columbia",
		"toteId": tote.ID,
	}, nil)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 for item, got %d", status)
	}

	var results search.Results
	status = doJSON(t, "GET", server.URL+"/api/search?q=columbia", nil, &results)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for search, got %d", status)
	}
	if len(results.Items) != 1 {
		t.Fatalf("expected 1 search result, got %d", len(results.Items))
	}
	got := results.Items[0]
	if got.Name != "Ski Gloves" || got.ToteName == nil || *got.ToteName != "Winter Gear" {
		t.Errorf("unexpected search result: %+v", got)
	}
}

func TestToteDeleteCascadesOverAPI(t *testing.T) {
	server, _ := setupTestServer(t)

	var tote model.Tote
	doJSON(t, "POST", server.URL+"/api/totes", map[string]string{"name": "Camping"}, &tote)
	doJSON(t, "POST", server.URL+"/api/items", map[string]any{"name": "Tent", "toteId": tote.ID}, nil)
	doJSON(t, "POST", server.URL+"/api/items", map[string]any{"name": "Loose Cable"}, nil)

	status := doJSON(t, "DELETE", server.URL+"/api/totes/"+tote.ID, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for delete, got %d", status)
	}

	var items []model.ItemWithTote
	doJSON(t, "GET", server.URL+"/api/items", nil, &items)
	if len(items) != 1 || items[0].Name != "Loose Cable" {
		t.Errorf("expected only the unassigned item to survive, got %+v", items)
	}
}

func TestItemValidationOverAPI(t *testing.T) {
	server, _ := setupTestServer(t)

	status := doJSON(t, "POST", server.URL+"/api/items", map[string]any{"name": ""}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", status)
	}

	status = doJSON(t, "POST", server.URL+"/api/items",
		map[string]any{"name": "Thing", "toteId": "no-such-tote"}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for dangling tote reference, got %d", status)
	}
}

func TestNotFoundResponses(t *testing.T) {
	server, _ := setupTestServer(t)

	if status := doJSON(t, "GET", server.URL+"/api/totes/missing", nil, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for missing tote, got %d", status)
	}
	if status := doJSON(t, "GET", server.URL+"/api/items/missing", nil, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for missing item, got %d", status)
	}

	resp, _ := http.Get(server.URL + "/qrcodes/missing.png")
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing qr image, got %d", resp.StatusCode)
	}
}

func TestSearchEmptyQueryOverAPI(t *testing.T) {
	server, _ := setupTestServer(t)

	var results search.Results
	status := doJSON(t, "GET", server.URL+"/api/search?q=", nil, &results)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(results.Items) != 0 || len(results.Totes) != 0 {
		t.Errorf("expected empty results for empty query, got %+v", results)
	}
}

func TestRegenerateQREndpoint(t *testing.T) {
	server, encoder := setupTestServer(t)

	var first, second model.Tote
	doJSON(t, "POST", server.URL+"/api/totes", map[string]string{"name": "One"}, &first)
	doJSON(t, "POST", server.URL+"/api/totes", map[string]string{"name": "Two"}, &second)

	// Clear the cache so regeneration has visible effect.
	os.Remove(filepath.Join(encoder.Dir, first.ID+".png"))
	os.Remove(filepath.Join(encoder.Dir, second.ID+".png"))

	var result struct {
		Updated int `json:"updated"`
		Total   int `json:"total"`
	}
	status := doJSON(t, "POST", server.URL+"/api/admin/regenerate-qr", nil, &result)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if result.Updated != 2 || result.Total != 2 {
		t.Errorf("expected 2/2 regenerated, got %+v", result)
	}
	for _, tote := range []model.Tote{first, second} {
		if _, err := os.Stat(filepath.Join(encoder.Dir, tote.ID+".png")); err != nil {
			t.Errorf("expected regenerated png for %s: %v", tote.ID, err)
		}
	}
}

func TestScaledQRImage(t *testing.T) {
	server, _ := setupTestServer(t)

	var tote model.Tote
	doJSON(t, "POST", server.URL+"/api/totes", map[string]string{"name": "Print Me"}, &tote)

	resp, err := http.Get(server.URL + tote.QRCodeURL + "?size=512")
	if err != nil {
		t.Fatalf("fetching scaled qr: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for scaled qr, got %d", resp.StatusCode)
	}

	resp, _ = http.Get(server.URL + tote.QRCodeURL + "?size=bogus")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid size, got %d", resp.StatusCode)
	}
}
