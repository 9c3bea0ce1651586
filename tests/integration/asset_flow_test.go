package integration

import (
	"net/http"
	"testing"
)

func TestAssetIntakeFlow(t *testing.T) {
	app := setupApp(t)

	// An empty vault lists as an empty data array, not null.
	w := app.doRequest(t, http.MethodGet, "/assets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if data, ok := body["data"].([]interface{}); !ok || len(data) != 0 {
		t.Fatalf("expected empty data array, got %q", w.Body.String())
	}

	// Intake a card.
	w = app.doRequest(t, http.MethodPost, "/assets", `{
		"category": "Baseball",
		"name": "1989 Upper Deck Ken Griffey Jr.",
		"first_name": "Ken",
		"last_name": "Griffey",
		"year": 1989,
		"set_name": "Upper Deck",
		"card_number": "1",
		"is_rookie": true,
		"acquisition_cost": 40.00
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	if created["asset_id"] != "BSB-00000001" {
		t.Errorf("expected asset_id BSB-00000001, got %v", created["asset_id"])
	}
	if created["is_sold"] != false {
		t.Errorf("expected is_sold false, got %v", created["is_sold"])
	}
	if created["sold_price"] != nil {
		t.Errorf("expected null sold_price, got %v", created["sold_price"])
	}

	// The list now contains it.
	w = app.doRequest(t, http.MethodGet, "/assets", "")
	body = decodeBody(t, w)
	data, _ := body["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(data))
	}

	// Patch descriptive fields.
	w = app.doRequest(t, http.MethodPatch, "/assets/BSB-00000001", `{
		"set_name": "Upper Deck Star Rookie",
		"image_url": "https://example.com/griffey.jpg"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)
	if updated["set_name"] != "Upper Deck Star Rookie" {
		t.Errorf("expected patched set_name, got %v", updated["set_name"])
	}
	if updated["name"] != "1989 Upper Deck Ken Griffey Jr." {
		t.Errorf("expected name preserved, got %v", updated["name"])
	}
}

func TestAssetValidation(t *testing.T) {
	app := setupApp(t)

	// Missing name.
	w := app.doRequest(t, http.MethodPost, "/assets", `{"category": "Baseball"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %s", code)
	}

	// Unknown category is caught by the binding validator.
	w = app.doRequest(t, http.MethodPost, "/assets", `{"category": "Hockey", "name": "Gretzky"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// Malformed JSON.
	w = app.doRequest(t, http.MethodPost, "/assets", `{"category": `)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// Patch on a missing asset.
	w = app.doRequest(t, http.MethodPatch, "/assets/BSB-99999999", `{"name": "Ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if code := errorCode(t, w); code != "ASSET_NOT_FOUND" {
		t.Errorf("expected ASSET_NOT_FOUND, got %s", code)
	}
}

func TestPatchCannotMarkSold(t *testing.T) {
	app := setupApp(t)

	w := app.doRequest(t, http.MethodPost, "/assets", `{"category": "Pokemon", "name": "Charizard"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Sale state in a PATCH body is ignored; only the sale route can sell.
	w = app.doRequest(t, http.MethodPatch, "/assets/PKM-00000001", `{
		"name": "Charizard Holo",
		"is_sold": true,
		"sold_price": 500.00
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBody(t, w)
	if updated["is_sold"] != false {
		t.Error("PATCH must not be able to mark an asset sold")
	}
	if updated["sold_price"] != nil {
		t.Errorf("PATCH must not set sold_price, got %v", updated["sold_price"])
	}
	if updated["name"] != "Charizard Holo" {
		t.Errorf("expected descriptive update to apply, got %v", updated["name"])
	}
}
