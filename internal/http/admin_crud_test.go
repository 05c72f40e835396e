package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"decoyauction/internal/domain"
	"decoyauction/internal/repos"
)

func newAdminClient(t *testing.T) (string, func(*http.Request) *http.Response, *repos.CarRepo, *repos.OrderRepo) {
	t.Helper()
	app, db := newTestApp(t)
	userRepo := repos.NewUserRepo(db)
	if err := userRepo.BindSession("sid-admin", "u-rich"); err != nil {
		t.Fatal(err)
	}
	sid := &http.Cookie{Name: "sid", Value: "sid-admin"}

	reqPanel := httptest.NewRequest("GET", "/admin", nil)
	reqPanel.AddCookie(sid)
	tok := extractCookie(testTimeout(t, app, reqPanel), "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}

	do := func(req *http.Request) *http.Response {
		req.AddCookie(sid)
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
		return testTimeout(t, app, req)
	}
	return tok, do, repos.NewCarRepo(db), repos.NewOrderRepo(db)
}

func carFormBody(tok, name, price string) *strings.Reader {
	v := url.Values{}
	v.Set("csrf", tok)
	v.Set("name", name)
	v.Set("description", "Fresh listing, excellent condition.")
	v.Set("price", price)
	v.Set("image_url", "https://images.decoyauction.test/new.jpg")
	v.Set("country", "Germany")
	return strings.NewReader(v.Encode())
}

func TestAdminCreateCarAppearsFirst(t *testing.T) {
	tok, do, cars, _ := newAdminClient(t)

	req := httptest.NewRequest("POST", "/admin/cars", carFormBody(tok, "2024 Audi RS6", "129000"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := do(req)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on create, got %d", resp.StatusCode)
	}

	list, err := cars.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) == 0 || list[0].Name != "2024 Audi RS6" {
		t.Fatalf("new car should be first in the list, got %+v", list)
	}
}

func TestAdminCreateCarInvalidPriceKeepsFormOpen(t *testing.T) {
	tok, do, cars, _ := newAdminClient(t)
	before, _ := cars.ListAll()

	req := httptest.NewRequest("POST", "/admin/cars", carFormBody(tok, "2024 Audi RS6", "not-a-number"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 on invalid price, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Price must be a positive number") {
		t.Fatal("expected the field error on the re-rendered form")
	}
	if !strings.Contains(string(body), "2024 Audi RS6") {
		t.Fatal("expected the submitted name to be retained")
	}

	after, _ := cars.ListAll()
	if len(after) != len(before) {
		t.Fatal("invalid input must not create a record")
	}
}

func TestAdminUpdateCar(t *testing.T) {
	tok, do, cars, _ := newAdminClient(t)

	req := httptest.NewRequest("POST", "/admin/cars/car-m3-2019", carFormBody(tok, "2019 BMW M3 Competition", "48000"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := do(req)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on update, got %d", resp.StatusCode)
	}

	got, err := cars.Get("car-m3-2019")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "2019 BMW M3 Competition" || got.Price != 48000 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestAdminDeleteCarLeavesOrdersWithPlaceholder(t *testing.T) {
	tok, do, cars, orders := newAdminClient(t)

	if _, err := orders.Insert(domain.Order{ID: "ord-1", CarID: "car-m3-2019", PhoneNumber: "+14155550123"}); err != nil {
		t.Fatal(err)
	}

	v := url.Values{}
	v.Set("csrf", tok)
	req := httptest.NewRequest("POST", "/admin/cars/car-m3-2019/delete", strings.NewReader(v.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := do(req)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on delete, got %d", resp.StatusCode)
	}

	if _, err := cars.Get("car-m3-2019"); err == nil {
		t.Fatal("car should be gone")
	}

	rows, err := orders.ListWithCars()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("order must survive the car delete, got %d rows", len(rows))
	}
	if rows[0].DisplayCarName() != "Car not found" || rows[0].DisplayCarPrice() != "N/A" {
		t.Fatalf("expected placeholders for the orphaned order, got %q / %q",
			rows[0].DisplayCarName(), rows[0].DisplayCarPrice())
	}
}
