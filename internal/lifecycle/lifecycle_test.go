package lifecycle_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"tiendita/internal/api"
	"tiendita/internal/domain"
	"tiendita/internal/lifecycle"
)

type staticTokens string

func (t staticTokens) Token() (string, bool) { return string(t), t != "" }

func TestActionsForProcessing(t *testing.T) {
	got := lifecycle.ActionsFor(domain.StatusProcessing, domain.RoleSeller)
	want := []lifecycle.Action{lifecycle.ActionAccept, lifecycle.ActionReject}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("seller on Processing: want %v, got %v", want, got)
	}

	got = lifecycle.ActionsFor(domain.StatusProcessing, domain.RoleCustomer)
	want = []lifecycle.Action{lifecycle.ActionCancel}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("customer on Processing: want %v, got %v", want, got)
	}
}

func TestActionsForTable(t *testing.T) {
	cases := []struct {
		status domain.Status
		role   domain.Role
		want   []lifecycle.Action
	}{
		{domain.StatusRejected, domain.RoleSeller, []lifecycle.Action{lifecycle.ActionDelete}},
		{domain.StatusRejected, domain.RoleCustomer, []lifecycle.Action{lifecycle.ActionDelete}},
		{domain.StatusPacking, domain.RoleSeller, []lifecycle.Action{lifecycle.ActionMarkShipped, lifecycle.ActionMarkDelayed}},
		{domain.StatusPacking, domain.RoleCustomer, nil},
		{domain.StatusShipped, domain.RoleSeller, []lifecycle.Action{lifecycle.ActionMarkDelivered}},
		{domain.StatusDelayed, domain.RoleSeller, []lifecycle.Action{lifecycle.ActionMarkDelivered}},
		{domain.StatusProcessing, domain.RoleDashboardAdmin, nil},
	}
	for _, tc := range cases {
		if got := lifecycle.ActionsFor(tc.status, tc.role); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ActionsFor(%s, %v): want %v, got %v", tc.status.Label(), tc.role, tc.want, got)
		}
	}
}

func TestActionsForDeliveredIsTerminal(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleSeller, domain.RoleDashboardAdmin, domain.RoleUnknown} {
		if got := lifecycle.ActionsFor(domain.StatusDelivered, role); len(got) != 0 {
			t.Fatalf("Delivered must allow nothing for role %v, got %v", role, got)
		}
	}
}

// An unrecognized status hides every action instead of erroring. Documented
// fail-open default; the view dispatcher is deliberately the opposite.
func TestActionsForUnknownStatusFailsOpen(t *testing.T) {
	if got := lifecycle.ActionsFor(domain.Status("not-a-status"), domain.RoleSeller); len(got) != 0 {
		t.Fatalf("unknown status must yield empty set, got %v", got)
	}
}

func TestActionsForMixedCaseStatus(t *testing.T) {
	lower := domain.Status("6eb91343-c1dd-4fe0-ad42-fd479d5575f2")
	got := lifecycle.ActionsFor(lower, domain.RoleCustomer)
	if !reflect.DeepEqual(got, []lifecycle.Action{lifecycle.ActionCancel}) {
		t.Fatalf("lower-case Processing token must still resolve, got %v", got)
	}
}

func sampleOrder() domain.Order {
	return domain.Order{
		OrderUuid:   "ord-1",
		UserUuid:    "usr-1",
		TotalAmount: 25.50,
		StatusUuid:  string(domain.StatusProcessing),
		OrderDetails: []domain.OrderDetail{
			{ProductUuid: "prod-1", Quantity: 2, SubTotal: 20.00},
			{ProductUuid: "prod-2", Quantity: 1, SubTotal: 5.50},
		},
	}
}

func TestApplyAccept(t *testing.T) {
	var gotPut domain.Order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/orders/ord-1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPut); err != nil {
			t.Error(err)
		}
		_ = json.NewEncoder(w).Encode(gotPut)
	}))
	defer srv.Close()

	orders := api.NewOrderClient(api.NewClient(srv.URL+"/", staticTokens("tok")))
	ctrl := &lifecycle.Controller{Orders: orders}

	updated, err := ctrl.Apply(context.Background(), sampleOrder(), lifecycle.ActionAccept)
	if err != nil {
		t.Fatal(err)
	}
	if updated.StatusUuid != string(domain.StatusPacking) {
		t.Fatalf("want Packing, got %s", updated.StatusUuid)
	}
	if !reflect.DeepEqual(updated.OrderDetails, sampleOrder().OrderDetails) {
		t.Fatalf("details must be untouched, got %+v", updated.OrderDetails)
	}
	if gotPut.TotalAmount != 25.50 {
		t.Fatalf("full record must be sent, got %+v", gotPut)
	}
}

func TestApplyInvalidTransition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may reach the backend on an invalid transition")
	}))
	defer srv.Close()

	orders := api.NewOrderClient(api.NewClient(srv.URL+"/", staticTokens("tok")))
	ctrl := &lifecycle.Controller{Orders: orders}

	order := sampleOrder()
	order.StatusUuid = string(domain.StatusDelivered)
	_, err := ctrl.Apply(context.Background(), order, lifecycle.ActionAccept)
	if !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if order.StatusUuid != string(domain.StatusDelivered) {
		t.Fatal("order must be unchanged after a failed transition")
	}
}

func TestApplyRejectsRemovalActions(t *testing.T) {
	ctrl := &lifecycle.Controller{}
	if _, err := ctrl.Apply(context.Background(), sampleOrder(), lifecycle.ActionCancel); !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Fatalf("Cancel is a removal, not a transition; got %v", err)
	}
}

func TestRemove(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/orders/ord-1" {
			deleted = true
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	orders := api.NewOrderClient(api.NewClient(srv.URL+"/", staticTokens("tok")))
	ctrl := &lifecycle.Controller{Orders: orders}

	if err := ctrl.Remove(context.Background(), sampleOrder(), lifecycle.ActionCancel); err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("delete never reached the backend")
	}
	if err := ctrl.Remove(context.Background(), sampleOrder(), lifecycle.ActionAccept); !errors.Is(err, lifecycle.ErrInvalidTransition) {
		t.Fatalf("Accept is not a removal; got %v", err)
	}
}

// A removal is only valid from the status that admits it: Cancel from
// Processing, Delete from Rejected. Anything else keeps the record, even when
// the request carries a removal action.
func TestRemoveGatedByStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request may reach the backend: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	orders := api.NewOrderClient(api.NewClient(srv.URL+"/", staticTokens("tok")))
	ctrl := &lifecycle.Controller{Orders: orders}

	cases := []struct {
		status domain.Status
		action lifecycle.Action
	}{
		{domain.StatusShipped, lifecycle.ActionDelete},
		{domain.StatusPacking, lifecycle.ActionCancel},
		{domain.StatusDelivered, lifecycle.ActionDelete},
		{domain.StatusProcessing, lifecycle.ActionDelete},
		{domain.StatusRejected, lifecycle.ActionCancel},
	}
	for _, tc := range cases {
		order := sampleOrder()
		order.StatusUuid = string(tc.status)
		if err := ctrl.Remove(context.Background(), order, tc.action); !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Errorf("Remove(%s, %s): want ErrInvalidTransition, got %v", tc.status.Label(), tc.action, err)
		}
	}
}

func TestRemoveDeleteFromRejected(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/orders/ord-1" {
			deleted = true
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	orders := api.NewOrderClient(api.NewClient(srv.URL+"/", staticTokens("tok")))
	ctrl := &lifecycle.Controller{Orders: orders}

	order := sampleOrder()
	order.StatusUuid = "52315dbf-5e49-49f2-be80-38cbf6b67abb" // mixed case still gates
	if err := ctrl.Remove(context.Background(), order, lifecycle.ActionDelete); err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("delete never reached the backend")
	}
}
