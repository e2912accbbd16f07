package oasmodel

import "testing"

func TestGetOperationsOnlyNonNil(t *testing.T) {
	pi := &PathItem{
		Get:  &Operation{OperationID: "getPet"},
		Post: &Operation{OperationID: "addPet"},
	}

	ops := GetOperations(pi)
	if len(ops) != 2 {
		t.Fatalf("GetOperations() returned %d entries, want 2", len(ops))
	}
	if ops["get"].OperationID != "getPet" {
		t.Errorf("ops[get].OperationID = %q, want getPet", ops["get"].OperationID)
	}
	if ops["post"].OperationID != "addPet" {
		t.Errorf("ops[post].OperationID = %q, want addPet", ops["post"].OperationID)
	}
	if _, ok := ops["put"]; ok {
		t.Error("GetOperations() should not include nil operations")
	}
}

func TestGetOperationsNilPathItem(t *testing.T) {
	if GetOperations(nil) != nil {
		t.Error("GetOperations(nil) should return nil")
	}
}

func TestOrderedOperationsFollowsFixedMethodOrder(t *testing.T) {
	pi := &PathItem{
		Post: &Operation{OperationID: "addPet"},
		Get:  &Operation{OperationID: "getPet"},
		Head: &Operation{OperationID: "headPet"},
	}

	ops := OrderedOperations(pi)
	if len(ops) != 3 {
		t.Fatalf("OrderedOperations() returned %d entries, want 3", len(ops))
	}
	got := []string{ops[0].Method, ops[1].Method, ops[2].Method}
	want := []string{"get", "post", "head"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OrderedOperations()[%d].Method = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedOperationsNilPathItem(t *testing.T) {
	if OrderedOperations(nil) != nil {
		t.Error("OrderedOperations(nil) should return nil")
	}
}

func TestSetOperation(t *testing.T) {
	pi := &PathItem{}
	op := &Operation{OperationID: "deletePet"}
	SetOperation(pi, "delete", op)

	if pi.Delete != op {
		t.Error("SetOperation(delete) should set PathItem.Delete")
	}

	SetOperation(pi, "unknown-method", op) // no-op, must not panic
}

func TestHasAnyOperation(t *testing.T) {
	cases := []struct {
		name string
		pi   *PathItem
		want bool
	}{
		{"nil", nil, false},
		{"empty", &PathItem{}, false},
		{"has ref", &PathItem{Ref: "#/components/pathItems/Pet"}, true},
		{"has get", &PathItem{Get: &Operation{}}, true},
		{"has trace only", &PathItem{Trace: &Operation{}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HasAnyOperation(c.pi); got != c.want {
				t.Errorf("HasAnyOperation(%s) = %v, want %v", c.name, got, c.want)
			}
		})
	}
}
