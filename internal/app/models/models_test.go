package models

import (
	"reflect"
	"testing"
)

func TestPatchIsEmpty(t *testing.T) {
	if !(ProfessorPatch{}).IsEmpty() {
		t.Error("zero professor patch should be empty")
	}
	if (ProfessorPatch{Phone: Clear[string]()}).IsEmpty() {
		t.Error("clearing phone is an assignment")
	}

	areas := []int64{}
	if (StudentPatch{ResearchAreaIDs: &areas}).IsEmpty() {
		t.Error("replacing research areas with none is an assignment")
	}

	if (ProjectPatch{FundingAmount: Assign(12.5)}).IsEmpty() {
		t.Error("funding assignment should not be empty")
	}
	if !(PublicationPatch{}).IsEmpty() {
		t.Error("zero publication patch should be empty")
	}
}

func TestAssignAndClear(t *testing.T) {
	a := Assign[int64](4)
	if !a.Set || a.Value == nil || *a.Value != 4 {
		t.Errorf("assign: got %+v", a)
	}

	c := Clear[int64]()
	if !c.Set || c.Value != nil {
		t.Errorf("clear: got %+v", c)
	}
}

func TestResearchAreaNames(t *testing.T) {
	if got := ResearchAreaNames(nil); got == nil || len(got) != 0 {
		t.Errorf("nil areas should give an empty, non-nil list: %#v", got)
	}

	got := ResearchAreaNames([]ResearchArea{{ID: 2, Name: "Systems"}, {ID: 1, Name: "AI"}})
	if want := []string{"Systems", "AI"}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestProfessorFullName(t *testing.T) {
	p := &Professor{FirstName: "Ada", LastName: "Lovelace"}
	if got := p.FullName(); got != "Ada Lovelace" {
		t.Errorf("got %q", got)
	}
}
