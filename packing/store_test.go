package packing

import (
	"fmt"
	"sync"
	"testing"
)

func TestRuleStoreInterface(t *testing.T) {
	var _ RuleStore = (*InMemoryRuleStore)(nil)
	var _ RuleStore = (*PostgresRuleStore)(nil)
}

func TestInMemoryRuleStoreAddGet(t *testing.T) {
	store := NewInMemoryRuleStore()

	rule := &CustomRule{ID: "r1", Name: "Rule", Expression: `true`, Points: 10, Active: true}
	if err := store.Add(rule); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	got, err := store.Get("r1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Name != rule.Name || got.Points != rule.Points {
		t.Errorf("Get() = %+v, want %+v", got, rule)
	}
}

func TestInMemoryRuleStoreAddDuplicate(t *testing.T) {
	store := NewInMemoryRuleStore()

	rule := &CustomRule{ID: "dup", Name: "Rule", Expression: `true`}
	if err := store.Add(rule); err != nil {
		t.Fatalf("first Add() failed: %v", err)
	}
	if err := store.Add(rule); err == nil {
		t.Error("second Add() with same ID should fail")
	}
}

func TestInMemoryRuleStoreGetMissing(t *testing.T) {
	store := NewInMemoryRuleStore()

	if _, err := store.Get("nope"); err == nil {
		t.Error("Get() should fail for a missing rule")
	}
}

func TestInMemoryRuleStoreListActive(t *testing.T) {
	store := NewInMemoryRuleStore()

	for i, active := range []bool{true, false, true} {
		rule := &CustomRule{ID: fmt.Sprintf("r%d", i), Name: "Rule", Expression: `true`, Active: active}
		if err := store.Add(rule); err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
	}

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("ListActive() returned %d rules, want 2", len(active))
	}
	for _, r := range active {
		if !r.Active {
			t.Errorf("ListActive() returned inactive rule %s", r.ID)
		}
	}
}

func TestInMemoryRuleStoreUpdateDelete(t *testing.T) {
	store := NewInMemoryRuleStore()

	rule := &CustomRule{ID: "r", Name: "Rule", Expression: `true`, Points: 5, Active: true}
	if err := store.Add(rule); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	updated := &CustomRule{ID: "r", Name: "Renamed", Expression: `false`, Points: 15, Active: true}
	if err := store.Update(updated); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	got, _ := store.Get("r")
	if got.Name != "Renamed" || got.Points != 15 {
		t.Errorf("Update() not applied: %+v", got)
	}

	if err := store.Delete("r"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("r"); err == nil {
		t.Error("Get() should fail after Delete()")
	}

	if err := store.Update(updated); err == nil {
		t.Error("Update() should fail for a deleted rule")
	}
	if err := store.Delete("r"); err == nil {
		t.Error("Delete() should fail for a deleted rule")
	}
}

func TestInMemoryRuleStoreConcurrent(t *testing.T) {
	store := NewInMemoryRuleStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			rule := &CustomRule{ID: fmt.Sprintf("r%d", n), Name: "Rule", Expression: `true`, Active: true}
			if err := store.Add(rule); err != nil {
				t.Errorf("Add() failed: %v", err)
			}
			if _, err := store.Get(rule.ID); err != nil {
				t.Errorf("Get() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	active, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() failed: %v", err)
	}
	if len(active) != 50 {
		t.Errorf("ListActive() returned %d rules, want 50", len(active))
	}
}
