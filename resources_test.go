package bento

import (
	"reflect"
	"testing"
)

func TestResources(t *testing.T) {
	type testStruct1 struct{}
	type testStruct2 struct{}

	t.Run("Add and Get", func(t *testing.T) {
		r := &Resources{}
		res1 := &testStruct1{}
		id := r.Add(res1)
		if id != 0 {
			t.Errorf("expected id 0, got %d", id)
		}
		if got := r.Get(0); got != res1 {
			t.Errorf("expected %v, got %v", res1, got)
		}
	})

	t.Run("Has", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		if !r.Has(0) {
			t.Error("expected true")
		}
		if r.Has(1) {
			t.Error("expected false")
		}
		if r.Has(-1) {
			t.Error("expected false")
		}
	})

	t.Run("Add same type panics", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.Add(&testStruct1{})
	})

	t.Run("Add non-pointer panics", func(t *testing.T) {
		r := &Resources{}
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.Add(testStruct1{})
	})

	t.Run("Add nil panics", func(t *testing.T) {
		r := &Resources{}
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		r.Add(nil)
	})

	t.Run("Remove", func(t *testing.T) {
		r := &Resources{}
		id := r.Add(&testStruct1{})
		r.Remove(id)
		if r.Has(id) {
			t.Error("expected false")
		}
		if r.Get(id) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("Add after Remove same type", func(t *testing.T) {
		r := &Resources{}
		id1 := r.Add(&testStruct1{})
		r.Remove(id1)
		id2 := r.Add(&testStruct1{})
		if id2 != id1 {
			t.Errorf("expected reused id %d, got %d", id1, id2)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		r := &Resources{}
		r.Add(&testStruct1{})
		r.Add(&testStruct2{})
		r.Clear()
		if len(r.items) != 0 {
			t.Error("expected empty")
		}
		if len(r.types) != 0 {
			t.Error("expected empty types")
		}
		if r.Has(0) {
			t.Error("expected false")
		}
	})

	t.Run("Typed access", func(t *testing.T) {
		r := &Resources{}
		res := &testStruct1{}
		id := r.Add(res)

		ok, gotID := HasResource[testStruct1](r)
		if !ok || gotID != id {
			t.Errorf("expected (true, %d), got (%v, %d)", id, ok, gotID)
		}
		got, gotID := GetResource[testStruct1](r)
		if got != res || gotID != id {
			t.Errorf("expected same pointer %p, got %p", res, got)
		}
		if ok, _ := HasResource[testStruct2](r); ok {
			t.Error("expected false for absent type")
		}
		if got, id := GetResource[testStruct2](r); got != nil || id != -1 {
			t.Error("expected (nil, -1) for absent type")
		}
	})

	t.Run("Slot id resolution", func(t *testing.T) {
		r := &Resources{}
		res := &testStruct1{}
		id := r.Add(res)
		gotID, ok := r.idOf(reflect.TypeFor[testStruct1]())
		if !ok || gotID != id {
			t.Errorf("expected (%d, true), got (%d, %v)", id, gotID, ok)
		}
		ptr, ok := r.ptr(id)
		if !ok || ptr == nil {
			t.Error("expected a pointer to the slot value")
		}
	})
}
