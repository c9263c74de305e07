package usecase

import (
	"reflect"
	"testing"
)

func TestAggregateReferences(t *testing.T) {
	t.Run("Merges Sorts And Dedupes", func(t *testing.T) {
		got := aggregateReferences(
			[]string{"product:PS123456", "tool:search_products", ""},
			[]reference{productRef("PS123456"), modelRef("WDT780SAEM1"), toolRef(ToolSearchProducts)},
		)
		want := []string{"model:WDT780SAEM1", "product:PS123456", "tool:search_products"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := aggregateReferences([]string{"product:PS1"}, []reference{modelRef("M1")})
		second := aggregateReferences(first, nil)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("re-aggregation changed the set: %v vs %v", first, second)
		}
	})

	t.Run("Order Independent", func(t *testing.T) {
		a := aggregateReferences(nil, []reference{productRef("PS1"), modelRef("M1")})
		b := aggregateReferences(nil, []reference{modelRef("M1"), productRef("PS1")})
		if !reflect.DeepEqual(a, b) {
			t.Errorf("input order changed the result: %v vs %v", a, b)
		}
	})

	t.Run("Empty Inputs Yield Empty Set", func(t *testing.T) {
		got := aggregateReferences(nil, nil)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil set, got %v", got)
		}
	})
}
