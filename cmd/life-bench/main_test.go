package main

import (
	"slices"
	"testing"
)

func TestIntListSet(t *testing.T) {
	var l intList
	if err := l.Set("8, 16,32"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(l, intList{8, 16, 32}) {
		t.Fatalf("unexpected list %v", l)
	}
	if l.String() != "8,16,32" {
		t.Fatalf("String() = %q", l.String())
	}
	for _, bad := range []string{"", "x", "4,-1", "0"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRunScenarioDeterministic(t *testing.T) {
	a := runScenario(scenario{size: 24, workers: 1}, 30, 5)
	b := runScenario(scenario{size: 24, workers: 4}, 30, 5)
	if a.population != b.population {
		t.Fatalf("worker count changed the outcome: %d vs %d", a.population, b.population)
	}
	if a.steps != 30 || a.fps < 0 {
		t.Fatalf("unexpected result %+v", a)
	}
}

func TestSortResults(t *testing.T) {
	results := []scenarioResult{
		{scenario: scenario{size: 128, workers: 1}},
		{scenario: scenario{size: 64, workers: 8}},
		{scenario: scenario{size: 64, workers: 1}},
	}
	sortResults(results)
	got := []scenario{results[0].scenario, results[1].scenario, results[2].scenario}
	want := []scenario{{64, 1}, {64, 8}, {128, 1}}
	if !slices.Equal(got, want) {
		t.Fatalf("sorted = %v", got)
	}
}
