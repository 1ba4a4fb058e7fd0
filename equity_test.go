package equity

import "testing"

func TestEquityTotalAndPercentages(t *testing.T) {
	e := Equity{Win: 3, Tie: 1, Lose: 4}
	if got := e.Total(); got != 8 {
		t.Errorf("Total() = %v, want 8", got)
	}
	win, tie, lose := e.Percentages()
	if win != 0.375 || tie != 0.125 || lose != 0.5 {
		t.Errorf("Percentages() = (%v,%v,%v), want (0.375,0.125,0.5)", win, tie, lose)
	}
}

func TestEquityPercentagesZeroTotal(t *testing.T) {
	var e Equity
	win, tie, lose := e.Percentages()
	if win != 0 || tie != 0 || lose != 0 {
		t.Errorf("Percentages() of zero equity = (%v,%v,%v), want all zero", win, tie, lose)
	}
}

func TestEquityAdd(t *testing.T) {
	a := Equity{Win: 1, Tie: 2, Lose: 3}
	b := Equity{Win: 10, Tie: 20, Lose: 30}
	got := a.Add(b)
	want := Equity{Win: 11, Tie: 22, Lose: 33}
	if got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestEquityString(t *testing.T) {
	e := Equity{Win: 3, Tie: 1, Lose: 4}
	if got := e.String(); got == "" {
		t.Errorf("String() returned empty string")
	}
	var zero Equity
	if got := zero.String(); got == "" {
		t.Errorf("String() of zero equity returned empty string")
	}
}
