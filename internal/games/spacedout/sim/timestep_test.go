package sim

import (
	"testing"
	"time"
)

func TestAccumulatorGrantsWholeSteps(t *testing.T) {
	a := NewAccumulator(60)

	a.Add(time.Second)
	n := 0
	for a.ShouldStep() {
		n++
	}
	if n != 60 {
		t.Errorf("steps for one second = %d, expected 60", n)
	}
	if a.Pending() >= a.Step() {
		t.Errorf("pending %v should be below one step", a.Pending())
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	a := NewAccumulator(60)

	a.Add(10 * time.Millisecond)
	if a.ShouldStep() {
		t.Fatal("10ms is less than one 60Hz step")
	}
	a.Add(10 * time.Millisecond)
	if !a.ShouldStep() {
		t.Fatal("20ms total should grant one step")
	}
	if a.ShouldStep() {
		t.Fatal("only one step should be granted")
	}
}

func TestAccumulatorIgnoresNegativeAndCapsBacklog(t *testing.T) {
	a := NewAccumulator(60)
	a.Add(-time.Second)
	if a.Pending() != 0 {
		t.Errorf("negative elapsed should be ignored, pending %v", a.Pending())
	}

	a.SetMaxBacklog(100 * time.Millisecond)
	a.Add(5 * time.Second)
	if a.Pending() != 100*time.Millisecond {
		t.Errorf("pending = %v, expected cap of 100ms", a.Pending())
	}

	a.Reset()
	if a.Pending() != 0 || a.ShouldStep() {
		t.Error("Reset should drop banked time")
	}
}

func TestAccumulatorDefaultsTickRate(t *testing.T) {
	if NewAccumulator(0).Step() != time.Second/60 {
		t.Error("zero tick rate should fall back to 60Hz")
	}
}

func TestStepsGate(t *testing.T) {
	g := Steps(3)
	n := 0
	for g.ShouldStep() {
		n++
	}
	if n != 3 {
		t.Errorf("Steps(3) granted %d", n)
	}
	if Steps(-1).ShouldStep() {
		t.Error("negative count should grant nothing")
	}
}
