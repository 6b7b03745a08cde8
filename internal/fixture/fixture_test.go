package fixture

import (
	"fmt"
	"testing"
)

func TestBlankFixtureDescription(t *testing.T) {
	spy := newSpyT()

	f := New("", spy)
	f.Test("mute point", func() {})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error(message)
	}
}

func TestNoTestCases(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Setup(func() {})
	f.Teardown(func() {})
	f.Run()

	if ok, message := So(spy.skipped, ShouldBeTrue); !ok {
		t.Error(message)
	}
}

func TestBlankTestCaseDescription(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("", func() {})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error("\n" + message)
	}
	if ok, message := So(spy.skipped, ShouldBeFalse); !ok {
		t.Error("\n" + message)
	}
	if ok, message := So(spy.log, ShouldContainSubstring, "Test description must be non-blank."); !ok {
		t.Error("\n" + message)
	}
}

func TestSpoiledFixtureRunsNothing(t *testing.T) {
	spy := newSpyT()

	runs := 0
	f := New("A", spy)
	f.Test("B", func() { runs++ })
	f.Test("B", func() { runs++ })
	f.Run()

	if ok, message := So(runs, ShouldEqual, 0); !ok {
		t.Error("\n" + message)
	}
	if ok, message := So(spy.skipped, ShouldBeFalse); !ok {
		t.Error("\n" + message)
	}
}

func TestDuplicateTestCaseDescription(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("B", func() {})
	f.Test("B", func() {})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error("\n" + message)
	}
}

func TestCasesRunInRegistrationOrder(t *testing.T) {
	spy := newSpyT()

	var order []string
	f := New("A", spy)
	for _, name := range []string{"C", "A", "B", "E", "D"} {
		name := name
		f.Test(name, func() { order = append(order, name) })
	}
	f.Run()

	if ok, message := So(order, ShouldResemble, []string{"C", "A", "B", "E", "D"}); !ok {
		t.Error("\n" + message)
	}
}

func TestFailingAssertion(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("B1", func() {
		f.So("For the sake of the test this should be false", true, ShouldBeFalse)
	})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error("\n" + message)
	}
	if ok, message := So(spy.log, ShouldContainSubstring, `FAILED: "For the sake of the test this should be false"`); !ok {
		t.Error("\n" + message)
	}
}

func TestPanickingTest(t *testing.T) {
	spy := newSpyT()

	ran := false
	f := New("A", spy)
	f.Test("B1", func() { panic("GOPHERS!") })
	f.Test("B2", func() { ran = true })
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error(message)
	}
	if ok, message := So(ran, ShouldBeTrue); !ok {
		t.Error(message)
	}
	if ok, message := So(spy.log, ShouldContainSubstring, "PANIC: [GOPHERS!]"); !ok {
		t.Error(message)
	}
	if ok, message := So(spy.log, ShouldContainSubstring, "fixture_test.go:"); !ok {
		t.Error(message)
	}
}

func TestSkippedTests(t *testing.T) {
	spy := newSpyT()

	skipped, hi := false, false

	f := New("A", spy)
	f.SkipTest("skip", func() { skipped = true })
	f.Test("hi", func() { hi = true })
	f.Run()

	if !hi {
		t.Error("Active test was skipped when it should have been executed.")
	}
	if skipped {
		t.Error("Skipped test was run when it should have been skipped.")
	}
	if ok, message := So(spy.log, ShouldContainSubstring, ` -> (skipped) "skip"`); !ok {
		t.Error(message)
	}
}

func TestFocusedTests(t *testing.T) {
	spy := newSpyT()

	b1, b2, b3 := false, false, false

	f := New("A", spy)
	f.Test("B1", func() { b1 = true })
	f.FocusTest("B2", func() { b2 = true })
	f.Test("B3", func() { b3 = true })
	f.Run()

	if ok, message := So(b1, ShouldBeFalse); !ok {
		t.Error(message)
	}
	if ok, message := So(b2, ShouldBeTrue); !ok {
		t.Error(message)
	}
	if ok, message := So(b3, ShouldBeFalse); !ok {
		t.Error(message)
	}
}

func TestSkippedAssertion(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("B1", func() {
		f.SkipSo("if this assertion runs, the overall test will fail", false, ShouldBeTrue)
	})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeFalse); !ok {
		t.Error(message)
	}
}

func TestSetupAndTeardownWrapEveryCase(t *testing.T) {
	spy := newSpyT()

	setup, teardown := 0, 0
	f := New("A", spy)
	f.Setup(func() { setup++ })
	f.Teardown(func() { teardown++ })
	f.Test("B1", func() {})
	f.Test("B2", func() { panic("GOPHERS!") })
	f.Test("B3", func() {})
	f.Run()

	if ok, message := So(setup, ShouldEqual, 3); !ok {
		t.Error("\n" + message)
	}
	if ok, message := So(teardown, ShouldEqual, 3); !ok {
		t.Error("\n" + message)
	}
}

func TestSetupPanics(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Setup(func() { panic("GOPHERS!") })
	f.Test("B1", func() {})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error(message)
	}
}

func TestTeardownPanics(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("B1", func() {})
	f.Teardown(func() { panic("GOPHERS!") })
	f.Run()

	if ok, message := So(spy.failed, ShouldBeTrue); !ok {
		t.Error(message)
	}
}

func TestFixtureDisabledAfterRun(t *testing.T) {
	spy := newSpyT()

	f := New("A", spy)
	f.Test("This runs", func() {})
	f.Run()

	if ok, message := So(spy.failed, ShouldBeFalse); !ok {
		t.Error(message)
	}

	f.Test("This doesn't run", func() { f.So("really, this doesn't run", true, ShouldBeFalse) })
	f.Run()

	if ok, message := So(spy.failed, ShouldBeFalse); !ok {
		t.Error(message)
	}
	if ok, message := So(spy.skipped, ShouldBeTrue); !ok {
		t.Error(message)
	}
}

//////////////////////////////////////////////////////////////////////////////

// spyT stands in for a *testing.T, at least as far as the fixture is concerned.
type spyT struct {
	failed  bool
	skipped bool
	log     string
}

func newSpyT() *spyT                       { return &spyT{} }
func (self *spyT) Fail()                   { self.failed = true }
func (self *spyT) SkipNow()                { self.skipped = true }
func (self *spyT) Log(args ...interface{}) { self.log = fmt.Sprint(args...) }
