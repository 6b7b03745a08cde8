// Package fixture implements a small xunit-style test fixture on top of
// github.com/smartystreets/assertions.
//
// Test cases run in the order they were registered, each wrapped by the
// registered setup and teardown. Output is buffered and written to the
// test log once the fixture has run.
package fixture

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/smartystreets/assertions"
)

// T is the subset of *testing.T the fixture needs, so the fixture itself can
// be verified with a spy.
type T interface {
	Fail()
	SkipNow()
	Log(...interface{})
}

type testCase struct {
	description string
	action      func()
	skipped     bool
	focused     bool
}

// Fixture groups test cases under a description. Call New to create one.
type Fixture struct {
	t T

	frozen  bool // frozen prevents setup, teardown, and tests from being registered.
	spoiled bool // spoiled marks the whole fixture as failed.

	setup    func()
	teardown func()

	cases []testCase
	names map[string]struct{}
	focus bool

	output *bytes.Buffer
}

// New creates a fixture. Register cases with Test and friends, then call Run
// (usually deferred right after New).
func New(description string, t T) *Fixture {
	return &Fixture{
		t: t,

		setup:    func() {},
		teardown: func() {},

		names: make(map[string]struct{}),

		output:  bytes.NewBufferString(description + "\n"),
		spoiled: len(description) == 0,
	}
}

// Setup registers a function to run before every test case, replacing any
// previously registered one.
func (self *Fixture) Setup(action func()) {
	if self.frozen {
		return
	}
	self.setup = action
}

// Teardown registers a function to run after every test case, even one that
// panicked, replacing any previously registered one.
func (self *Fixture) Teardown(action func()) {
	if self.frozen {
		return
	}
	self.teardown = action
}

// Test registers a test case. Descriptions must be unique within a fixture.
func (self *Fixture) Test(description string, action func()) {
	self.register(testCase{description: description, action: action})
}

// SkipTest registers a test case that is logged but never run.
func (self *Fixture) SkipTest(description string, action func()) {
	self.register(testCase{description: description, skipped: true})
}

// FocusTest registers a test case to run instead of every unfocused one.
func (self *Fixture) FocusTest(description string, action func()) {
	self.register(testCase{description: description, action: action, focused: true})
}

func (self *Fixture) register(c testCase) {
	if self.frozen {
		return
	}
	if len(c.description) == 0 {
		self.spoiled = true
		self.Log("Test description must be non-blank.\n")
		return
	}
	if _, found := self.names[c.description]; found {
		self.spoiled = true
		self.Logf("Description conflict: action already registered with this description: '%s'\n", c.description)
		return
	}
	self.names[c.description] = struct{}{}
	self.focus = self.focus || c.focused
	self.cases = append(self.cases, c)
}

// Run executes every registered case in registration order. A spoiled fixture
// fails without running anything, even when none of its cases were kept; a
// fixture with no cases is skipped.
func (self *Fixture) Run() {
	defer self.dump()

	if self.frozen {
		self.t.SkipNow() // calls runtime.Goexit(); the deferred dump still runs
	} else if self.spoiled {
		self.t.Fail()
	} else if len(self.cases) == 0 {
		self.t.SkipNow()
	} else {
		self.frozen = true
		for _, c := range self.cases {
			self.runOne(c)
		}
	}
}

func (self *Fixture) dump() {
	self.t.Log(self.output.String())
}

func (self *Fixture) runOne(c testCase) {
	switch {
	case c.skipped, self.focus && !c.focused:
		self.Logf(" -> (skipped) \"%s\"\n", c.description)
	case c.focused:
		self.execute(" -> <FOCUSED> ", c)
	default:
		self.execute(" -> ", c)
	}
}

func (self *Fixture) execute(prefix string, c testCase) {
	defer self.recover() // teardown
	defer self.teardown()
	defer self.recover() // setup or test
	self.setup()
	self.Logf("%s\"%s\"\n", prefix, c.description)
	c.action()
}

func (self *Fixture) recover() {
	if r := recover(); r != nil {
		self.t.Fail()
		self.Log(self.formatPanic(fmt.Sprint(r)))
	}
}

func (self *Fixture) formatPanic(recovered string) string {
	fileInfo := panicSite()
	title := "PANIC: [" + recovered + "]"
	divider := strings.Repeat("*", max(len(fileInfo), len(title)))
	return "\n\n  " + divider + "\n\n  " +
		title + "\n\n  " +
		fileInfo + "\n\n  " +
		divider + "\n"
}

// panicSite returns the file:line of the first non-runtime frame below
// runtime.gopanic, which is where the recovered panic was raised.
func panicSite() string {
	pc := make([]uintptr, 64)
	frames := runtime.CallersFrames(pc[:runtime.Callers(1, pc)])
	for panicking := false; ; {
		frame, more := frames.Next()
		if panicking && !strings.HasPrefix(frame.Function, "runtime.") {
			return frame.File + ":" + strconv.Itoa(frame.Line)
		}
		panicking = panicking || frame.Function == "runtime.gopanic"
		if !more {
			return "(unknown)"
		}
	}
}

// So asserts with one of the assertions matchers, logging description either
// way and failing the test when the matcher does.
func (self *Fixture) So(description string, actual interface{}, so func(actual interface{}, expected ...interface{}) string, expected ...interface{}) {
	ok, result := assertions.So(actual, so, expected...)
	self.Log("    + ", description+"\n")
	if !ok {
		self.t.Fail()
		self.Log(self.formatResult(description, result))
	}
}

func (self *Fixture) SkipSo(description string, actual interface{}, so func(actual interface{}, expected ...interface{}) string, expected ...interface{}) {
	self.Log("    + (skipped) ", description+"\n")
}

func (self *Fixture) formatResult(description, result string) string {
	_, file, line, _ := runtime.Caller(2)
	fileInfo := file + ":" + strconv.Itoa(line)
	title := "FAILED: \"" + description + "\""
	divider := strings.Repeat("*", max(len(fileInfo), len(title)))
	message := "\n    " + divider + "\n\n    " + title + "\n\n"
	for _, line := range strings.Split(result, "\n") {
		message += "    " + line + "\n"
	}
	return message + "\n\n    " + fileInfo + "\n\n    " + divider + "\n\n"
}

func (self *Fixture) Log(args ...interface{}) {
	self.output.WriteString(fmt.Sprint(args...))
}

func (self *Fixture) Logf(message string, args ...interface{}) {
	self.output.WriteString(fmt.Sprintf(message, args...))
}

//////////////////////////////////////////////////////////////////////////////

var (
	So               = assertions.So
	ShouldEqual      = assertions.ShouldEqual
	ShouldResemble   = assertions.ShouldResemble
	ShouldBeNil      = assertions.ShouldBeNil
	ShouldBeTrue     = assertions.ShouldBeTrue
	ShouldBeFalse    = assertions.ShouldBeFalse
	ShouldBeEmpty    = assertions.ShouldBeEmpty
	ShouldHaveLength = assertions.ShouldHaveLength

	ShouldContainSubstring    = assertions.ShouldContainSubstring
	ShouldNotContainSubstring = assertions.ShouldNotContainSubstring
	ShouldEndWith             = assertions.ShouldEndWith
)
