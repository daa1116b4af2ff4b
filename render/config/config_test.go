/*
NAME
  config_test.go

AUTHORS
  Mira Holt <mira@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dumbLogger struct{}

func (dl *dumbLogger) Log(l int8, m string, a ...interface{})  {}
func (dl *dumbLogger) SetLevel(l int8)                         {}
func (dl *dumbLogger) Debug(msg string, args ...interface{})   {}
func (dl *dumbLogger) Info(msg string, args ...interface{})    {}
func (dl *dumbLogger) Warning(msg string, args ...interface{}) {}
func (dl *dumbLogger) Error(msg string, args ...interface{})   {}
func (dl *dumbLogger) Fatal(msg string, args ...interface{})   {}

func TestValidateDefaultsUnsetFields(t *testing.T) {
	dl := &dumbLogger{}

	want := Config{
		Logger:          dl,
		BlockSize:       DefaultBlockSize,
		SamplesPerBlock: DefaultSamplesPerBlock,
		WorkerCount:     DefaultWorkerCount,
	}

	got := Config{Logger: dl}
	err := got.Validate()
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("configs not equal (-want +got):\n%s", diff)
	}
}

func TestValidateLeavesSetFieldsAlone(t *testing.T) {
	dl := &dumbLogger{}

	want := Config{
		Logger:          dl,
		BlockSize:       64,
		SamplesPerBlock: 8,
		WorkerCount:     2,
		ForceRayTracing: true,
	}

	got := want
	if err := got.Validate(); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() modified an already-valid config (-want +got):\n%s", diff)
	}
}

func TestInFlightTargetRoundsUp(t *testing.T) {
	tests := []struct {
		workers uint
		want    int
	}{
		{1, 2}, // ceil(1.5) == 2
		{2, 3}, // ceil(3.0) == 3
		{4, 6}, // ceil(6.0) == 6
		{5, 8}, // ceil(7.5) == 8
	}
	for _, tt := range tests {
		c := Config{WorkerCount: tt.workers}
		if got := c.InFlightTarget(); got != tt.want {
			t.Errorf("InFlightTarget() with WorkerCount=%d = %d, want %d", tt.workers, got, tt.want)
		}
	}
}

// loggedCall records every LogInvalidField invocation, standing in for a
// real structured logger's Info sink.
type loggedCall struct {
	name string
	def  interface{}
}

type recordingLogger struct {
	dumbLogger
	calls []loggedCall
}

func (l *recordingLogger) Info(msg string, args ...interface{}) {
	if len(args) != 2 {
		return
	}
	name, _ := args[0].(string)
	l.calls = append(l.calls, loggedCall{name: name, def: args[1]})
}

func TestLogInvalidFieldLogsNameAndDefault(t *testing.T) {
	rl := &recordingLogger{}
	c := Config{Logger: rl}

	c.LogInvalidField("BlockSize", DefaultBlockSize)

	if len(rl.calls) != 1 {
		t.Fatalf("got %d Info() calls, want 1", len(rl.calls))
	}
	want := loggedCall{name: "BlockSize", def: DefaultBlockSize}
	if diff := cmp.Diff(want, rl.calls[0], cmp.AllowUnexported(loggedCall{})); diff != "" {
		t.Errorf("logged call mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateDefaultsLogEachSubstitution(t *testing.T) {
	rl := &recordingLogger{}
	c := Config{Logger: rl}

	if err := c.Validate(); err != nil {
		t.Fatalf("did not expect error: %v", err)
	}

	want := []loggedCall{
		{name: "BlockSize", def: DefaultBlockSize},
		{name: "SamplesPerBlock", def: DefaultSamplesPerBlock},
		{name: "WorkerCount", def: DefaultWorkerCount},
	}
	if diff := cmp.Diff(want, rl.calls, cmp.AllowUnexported(loggedCall{})); diff != "" {
		t.Errorf("logged substitutions mismatch (-want +got):\n%s", diff)
	}
}
