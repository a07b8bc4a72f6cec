package model

import "testing"

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusDownloading, false},
		{StatusRejected, true},
		{StatusCompleted, true},
		{StatusFailed, true},
		{StatusLaunchFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsFailure(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusDownloading, false},
		{StatusCompleted, false},
		{StatusRejected, true},
		{StatusFailed, true},
		{StatusLaunchFailed, true},
	}

	for _, test := range tests {
		result := test.status.IsFailure()
		if result != test.expected {
			t.Errorf("Status(%s).IsFailure() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if got := StatusLaunchFailed.String(); got != "LaunchFailed" {
		t.Errorf("Status.String() = %s, expected LaunchFailed", got)
	}
}
