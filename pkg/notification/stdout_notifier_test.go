package notification

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestStdoutNotifier_Send(t *testing.T) {
	tests := []struct {
		name         string
		notification Notification
		wantContains []string
	}{
		{
			name: "basic notification",
			notification: Notification{
				Title:   "Look away",
				Message: "Blink a few times",
				Time:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
				AppName: "health-notifications",
				Timeout: 10 * time.Second,
			},
			wantContains: []string{
				"[NOTIFICATION] 12:00:00 Look away: Blink a few times (App: health-notifications, Timeout: 10s)",
			},
		},
		{
			name:         "notification with empty fields",
			notification: Notification{},
			wantContains: []string{
				"[NOTIFICATION] 00:00:00 :  (App: , Timeout: 0s)",
			},
		},
		{
			name: "notification with multiline message",
			notification: Notification{
				Title:   "Multi",
				Message: "Line 1\nLine 2",
				Time:    time.Date(2024, 1, 1, 9, 20, 5, 0, time.UTC),
			},
			wantContains: []string{
				"[NOTIFICATION] 09:20:05 Multi: Line 1\nLine 2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := &StdoutNotifier{out: &buf}

			if err := n.Send(tt.notification); err != nil {
				t.Fatalf("Send() unexpected error: %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output = %q, want to contain %q", output, want)
				}
			}
		})
	}
}

func TestNewStdoutNotifier(t *testing.T) {
	if NewStdoutNotifier().out == nil {
		t.Error("NewStdoutNotifier should write to stdout")
	}
}
