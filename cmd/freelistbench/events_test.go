package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pavanmanishd/freelist/internal/perf"
	"github.com/pavanmanishd/freelist/internal/workload"
)

func TestListCommands(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantJSON    bool
		wantContain []string
	}{
		{
			name:        "events",
			args:        []string{"events"},
			wantContain: []string{"L1-icache-load-misses\n", "LLC-loads\n", "branch-misses\n"},
		},
		{
			name:        "events as JSON",
			args:        []string{"events", "--json"},
			wantJSON:    true,
			wantContain: []string{`"cycles"`, `"instructions"`},
		},
		{
			name:        "workloads",
			args:        []string{"workloads"},
			wantContain: []string{"freelist-sort ", "queue-churn ", "eapache/queue"},
		},
		{
			name:        "workloads as JSON",
			args:        []string{"workloads", "--json"},
			wantJSON:    true,
			wantContain: []string{`"freelist-sort-values"`, `"list-sort"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			defer resetFlags()

			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs(tt.args)
			defer rootCmd.SetOut(nil)

			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute(%v) error = %v", tt.args, err)
			}

			output := out.String()
			if tt.wantJSON {
				var names []string
				if err := json.Unmarshal(out.Bytes(), &names); err != nil {
					t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
				}
				want := len(perf.Events())
				if tt.args[0] == "workloads" {
					want = len(workload.Names())
				}
				if len(names) != want {
					t.Errorf("got %d names, want %d", len(names), want)
				}
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestRunCommandRejectsArgs(t *testing.T) {
	resetFlags()
	defer resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"run", "extra"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for positional arguments")
	}
}

func TestRunCommand(t *testing.T) {
	resetFlags()
	defer resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"run", "-q", "--no-counters", "--size", "500", "-w", "freelist-churn"})
	defer rootCmd.SetOut(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("quiet run printed %q", out.String())
	}
}
