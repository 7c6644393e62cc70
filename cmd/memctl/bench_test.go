package main

import (
	"strings"
	"testing"
)

func TestBenchCommand(t *testing.T) {
	tests := []struct {
		name        string
		backend     string
		size        int64
		count       int
		touch       bool
		wantErr     bool
		wantJSON    bool
		wantContain []string
	}{
		{
			name:        "heap with touch",
			backend:     "heap",
			size:        256,
			count:       16,
			touch:       true,
			wantContain: []string{"Bench: heap", "Blocks: 16 x 256 bytes", "Touch:", "Alloc calls: 16", "Free calls: 16", "Live blocks: 0"},
		},
		{
			name:        "heap without touch",
			backend:     "heap",
			size:        64,
			count:       4,
			touch:       false,
			wantContain: []string{"Bench: heap", "Allocate:", "Free:"},
		},
		{
			name:        "json output",
			backend:     "heap",
			size:        128,
			count:       8,
			touch:       true,
			wantJSON:    true,
			wantContain: []string{"\"Backend\": \"heap\"", "\"BlockCount\": 8", "AllocsPerSec"},
		},
		{
			name:    "unknown backend",
			backend: "slab",
			size:    64,
			count:   1,
			wantErr: true,
		},
		{
			name:    "bad size",
			backend: "heap",
			size:    0,
			count:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flags
			quiet = false
			verbose = false
			jsonOut = tt.wantJSON
			benchBackend = tt.backend
			benchSize = tt.size
			benchCount = tt.count
			benchTouch = tt.touch

			output, err := captureOutput(t, func() error {
				return runBench()
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runBench() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			if !tt.touch && !tt.wantJSON {
				assertNotContains(t, output, []string{"Touch:"})
			}
		})
	}
}

func TestNewBackendNames(t *testing.T) {
	if _, err := newBackend("heap"); err != nil {
		t.Errorf("heap backend: %v", err)
	}
	_, err := newBackend("nonsense")
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("expected unknown backend error, got %v", err)
	}
}
