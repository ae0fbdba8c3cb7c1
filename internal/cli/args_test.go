// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    Args
		wantErr bool
	}{
		{
			name: "no arguments",
			raw:  nil,
			want: Args{},
		},
		{
			name: "long flag with value",
			raw:  []string{"--config", "/tmp/c.toml"},
			want: Args{ConfigPath: "/tmp/c.toml"},
		},
		{
			name: "long flag with equals",
			raw:  []string{"--prompt=$ "},
			want: Args{Prompt: "$ "},
		},
		{
			name: "short flags",
			raw:  []string{"-c", "x.toml", "-v"},
			want: Args{ConfigPath: "x.toml", Version: true},
		},
		{
			name: "boolean flags",
			raw:  []string{"--no-color", "--help"},
			want: Args{NoColor: true, Help: true},
		},
		{
			name: "one-shot command",
			raw:  []string{"config", "show"},
			want: Args{Command: []string{"config", "show"}},
		},
		{
			name: "flags then one-shot command",
			raw:  []string{"--no-color", "help", "config"},
			want: Args{NoColor: true, Command: []string{"help", "config"}},
		},
		{
			name:    "missing value",
			raw:     []string{"--config"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			raw:     []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%v) succeeded, want error", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tc.raw, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%v) = %+v, want %+v", tc.raw, got, tc.want)
			}
		})
	}
}
