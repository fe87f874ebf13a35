// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/fracta7/recipegen/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    serializer.Format
		wantErr bool
	}{
		{name: "default report format", want: serializer.FormatYAML},
		{name: "json report", args: []string{"--format", "json"}, want: serializer.FormatJSON},
		{name: "table report via short flag", args: []string{"-t", "table"}, want: serializer.FormatTable},
		{name: "kotlin is the artifact, not a report format", args: []string{"--format", "kotlin"}, wantErr: true},
		{name: "uppercase is not normalized", args: []string{"--format", "YAML"}, wantErr: true},
		{name: "empty format", args: []string{"--format", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got    serializer.Format
				gotErr error
			)
			cmd := generateCmd()
			cmd.Action = func(_ context.Context, c *cli.Command) error {
				got, gotErr = parseOutputFormat(c)
				return nil
			}

			require.NoError(t, cmd.Run(context.Background(), append([]string{"generate"}, tt.args...)))
			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOutputFormat_FromEnv(t *testing.T) {
	t.Setenv("RECIPEGEN_FORMAT", "json")

	var got serializer.Format
	cmd := generateCmd()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		var err error
		got, err = parseOutputFormat(c)
		return err
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"generate"}))
	assert.Equal(t, serializer.FormatJSON, got)
}
