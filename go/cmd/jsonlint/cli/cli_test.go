/*
Copyright 2026 The Jsnom Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	data := []byte("{\n  \"a\": 1,\n  \"b\" 2\n}\n")
	testcases := []struct {
		offset int
		line   int
		col    int
	}{
		{offset: 0, line: 1, col: 1},
		{offset: 2, line: 2, col: 1},
		{offset: 4, line: 2, col: 3},
		{offset: 18, line: 3, col: 7},
		{offset: 21, line: 4, col: 2},
		// Offsets past the end clamp to the last position.
		{offset: 99, line: 5, col: 1},
	}
	for _, tc := range testcases {
		line, col := Position(data, tc.offset)
		assert.Empty(t, cmp.Diff([]int{tc.line, tc.col}, []int{line, col}), "offset %d", tc.offset)
	}
}

func TestLintFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"a": [1, 2]}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("{\n  \"a\" 1\n}\n"), 0o644))

	t.Run("valid file", func(t *testing.T) {
		cmd := Main()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{good})
		require.NoError(t, cmd.Execute())
		require.Equal(t, good+": OK\n", out.String())
	})

	t.Run("invalid file reports line and column", func(t *testing.T) {
		cmd := Main()
		cmd.SetArgs([]string{bad})
		err := cmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), bad+":2:7:")
		require.Contains(t, err.Error(), "missing ':' after object key")
	})

	t.Run("compact output", func(t *testing.T) {
		cmd := Main()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--compact", good})
		require.NoError(t, cmd.Execute())
		require.Equal(t, `{"a": [1, 2]}`+"\n", out.String())
	})

	t.Run("stdin", func(t *testing.T) {
		cmd := Main()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader("[true, false]\n"))
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())
		require.Equal(t, "<stdin>: OK\n", out.String())
	})
}
