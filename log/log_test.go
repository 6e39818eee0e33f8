// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.ErrorContains(t, err, "invalid log level")
}

func TestNew_FiltersByLevel(t *testing.T) {
	require := require.New(t)
	var out bytes.Buffer
	logger, err := New(Options{Level: "warn", Console: &out})
	require.NoError(err)

	logger.Info("hidden")
	logger.Warn("shown", zap.Int("block", 3))
	require.NoError(logger.Sync())

	require.NotContains(out.String(), "hidden")
	require.Contains(out.String(), "WARN")
	require.Contains(out.String(), "shown")
	require.Contains(out.String(), `"block": 3`)
}

func TestNew_WritesJsonEntriesToFile(t *testing.T) {
	require := require.New(t)
	file := filepath.Join(t.TempDir(), "logs", "node.log")
	logger, err := New(Options{Level: "debug", Console: &bytes.Buffer{}, File: file, MaxSize: 1})
	require.NoError(err)

	logger.Debug("block applied", zap.Uint64("number", 1))
	require.NoError(logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(err)
	entry := map[string]any{}
	require.NoError(json.Unmarshal(bytes.TrimSpace(data), &entry))
	require.Equal("block applied", entry["msg"])
	require.Equal("debug", entry["level"])
	require.Equal(1.0, entry["number"])
}
