// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/platform/config"
	"github.com/CarloMicieli/roundhouse/internal/platform/logger"
)

/*
TestNew_JSON verifies the JSON handler output and the app attribute.
*/
func TestNew_JSON(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"LOG_LEVEL": "warn"})
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logger.New(cfg, &buf)

	// 1. Below the configured level nothing is written
	log.Info("ignored")
	assert.Zero(t, buf.Len())

	// 2. At the configured level the entry carries the app name
	log.Warn("catalog_item_duplicate")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog_item_duplicate", entry["msg"])
	assert.Equal(t, "roundhouse", entry["app"])
}

/*
TestNew_Text verifies the text handler is selected by LOG_FORMAT.
*/
func TestNew_Text(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"LOG_FORMAT": "text"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger.New(cfg, &buf).Info("catalog_item_added")

	assert.Contains(t, buf.String(), "msg=catalog_item_added")
	assert.Contains(t, buf.String(), "app=roundhouse")
}

/*
TestParseLevel covers the level names.
*/
func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}
