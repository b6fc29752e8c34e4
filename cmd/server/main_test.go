package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/phrazzld/cosmic-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{name: "serve", args: nil, want: options{}},
		{name: "migrate up", args: []string{"-migrate", "up"}, want: options{migrate: "up"}},
		{name: "migrate status", args: []string{"-migrate=status"}, want: options{migrate: "status"}},
		{name: "seed", args: []string{"-seed", "-seed-reset"}, want: options{seed: true, seedReset: true}},
		{name: "unknown migrate", args: []string{"-migrate", "sideways"}, wantErr: true},
		{name: "combined", args: []string{"-migrate", "up", "-seed"}, wantErr: true},
		{name: "unknown flag", args: []string{"-verbose"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseFlags(tc.args, io.Discard)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandleMigrations(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var out bytes.Buffer
	require.NoError(t, handleMigrations(ctx, db, "version", &out, log))
	assert.Equal(t, "version 1\n", out.String())

	out.Reset()
	require.NoError(t, handleMigrations(ctx, db, "status", &out, log))
	assert.Contains(t, out.String(), "VERSION")
	assert.Contains(t, out.String(), "00001_create_tables.sql")
	assert.NotContains(t, out.String(), "pending")

	require.NoError(t, handleMigrations(ctx, db, "reset", &out, log))
	out.Reset()
	require.NoError(t, handleMigrations(ctx, db, "status", &out, log))
	assert.Contains(t, out.String(), "pending")

	require.NoError(t, handleMigrations(ctx, db, "up", &out, log))
	assert.Error(t, handleMigrations(ctx, db, "sideways", &out, log))
}
