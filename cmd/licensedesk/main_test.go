package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/licensedesk/internal/cli"
	"github.com/rshade/licensedesk/pkg/version"
)

func TestRun(t *testing.T) {
	t.Run("run function exists", func(t *testing.T) {
		_ = run
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if assert.NotNil(t, root) {
			assert.NotEmpty(t, root.Use)
		}
	})
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "generic error", err: errors.New("generic error"), want: cli.ExitCodeFailure},
		{
			name: "auth error",
			err:  &cli.ExitError{Code: cli.ExitCodeAuth, Err: errors.New("unauthorized")},
			want: cli.ExitCodeAuth,
		},
		{
			name: "wrapped partial failure",
			err:  fmt.Errorf("outer: %w", &cli.ExitError{Code: cli.ExitCodePartial, Err: errors.New("1 of 3 deletes failed")}),
			want: cli.ExitCodePartial,
		},
		{
			name: "joined partial failure",
			err:  errors.Join(errors.New("outer"), &cli.ExitError{Code: cli.ExitCodePartial, Err: errors.New("x")}),
			want: cli.ExitCodePartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
