package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_Code(t *testing.T) {
	t.Parallel()

	err := NewError("something failed", errors.New("underlying"))
	assert.Equal(t, int(ExitError), err.Code)
	assert.Equal(t, 1, err.Code)
}

func TestNewUsageError_Code(t *testing.T) {
	t.Parallel()

	err := NewUsageError("invalid predicate expression", errors.New("bad glob"))
	assert.Equal(t, int(ExitUsage), err.Code)
	assert.Equal(t, 2, err.Code)
}

func TestNewNotFoundError_Code(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("not a git repository", nil)
	assert.Equal(t, int(ExitNotFound), err.Code)
	assert.Equal(t, 3, err.Code)
}

func TestNewNotFoundError_NilUnderlying(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("project not found", nil)
	assert.Nil(t, err.Err)
}

func TestCoreError_ErrorWithUnderlying(t *testing.T) {
	t.Parallel()

	underlying := errors.New("disk full")
	err := NewError("write failed", underlying)
	assert.Equal(t, "write failed: disk full", err.Error())
}

func TestCoreError_ErrorWithoutUnderlying(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("path outside any known project", nil)
	assert.Equal(t, "path outside any known project", err.Error())
}

func TestCoreError_ErrorMessageFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *CoreError
		wantMsg string
	}{
		{
			name:    "error with underlying",
			err:     NewError("processing failed", errors.New("permission denied")),
			wantMsg: "processing failed: permission denied",
		},
		{
			name:    "error without underlying",
			err:     NewNotFoundError("not found", nil),
			wantMsg: "not found",
		},
		{
			name:    "usage error with underlying",
			err:     NewUsageError("bad config", errors.New("invalid toml")),
			wantMsg: "bad config: invalid toml",
		},
		{
			name:    "error with nil underlying",
			err:     NewError("generic failure", nil),
			wantMsg: "generic failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestCoreError_Unwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("root cause")
	err := NewError("wrapper", underlying)

	unwrapped := err.Unwrap()
	assert.Equal(t, underlying, unwrapped)
}

func TestCoreError_UnwrapNil(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("no underlying", nil)
	assert.Nil(t, err.Unwrap())
}

func TestCoreError_ErrorsIs(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel error")
	coreErr := NewError("wrapped sentinel", sentinel)

	assert.True(t, errors.Is(coreErr, sentinel),
		"errors.Is should find the sentinel through CoreError.Unwrap")
}

func TestCoreError_ErrorsIsChained(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("deep sentinel")
	wrapped := fmt.Errorf("mid-level: %w", sentinel)
	coreErr := NewError("top-level", wrapped)

	assert.True(t, errors.Is(coreErr, sentinel),
		"errors.Is should traverse the full chain")
}

func TestCoreError_ErrorsAs(t *testing.T) {
	t.Parallel()

	coreErr := NewUsageError("bad flag", errors.New("invalid value"))

	wrappedErr := fmt.Errorf("command failed: %w", coreErr)

	var target *CoreError
	require.True(t, errors.As(wrappedErr, &target),
		"errors.As should extract CoreError from wrapped chain")
	assert.Equal(t, int(ExitUsage), target.Code)
	assert.Equal(t, "bad flag", target.Message)
}

func TestCoreError_ErrorsAsDirectly(t *testing.T) {
	t.Parallel()

	coreErr := NewError("direct", errors.New("cause"))

	var target *CoreError
	require.True(t, errors.As(coreErr, &target))
	assert.Equal(t, int(ExitError), target.Code)
}

func TestCoreError_ImplementsErrorInterface(t *testing.T) {
	t.Parallel()

	// Compile-time check that *CoreError implements error.
	var _ error = (*CoreError)(nil)

	var err error = NewError("test", nil)
	assert.NotNil(t, err)
	assert.Equal(t, "test", err.Error())
}

func TestCoreError_ErrorsIsWithStdlibErrors(t *testing.T) {
	t.Parallel()

	coreErr := NewNotFoundError("file not found", fs.ErrNotExist)

	assert.True(t, errors.Is(coreErr, fs.ErrNotExist),
		"errors.Is should find fs.ErrNotExist through CoreError")
}

func TestNewError_PreservesMessage(t *testing.T) {
	t.Parallel()

	err := NewError("custom message", errors.New("cause"))
	assert.Equal(t, "custom message", err.Message)
}

func TestNewUsageError_PreservesMessage(t *testing.T) {
	t.Parallel()

	err := NewUsageError("usage message", errors.New("cause"))
	assert.Equal(t, "usage message", err.Message)
}

func TestNewNotFoundError_PreservesMessage(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("not found message", nil)
	assert.Equal(t, "not found message", err.Message)
}

func TestCoreError_ErrorsIsNonMatching(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("expected sentinel")
	other := errors.New("different sentinel")
	coreErr := NewError("wrapped", sentinel)

	assert.False(t, errors.Is(coreErr, other),
		"errors.Is should return false when sentinel does not match")
}

func TestCoreError_ErrorsAsNonMatching(t *testing.T) {
	t.Parallel()

	plainErr := fmt.Errorf("plain: %w", errors.New("cause"))

	var target *CoreError
	assert.False(t, errors.As(plainErr, &target),
		"errors.As should return false when chain contains no CoreError")
}

func TestNewError_UnwrapNilUnderlying(t *testing.T) {
	t.Parallel()

	err := NewError("no cause", nil)
	assert.Nil(t, err.Unwrap())
}

func TestNewUsageError_UnwrapNilUnderlying(t *testing.T) {
	t.Parallel()

	err := NewUsageError("usage no cause", nil)
	assert.Nil(t, err.Unwrap())
}

func TestCoreError_EmptyMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *CoreError
		wantMsg string
	}{
		{
			name:    "NewError empty message no underlying",
			err:     NewError("", nil),
			wantMsg: "",
		},
		{
			name:    "NewError empty message with underlying",
			err:     NewError("", errors.New("cause")),
			wantMsg: ": cause",
		},
		{
			name:    "NewUsageError empty message",
			err:     NewUsageError("", nil),
			wantMsg: "",
		},
		{
			name:    "NewNotFoundError empty message",
			err:     NewNotFoundError("", nil),
			wantMsg: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestCoreError_ErrorsIsNilTarget(t *testing.T) {
	t.Parallel()

	// errors.Is(err, nil) returns true only when err is nil.
	coreErr := NewError("msg", nil)
	assert.False(t, errors.Is(coreErr, nil),
		"errors.Is(nonNilErr, nil) should return false")
}
