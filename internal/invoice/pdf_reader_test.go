package invoice

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/garyjia/fapiao-helper/internal/invoice/invoicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTextSource mocks the TextSource interface
type MockTextSource struct {
	mock.Mock
}

func (m *MockTextSource) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func TestNewTextSource(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		engine string
		want   interface{}
	}{
		{"", &FallbackSource{}},
		{"mupdf", &FitzSource{}},
		{"MuPDF", &FitzSource{}},
		{"native", &NativeSource{}},
		{"auto", &FallbackSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			src, err := NewTextSource(tt.engine, 0, logger)
			require.NoError(t, err)
			assert.IsType(t, tt.want, src)
		})
	}

	t.Run("unknown engine", func(t *testing.T) {
		_, err := NewTextSource("tesseract", 0, logger)
		assert.ErrorIs(t, err, ErrUnsupportedEngine)
	})
}

func TestFitzSource_MissingFile(t *testing.T) {
	src := NewFitzSource(0, zap.NewNop())

	_, err := src.ReadText(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestTextSources_ReadGeneratedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	invoicetest.WritePDF(t, path, "Tax ¥ 8.00", "Total ¥ 88.00")
	logger := zap.NewNop()

	sources := map[string]TextSource{
		"mupdf":  NewFitzSource(0, logger),
		"native": NewNativeSource(logger),
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			text, err := src.ReadText(path)
			require.NoError(t, err)
			assert.Contains(t, text, "88.00")

			amount, ok := ExtractMaxAmount(text)
			require.True(t, ok, "text: %q", text)
			assert.Equal(t, "88.00", amount.Raw)
		})
	}
}

func TestFitzSource_MaxPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	invoicetest.WritePDF(t, path, "Total ¥ 1.00")

	text, err := NewFitzSource(1, zap.NewNop()).ReadText(path)

	require.NoError(t, err)
	assert.Contains(t, text, "1.00")
}

func TestNativeSource_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	src := NewNativeSource(zap.NewNop())
	_, err := src.ReadText(path)

	assert.ErrorIs(t, err, ErrExtraction)
}

func TestFallbackSource(t *testing.T) {
	logger := zap.NewNop()

	t.Run("first success wins", func(t *testing.T) {
		first := new(MockTextSource)
		second := new(MockTextSource)
		first.On("ReadText", "a.pdf").Return("¥1", nil)

		text, err := NewFallbackSource(logger, first, second).ReadText("a.pdf")

		require.NoError(t, err)
		assert.Equal(t, "¥1", text)
		second.AssertNotCalled(t, "ReadText", mock.Anything)
	})

	t.Run("falls back on error", func(t *testing.T) {
		first := new(MockTextSource)
		second := new(MockTextSource)
		first.On("ReadText", "a.pdf").Return("", ErrExtraction)
		second.On("ReadText", "a.pdf").Return("", nil)

		text, err := NewFallbackSource(logger, first, second).ReadText("a.pdf")

		require.NoError(t, err)
		assert.Empty(t, text)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("returns last error", func(t *testing.T) {
		lastErr := errors.Join(ErrExtraction, errors.New("bad xref"))
		first := new(MockTextSource)
		second := new(MockTextSource)
		first.On("ReadText", "a.pdf").Return("", ErrExtraction)
		second.On("ReadText", "a.pdf").Return("", lastErr)

		_, err := NewFallbackSource(logger, first, second).ReadText("a.pdf")

		assert.ErrorIs(t, err, ErrExtraction)
		assert.Equal(t, lastErr, err)
	})

	t.Run("no sources", func(t *testing.T) {
		_, err := NewFallbackSource(logger).ReadText("a.pdf")
		assert.ErrorIs(t, err, ErrExtraction)
	})
}
