package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAmountSuffix(t *testing.T) {
	tests := []struct {
		base string
		want bool
	}{
		{"invoice_100.00元", true},
		{"invoice_99元", true},
		{"invoice_12.5元", true},
		{"invoice_100.00元 (1)", true},
		{"invoice", false},
		{"invoice_100.001元", false},
		{"invoice_元", false},
		{"invoice 100元", false},
		{"invoice_100.00元_copy", false},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAmountSuffix(tt.base))
		})
	}
}

func TestAmountFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"a_88.00元.pdf", "88.00", true},
		{"a_88元.PDF", "88", true},
		{"scan_7.5元.jpg", "7.5", true},
		{"scan_7.5元.JPEG", "7.5", true},
		{"photo_10元.png", "10", true},
		{"invoice_100.00元 (1).pdf", "100.00", true},
		{"b.pdf", "", false},
		{"2026-01-02-030405_报销88.00元.xlsx", "", false},
		{"a_88.001元.pdf", "", false},
		{"a_88.00元.pdf.bak", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AmountFromFileName(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Raw)
			}
		})
	}
}

func TestTaggedName_RoundTrip(t *testing.T) {
	for _, text := range []string{"总计 ¥88.00", "￥99", "¥ 0.5", "¥1234567.89"} {
		amount, ok := ExtractMaxAmount(text)
		require.True(t, ok, text)

		name := TaggedName("invoice", amount)
		base, ext := SplitExt(name)
		assert.True(t, HasAmountSuffix(base), name)
		assert.Equal(t, PDFExt, ext)

		parsed, ok := AmountFromFileName(name)
		require.True(t, ok, name)
		assert.True(t, amount.Value.Equal(parsed.Value), name)
	}
}

func TestSplitExt(t *testing.T) {
	base, ext := SplitExt("a.b.PDF")
	assert.Equal(t, "a.b", base)
	assert.Equal(t, ".PDF", ext)

	base, ext = SplitExt(".pdf")
	assert.Equal(t, ".pdf", base)
	assert.Empty(t, ext)

	assert.True(t, IsPDF("x.Pdf"))
	assert.False(t, IsPDF(".pdf"))
	assert.False(t, IsPDF("x.pdfx"))
}
