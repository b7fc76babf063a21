package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMaxAmount(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "largest wins and malformed literal is ignored",
			text:   "小计 ¥12.50 合计 ￥99 其他 ¥5.001",
			want:   "99",
			wantOK: true,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "no currency marker",
			text:   "total 88.00, no currency marker",
			wantOK: false,
		},
		{
			name:   "whitespace after marker",
			text:   "总计 ¥  88.00",
			want:   "88.00",
			wantOK: true,
		},
		{
			name:   "ideographic space after marker",
			text:   "价税合计 ￥　120.5",
			want:   "120.5",
			wantOK: true,
		},
		{
			name:   "vertical tab after marker",
			text:   "¥\v88",
			want:   "88",
			wantOK: true,
		},
		{
			name:   "next line after marker",
			text:   "¥\u008588",
			want:   "88",
			wantOK: true,
		},
		{
			name:   "line and paragraph separators after marker",
			text:   "¥\u202812 ￥\u20297.5",
			want:   "12",
			wantOK: true,
		},
		{
			name:   "numeric not lexical comparison",
			text:   "¥9.99 ¥10",
			want:   "10",
			wantOK: true,
		},
		{
			name:   "tie keeps first occurrence",
			text:   "¥100 ¥100.00",
			want:   "100",
			wantOK: true,
		},
		{
			name:   "trailing dot is not a fraction",
			text:   "¥12. end",
			want:   "12",
			wantOK: true,
		},
		{
			name:   "only malformed literals",
			text:   "¥5.001 ¥0.123",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractMaxAmount(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Raw)
			}
		})
	}
}

func TestFindAmounts_ScanOrder(t *testing.T) {
	amounts := FindAmounts("¥3 ￥1.5 ¥2.25")

	require.Len(t, amounts, 3)
	assert.Equal(t, "3", amounts[0].Raw)
	assert.Equal(t, "1.5", amounts[1].Raw)
	assert.Equal(t, "2.25", amounts[2].Raw)
	assert.True(t, amounts[2].Value.Equal(decimal.RequireFromString("2.25")))
}

func TestParseAmount(t *testing.T) {
	t.Run("accepts up to two fraction digits", func(t *testing.T) {
		for _, raw := range []string{"0", "7", "88.0", "88.00", "1234567.89"} {
			a, err := ParseAmount(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, a.Raw)
		}
	})

	t.Run("rejects other literals", func(t *testing.T) {
		for _, raw := range []string{"", "-1", "1.234", "1,000", ".5", "abc"} {
			_, err := ParseAmount(raw)
			var syntaxErr *AmountSyntaxError
			assert.ErrorAs(t, err, &syntaxErr, raw)
		}
	})

	t.Run("fixed rendering", func(t *testing.T) {
		assert.Equal(t, "99.00", MustParseAmount("99").Fixed())
		assert.Equal(t, "12.50", MustParseAmount("12.5").Fixed())
	})
}
