package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandCategory_String(t *testing.T) {
	tests := []struct {
		category CommandCategory
		expected string
	}{
		{CategoryUncategorized, "other commands"},
		{CategoryForm, "work with forms"},
		{CategoryCodec, "export and import command strings"},
		{CategoryHistory, "inspect past runs"},
		{CategoryConfig, "configure cliform"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestCommandCategory_Unknown(t *testing.T) {
	unknownCategory := CommandCategory(99)
	require.Equal(t, "other commands", unknownCategory.String())
}

func TestCategoryOrder(t *testing.T) {
	// Verify category order contains all categories
	require.NotEmpty(t, categoryOrder)
	require.Contains(t, categoryOrder, CategoryForm)
	require.Contains(t, categoryOrder, CategoryCodec)
	require.Contains(t, categoryOrder, CategoryHistory)
	require.Contains(t, categoryOrder, CategoryConfig)
	require.Contains(t, categoryOrder, CategoryUncategorized)

	// Uncategorized commands sort last
	require.Equal(t, CategoryUncategorized, categoryOrder[len(categoryOrder)-1])
}

func TestCategoryOrderFunction(t *testing.T) {
	// Test the exported CategoryOrder() function
	order := CategoryOrder()
	require.NotEmpty(t, order)
	require.Equal(t, categoryOrder, order)
}
