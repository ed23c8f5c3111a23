package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"campusvoice/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below one", 0, 20, constants.DefaultPage, 20},
		{"page size below one", 1, -1, 1, constants.DefaultPageSize},
		{"page size capped", 1, 1000, 1, constants.MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/issues?page=3&page_size=abc", nil)

	got := ParsePagination(c)

	assert.Equal(t, 3, got.Page)
	assert.Equal(t, constants.DefaultPageSize, got.PageSize)
}

func TestApplyPagination(t *testing.T) {
	start, end := ApplyPagination(45, 3, 20)
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	start, end = ApplyPagination(5, 2, 20)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 3, TotalPages(41, 20))
	assert.Equal(t, 2, TotalPages(40, 20))
}
