package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		page, limit int
		want        PageRequest
	}{
		{0, 0, PageRequest{Page: 1, Limit: DefaultPageLimit}},
		{-3, -1, PageRequest{Page: 1, Limit: DefaultPageLimit}},
		{2, 5, PageRequest{Page: 2, Limit: 5}},
		{1, 1000, PageRequest{Page: 1, Limit: MaxPageLimit}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.limit))
	}

	assert.Equal(t, 10, NewPageRequest(3, 5).Offset())
}

func TestNewPage(t *testing.T) {
	req := NewPageRequest(1, 10)

	assert.Equal(t, 0, NewPage[int](nil, 0, req).Pages)
	assert.NotNil(t, NewPage[int](nil, 0, req).Items)
	assert.Equal(t, 1, NewPage([]int{1}, 10, req).Pages)
	assert.Equal(t, 2, NewPage([]int{1}, 11, req).Pages)
	assert.Equal(t, 3, NewPage([]int{1}, 25, req).Pages)
}
