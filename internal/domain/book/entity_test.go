package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookValidate(t *testing.T) {
	valid := func() *Book {
		return &Book{Title: "1984", Price: 1499, AuthorID: 1}
	}

	t.Run("合法图书通过校验", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("书名必填", func(t *testing.T) {
		b := valid()
		b.Title = ""
		assert.ErrorIs(t, b.Validate(), ErrTitleRequired)
	})

	t.Run("书名超长", func(t *testing.T) {
		b := valid()
		for len(b.Title) <= 200 {
			b.Title += "x"
		}
		assert.ErrorIs(t, b.Validate(), ErrTitleTooLong)
	})

	t.Run("价格不能为负", func(t *testing.T) {
		b := valid()
		b.Price = -1
		assert.ErrorIs(t, b.Validate(), ErrInvalidPrice)
	})

	t.Run("作者引用必填", func(t *testing.T) {
		b := valid()
		b.AuthorID = 0
		assert.ErrorIs(t, b.Validate(), ErrAuthorRequired)
	})
}

func TestPagedResultTotalPages(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"整除", 10, 5, 2},
		{"有余数向上取整", 10, 3, 4},
		{"不足一页", 2, 10, 1},
		{"空集", 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagedResult[*Book](nil, tc.total, 1, tc.pageSize)
			assert.Equal(t, tc.want, p.TotalPages())
		})
	}
}

func TestNewPagedResult(t *testing.T) {
	t.Run("nil条目转为空切片", func(t *testing.T) {
		p := NewPagedResult[*Book](nil, 0, 1, 10)
		assert.NotNil(t, p.Items)
		assert.Len(t, p.Items, 0)
	})

	t.Run("超出末页:空条目但总数不变", func(t *testing.T) {
		p := NewPagedResult[*Book](nil, 42, 100, 10)
		assert.Len(t, p.Items, 0)
		assert.Equal(t, int64(42), p.TotalCount)
		assert.Equal(t, 100, p.PageNumber)
	})
}
