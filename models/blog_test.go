package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorNameFallsBack(t *testing.T) {
	blog := Blog{Title: "Untitled"}
	assert.Equal(t, DefaultAuthor, blog.AuthorName())

	empty := ""
	blog.Author = &empty
	assert.Equal(t, DefaultAuthor, blog.AuthorName())

	name := "Maati"
	blog.Author = &name
	assert.Equal(t, "Maati", blog.AuthorName())
}
