package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecentlyFutureQuestion(t *testing.T) {
	q := Question{PubDate: time.Now().Add(30 * 24 * time.Hour)}
	assert.False(t, q.WasPublishedRecently())
}

func TestWasPublishedRecentlyOldQuestion(t *testing.T) {
	q := Question{PubDate: time.Now().Add(-24*time.Hour - time.Second)}
	assert.False(t, q.WasPublishedRecently())
}

func TestWasPublishedRecentlyRecentQuestion(t *testing.T) {
	q := Question{PubDate: time.Now().Add(-23*time.Hour - 59*time.Minute - 59*time.Second)}
	assert.True(t, q.WasPublishedRecently())
}

func TestWasPublishedRecentlyJustPublished(t *testing.T) {
	q := Question{PubDate: time.Now().Add(-time.Second)}
	assert.True(t, q.WasPublishedRecently())
}
