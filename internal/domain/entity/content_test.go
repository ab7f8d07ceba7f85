package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_PrepareDerivesFields(t *testing.T) {
	c := &Content{
		Title: "Après-Hours Neuro Reads",
		Body:  "# Heading\n\nWe read **CT** and *MRI* studies overnight.",
	}
	c.Prepare(time.Now())

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "apres-hours-neuro-reads", c.Slug)
	assert.Equal(t, ContentStatusDraft, c.Status)
	assert.Equal(t, 1, c.Version)
	assert.Contains(t, c.BodyHTML, "<strong>CT</strong>")
	assert.Equal(t, "Heading We read CT and MRI studies overnight.", c.Excerpt)
	assert.Equal(t, "Après-Hours Neuro Reads", c.SEO.MetaTitle)
	assert.Equal(t, c.Excerpt, c.SEO.MetaDescription)
	assert.Nil(t, c.PublishedAt)
}

func TestContent_PrepareTruncatesSEO(t *testing.T) {
	c := &Content{
		Title: strings.Repeat("radiology ", 10),
		Body:  strings.Repeat("word ", 300),
	}
	c.Prepare(time.Now())

	assert.LessOrEqual(t, len([]rune(c.SEO.MetaTitle)), MetaTitleLength)
	assert.LessOrEqual(t, len([]rune(c.SEO.MetaDescription)), MetaDescriptionLimit)
	assert.LessOrEqual(t, len([]rune(c.Excerpt)), ExcerptLength)
}

func TestContent_PrepareKeepsExplicitValues(t *testing.T) {
	c := &Content{
		Title:   "Services",
		Slug:    "Our Services",
		Excerpt: "Custom excerpt",
		SEO:     SEO{MetaTitle: "Custom title"},
	}
	c.Prepare(time.Now())

	assert.Equal(t, "our-services", c.Slug)
	assert.Equal(t, "Custom excerpt", c.Excerpt)
	assert.Equal(t, "Custom title", c.SEO.MetaTitle)
	assert.Equal(t, "Custom excerpt", c.SEO.MetaDescription)
}

func TestContent_PublishSetsTimestampOnce(t *testing.T) {
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &Content{Title: "News"}

	c.Publish(first)
	require.NotNil(t, c.PublishedAt)
	assert.Equal(t, first, *c.PublishedAt)

	c.Unpublish()
	assert.Equal(t, ContentStatusDraft, c.Status)
	c.Publish(first.Add(48 * time.Hour))

	assert.True(t, c.IsPublished())
	assert.Equal(t, first, *c.PublishedAt)
}

func TestContent_PrepareStampsPublishedStatus(t *testing.T) {
	now := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	c := &Content{Title: "Live", Status: ContentStatusPublished}
	c.Prepare(now)
	require.NotNil(t, c.PublishedAt)
	assert.Equal(t, now, *c.PublishedAt)
}

func TestContent_SnapshotVersionKeepsTen(t *testing.T) {
	editor := uuid.New()
	c := &Content{Title: "Doc", Body: "v1", Version: 1}

	for i := 0; i < 12; i++ {
		c.SnapshotVersion(&editor, time.Now())
		c.Body = "changed"
	}

	assert.Equal(t, 13, c.Version)
	require.Len(t, c.PreviousVersions, MaxContentVersions)
	assert.Equal(t, 3, c.PreviousVersions[0].Version)
	assert.Equal(t, 12, c.PreviousVersions[MaxContentVersions-1].Version)
	assert.Equal(t, &editor, c.LastEditedByID)

	v, ok := c.FindVersion(5)
	assert.True(t, ok)
	assert.Equal(t, 5, v.Version)
	_, ok = c.FindVersion(1)
	assert.False(t, ok)
}

func TestContent_ReadingTime(t *testing.T) {
	assert.Equal(t, 1, (&Content{}).ReadingTime())
	assert.Equal(t, 1, (&Content{Body: strings.Repeat("word ", 200)}).ReadingTime())
	assert.Equal(t, 2, (&Content{Body: strings.Repeat("word ", 201)}).ReadingTime())
}

func TestPlainText_IncludesCodeBlocks(t *testing.T) {
	plain := PlainText("Intro\n\n```\nfmt.Println()\n```\n\n- one\n- two")
	assert.Equal(t, "Intro fmt.Println() one two", plain)
}
