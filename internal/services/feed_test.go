package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine.dev/internal/models"
)

func TestFeed_TenProjectsPageSizeNine(t *testing.T) {
	svc := newTestService(numberedProjects(10), 9)
	feed := svc.NewFeed(models.Filter{})

	first, ok := feed.Next()
	require.True(t, ok)
	assert.Equal(t, 1, first.Page)
	assert.Len(t, first.Items, 9)
	assert.Equal(t, 9, first.Showing)
	assert.Equal(t, 10, first.Total)
	assert.True(t, first.HasMore)
	assert.False(t, first.EndOfResults)
	assert.False(t, first.NoResults)

	second, ok := feed.Next()
	require.True(t, ok)
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, []string{"p10"}, cardIDs(second.Items))
	assert.Equal(t, 10, second.Showing)
	assert.False(t, second.HasMore)
	assert.True(t, second.EndOfResults)
}

func TestFeed_NextAtEndIsNoop(t *testing.T) {
	svc := newTestService(numberedProjects(10), 9)
	feed := svc.NewFeed(models.Filter{})
	feed.Next()
	feed.Next()
	before := feed.Status()

	page, ok := feed.Next()
	assert.False(t, ok)
	assert.Empty(t, page.Items)
	assert.Equal(t, before, feed.Status())

	_, ok = feed.Next()
	assert.False(t, ok)
}

func TestFeed_SinglePageHasNoEndMessage(t *testing.T) {
	svc := newTestService(numberedProjects(9), 9)
	feed := svc.NewFeed(models.Filter{})

	page, ok := feed.Next()
	require.True(t, ok)
	assert.Len(t, page.Items, 9)
	assert.False(t, page.HasMore)
	assert.False(t, page.EndOfResults)

	_, ok = feed.Next()
	assert.False(t, ok)
}

func TestFeed_EmptyResult(t *testing.T) {
	svc := newTestService(sampleProjects(), 9)
	feed := svc.NewFeed(models.Filter{Category: "games"})

	page, ok := feed.Next()
	require.True(t, ok)
	assert.True(t, page.NoResults)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Zero(t, page.Showing)
	assert.False(t, page.EndOfResults)

	_, ok = feed.Next()
	assert.False(t, ok)
}

func TestFeed_StaggerDelays(t *testing.T) {
	svc := newTestService(numberedProjects(4), 3)
	feed := svc.NewFeed(models.Filter{})

	page, _ := feed.Next()
	delays := make([]int, len(page.Items))
	for i, c := range page.Items {
		delays[i] = c.DelayMs
	}
	assert.Equal(t, []int{0, 100, 200}, delays)

	page, _ = feed.Next()
	require.Len(t, page.Items, 1)
	assert.Zero(t, page.Items[0].DelayMs)
}

func TestFeed_RefilterResetsCursor(t *testing.T) {
	projects := numberedProjects(20)
	projects[0].Category = "mobile"
	projects[15].Category = "mobile"
	svc := newTestService(projects, 9)

	feed := svc.NewFeed(models.Filter{})
	feed.Next()
	feed.Next()
	require.Equal(t, 18, feed.Status().Showing)

	svc.refilter(feed, models.Filter{}.WithCategory("mobile"))
	st := feed.Status()
	assert.Zero(t, st.Loaded)
	assert.Zero(t, st.Showing)
	assert.Equal(t, 2, st.Total)

	page, ok := feed.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"p01", "p16"}, cardIDs(page.Items))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, "mobile", feed.Filter().Category)
}

func TestFeed_PagesCoverFilteredListExactlyOnce(t *testing.T) {
	svc := newTestService(numberedProjects(23), 5)
	feed := svc.NewFeed(models.Filter{})

	var seen []string
	for {
		page, ok := feed.Next()
		if !ok {
			break
		}
		seen = append(seen, cardIDs(page.Items)...)
	}
	assert.Equal(t, ids(numberedProjects(23)), seen)
}

func TestResumeFeed(t *testing.T) {
	svc := newTestService(numberedProjects(10), 9)

	feed := svc.ResumeFeed(models.Filter{}, 1)
	page, ok := feed.Next()
	require.True(t, ok)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, []string{"p10"}, cardIDs(page.Items))

	past := svc.ResumeFeed(models.Filter{}, 2)
	_, ok = past.Next()
	assert.False(t, ok)
	assert.True(t, past.Status().EndOfResults)
	assert.Equal(t, 10, past.Status().Showing)
}

func TestResumeFeed_CursorFarPastEnd(t *testing.T) {
	svc := newTestService(numberedProjects(10), 9)

	for _, cursor := range []int{2049638230412172401, math.MaxInt} {
		feed := svc.ResumeFeed(models.Filter{}, cursor)
		_, ok := feed.Next()
		assert.False(t, ok)

		st := feed.Status()
		assert.False(t, st.HasMore)
		assert.True(t, st.EndOfResults)
		assert.Equal(t, 10, st.Showing)
		assert.Equal(t, 2, st.Loaded)
	}
}

func TestProjectService_PageFarPastEnd(t *testing.T) {
	svc := newTestService(numberedProjects(10), 9)

	page, ok := svc.Page(models.Filter{}, 2049638230412172402)
	assert.False(t, ok)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Equal(t, 2049638230412172402, page.Page)
}
