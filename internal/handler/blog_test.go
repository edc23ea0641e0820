package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/blog-api/internal/model"
	"github.com/iliyamo/blog-api/internal/utils"
)

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testCfg.JWTSecret, userID, testCfg.AccessTTLMin)
	require.NoError(t, err)
	return tok.Token
}

func (a *testAPI) createBlog(t *testing.T, token, title, body string) model.Blog {
	t.Helper()
	payload := fmt.Sprintf(`{"title":%q,"description":"d","tags":["go"],"body":%q}`, title, body)
	rec := a.do(http.MethodPost, "/blogs", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// locate by title regardless of author
	for _, state := range []string{model.StateDraft, model.StatePublished} {
		list, err := a.blogs.FindByState(context.Background(), state)
		require.NoError(t, err)
		for _, b := range list {
			if b.Title == title {
				return b
			}
		}
	}
	t.Fatalf("blog %q not found after create", title)
	return model.Blog{}
}

func TestCreateBlogRequiresToken(t *testing.T) {
	api := newTestAPI()

	rec := api.do(http.MethodPost, "/blogs", "", `{"title":"t","body":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/blogs", "bogus-token", `{"title":"t","body":"b"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBlogDraftDefaults(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")

	b := api.createBlog(t, token, "my first post",
		"one two three four five six seven eight nine ten")

	assert.Equal(t, model.StateDraft, b.State)
	assert.Equal(t, "user-a", b.Author)
	assert.Equal(t, 0, b.ReadCount)
	assert.Equal(t, 1, b.ReadingTime, "10 words read in ceil(10/200) = 1 minute")
	assert.Equal(t, []string{"go"}, b.Tags)
}

func TestCreateBlogDuplicateTitle(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")
	api.createBlog(t, token, "taken", "body")

	rec := api.do(http.MethodPost, "/blogs", token, `{"title":"taken","body":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// the failed insert left nothing behind
	drafts, err := api.blogs.FindByState(context.Background(), model.StateDraft)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)
}

func TestPublishFlow(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")
	b := api.createBlog(t, token, "launch notes", "body text")

	// drafts are invisible to the public list
	rec := api.do(http.MethodGet, "/blogs", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	rec = api.do(http.MethodPut, "/blogs/publish/"+b.ID, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blog published")

	rec = api.do(http.MethodGet, "/blogs", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, b.ID, listed[0].ID)
	assert.Equal(t, model.StatePublished, listed[0].State)

	rec = api.do(http.MethodPut, "/blogs/publish/missing-id", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPut, "/blogs/publish/"+b.ID, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOneIncrementsReadCount(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")
	b := api.createBlog(t, token, "popular", "body")

	for i := 1; i <= 3; i++ {
		rec := api.do(http.MethodGet, "/blogs/"+b.ID, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var got model.Blog
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, i, got.ReadCount, "read %d", i)
	}

	stored, err := api.blogs.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.ReadCount, "increment is persisted before the response")

	rec := api.do(http.MethodGet, "/blogs/missing-id", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMine(t *testing.T) {
	api := newTestAPI()
	tokA := tokenFor(t, "user-a")
	tokB := tokenFor(t, "user-b")
	api.createBlog(t, tokA, "a's draft", "body")
	api.createBlog(t, tokB, "b's draft", "body")

	rec := api.do(http.MethodGet, "/myblogs", tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []model.Blog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, "a's draft", mine[0].Title)

	rec = api.do(http.MethodGet, "/myblogs", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateOverwritesSuppliedFields(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")
	b := api.createBlog(t, token, "editable", "short body")
	originalReadingTime := b.ReadingTime

	rec := api.do(http.MethodPut, "/blogs/"+b.ID, token,
		`{"body":"a completely different and much longer body","state":"published","read_count":41}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blog updated")

	got, err := api.blogs.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "a completely different and much longer body", got.Body)
	assert.Equal(t, model.StatePublished, got.State, "update may overwrite state directly")
	assert.Equal(t, 41, got.ReadCount, "update may overwrite read_count directly")
	assert.Equal(t, "editable", got.Title, "untouched fields keep their values")
	assert.Equal(t, originalReadingTime, got.ReadingTime, "reading time is not recomputed on update")

	rec = api.do(http.MethodPut, "/blogs/missing-id", token, `{"body":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPut, "/blogs/"+b.ID, "", `{"body":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateAndDeleteIgnoreOwnership(t *testing.T) {
	api := newTestAPI()
	tokA := tokenFor(t, "user-a")
	tokB := tokenFor(t, "user-b")
	b := api.createBlog(t, tokA, "a's post", "body")

	// any valid token may update or delete any blog
	rec := api.do(http.MethodPut, "/blogs/"+b.ID, tokB, `{"description":"edited by b"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodDelete, "/blogs/"+b.ID, tokB, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blog deleted")

	rec = api.do(http.MethodGet, "/blogs/"+b.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMissing(t *testing.T) {
	api := newTestAPI()
	token := tokenFor(t, "user-a")

	rec := api.do(http.MethodDelete, "/blogs/missing-id", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodDelete, "/blogs/any", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
