package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCardFields() map[string]string {
	return map[string]string{
		"name":       "Jane Doe",
		"employeeId": "E100",
		"position":   "Engineer",
		"gender":     "F",
		"phone":      "555-0100",
		"email":      "jane@x.com",
		"company":    "Acme",
		"skills":     "Go",
	}
}

func TestAddCard_WithPhoto(t *testing.T) {
	env := newTestEnv(t)

	req := multipartRequest(t, "/v1/cards", validCardFields(), "photo", "portrait.png", []byte("png-bytes"))
	rr := env.do(req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Card struct {
			ID    int64   `json:"id"`
			Name  string  `json:"name"`
			Photo *string `json:"photo"`
		} `json:"card"`
		PhotoURL *string `json:"photoUrl"`
	}
	decodeBody(t, rr.Body, &resp)

	assert.Equal(t, "Jane Doe", resp.Card.Name)
	require.NotNil(t, resp.PhotoURL)
	assert.True(t, strings.HasSuffix(*resp.PhotoURL, ".png"), "photoUrl = %s", *resp.PhotoURL)
	assert.True(t, strings.HasPrefix(*resp.PhotoURL, "http://localhost:5000/uploads/"))
}

func TestAddCard_MissingField(t *testing.T) {
	env := newTestEnv(t)

	fields := validCardFields()
	delete(fields, "employeeId")

	rr := env.do(multipartRequest(t, "/v1/cards", fields, "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, env.cards.cards, "no row may be written")
}

func TestAddCard_RejectsBadImageType(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(multipartRequest(t, "/v1/cards", validCardFields(), "photo", "evil.exe", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, env.cards.cards)
}

func TestListCards_NewestFirst(t *testing.T) {
	env := newTestEnv(t)

	first := validCardFields()
	second := validCardFields()
	second["name"] = "John Roe"
	second["employeeId"] = "E101"

	require.Equal(t, http.StatusOK, env.do(multipartRequest(t, "/v1/cards", first, "", "", nil)).Code)
	require.Equal(t, http.StatusOK, env.do(multipartRequest(t, "/v1/cards", second, "", "", nil)).Code)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var cards []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, rr.Body, &cards)

	require.Len(t, cards, 2)
	assert.Equal(t, "John Roe", cards[0].Name, "newest row must come first")
	assert.Greater(t, cards[0].ID, cards[1].ID)
}

func TestSearchCards(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(multipartRequest(t, "/v1/cards", validCardFields(), "", "", nil)).Code)

	t.Run("blank query", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards/search?q=+++", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no matches", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards/search?q=zzz", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("match by employee id", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards/search?q=e100", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var cards []struct {
			EmployeeID string `json:"employeeId"`
		}
		decodeBody(t, rr.Body, &cards)
		require.Len(t, cards, 1)
		assert.Equal(t, "E100", cards[0].EmployeeID)
	})
}

func TestDeleteCard(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(multipartRequest(t, "/v1/cards", validCardFields(), "", "", nil)).Code)

	t.Run("missing id", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodDelete, "/v1/cards/9999", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Len(t, env.cards.cards, 1)
	})

	t.Run("existing id", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodDelete, "/v1/cards/1", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		list := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards", nil))
		assert.Equal(t, "[]\n", list.Body.String())
	})
}

func TestCountCards(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(multipartRequest(t, "/v1/cards", validCardFields(), "", "", nil)).Code)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/v1/cards/count", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Total int64 `json:"total"`
	}
	decodeBody(t, rr.Body, &resp)
	assert.EqualValues(t, 1, resp.Total)
}
